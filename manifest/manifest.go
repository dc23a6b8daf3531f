// Package manifest defines the per-directory shader manifest model and its
// TOML codec. A manifest declares the shaders living in its directory and the
// subdirectories the build should recurse into.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/naga/ir"
)

// FileName is the fixed manifest file name looked up in every directory.
const FileName = "shadermake.toml"

// ShaderKind is the shader's pipeline role.
type ShaderKind string

const (
	Vertex   ShaderKind = "vertex"
	Fragment ShaderKind = "fragment"
	Compute  ShaderKind = "compute"
)

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder
// rejects unknown kinds instead of carrying them through.
func (k *ShaderKind) UnmarshalText(text []byte) error {
	switch s := ShaderKind(text); s {
	case Vertex, Fragment, Compute:
		*k = s
		return nil
	default:
		return fmt.Errorf("invalid shader kind %q (expected: vertex, fragment, compute)", text)
	}
}

// Stage returns the naga IR stage for this kind.
func (k ShaderKind) Stage() ir.ShaderStage {
	switch k {
	case Vertex:
		return ir.StageVertex
	case Fragment:
		return ir.StageFragment
	default:
		return ir.StageCompute
	}
}

// GlslangStage returns the stage name glslangValidator expects for -S.
func (k ShaderKind) GlslangStage() string {
	switch k {
	case Vertex:
		return "vert"
	case Fragment:
		return "frag"
	default:
		return "comp"
	}
}

// Shader is one declared shader: a source path relative to the manifest's
// directory and its pipeline role.
type Shader struct {
	Path string     `toml:"path"`
	Kind ShaderKind `toml:"kind"`
}

// Manifest is the typed form of one shadermake.toml. Both entries are
// optional; an absent entry is treated as empty.
type Manifest struct {
	Subdirectories []string          `toml:"subdirectories"`
	Shaders        map[string]Shader `toml:"shaders"`
}

// Parse decodes a manifest document. Malformed TOML and shader entries
// missing required fields are hard failures.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	for name, shader := range m.Shaders {
		if shader.Path == "" {
			return nil, fmt.Errorf("shader %q has no path", name)
		}
		if shader.Kind == "" {
			return nil, fmt.Errorf("shader %q has no kind", name)
		}
	}
	return &m, nil
}

// Load reads and parses the manifest at path. Errors name the offending
// manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("malformed manifest file %s: %w", path, err)
	}
	return m, nil
}
