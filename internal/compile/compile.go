// Package compile maps shader sources onto transformations and runs them.
//
// A shader's source kind is detected from its file extension. The
// (source kind, target) pairing selects one of three transformations:
// an identity copy, re-emission through the naga IR pipeline, or delegation
// to the native glslangValidator compiler.
package compile

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gogpu/shadermake/manifest"
)

var (
	// ErrUnknownSourceKind reports a file extension that is not a
	// recognized shading language.
	ErrUnknownSourceKind = errors.New("cannot guess shader source kind from file extension (expected .wgsl or .glsl)")

	// ErrNoCompilationPath reports a (source kind, target) pairing with no
	// transformation.
	ErrNoCompilationPath = errors.New("no compilation path for shader")
)

// SourceKind is the shading language a shader file is written in.
type SourceKind int

const (
	SourceWgsl SourceKind = iota
	SourceGlsl
)

func (k SourceKind) String() string {
	if k == SourceWgsl {
		return "wgsl"
	}
	return "glsl"
}

// GuessSourceKind detects the source kind from path's extension.
func GuessSourceKind(path string) (SourceKind, error) {
	switch filepath.Ext(path) {
	case ".wgsl":
		return SourceWgsl, nil
	case ".glsl":
		return SourceGlsl, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownSourceKind, path)
	}
}

// Func transforms raw shader source into the requested target
// representation. Implementations are pure given their inputs and safe to
// call from concurrent workers.
type Func func(source []byte, kind manifest.ShaderKind, target Target) ([]byte, error)

// Lookup returns the transformation for a (source kind, target) pairing, or
// ErrNoCompilationPath when none exists.
func Lookup(source SourceKind, target Target) (Func, error) {
	switch {
	case source == SourceWgsl && target == Wgsl,
		source == SourceGlsl && target == Glsl:
		return identity, nil
	case source == SourceWgsl:
		return nagaWgsl, nil
	case source == SourceGlsl && target == Spirv:
		return glslangGlsl, nil
	default:
		return nil, fmt.Errorf("%w: cannot compile %s to %s", ErrNoCompilationPath, source, target)
	}
}

func identity(source []byte, _ manifest.ShaderKind, _ Target) ([]byte, error) {
	out := make([]byte, len(source))
	copy(out, source)
	return out, nil
}
