// Package discover walks a manifest tree and flattens it into the list of
// shaders to compile.
package discover

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/shadermake/manifest"
)

// Shader is one fully resolved entry of the compilation worklist. Path is
// relative to the source root, with every ancestor subdirectory prefix
// already applied.
type Shader struct {
	Name string
	Path string
	Kind manifest.ShaderKind
}

// Gather walks the manifest tree rooted at sourceDir and returns the flat
// worklist. Every directory reached through subdirectory declarations must
// contain a manifest; an unreadable or malformed manifest fails the whole
// gather and discards partial results. A directory reached twice means the
// subdirectory graph has a cycle, which is also a hard failure.
//
// Directories are visited off a simple pop-from-end stack, so sibling order
// is unspecified.
func Gather(sourceDir string) ([]Shader, error) {
	queued := []string{"."}
	visited := make(map[string]bool)
	var shaders []Shader

	for len(queued) > 0 {
		dir := queued[len(queued)-1]
		queued = queued[:len(queued)-1]

		if visited[dir] {
			return nil, fmt.Errorf("subdirectory cycle: %s declared more than once", filepath.Join(sourceDir, dir))
		}
		visited[dir] = true

		m, err := manifest.Load(filepath.Join(sourceDir, dir, manifest.FileName))
		if err != nil {
			return nil, err
		}

		for name, shader := range m.Shaders {
			shaders = append(shaders, Shader{
				Name: name,
				Path: filepath.Join(dir, shader.Path),
				Kind: shader.Kind,
			})
		}
		for _, sub := range m.Subdirectories {
			queued = append(queued, filepath.Join(dir, sub))
		}
	}

	return shaders, nil
}
