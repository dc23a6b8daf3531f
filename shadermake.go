// Package shadermake compiles the shaders declared by shadermake.toml
// manifests into a mirrored target tree.
//
// A manifest names the shaders in its directory and the subdirectories to
// recurse into. Build gathers every reachable declaration into a flat
// worklist, then compiles the entries concurrently: WGSL goes through the
// naga IR pipeline, GLSL is handed to glslangValidator for SPIR-V output,
// and same-language targets are copied through unchanged.
package shadermake

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gogpu/shadermake/internal/compile"
	"github.com/gogpu/shadermake/internal/discover"
)

// Target is the output representation shaders are compiled to.
type Target = compile.Target

const (
	Spirv = compile.Spirv
	Wgsl  = compile.Wgsl
	Glsl  = compile.Glsl
)

// ParseTarget parses "spv", "spirv", "wgsl" or "glsl".
func ParseTarget(s string) (Target, error) {
	return compile.ParseTarget(s)
}

// Options configures one build.
type Options struct {
	// SourceDir is the root of the manifest tree.
	SourceDir string

	// TargetDir receives the compiled output, mirroring the source tree.
	TargetDir string

	// Target is the output representation.
	Target Target

	// Jobs is the number of concurrent compile workers. Zero means one
	// worker per available CPU.
	Jobs int
}

// Logger receives build lifecycle events. Compiling and CompileError are
// called from worker goroutines, so implementations must be safe for
// concurrent use.
type Logger interface {
	// ShadersGathered is called once discovery has produced the worklist.
	ShadersGathered(n int)

	// Compiling is called as a worker picks up a shader.
	Compiling(shader string)

	// CompileError is called when a shader fails; err carries the full
	// context chain.
	CompileError(shader string, err error)

	// Completed is called after every shader has finished.
	Completed()
}

// ShaderResult is the outcome for a single shader.
type ShaderResult struct {
	Name string
	Path string // relative to the source root
	Err  error  // nil on success
}

// Result is the aggregate outcome of a build.
type Result struct {
	Shaders []ShaderResult
}

// Ok reports whether every shader compiled and wrote successfully.
func (r *Result) Ok() bool {
	for _, s := range r.Shaders {
		if s.Err != nil {
			return false
		}
	}
	return true
}

// Build gathers and compiles every shader reachable from opts.SourceDir.
//
// The returned error is reserved for discovery failures, which abort the
// build before anything is compiled. Per-shader failures never stop sibling
// shaders; they are streamed through logger and recorded in the Result, and
// the caller decides how to surface the aggregate outcome.
func Build(opts Options, logger Logger) (*Result, error) {
	shaders, err := discover.Gather(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to gather shaders: %w", err)
	}
	logger.ShadersGathered(len(shaders))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each worker writes only its own result slots, so the slice needs no
	// locking; the aggregate is reduced after all workers have joined.
	result := &Result{Shaders: make([]ShaderResult, len(shaders))}
	work := make(chan int)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				shader := shaders[i]
				logger.Compiling(shader.Name)
				err := compileShader(shader, &opts)
				if err != nil {
					logger.CompileError(shader.Name, err)
				}
				result.Shaders[i] = ShaderResult{Name: shader.Name, Path: shader.Path, Err: err}
			}
		}()
	}
	for i := range shaders {
		work <- i
	}
	close(work)
	wg.Wait()

	logger.Completed()
	return result, nil
}

// compileShader reads, transforms and writes one shader.
func compileShader(shader discover.Shader, opts *Options) error {
	sourcePath := filepath.Join(opts.SourceDir, shader.Path)
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	output, err := compileSource(source, shader, opts.Target)
	if err != nil {
		return err
	}

	targetPath := outputPath(opts.TargetDir, shader.Path, opts.Target)
	// A failed mkdir is deliberately not reported; the write below surfaces
	// the real problem with the full path attached.
	_ = os.MkdirAll(filepath.Dir(targetPath), 0o755)
	if err := os.WriteFile(targetPath, output, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", targetPath, err)
	}
	return nil
}

func compileSource(source []byte, shader discover.Shader, target Target) ([]byte, error) {
	sourceKind, err := compile.GuessSourceKind(shader.Path)
	if err != nil {
		return nil, err
	}
	fn, err := compile.Lookup(sourceKind, target)
	if err != nil {
		return nil, err
	}

	output, err := fn(source, shader.Kind, target)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	return output, nil
}

// outputPath mirrors relPath under targetDir with the target's extension
// swapped in.
func outputPath(targetDir, relPath string, target Target) string {
	stem := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	return filepath.Join(targetDir, stem+"."+target.Extension())
}
