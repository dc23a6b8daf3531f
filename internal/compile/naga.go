package compile

import (
	"fmt"
	"unicode/utf8"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/shadermake/manifest"
)

// entryPoint is the fixed entry point name every emitted shader uses.
const entryPoint = "main"

// nagaWgsl re-emits WGSL source through the naga IR pipeline, either as
// SPIR-V (debug info on, Shader capability declared) or as desktop GLSL 450.
// The dispatch table never routes the WGSL target here.
func nagaWgsl(source []byte, _ manifest.ShaderKind, target Target) ([]byte, error) {
	if !utf8.Valid(source) {
		return nil, fmt.Errorf("shader source is not valid UTF-8")
	}
	text := string(source)

	ast, err := naga.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WGSL: %w", err)
	}
	module, err := naga.LowerWithSource(ast, text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WGSL: %w", err)
	}

	switch target {
	case Spirv:
		out, err := naga.GenerateSPIRV(module, spirv.Options{
			Version:      spirv.Version1_3,
			Capabilities: []spirv.Capability{spirv.CapabilityShader},
			Debug:        true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate SPIR-V: %w", err)
		}
		return out, nil
	case Glsl:
		src, _, err := glsl.Compile(module, glsl.Options{
			LangVersion: glsl.Version450,
			EntryPoint:  entryPoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate GLSL: %w", err)
		}
		return []byte(src), nil
	default:
		return nil, fmt.Errorf("%w: cannot compile wgsl to %s", ErrNoCompilationPath, target)
	}
}
