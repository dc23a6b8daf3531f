package compile

import "fmt"

// Target is the output representation a shader is compiled to.
type Target int

const (
	// Spirv is the SPIR-V binary intermediate form.
	Spirv Target = iota
	// Wgsl is textual WGSL.
	Wgsl
	// Glsl is textual desktop GLSL.
	Glsl
)

// ParseTarget parses a target name as accepted on the command line.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "spv", "spirv":
		return Spirv, nil
	case "wgsl":
		return Wgsl, nil
	case "glsl":
		return Glsl, nil
	default:
		return 0, fmt.Errorf("invalid target %q (expected: spv, spirv, wgsl, glsl)", s)
	}
}

// Extension returns the canonical output file extension, without the dot.
func (t Target) Extension() string {
	switch t {
	case Spirv:
		return "spv"
	case Wgsl:
		return "wgsl"
	default:
		return "glsl"
	}
}

func (t Target) String() string {
	return t.Extension()
}
