package compile

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gogpu/shadermake/manifest"
)

// glslangBin is the native GLSL compiler invoked for GLSL → SPIR-V.
// Overridable in tests.
var glslangBin = "glslangValidator"

// glslangGlsl delegates to glslangValidator for SPIR-V output. A fresh
// process per invocation keeps compiler state isolated between concurrently
// compiled shaders.
func glslangGlsl(source []byte, kind manifest.ShaderKind, _ Target) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "shadermake-glslang-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create glslang work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	srcPath := filepath.Join(workDir, "shader."+kind.GlslangStage())
	if err := os.WriteFile(srcPath, source, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage glslang input: %w", err)
	}
	outPath := filepath.Join(workDir, "shader.spv")

	cmd := exec.Command(glslangBin,
		"-V", // Vulkan semantics, SPIR-V output.
		"-S", kind.GlslangStage(),
		"-e", entryPoint,
		"-o", outPath,
		srcPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s\nfailed to run %v: %w", out, cmd.Args, err)
	}

	compiled, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read output %q: %w", outPath, err)
	}
	return compiled, nil
}
