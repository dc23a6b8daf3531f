package internal

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "shadermake",
	Short:   "shadermake cross-compiles the shaders declared by shadermake.toml manifests",
	Long: `shadermake discovers shaders through per-directory shadermake.toml manifests
and compiles each one to SPIR-V, WGSL or GLSL, writing the results to a
mirrored output tree.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
