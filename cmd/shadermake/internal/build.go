package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/shadermake"
)

var buildVerbose bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile every shader reachable from the current directory",
	Long: `Build reads the shadermake.toml manifest in the current directory, follows
its subdirectory declarations, and compiles every declared shader into a
mirrored tree under the target directory.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("target-dir", "target", "Directory which will contain the compiled shaders")
	buildCmd.Flags().String("target", "spv", "Output representation: spv, spirv, wgsl or glsl")
	buildCmd.Flags().Int("jobs", 0, "Number of concurrent compile workers (0 = all cores)")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Enable verbose build output")

	// SHADERMAKE_TARGET, SHADERMAKE_TARGET_DIR and SHADERMAKE_JOBS act as
	// flag defaults.
	viper.SetEnvPrefix("shadermake")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"target-dir", "target", "jobs"} {
		cobra.CheckErr(viper.BindPFlag(name, buildCmd.Flags().Lookup(name)))
	}

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	target, err := shadermake.ParseTarget(viper.GetString("target"))
	if err != nil {
		return err
	}
	sourceDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	if buildVerbose {
		log.SetLevel(log.DebugLevel)
	}

	opts := shadermake.Options{
		SourceDir: sourceDir,
		TargetDir: viper.GetString("target-dir"),
		Target:    target,
		Jobs:      viper.GetInt("jobs"),
	}
	log.Debug("build options", "target", opts.Target, "target-dir", opts.TargetDir, "jobs", opts.Jobs)

	result, err := shadermake.Build(opts, newConsoleLogger(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	if !result.Ok() {
		// Per-shader errors were already streamed by the logger.
		return errors.New("build failed")
	}
	return nil
}
