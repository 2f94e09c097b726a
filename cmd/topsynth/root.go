package main

import (
	"log/slog"
	"os"

	"github.com/rmera/topsynth/ff"
	"github.com/spf13/cobra"
)

// EnvFF names the environment variable with the path to a force field file.
const EnvFF = "TOPSYNTH_FF"

var (
	ffPath  string
	verbose bool
	logger  = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:           "topsynth",
	Short:         "Synthesize bonds, angles and dihedrals from atom labels",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ffPath, "ff", "", "force field YAML file (default: $"+EnvFF+", or the built-in force field)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debugging information")
}

// loadFF returns the force field named by --ff, or by the environment, or the
// built-in one, in that order.
func loadFF() (*ff.ForceField, error) {
	path := ffPath
	if path == "" {
		path = os.Getenv(EnvFF)
	}
	if path == "" {
		logger.Debug("using built-in force field")
		return ff.Default()
	}
	logger.Debug("loading force field", "path", path)
	return ff.LoadFile(path)
}
