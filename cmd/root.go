// Package cmd wires the picross command-line interface.
package cmd

import (
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/OliveIsAWord/picross/internal/solver"
)

var (
	verbose     bool
	profileMode bool
	profiler    interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "picross",
	Short: "Solve and generate nonogram puzzles",
	Long: `picross solves nonogram puzzles from their row and column hints,
enumerating every solution the hints admit, and generates new puzzles
with verified unique solutions.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			solver.SetLogLevel(logrus.DebugLevel)
		}
		if profileMode {
			profiler = profile.Start(profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute runs the root command, exiting nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&profileMode, "profile", false, "Write a CPU profile to the working directory")
}
