package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "oqe",
	Short: "OpenQuantumEDA - superconducting circuit layout tools",
	Long: `OpenQuantumEDA (oqe) provides tools for generating and inspecting
superconducting qubit chip layouts:
  - Parametric qubit generation (transmon pocket with connection pads)
  - .qds design file inspection
  - Interactive layout viewer

Examples:
  oqe qubit transmon -o chip.qds           # Generate a default transmon
  oqe design info chip.qds                 # Show design contents
  oqe view chip.qds                        # View layout interactively`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	cobra.OnInitialize(func() {
		if verbose {
			design.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	})
}
