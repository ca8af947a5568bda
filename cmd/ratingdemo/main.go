// Command ratingdemo renders rating bars to image files and probes their
// pointer handling.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ratingbar"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ratingdemo",
		Short: "Render and probe rating bars",
		Long: `ratingdemo draws rating bars described in a YAML sheet.

Without --config the built-in sample sheet is used: star bars with
growing outlines, hearts, circles and squares.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd, verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(renderCmd(), probeCmd(), shapesCmd())
	return cmd
}

// setupLogging sends ratingbar logs to stderr. Info level reports written
// files; debug adds gesture and drawing records.
func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	ratingbar.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
}
