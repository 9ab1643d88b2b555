package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fincal-labs/fincal-cli/internal/generator"
)

// Flags for generate.
var (
	generateDataDir string
	generateOutDir  string
	generateWatch   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Rebuild the static data tree from collected platform files",
	Long: `Generate reads the collected per-platform event files and writes the
static data tree the calendar queries: one JSON document per date that has
events, the platform metadata document, and the latest-day summary.

With --watch, the tree is regenerated whenever the collectors update the
active data directory.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateDataDir, "data", "", "collected data directory (default from config)")
	generateCmd.Flags().StringVar(&generateOutDir, "out", "", "output directory (default from config)")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "regenerate on collector updates")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	dataDir := generateDataDir
	if dataDir == "" {
		dataDir = settings.DataDir
	}
	outDir := generateOutDir
	if outDir == "" {
		outDir = settings.OutputDir
	}

	gen := generator.New(dataDir, outDir)

	if generateWatch {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		err := gen.Watch(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	}

	stats, err := gen.Run()
	if err != nil {
		return err
	}
	cmd.Printf("Generated %d day files (%d events, %s to %s)\n",
		stats.DayFiles, stats.TotalEvents, stats.Range.Start, stats.Range.End)
	return nil
}
