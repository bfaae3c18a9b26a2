package commands

// Command to generate the static fallback chart images
// Loads configuration, renders the three charts and writes them to disk
// Prints a single confirmation line on success

import (
	"fmt"

	"litho-fallback/internal/features/fallback_charts"
	"litho-fallback/internal/infra/config"
	logging "litho-fallback/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outDirFlag string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate static fallback chart PNGs",
	Long:  `Render the dose-response, resolution-vs-wavelength and resist uniformity charts and write them to the output directory, overwriting previous runs.`,
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.LogError("Failed to load config", zap.Error(err))
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetConsoleLevel(cfg.App.LogLevel)

	outDir := cfg.App.OutDir
	if outDirFlag != "" {
		outDir = outDirFlag
	}

	if err := fallback_charts.GenerateAll(outDir); err != nil {
		logging.LogError("Failed to generate fallback charts", zap.Error(err))
		return err
	}

	logging.LogSuccess("Fallback charts generated", zap.String("out_dir", outDir))
	fmt.Printf("Static plot fallbacks generated in %s\n", outDir)
	return nil
}
