package commands

// Root command for Cobra CLI
// Defines the main command structure of the application
// Running the bare binary performs the full generation sequence

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "litho-fallback",
	Short: "Litho Fallback Charts - static PNG fallbacks for the lithography dashboard",
	Long: `Litho Fallback Charts generates the static PNG chart images served when the
dashboard's dynamic charting is unavailable: a dose-response curve, a
resolution-vs-wavelength comparison, and a resist thickness uniformity map.`,
	Version: "1.0.0",
	RunE:    runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outDirFlag, "out-dir", "", "Output directory for chart images (env: LITHO_OUT_DIR)")
	rootCmd.AddCommand(generateCmd)
}
