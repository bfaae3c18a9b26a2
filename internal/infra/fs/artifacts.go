package fs

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
)

// EnsureDir creates dir and its parents; succeeds silently if already present.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// SaveChartPNG writes the rendered context to path, overwriting any existing
// file, and verifies the artifact is non-empty.
func SaveChartPNG(path string, dc *gg.Context) error {
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat chart file: %w", err)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return fmt.Errorf("chart file %s is empty after rendering", path)
	}
	return nil
}
