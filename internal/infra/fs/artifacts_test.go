package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
)

func TestEnsureDirCreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "img", "static")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", dir, err)
	}

	// Second call on an existing directory must succeed silently.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing directory: %v", err)
	}
}

func TestEnsureDirReportsFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDir(filepath.Join(blocker, "sub")); err == nil {
		t.Error("expected error when a file blocks the directory path")
	}
}

func TestSaveChartPNG(t *testing.T) {
	dc := gg.NewContext(16, 16)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	path := filepath.Join(t.TempDir(), "chart.png")
	if err := SaveChartPNG(path, dc); err != nil {
		t.Fatalf("SaveChartPNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved chart is empty")
	}

	// Overwrite must succeed.
	if err := SaveChartPNG(path, dc); err != nil {
		t.Errorf("overwrite: %v", err)
	}
}

func TestSaveChartPNGFailsOnMissingDir(t *testing.T) {
	dc := gg.NewContext(16, 16)
	path := filepath.Join(t.TempDir(), "missing", "chart.png")
	if err := SaveChartPNG(path, dc); err == nil {
		t.Error("expected error when parent directory does not exist")
	}
}
