package fallback_charts

import (
	"os"
	"path/filepath"
	"sync"

	logging "litho-fallback/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// Candidate fonts, project-local first, then common system locations.
// Missing fonts never fail a render; gg falls back to its built-in face.
var fontPaths = []string{
	"etc/fonts/DejaVuSans.ttf",
	"./etc/fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/local/share/fonts/DejaVuSans.ttf",
	"~/Library/Fonts/Inter-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
}

var fontOnce sync.Once
var resolvedFontPath string

func resolveFontPath() string {
	fontOnce.Do(func() {
		for _, fontPath := range fontPaths {
			expanded := expandPath(fontPath)
			if info, err := os.Stat(expanded); err == nil {
				resolvedFontPath = expanded
				logging.LogInfo("Resolved chart font",
					zap.String("path", expanded),
					zap.Int64("size", info.Size()))
				return
			}
		}
		logging.LogWarn("No chart font found, using built-in face",
			zap.Int("paths_checked", len(fontPaths)))
	})
	return resolvedFontPath
}

// setFontSize switches the context to the resolved font at the given size.
// No-op when no font was found.
func setFontSize(dc *gg.Context, points float64) {
	fontPath := resolveFontPath()
	if fontPath == "" {
		return
	}
	if err := dc.LoadFontFace(fontPath, points); err != nil {
		logging.LogWarn("Font file exists but failed to load",
			zap.String("path", fontPath),
			zap.Error(err))
	}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
