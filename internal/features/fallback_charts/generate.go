package fallback_charts

// GenerateAll is the whole job: ensure the output directory, render the
// three fixed charts, write each PNG, overwriting previous runs.

import (
	"path/filepath"

	"litho-fallback/internal/infra/fs"
	logging "litho-fallback/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

type chartSpec struct {
	filename string
	render   func() *gg.Context
}

func chartSpecs() []chartSpec {
	return []chartSpec{
		{"cd_vs_dose.png", renderDoseChart},
		{"resolution_vs_wavelength.png", renderResolutionChart},
		{"resist_uniformity_3d.png", renderUniformityChart},
	}
}

// GenerateAll renders the three fallback charts into outDir. Any filesystem
// failure aborts the run; charts already written stay on disk.
func GenerateAll(outDir string) error {
	if err := fs.EnsureDir(outDir); err != nil {
		return err
	}

	for _, spec := range chartSpecs() {
		path := filepath.Join(outDir, spec.filename)
		if err := fs.SaveChartPNG(path, spec.render()); err != nil {
			return err
		}
		logging.LogInfo("Chart written", zap.String("file", path))
	}
	return nil
}

func renderDoseChart() *gg.Context {
	return renderLineChart(lineChart{
		title:  "CD vs Exposure Dose",
		xLabel: "Dose (mJ/cm²)",
		yLabel: "Critical Dimension (nm)",
		series: []lineSeries{
			{data: DoseCDSeries(), marker: markerCircle, color: seriesBlue},
		},
	})
}

func renderResolutionChart() *gg.Context {
	euv, duv := ResolutionSeries()
	return renderLineChart(lineChart{
		title:  "Resolution vs Wavelength",
		xLabel: "Wavelength (nm)",
		yLabel: "Minimum Feature Size (nm)",
		legend: true,
		series: []lineSeries{
			{data: euv, marker: markerCircle, color: seriesBlue},
			{data: duv, marker: markerSquare, color: seriesOrange},
		},
	})
}

func renderUniformityChart() *gg.Context {
	return renderHeatmap(ThicknessField())
}
