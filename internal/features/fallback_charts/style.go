package fallback_charts

import "image/color"

// Canvas and plot-area layout. The dashboard serves these at 8x6 inches,
// so the raster is fixed at the 150 dpi equivalent.
const (
	chartWidth  = 1200
	chartHeight = 900

	plotLeft   = 140.0
	plotRight  = 1140.0
	plotTop    = 90.0
	plotBottom = 790.0

	titleFontSize  = 32.0
	labelFontSize  = 26.0
	tickFontSize   = 20.0
	legendFontSize = 22.0

	titleY      = 50.0
	xLabelY     = 865.0
	yLabelX     = 45.0
	tickOffsetX = 12.0 // gap between Y tick labels and the plot frame
	tickOffsetY = 14.0 // gap between the plot frame and X tick labels

	seriesLineWidth = 4.0
	markerRadius    = 8.0

	maxTicksX = 8
	maxTicksY = 8
)

var (
	chartBackground = color.White
	axisColor       = color.RGBA{60, 60, 60, 255}
	gridColor       = color.RGBA{0, 0, 0, 70} // light grid behind the series
	textColor       = color.Black

	seriesBlue   = color.RGBA{31, 119, 180, 255}
	seriesOrange = color.RGBA{255, 127, 14, 255}
)
