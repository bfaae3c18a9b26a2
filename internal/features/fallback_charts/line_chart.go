package fallback_charts

// Line-series renderer: axes frame, light grid, tick labels, series with
// markers and an optional legend, all drawn on a gg context.

import (
	"image/color"

	"github.com/fogleman/gg"
)

type markerShape int

const (
	markerCircle markerShape = iota
	markerSquare
)

type lineSeries struct {
	data   Series
	marker markerShape
	color  color.Color
}

type lineChart struct {
	title  string
	xLabel string
	yLabel string
	legend bool
	series []lineSeries
}

const (
	legendPadding    = 18.0
	legendLineSample = 56.0
	legendRowHeight  = 40.0
)

func renderLineChart(chart lineChart) *gg.Context {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetColor(chartBackground)
	dc.Clear()

	xMin, xMax, yMin, yMax := dataRange(chart.series)
	xMin, xMax = padRange(xMin, xMax)
	yMin, yMax = padRange(yMin, yMax)

	px := func(x float64) float64 {
		return plotLeft + (x-xMin)/(xMax-xMin)*(plotRight-plotLeft)
	}
	py := func(y float64) float64 {
		return plotBottom - (y-yMin)/(yMax-yMin)*(plotBottom-plotTop)
	}

	xTicks := tickValues(xMin, xMax, maxTicksX)
	yTicks := tickValues(yMin, yMax, maxTicksY)
	xStep := niceStep(xMax-xMin, maxTicksX)
	yStep := niceStep(yMax-yMin, maxTicksY)

	// Grid behind everything else.
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for _, t := range xTicks {
		dc.DrawLine(px(t), plotTop, px(t), plotBottom)
		dc.Stroke()
	}
	for _, t := range yTicks {
		dc.DrawLine(plotLeft, py(t), plotRight, py(t))
		dc.Stroke()
	}

	// Plot frame.
	dc.SetColor(axisColor)
	dc.SetLineWidth(2)
	dc.DrawRectangle(plotLeft, plotTop, plotRight-plotLeft, plotBottom-plotTop)
	dc.Stroke()

	// Tick labels.
	dc.SetColor(textColor)
	setFontSize(dc, tickFontSize)
	for _, t := range xTicks {
		dc.DrawStringAnchored(formatTick(t, xStep), px(t), plotBottom+tickOffsetY, 0.5, 1)
	}
	for _, t := range yTicks {
		dc.DrawStringAnchored(formatTick(t, yStep), plotLeft-tickOffsetX, py(t), 1, 0.5)
	}

	// Series lines and markers.
	for _, s := range chart.series {
		dc.SetColor(s.color)
		dc.SetLineWidth(seriesLineWidth)
		for i := range s.data.X {
			if i == 0 {
				dc.MoveTo(px(s.data.X[i]), py(s.data.Y[i]))
			} else {
				dc.LineTo(px(s.data.X[i]), py(s.data.Y[i]))
			}
		}
		dc.Stroke()

		for i := range s.data.X {
			drawMarker(dc, s.marker, px(s.data.X[i]), py(s.data.Y[i]))
		}
	}

	drawChartLabels(dc, chart.title, chart.xLabel, chart.yLabel)

	if chart.legend && len(chart.series) > 1 {
		drawLegend(dc, chart.series)
	}

	return dc
}

func drawMarker(dc *gg.Context, shape markerShape, x, y float64) {
	switch shape {
	case markerSquare:
		dc.DrawRectangle(x-markerRadius, y-markerRadius, 2*markerRadius, 2*markerRadius)
	default:
		dc.DrawCircle(x, y, markerRadius)
	}
	dc.Fill()
}

func drawChartLabels(dc *gg.Context, title, xLabel, yLabel string) {
	centerX := (plotLeft + plotRight) / 2
	centerY := (plotTop + plotBottom) / 2

	dc.SetColor(textColor)
	setFontSize(dc, titleFontSize)
	dc.DrawStringAnchored(title, centerX, titleY, 0.5, 0.5)

	setFontSize(dc, labelFontSize)
	dc.DrawStringAnchored(xLabel, centerX, xLabelY, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), yLabelX, centerY)
	dc.DrawStringAnchored(yLabel, yLabelX, centerY, 0.5, 0.5)
	dc.Pop()
}

// drawLegend draws a bordered legend box in the top-left corner of the plot
// area, one row per labeled series.
func drawLegend(dc *gg.Context, series []lineSeries) {
	setFontSize(dc, legendFontSize)

	maxLabelWidth := 0.0
	for _, s := range series {
		w, _ := dc.MeasureString(s.data.Label)
		if w > maxLabelWidth {
			maxLabelWidth = w
		}
	}

	boxWidth := legendPadding*3 + legendLineSample + maxLabelWidth
	boxHeight := legendPadding + legendRowHeight*float64(len(series))
	boxX := plotLeft + 20
	boxY := plotTop + 20

	dc.SetColor(chartBackground)
	dc.DrawRectangle(boxX, boxY, boxWidth, boxHeight)
	dc.Fill()
	dc.SetColor(axisColor)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(boxX, boxY, boxWidth, boxHeight)
	dc.Stroke()

	for i, s := range series {
		rowY := boxY + legendPadding + legendRowHeight*float64(i) + legendRowHeight/2 - legendPadding/2

		dc.SetColor(s.color)
		dc.SetLineWidth(seriesLineWidth)
		dc.DrawLine(boxX+legendPadding, rowY, boxX+legendPadding+legendLineSample, rowY)
		dc.Stroke()
		drawMarker(dc, s.marker, boxX+legendPadding+legendLineSample/2, rowY)

		dc.SetColor(textColor)
		dc.DrawStringAnchored(s.data.Label, boxX+legendPadding*2+legendLineSample, rowY, 0, 0.5)
	}
}

func dataRange(series []lineSeries) (xMin, xMax, yMin, yMax float64) {
	first := true
	for _, s := range series {
		for i := range s.data.X {
			x, y := s.data.X[i], s.data.Y[i]
			if first {
				xMin, xMax, yMin, yMax = x, x, y, y
				first = false
				continue
			}
			if x < xMin {
				xMin = x
			}
			if x > xMax {
				xMax = x
			}
			if y < yMin {
				yMin = y
			}
			if y > yMax {
				yMax = y
			}
		}
	}
	return xMin, xMax, yMin, yMax
}
