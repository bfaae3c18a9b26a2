package fallback_charts

// Filled heatmap of a scalar field with a labeled colorbar. The grid is
// bilinearly upsampled to pixel resolution and quantized into discrete
// color levels, so the fill reads as smooth banded contours.

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	heatLevels = 20

	// The colorbar takes the right edge; the field area ends earlier than
	// the shared plotRight to make room.
	heatRight = 980.0

	colorbarLeft   = 1020.0
	colorbarWidth  = 44.0
	colorbarTicks  = 6
	colorbarLabelX = 1165.0
)

// viridis anchor colors, dark-purple to yellow.
var viridisHex = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

var viridisAnchors []colorful.Color

func init() {
	for _, hex := range viridisHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		viridisAnchors = append(viridisAnchors, c)
	}
}

// colormapAt maps t in [0,1] onto the viridis ramp, blending adjacent
// anchors in Lab space.
func colormapAt(t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(viridisAnchors)-1)
	i := int(pos)
	if i >= len(viridisAnchors)-1 {
		i = len(viridisAnchors) - 2
	}
	c := viridisAnchors[i].BlendLab(viridisAnchors[i+1], pos-float64(i)).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// quantizeLevel snaps t onto the middle of its discrete color level.
func quantizeLevel(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		return (heatLevels - 0.5) / heatLevels
	}
	return (math.Floor(t*heatLevels) + 0.5) / heatLevels
}

func renderHeatmap(field Field) *gg.Context {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetColor(chartBackground)
	dc.Clear()

	vMin, vMax := field.MinMax()
	vSpan := vMax - vMin
	if vSpan == 0 {
		vSpan = 1
	}

	dc.DrawImage(rasterizeField(field, vMin, vSpan), int(plotLeft), int(plotTop))

	// Field frame.
	dc.SetColor(axisColor)
	dc.SetLineWidth(2)
	dc.DrawRectangle(plotLeft, plotTop, heatRight-plotLeft, plotBottom-plotTop)
	dc.Stroke()

	drawHeatmapAxes(dc, field)
	drawColorbar(dc, vMin, vMax)

	centerX := (plotLeft + heatRight) / 2
	centerY := (plotTop + plotBottom) / 2
	dc.SetColor(textColor)
	setFontSize(dc, titleFontSize)
	dc.DrawStringAnchored("Resist Thickness Uniformity", centerX, titleY, 0.5, 0.5)

	setFontSize(dc, labelFontSize)
	dc.DrawStringAnchored("X Position (mm)", centerX, xLabelY, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), yLabelX, centerY)
	dc.DrawStringAnchored("Y Position (mm)", yLabelX, centerY, 0.5, 0.5)
	dc.Pop()

	return dc
}

// rasterizeField samples the field at every pixel of the plot area,
// larger Y toward the top.
func rasterizeField(field Field, vMin, vSpan float64) image.Image {
	w := int(heatRight - plotLeft)
	h := int(plotBottom - plotTop)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	cols := len(field.X)
	rows := len(field.Y)
	for yPix := 0; yPix < h; yPix++ {
		fy := (1 - float64(yPix)/float64(h-1)) * float64(rows-1)
		for xPix := 0; xPix < w; xPix++ {
			fx := float64(xPix) / float64(w-1) * float64(cols-1)
			v := sampleBilinear(field.Z, fx, fy)
			t := quantizeLevel((v - vMin) / vSpan)
			img.Set(xPix, yPix, colormapAt(t))
		}
	}
	return img
}

// sampleBilinear interpolates z at fractional grid coordinates
// (fx along columns, fy along rows).
func sampleBilinear(z [][]float64, fx, fy float64) float64 {
	rows := len(z)
	cols := len(z[0])

	j0 := int(fx)
	i0 := int(fy)
	if j0 >= cols-1 {
		j0 = cols - 2
	}
	if i0 >= rows-1 {
		i0 = rows - 2
	}
	dx := fx - float64(j0)
	dy := fy - float64(i0)

	top := z[i0][j0]*(1-dx) + z[i0][j0+1]*dx
	bottom := z[i0+1][j0]*(1-dx) + z[i0+1][j0+1]*dx
	return top*(1-dy) + bottom*dy
}

func drawHeatmapAxes(dc *gg.Context, field Field) {
	xMin, xMax := field.X[0], field.X[len(field.X)-1]
	yMin, yMax := field.Y[0], field.Y[len(field.Y)-1]

	px := func(x float64) float64 {
		return plotLeft + (x-xMin)/(xMax-xMin)*(heatRight-plotLeft)
	}
	py := func(y float64) float64 {
		return plotBottom - (y-yMin)/(yMax-yMin)*(plotBottom-plotTop)
	}

	xTicks := tickValues(xMin, xMax, maxTicksX)
	yTicks := tickValues(yMin, yMax, maxTicksY)
	xStep := niceStep(xMax-xMin, maxTicksX)
	yStep := niceStep(yMax-yMin, maxTicksY)

	dc.SetColor(textColor)
	setFontSize(dc, tickFontSize)
	for _, t := range xTicks {
		dc.DrawStringAnchored(formatTick(t, xStep), px(t), plotBottom+tickOffsetY, 0.5, 1)
	}
	for _, t := range yTicks {
		dc.DrawStringAnchored(formatTick(t, yStep), plotLeft-tickOffsetX, py(t), 1, 0.5)
	}
}

// drawColorbar draws the vertical value ramp with tick labels and the
// rotated unit label.
func drawColorbar(dc *gg.Context, vMin, vMax float64) {
	barTop := plotTop
	barBottom := plotBottom
	barHeight := barBottom - barTop

	for yPix := 0.0; yPix < barHeight; yPix++ {
		t := 1 - yPix/(barHeight-1)
		dc.SetColor(colormapAt(quantizeLevel(t)))
		dc.DrawRectangle(colorbarLeft, barTop+yPix, colorbarWidth, 1)
		dc.Fill()
	}

	dc.SetColor(axisColor)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(colorbarLeft, barTop, colorbarWidth, barHeight)
	dc.Stroke()

	dc.SetColor(textColor)
	setFontSize(dc, tickFontSize)
	for i := 0; i < colorbarTicks; i++ {
		frac := float64(i) / float64(colorbarTicks-1)
		v := vMin + frac*(vMax-vMin)
		y := barBottom - frac*barHeight
		dc.DrawStringAnchored(formatTick(v, 0.01), colorbarLeft+colorbarWidth+10, y, 0, 0.5)
	}

	setFontSize(dc, labelFontSize)
	centerY := (barTop + barBottom) / 2
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), colorbarLabelX, centerY)
	dc.DrawStringAnchored("Thickness (nm)", colorbarLabelX, centerY, 0.5, 0.5)
	dc.Pop()
}
