package fallback_charts

// Synthetic sample datasets for the fallback charts.
// Rebuilt on every run; nothing is read from instruments or disk.

import (
	"math"
	"math/rand"
)

const (
	fieldCols = 15 // samples along X, over [0, 10] mm
	fieldRows = 6  // samples along Y, over [0, 10] mm

	baseThickness = 8.8  // nominal resist thickness, nm
	rippleAmpX    = 0.1  // sin term along X
	rippleAmpY    = 0.05 // cos term along Y
	noiseAmp      = 0.02 // gaussian noise, intentionally unseeded
)

// Series is an ordered set of (x, y) pairs for one plotted line.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Field is a scalar grid: Z[i][j] is the value at (X[j], Y[i]).
type Field struct {
	X []float64
	Y []float64
	Z [][]float64
}

// DoseCDSeries returns the dose-response curve: critical dimension shrinks
// as exposure dose grows.
func DoseCDSeries() Series {
	return Series{
		X: []float64{10, 15, 20, 25, 30},
		Y: []float64{22, 18, 16, 14, 13},
	}
}

// ResolutionSeries returns the minimum printable feature size for the EUV
// and DUV wavelength regimes.
func ResolutionSeries() (euv, duv Series) {
	euv = Series{
		Label: "EUV (13.5nm)",
		X:     []float64{13.3, 13.5, 13.7, 13.9, 14.1},
		Y:     []float64{22, 16, 12, 8, 5},
	}
	duv = Series{
		Label: "DUV (193nm)",
		X:     []float64{193, 248, 365, 436},
		Y:     []float64{45, 65, 90, 130},
	}
	return euv, duv
}

// ThicknessField returns the resist thickness map: a smooth base with small
// oscillations plus bounded noise.
func ThicknessField() Field {
	x := linspace(0, 10, fieldCols)
	y := linspace(0, 10, fieldRows)

	z := make([][]float64, fieldRows)
	for i := range z {
		z[i] = make([]float64, fieldCols)
		for j := range z[i] {
			z[i][j] = baseThickness +
				rippleAmpX*math.Sin(x[j]) +
				rippleAmpY*math.Cos(y[i]) +
				noiseAmp*rand.NormFloat64()
		}
	}

	return Field{X: x, Y: y, Z: z}
}

// linspace returns n evenly spaced samples over [start, stop], endpoints
// included. n must be at least 2.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// MinMax returns the smallest and largest value in the field.
func (f Field) MinMax() (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, row := range f.Z {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}
