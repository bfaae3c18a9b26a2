package fallback_charts

import (
	"image/color"
	"math"
	"testing"
)

func TestColormapEndpoints(t *testing.T) {
	if len(viridisAnchors) != len(viridisHex) {
		t.Fatalf("expected %d anchors, got %d", len(viridisHex), len(viridisAnchors))
	}

	low := colormapAt(0).(color.RGBA)
	r, g, b := viridisAnchors[0].RGB255()
	if low.R != r || low.G != g || low.B != b {
		t.Errorf("colormapAt(0) = %v, want first anchor (%d,%d,%d)", low, r, g, b)
	}

	high := colormapAt(1).(color.RGBA)
	r, g, b = viridisAnchors[len(viridisAnchors)-1].RGB255()
	if high.R != r || high.G != g || high.B != b {
		t.Errorf("colormapAt(1) = %v, want last anchor (%d,%d,%d)", high, r, g, b)
	}
}

func TestColormapClampsOutOfRange(t *testing.T) {
	if colormapAt(-0.5) != colormapAt(0) {
		t.Error("values below 0 must clamp to the low end")
	}
	if colormapAt(1.5) != colormapAt(1) {
		t.Error("values above 1 must clamp to the high end")
	}
}

func TestQuantizeLevel(t *testing.T) {
	// Every level midpoint must be stable under quantization.
	for i := 0; i < heatLevels; i++ {
		mid := (float64(i) + 0.5) / heatLevels
		if got := quantizeLevel(mid); math.Abs(got-mid) > 1e-12 {
			t.Errorf("level %d midpoint %v quantized to %v", i, mid, got)
		}
	}
	if got := quantizeLevel(1); got >= 1 {
		t.Errorf("t=1 must land inside the top level, got %v", got)
	}
	if got := quantizeLevel(0); got <= 0 {
		t.Errorf("t=0 must land inside the bottom level, got %v", got)
	}

	// Distinct levels quantize apart.
	if quantizeLevel(0.01) == quantizeLevel(0.99) {
		t.Error("opposite ends of the range collapsed to one level")
	}
}

func TestSampleBilinear(t *testing.T) {
	z := [][]float64{
		{1, 2},
		{3, 4},
	}

	corners := []struct {
		fx, fy float64
		want   float64
	}{
		{0, 0, 1},
		{1, 0, 2},
		{0, 1, 3},
		{1, 1, 4},
	}
	for _, c := range corners {
		if got := sampleBilinear(z, c.fx, c.fy); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("sampleBilinear(%v, %v) = %v, want %v", c.fx, c.fy, got, c.want)
		}
	}

	if got := sampleBilinear(z, 0.5, 0.5); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("center sample = %v, want 2.5", got)
	}
}
