package fallback_charts

import (
	"math"
	"strconv"
)

// niceStep picks a 1/2/5-multiple tick step so that the span divides into at
// most maxTicks intervals.
func niceStep(span float64, maxTicks int) float64 {
	if span <= 0 || maxTicks < 1 {
		return 1
	}
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

// tickValues returns the tick positions inside [min, max] at a nice step.
func tickValues(min, max float64, maxTicks int) []float64 {
	step := niceStep(max-min, maxTicks)
	start := math.Ceil(min/step) * step
	var ticks []float64
	for v := start; v <= max+step*1e-9; v += step {
		// snap accumulated float error back onto the step grid
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

// formatTick renders a tick value with precision matched to the step size.
func formatTick(v, step float64) string {
	switch {
	case step >= 1:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case step >= 0.1:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// padRange widens [min, max] by 5% on each side so points don't sit on the
// plot frame. A degenerate range gets a unit of slack.
func padRange(min, max float64) (float64, float64) {
	if min > max {
		min, max = max, min
	}
	span := max - min
	if span == 0 {
		return min - 1, max + 1
	}
	pad := span * 0.05
	return min - pad, max + pad
}
