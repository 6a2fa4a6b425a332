package gamemath

import "math"

// CanvasScale returns the integer zoom that fits a canvas of size cw x ch
// into an outer area of ow x oh. It never goes below 1.
func CanvasScale(ow, oh, cw, ch float64) float64 {
	if cw <= 0 || ch <= 0 {
		return 1
	}
	s := math.Round(math.Min(ow/cw, oh/ch))
	if s < 1 {
		return 1
	}
	return s
}
