package timeline

import (
	"github.com/fogleman/ease"
)

// Easing transforms are applied to normalized progress before interpolation.
// All entries map 0 to 0 and 1 to 1 exactly.
//
// ease_in_out is the cubic Hermite smoothstep rather than the piecewise
// quadratic: same endpoints and midpoint, continuous derivative everywhere.
var easings = map[string]ease.Function{
	"linear":      ease.Linear,
	"ease_in":     ease.InQuad,
	"ease_out":    ease.OutQuad,
	"ease_in_out": smoothstep,
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
