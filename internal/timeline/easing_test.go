package timeline

import (
	"testing"
)

func TestEasingBoundaries(t *testing.T) {
	// Every easing transform must map 0 to 0 and 1 to 1 exactly, or segment
	// boundaries would not land on their declared values.
	for name, fn := range easings {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %g, want 0", name, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("%s(1) = %g, want 1", name, got)
		}
	}
}

func TestEasingValues(t *testing.T) {
	tests := []struct {
		easing string
		p      float64
		want   float64
	}{
		{"linear", 0.5, 0.5},
		{"ease_in", 0.5, 0.25},
		{"ease_out", 0.5, 0.75},
		{"ease_in_out", 0.5, 0.5},
		{"ease_in_out", 0.25, 0.15625},
		{"ease_in_out", 0.75, 0.84375},
	}

	for _, tt := range tests {
		got := easings[tt.easing](tt.p)
		if got != tt.want {
			t.Errorf("%s(%g) = %g, want %g", tt.easing, tt.p, got, tt.want)
		}
	}
}
