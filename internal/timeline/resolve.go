package timeline

import (
	"github.com/aksappy/beam/internal/value"
)

// Resolve returns the track's value at time t.
//
// Segment membership is start <= t < end, except the final segment which
// also owns t == end. Before the first segment the base value holds; between
// segments the last completed segment's end value holds; after all segments
// the final end value holds. Zero-length segments jump to their end value at
// t >= start.
func (tr *Track) Resolve(t float64) value.Value {
	held := tr.Base
	for i := range tr.Segments {
		s := &tr.Segments[i]
		if t < s.Start {
			return held
		}
		last := i == len(tr.Segments)-1
		if t < s.End || (last && t == s.End) {
			return s.at(t)
		}
		held = s.To
	}
	return held
}

func (s *Segment) at(t float64) value.Value {
	if s.End == s.Start {
		return s.To
	}
	p := (t - s.Start) / (s.End - s.Start)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return value.Lerp(s.From, s.To, s.Ease(p))
}
