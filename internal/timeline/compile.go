// Package timeline compiles a scene's animation declarations into
// per-property tracks and resolves property values at sampled times.
package timeline

import (
	"sort"
	"strings"

	"github.com/fogleman/ease"

	"github.com/aksappy/beam/internal/scene"
	"github.com/aksappy/beam/internal/script"
	"github.com/aksappy/beam/internal/value"
)

// Segment is one compiled animation on a track. From is the value the
// segment starts at: the previous segment's To, or the track base. A
// zero-length segment (Start == End) is an instant change.
type Segment struct {
	Start, End float64
	From, To   value.Value
	Ease       ease.Function
	EaseName   string
}

// Track is the time-ordered, non-overlapping animation sequence for one
// property of one object. Object is an index into the scene's object list;
// references are resolved once at compile time and never re-searched.
type Track struct {
	Object   int
	Property string
	Base     value.Value
	Segments []Segment
}

// Compiled is an immutable compiled timeline. It is safe to share between
// frame workers without locking.
type Compiled struct {
	Scene    *scene.Scene
	Duration float64
	Tracks   []*Track
}

// Compile resolves animation declarations against the scene, groups them
// into tracks, verifies ordering and returns the compiled timeline with the
// effective scene duration: the declared one, otherwise the latest animation
// end, otherwise zero. Any diagnostic aborts the whole timeline.
func Compile(sc *scene.Scene, anims []script.Animation) (*Compiled, error) {
	if sc.Declared && sc.Duration <= 0 {
		return nil, &NonPositiveDurationError{Scene: sc.Name, Duration: sc.Duration}
	}

	type key struct {
		object   int
		property string
	}
	tracks := make(map[key]*Track)
	var order []key

	for _, a := range anims {
		objID, prop, ok := splitTarget(a.Target)
		if !ok {
			return nil, &InvalidTargetError{Scene: sc.Name, Target: a.Target}
		}

		idx, ok := sc.Lookup(objID)
		if !ok {
			return nil, &UnknownObjectError{Scene: sc.Name, Object: objID}
		}

		base, ok := sc.Objects[idx].Props[prop]
		if !ok {
			return nil, &UnknownPropertyError{Scene: sc.Name, Object: objID, Property: prop}
		}

		to, ok := convert(a.To, base.Kind)
		if !ok {
			return nil, &UnknownPropertyError{
				Scene: sc.Name, Object: objID, Property: prop,
				Expected: base.Kind, Actual: a.To.Kind.String(), Mismatch: true,
			}
		}

		start := float64(a.Start)
		end := start
		if a.End != nil {
			end = float64(*a.End)
		}
		if end < start {
			return nil, &InvalidRangeError{Scene: sc.Name, Object: objID, Property: prop, Start: start, End: end}
		}

		name := a.Easing
		if name == "" {
			name = "linear"
		}
		fn, ok := easings[name]
		if !ok {
			return nil, &UnknownEasingError{Scene: sc.Name, Easing: name}
		}

		k := key{object: idx, property: prop}
		tr, ok := tracks[k]
		if !ok {
			tr = &Track{Object: idx, Property: prop, Base: base}
			tracks[k] = tr
			order = append(order, k)
		}
		tr.Segments = append(tr.Segments, Segment{
			Start: start, End: end, To: to, Ease: fn, EaseName: name,
		})
	}

	compiled := &Compiled{Scene: sc}
	for _, k := range order {
		tr := tracks[k]
		if err := finishTrack(sc, tr); err != nil {
			return nil, err
		}
		compiled.Tracks = append(compiled.Tracks, tr)
		if last := tr.Segments[len(tr.Segments)-1].End; last > compiled.Duration {
			compiled.Duration = last
		}
	}

	if sc.Declared {
		compiled.Duration = sc.Duration
	}
	return compiled, nil
}

// finishTrack orders a track's segments, rejects overlaps and chains each
// segment's From value off its predecessor.
func finishTrack(sc *scene.Scene, tr *Track) error {
	sort.SliceStable(tr.Segments, func(i, j int) bool {
		return tr.Segments[i].Start < tr.Segments[j].Start
	})

	id := sc.Objects[tr.Object].ID
	from := tr.Base
	for i := range tr.Segments {
		s := &tr.Segments[i]
		if i > 0 {
			prev := tr.Segments[i-1]
			if prev.End > s.Start {
				return &OverlapError{
					Scene: sc.Name, Object: id, Property: tr.Property,
					AStart: prev.Start, AEnd: prev.End, BStart: s.Start, BEnd: s.End,
				}
			}
		}
		s.From = from
		from = s.To
	}
	return nil
}

// splitTarget splits an "object.property" reference at its last dot.
func splitTarget(target string) (object, property string, ok bool) {
	i := strings.LastIndex(target, ".")
	if i <= 0 || i == len(target)-1 {
		return "", "", false
	}
	return target[:i], target[i+1:], true
}

func convert(raw script.RawValue, want value.Kind) (value.Value, bool) {
	switch want {
	case value.Number:
		if raw.Kind == script.KindNumber {
			return value.Num(raw.Num), true
		}
	case value.Point:
		if raw.Kind == script.KindTuple {
			return value.Pt(raw.X, raw.Y), true
		}
	case value.Color:
		if raw.Kind == script.KindColor {
			return value.RGB(raw.R, raw.G, raw.B), true
		}
	case value.Text:
		if raw.Kind == script.KindString {
			return value.Str(raw.Str), true
		}
	}
	return value.Value{}, false
}
