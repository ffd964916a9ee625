package timeline

import (
	"fmt"

	"github.com/aksappy/beam/internal/value"
)

// InvalidTargetError reports an animation target that is not an
// "object.property" reference.
type InvalidTargetError struct {
	Scene  string
	Target string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("scene %q: animation target %q must be \"object.property\"", e.Scene, e.Target)
}

// UnknownObjectError reports a target object id absent from the scene.
type UnknownObjectError struct {
	Scene  string
	Object string
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("scene %q: animation targets unknown object %q", e.Scene, e.Object)
}

// UnknownPropertyError reports a target property that the object does not
// carry, or one whose value kind is incompatible with the animated-to value.
type UnknownPropertyError struct {
	Scene    string
	Object   string
	Property string
	Expected value.Kind // meaningful only when Mismatch
	Actual   string
	Mismatch bool
}

func (e *UnknownPropertyError) Error() string {
	if e.Mismatch {
		return fmt.Sprintf("scene %q: animation for %s.%s expects %s, got %s",
			e.Scene, e.Object, e.Property, e.Expected, e.Actual)
	}
	return fmt.Sprintf("scene %q: animation targets %s.%s, which the object does not have",
		e.Scene, e.Object, e.Property)
}

// InvalidRangeError reports an animation whose end precedes its start.
type InvalidRangeError struct {
	Scene      string
	Object     string
	Property   string
	Start, End float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("scene %q: animation for %s.%s has end %gs before start %gs",
		e.Scene, e.Object, e.Property, e.End, e.Start)
}

// OverlapError reports two animations on one (object, property) track whose
// time ranges intersect.
type OverlapError struct {
	Scene        string
	Object       string
	Property     string
	AStart, AEnd float64
	BStart, BEnd float64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("scene %q: overlapping animations for %s.%s: [%gs, %gs] and [%gs, %gs]",
		e.Scene, e.Object, e.Property, e.AStart, e.AEnd, e.BStart, e.BEnd)
}

// UnknownEasingError reports an easing identifier missing from the easing
// table.
type UnknownEasingError struct {
	Scene  string
	Easing string
}

func (e *UnknownEasingError) Error() string {
	return fmt.Sprintf("scene %q: unknown easing %q", e.Scene, e.Easing)
}

// NonPositiveDurationError reports a declared scene duration that is not
// positive.
type NonPositiveDurationError struct {
	Scene    string
	Duration float64
}

func (e *NonPositiveDurationError) Error() string {
	return fmt.Sprintf("scene %q: declared duration %gs must be positive", e.Scene, e.Duration)
}
