package scene

import (
	"fmt"

	"github.com/aksappy/beam/internal/value"
)

// UnknownShapeError reports an object declared with a type outside the
// shape set.
type UnknownShapeError struct {
	Scene  string
	Object string
	Kind   string
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("scene %q: object %q has unknown shape type %q", e.Scene, e.Object, e.Kind)
}

// UnknownPropertyError reports a property name absent from the shape's schema.
type UnknownPropertyError struct {
	Scene    string
	Object   string
	Shape    Shape
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("scene %q: object %q: %s has no property %q", e.Scene, e.Object, e.Shape, e.Property)
}

// TypeMismatchError reports a declared value whose syntactic kind does not
// match the schema's expected kind.
type TypeMismatchError struct {
	Scene    string
	Object   string
	Shape    Shape
	Property string
	Expected value.Kind
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("scene %q: object %q: %s.%s expects %s, got %s",
		e.Scene, e.Object, e.Shape, e.Property, e.Expected, e.Actual)
}

// DuplicateObjectError reports two objects sharing one identifier within a
// scene.
type DuplicateObjectError struct {
	Scene string
	ID    string
}

func (e *DuplicateObjectError) Error() string {
	return fmt.Sprintf("scene %q: duplicate object id %q", e.Scene, e.ID)
}

// CameraError reports an unknown or mistyped camera property. The camera
// schema is three fields wide and a typo there silently changes output
// geometry, so camera properties are rejected rather than warned about.
type CameraError struct {
	Property string
	Reason   string
}

func (e *CameraError) Error() string {
	return fmt.Sprintf("camera: property %q %s", e.Property, e.Reason)
}
