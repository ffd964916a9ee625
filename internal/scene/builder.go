// Package scene validates parsed scene declarations against the per-shape
// property schema and produces the typed, immutable scene model that the
// timeline compiler and renderer operate on.
package scene

import (
	"maps"
	"sort"

	"github.com/aksappy/beam/internal/script"
	"github.com/aksappy/beam/internal/value"
)

// Object is a validated scene object. Props holds the typed property set:
// declared values plus schema defaults. Optional schema properties that the
// script did not declare are absent from the map.
type Object struct {
	ID    string
	Shape Shape
	Props map[string]value.Value
}

// Clone returns a copy of the object with its own property map, used to
// derive per-frame state without touching the base object.
func (o Object) Clone() Object {
	o.Props = maps.Clone(o.Props)
	return o
}

// Scene is a validated, read-only scene. Objects keep declaration order;
// later objects draw on top of earlier ones.
type Scene struct {
	Name     string
	Duration float64 // declared duration; valid only if Declared
	Declared bool
	Objects  []Object

	index map[string]int
}

// Lookup resolves an object id to its index in Objects.
func (s *Scene) Lookup(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Build validates a scene declaration and returns the typed scene model.
// Any diagnostic aborts the scene.
func Build(decl script.Scene) (*Scene, error) {
	sc := &Scene{
		Name:    decl.Name,
		Objects: make([]Object, 0, len(decl.Objects)),
		index:   make(map[string]int, len(decl.Objects)),
	}
	if decl.Duration != nil {
		sc.Duration = float64(*decl.Duration)
		sc.Declared = true
	}

	for _, od := range decl.Objects {
		if _, dup := sc.index[od.Name]; dup {
			return nil, &DuplicateObjectError{Scene: decl.Name, ID: od.Name}
		}

		shape, ok := ParseShape(od.Kind)
		if !ok {
			return nil, &UnknownShapeError{Scene: decl.Name, Object: od.Name, Kind: od.Kind}
		}

		obj, err := buildObject(decl.Name, od, shape)
		if err != nil {
			return nil, err
		}

		sc.index[od.Name] = len(sc.Objects)
		sc.Objects = append(sc.Objects, obj)
	}

	return sc, nil
}

func buildObject(sceneName string, od script.Object, shape Shape) (Object, error) {
	schema := Schema(shape)
	props := make(map[string]value.Value, len(schema))

	// Deterministic diagnostic order regardless of bag iteration order.
	names := make([]string, 0, len(od.Props))
	for name := range od.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec, ok := schema[name]
		if !ok {
			return Object{}, &UnknownPropertyError{
				Scene: sceneName, Object: od.Name, Shape: shape, Property: name,
			}
		}
		v, ok := convert(od.Props[name], spec.Kind)
		if !ok {
			return Object{}, &TypeMismatchError{
				Scene: sceneName, Object: od.Name, Shape: shape, Property: name,
				Expected: spec.Kind, Actual: od.Props[name].Kind.String(),
			}
		}
		props[name] = v
	}

	for name, spec := range schema {
		if _, set := props[name]; !set && spec.Default != nil {
			props[name] = *spec.Default
		}
	}

	return Object{ID: od.Name, Shape: shape, Props: props}, nil
}

// convert checks a raw value's syntactic kind against the schema kind and
// produces the typed value.
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
