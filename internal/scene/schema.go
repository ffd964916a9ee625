package scene

import (
	"github.com/aksappy/beam/internal/value"
)

// Shape enumerates the closed set of drawable object kinds.
type Shape int

const (
	Circle Shape = iota
	Square
	Rectangle
	Ellipse
	Triangle
	Line
	Arrow
	DoubleArrow
	Vector
	Text
	Group
)

var shapeNames = map[string]Shape{
	"circle":       Circle,
	"square":       Square,
	"rectangle":    Rectangle,
	"ellipse":      Ellipse,
	"triangle":     Triangle,
	"line":         Line,
	"arrow":        Arrow,
	"double_arrow": DoubleArrow,
	"vector":       Vector,
	"text":         Text,
	"group":        Group,
}

// ParseShape maps a script type name to its Shape.
func ParseShape(name string) (Shape, bool) {
	s, ok := shapeNames[name]
	return s, ok
}

func (s Shape) String() string {
	for name, sh := range shapeNames {
		if sh == s {
			return name
		}
	}
	return "unknown"
}

// PropSpec describes one schema property: its value kind and default.
// A nil Default marks an optional property that stays absent unless the
// script declares it (fill and border_color, and the triangle's pivot
// override).
type PropSpec struct {
	Kind    value.Kind
	Default *value.Value
}

func def(v value.Value) PropSpec { return PropSpec{Kind: v.Kind, Default: &v} }
func opt(k value.Kind) PropSpec  { return PropSpec{Kind: k} }

// schemas is the per-shape property table. Built once, read-only afterwards,
// shared by every scene.
var schemas map[Shape]map[string]PropSpec

func init() {
	common := map[string]PropSpec{
		"rotation": def(value.Num(0)),
		"scale":    def(value.Num(1)),
		"opacity":  def(value.Num(1)),
	}
	stroke := map[string]PropSpec{
		"p1":           def(value.Pt(0, 0)),
		"p2":           def(value.Pt(50, 50)),
		"border_color": opt(value.Color),
	}
	arrow := map[string]PropSpec{
		"p1":           def(value.Pt(0, 0)),
		"p2":           def(value.Pt(50, 50)),
		"border_color": def(value.RGB(255, 255, 255)),
		"tip_length":   def(value.Num(15)),
		"tip_angle":    def(value.Num(30)),
	}

	schemas = map[Shape]map[string]PropSpec{
		Circle: merge(common, map[string]PropSpec{
			"position":     def(value.Pt(0, 0)),
			"radius":       def(value.Num(50)),
			"fill":         opt(value.Color),
			"border_color": opt(value.Color),
		}),
		Square: merge(common, map[string]PropSpec{
			"position":     def(value.Pt(0, 0)),
			"size":         def(value.Num(100)),
			"fill":         opt(value.Color),
			"border_color": opt(value.Color),
		}),
		Rectangle: merge(common, map[string]PropSpec{
			"position":     def(value.Pt(0, 0)),
			"width":        def(value.Num(100)),
			"height":       def(value.Num(50)),
			"fill":         opt(value.Color),
			"border_color": opt(value.Color),
		}),
		Ellipse: merge(common, map[string]PropSpec{
			"position":     def(value.Pt(0, 0)),
			"rx":           def(value.Num(50)),
			"ry":           def(value.Num(25)),
			"fill":         opt(value.Color),
			"border_color": opt(value.Color),
		}),
		Triangle: merge(common, map[string]PropSpec{
			"p1":           def(value.Pt(0, 0)),
			"p2":           def(value.Pt(50, 50)),
			"p3":           def(value.Pt(0, 50)),
			"position":     opt(value.Point),
			"fill":         opt(value.Color),
			"border_color": opt(value.Color),
		}),
		Line:        merge(common, stroke),
		Arrow:       merge(common, arrow),
		DoubleArrow: merge(common, arrow),
		Vector:      merge(common, arrow),
		Text: merge(common, map[string]PropSpec{
			"position": def(value.Pt(0, 0)),
			"content":  def(value.Str("")),
			"size":     def(value.Num(1)),
			"fill":     def(value.RGB(255, 255, 255)),
		}),
		Group: merge(common, map[string]PropSpec{
			"position": def(value.Pt(0, 0)),
		}),
	}
}

func merge(ms ...map[string]PropSpec) map[string]PropSpec {
	out := make(map[string]PropSpec)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Schema returns the property table for a shape.
func Schema(s Shape) map[string]PropSpec {
	return schemas[s]
}
