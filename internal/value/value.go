// Package value implements the typed property value model: numbers, 2D
// points, RGB colors and text, with equality and interpolation rules.
package value

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Kind tags a Value. A property's kind is fixed by its shape schema and
// never changes over the property's lifetime.
type Kind int

const (
	Number Kind = iota
	Point
	Color
	Text
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Point:
		return "point"
	case Color:
		return "color"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a tagged union over the four property value types.
type Value struct {
	Kind    Kind
	Num     float64
	X, Y    float64
	R, G, B uint8
	Str     string
}

func Num(n float64) Value     { return Value{Kind: Number, Num: n} }
func Pt(x, y float64) Value   { return Value{Kind: Point, X: x, Y: y} }
func RGB(r, g, b uint8) Value { return Value{Kind: Color, R: r, G: g, B: b} }
func Str(s string) Value      { return Value{Kind: Text, Str: s} }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Number:
		return v.Num == o.Num
	case Point:
		return v.X == o.X && v.Y == o.Y
	case Color:
		return v.R == o.R && v.G == o.G && v.B == o.B
	default:
		return v.Str == o.Str
	}
}

func (v Value) String() string {
	switch v.Kind {
	case Number:
		return fmt.Sprintf("%g", v.Num)
	case Point:
		return fmt.Sprintf("(%g, %g)", v.X, v.Y)
	case Color:
		return fmt.Sprintf("#%02X%02X%02X", v.R, v.G, v.B)
	default:
		return fmt.Sprintf("%q", v.Str)
	}
}

// Lerp interpolates between two values of the same kind at progress p in
// [0, 1]. Numbers blend linearly, points per axis and colors per channel
// (rounded to the nearest integer, clamped to [0, 255]). Text does not
// blend: it switches to b once p reaches 1.
func Lerp(a, b Value, p float64) Value {
	switch a.Kind {
	case Number:
		return Num(a.Num + (b.Num-a.Num)*p)
	case Point:
		return Pt(a.X+(b.X-a.X)*p, a.Y+(b.Y-a.Y)*p)
	case Color:
		ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
		cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
		r, g, bl := ca.BlendRgb(cb, p).Clamped().RGB255()
		return RGB(r, g, bl)
	default:
		if p >= 1 {
			return b
		}
		return a
	}
}
