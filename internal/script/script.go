package script

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the parse tree of a beam script. The textual grammar is handled
// upstream; the tree is interchanged as a YAML document.
type Document struct {
	Camera *Camera `yaml:"camera,omitempty"`
	Scenes []Scene `yaml:"scenes"`
}

// Camera holds the global output configuration properties.
type Camera struct {
	Props map[string]RawValue `yaml:"properties"`
}

// Scene is a named canvas with its object declarations and timeline.
// Object order is declaration order and determines draw order.
type Scene struct {
	Name     string      `yaml:"name"`
	Duration *Seconds    `yaml:"duration,omitempty"`
	Objects  []Object    `yaml:"objects"`
	Timeline []Animation `yaml:"timeline,omitempty"`
}

// Object is a single shape declaration with its property bag.
type Object struct {
	Kind  string              `yaml:"type"`
	Name  string              `yaml:"name"`
	Props map[string]RawValue `yaml:"properties"`
}

// Animation animates one property of one object over [Start, End].
// A nil End is an instant change at Start. Target is an "object.property"
// reference resolved during timeline compilation.
type Animation struct {
	Start  Seconds  `yaml:"start"`
	End    *Seconds `yaml:"end,omitempty"`
	Target string   `yaml:"target"`
	To     RawValue `yaml:"to"`
	Easing string   `yaml:"easing,omitempty"`
}

// ValueKind is the syntactic kind of a raw property value.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindTuple
	KindColor
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTuple:
		return "tuple"
	case KindColor:
		return "color"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// RawValue is an untyped property value as written in the script:
// a number, a 2-tuple, a #RRGGBB color or a plain string.
type RawValue struct {
	Kind    ValueKind
	Num     float64
	X, Y    float64
	R, G, B uint8
	Str     string
}

func (v *RawValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var t [2]float64
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("line %d: tuple value must be two numbers: %w", node.Line, err)
		}
		*v = RawValue{Kind: KindTuple, X: t[0], Y: t[1]}
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!int" || node.Tag == "!!float" {
			n, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return fmt.Errorf("line %d: bad number %q", node.Line, node.Value)
			}
			*v = RawValue{Kind: KindNumber, Num: n}
			return nil
		}
		if strings.HasPrefix(node.Value, "#") {
			r, g, b, err := parseHexColor(node.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			*v = RawValue{Kind: KindColor, R: r, G: g, B: b, Str: node.Value}
			return nil
		}
		*v = RawValue{Kind: KindString, Str: node.Value}
		return nil
	}
	return fmt.Errorf("line %d: unsupported value node", node.Line)
}

func (v RawValue) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case KindNumber:
		return v.Num, nil
	case KindTuple:
		return []float64{v.X, v.Y}, nil
	case KindColor:
		return fmt.Sprintf("#%02X%02X%02X", v.R, v.G, v.B), nil
	default:
		return v.Str, nil
	}
}

func parseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("color %q must be #RRGGBB", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q must be #RRGGBB", s)
	}
	return uint8(n >> 16), uint8(n >> 8), uint8(n), nil
}

// Seconds is a time value in seconds. The scalar form is a number; the
// string forms "2s" and "1500ms" are also accepted.
type Seconds float64

func (s *Seconds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: time value must be a scalar", node.Line)
	}
	if node.Tag == "!!int" || node.Tag == "!!float" {
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: bad time %q", node.Line, node.Value)
		}
		*s = Seconds(n)
		return nil
	}
	val := node.Value
	switch {
	case strings.HasSuffix(val, "ms"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "ms"), 64)
		if err != nil {
			return fmt.Errorf("line %d: bad time %q", node.Line, val)
		}
		*s = Seconds(n / 1000)
	case strings.HasSuffix(val, "s"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "s"), 64)
		if err != nil {
			return fmt.Errorf("line %d: bad time %q", node.Line, val)
		}
		*s = Seconds(n)
	default:
		return fmt.Errorf("line %d: time %q must be a number, Ns or Nms", node.Line, val)
	}
	return nil
}

func (s Seconds) MarshalYAML() (interface{}, error) {
	return float64(s), nil
}
