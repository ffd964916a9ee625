package render

import (
	"github.com/fogleman/gg"

	"github.com/aksappy/beam/internal/scene"
	"github.com/aksappy/beam/internal/value"
)

// geom reads required geometry out of a resolved property set. Accessors
// record the first missing or mistyped property instead of returning errors
// at every call site; callers check err() once.
type geom struct {
	obj     scene.Object
	opacity float64
	failed  *InvariantError
}

func newGeom(o scene.Object) (*geom, error) {
	g := &geom{obj: o}
	g.opacity = clamp01(g.num("opacity"))
	return g, g.err()
}

func (g *geom) err() error {
	if g.failed != nil {
		return g.failed
	}
	return nil
}

func (g *geom) fail(property string) {
	if g.failed == nil {
		g.failed = &InvariantError{Object: g.obj.ID, Property: property}
	}
}

func (g *geom) num(name string) float64 {
	v, ok := g.obj.Props[name]
	if !ok || v.Kind != value.Number {
		g.fail(name)
		return 0
	}
	return v.Num
}

func (g *geom) pt(name string) (float64, float64) {
	v, ok := g.obj.Props[name]
	if !ok || v.Kind != value.Point {
		g.fail(name)
		return 0, 0
	}
	return v.X, v.Y
}

func (g *geom) color(name string) value.Value {
	v, ok := g.obj.Props[name]
	if !ok || v.Kind != value.Color {
		g.fail(name)
		return value.Value{}
	}
	return v
}

func (g *geom) str(name string) string {
	v, ok := g.obj.Props[name]
	if !ok || v.Kind != value.Text {
		g.fail(name)
		return ""
	}
	return v.Str
}

// setColor applies a color value with the object's opacity as alpha.
func (g *geom) setColor(dc *gg.Context, col value.Value) {
	dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, g.opacity)
}

// fillStroke builds the shape path and paints fill then border, honoring
// the optional fill and border_color properties: absent fill means
// stroke-only, absent border means fill-only.
func (g *geom) fillStroke(dc *gg.Context, path func()) error {
	if err := g.err(); err != nil {
		return err
	}
	if fill, ok := g.obj.Props["fill"]; ok {
		g.setColor(dc, fill)
		path()
		dc.Fill()
	}
	if border, ok := g.obj.Props["border_color"]; ok {
		g.setColor(dc, border)
		dc.SetLineWidth(1)
		path()
		dc.Stroke()
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
