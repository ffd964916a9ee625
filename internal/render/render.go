// Package render rasterizes resolved object states into RGBA pixel buffers.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/aksappy/beam/internal/scene"
	"github.com/aksappy/beam/internal/system"
	"github.com/aksappy/beam/internal/value"
)

// InvariantError reports a shape whose required geometry is missing or
// mistyped after schema defaulting. The scene builder guarantees this cannot
// happen for validated scenes; hitting it aborts the frame instead of
// emitting a partially drawn image.
type InvariantError struct {
	Object   string
	Property string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("object %q: required property %q missing or mistyped after validation", e.Object, e.Property)
}

// Render draws the objects over the camera background in slice order, so
// later objects paint on top of earlier ones. The returned buffer comes from
// the frame pool; callers hand it back with system.PutImage once consumed.
func Render(cam scene.Camera, objects []scene.Object) (*image.RGBA, error) {
	img := system.GetImage(image.Rect(0, 0, cam.Width, cam.Height))
	dc := gg.NewContextForRGBA(img)
	dc.SetRGB255(int(cam.BgR), int(cam.BgG), int(cam.BgB))
	dc.Clear()

	for _, o := range objects {
		if err := drawObject(dc, o); err != nil {
			system.PutImage(img)
			return nil, err
		}
	}

	return img, nil
}

func drawObject(dc *gg.Context, o scene.Object) error {
	g, err := newGeom(o)
	if err != nil {
		return err
	}

	rotation := g.num("rotation")
	sc := g.num("scale")
	if o.Shape == scene.Text {
		sc *= g.num("size")
	}
	if err := g.err(); err != nil {
		return err
	}

	dc.Push()
	defer dc.Pop()

	if rotation != 0 || sc != 1 {
		px, py := pivot(o, g)
		if rotation != 0 {
			dc.RotateAbout(gg.Radians(rotation), px, py)
		}
		if sc != 1 {
			dc.ScaleAbout(sc, sc, px, py)
		}
	}

	switch o.Shape {
	case scene.Circle:
		x, y := g.pt("position")
		r := g.num("radius")
		return g.fillStroke(dc, func() { dc.DrawCircle(x, y, r) })
	case scene.Square:
		x, y := g.pt("position")
		size := g.num("size")
		return g.fillStroke(dc, func() { dc.DrawRectangle(x-size/2, y-size/2, size, size) })
	case scene.Rectangle:
		x, y := g.pt("position")
		w := g.num("width")
		h := g.num("height")
		return g.fillStroke(dc, func() { dc.DrawRectangle(x-w/2, y-h/2, w, h) })
	case scene.Ellipse:
		x, y := g.pt("position")
		rx := g.num("rx")
		ry := g.num("ry")
		return g.fillStroke(dc, func() { dc.DrawEllipse(x, y, rx, ry) })
	case scene.Triangle:
		x1, y1 := g.pt("p1")
		x2, y2 := g.pt("p2")
		x3, y3 := g.pt("p3")
		return g.fillStroke(dc, func() {
			dc.MoveTo(x1, y1)
			dc.LineTo(x2, y2)
			dc.LineTo(x3, y3)
			dc.ClosePath()
		})
	case scene.Line:
		x1, y1 := g.pt("p1")
		x2, y2 := g.pt("p2")
		if err := g.err(); err != nil {
			return err
		}
		if border, ok := o.Props["border_color"]; ok {
			g.setColor(dc, border)
			dc.SetLineWidth(1)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
		return nil
	case scene.Arrow, scene.Vector:
		return drawArrow(dc, g, false)
	case scene.DoubleArrow:
		return drawArrow(dc, g, true)
	case scene.Text:
		return drawText(dc, o, g)
	case scene.Group:
		// Groups carry no geometry of their own; the parse tree is flat.
		return nil
	}
	return &InvariantError{Object: o.ID, Property: "shape"}
}

func drawArrow(dc *gg.Context, g *geom, double bool) error {
	x1, y1 := g.pt("p1")
	x2, y2 := g.pt("p2")
	tipLength := g.num("tip_length")
	tipAngle := g.num("tip_angle")
	col := g.color("border_color")
	if err := g.err(); err != nil {
		return err
	}

	g.setColor(dc, col)
	dc.SetLineWidth(1)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()

	drawArrowhead(dc, x1, y1, x2, y2, tipLength, tipAngle)
	if double {
		drawArrowhead(dc, x2, y2, x1, y1, tipLength, tipAngle)
	}
	return nil
}

// drawArrowhead fills a triangular head at (tx, ty) pointing away from
// (fx, fy). tipAngle is the half-opening angle in degrees.
func drawArrowhead(dc *gg.Context, fx, fy, tx, ty, tipLength, tipAngle float64) {
	lineAngle := math.Atan2(ty-fy, tx-fx)
	a1 := lineAngle + math.Pi - gg.Radians(tipAngle)
	a2 := lineAngle + math.Pi + gg.Radians(tipAngle)

	dc.MoveTo(tx, ty)
	dc.LineTo(tx+tipLength*math.Cos(a1), ty+tipLength*math.Sin(a1))
	dc.LineTo(tx+tipLength*math.Cos(a2), ty+tipLength*math.Sin(a2))
	dc.ClosePath()
	dc.Fill()
}

func drawText(dc *gg.Context, o scene.Object, g *geom) error {
	x, y := g.pt("position")
	content := g.str("content")
	col := g.color("fill")
	if err := g.err(); err != nil {
		return err
	}
	if content == "" {
		return nil
	}

	dc.SetFontFace(basicfont.Face7x13)
	g.setColor(dc, col)
	dc.DrawStringAnchored(content, x, y, 0.5, 0.5)
	return nil
}

// pivot returns the rotation/scale pivot: the object's position, or the
// centroid of a triangle whose position was not declared. Shapes with no
// position (lines, arrows) pivot about the origin.
func pivot(o scene.Object, g *geom) (float64, float64) {
	if p, ok := o.Props["position"]; ok && p.Kind == value.Point {
		return p.X, p.Y
	}
	if o.Shape == scene.Triangle {
		x1, y1 := g.pt("p1")
		x2, y2 := g.pt("p2")
		x3, y3 := g.pt("p3")
		return (x1 + x2 + x3) / 3, (y1 + y2 + y3) / 3
	}
	return 0, 0
}
