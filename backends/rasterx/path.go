package rasterx

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opCubic
	opClose
)

type op struct {
	kind opKind
	pts  [3]fixed.Point26_6
}

// outline is a path flattened to rasterx fixed-point operations in device
// space, with the control-point hull of its points.
type outline struct {
	ops    []op
	bounds fixed.Rectangle26_6
	empty  bool
}

// adder is the path-building half of rasterx.Filler and rasterx.Dasher.
type adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

func toFixed(p canvas.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

func newOutline(capacity int) *outline {
	return &outline{ops: make([]op, 0, capacity), empty: true}
}

func (o *outline) add(kind opKind, pts ...fixed.Point26_6) {
	var v op
	v.kind = kind
	copy(v.pts[:], pts)
	o.ops = append(o.ops, v)
	for _, p := range pts {
		if o.empty {
			o.bounds = fixed.Rectangle26_6{Min: p, Max: p}
			o.empty = false
			continue
		}
		o.bounds.Min.X = min(o.bounds.Min.X, p.X)
		o.bounds.Min.Y = min(o.bounds.Min.Y, p.Y)
		o.bounds.Max.X = max(o.bounds.Max.X, p.X)
		o.bounds.Max.Y = max(o.bounds.Max.Y, p.Y)
	}
}

// compile converts geometry to device-space fixed-point operations.
func compile(g canvas.Geometry) *outline {
	o := newOutline(16)
	for s := range g.DeviceSegments() {
		switch s.Kind {
		case canvas.SegmentMove:
			o.add(opMove, toFixed(s.Points[0]))
		case canvas.SegmentLine:
			o.add(opLine, toFixed(s.Points[0]))
		case canvas.SegmentCubic:
			o.add(opCubic, toFixed(s.Points[0]), toFixed(s.Points[1]), toFixed(s.Points[2]))
		case canvas.SegmentClose:
			o.add(opClose)
		}
	}
	return o
}

// glyphOutline converts sfnt glyph segments, given in pixels relative to
// the pen with y down, to device space.
func glyphOutline(o *outline, segs sfnt.Segments, pen canvas.Point, t canvas.AffineTransform) {
	at := func(p fixed.Point26_6) fixed.Point26_6 {
		return toFixed(t.Transform(canvas.Point{
			X: pen.X + float64(p.X)/64,
			Y: pen.Y + float64(p.Y)/64,
		}))
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			o.add(opMove, at(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			o.add(opLine, at(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			o.add(opQuad, at(s.Args[0]), at(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			o.add(opCubic, at(s.Args[0]), at(s.Args[1]), at(s.Args[2]))
		}
	}
}

// addTo replays the outline into a rasterx adder. A segment after a close
// starts a new subpath at the closed subpath's start point.
func (o *outline) addTo(a adder) {
	open := false
	var start fixed.Point26_6
	ensure := func() {
		if !open {
			a.Start(start)
			open = true
		}
	}
	for _, v := range o.ops {
		switch v.kind {
		case opMove:
			if open {
				a.Stop(false)
			}
			start = v.pts[0]
			a.Start(start)
			open = true
		case opLine:
			ensure()
			a.Line(v.pts[0])
		case opQuad:
			ensure()
			a.QuadBezier(v.pts[0], v.pts[1])
		case opCubic:
			ensure()
			a.CubeBezier(v.pts[0], v.pts[1], v.pts[2])
		case opClose:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

// pixelBounds returns the pixels the outline can touch when padded by pad
// device units.
func (o *outline) pixelBounds(pad float64) image.Rectangle {
	if o.empty {
		return image.Rectangle{}
	}
	p := int(math.Ceil(pad)) + 1
	return image.Rect(
		o.bounds.Min.X.Floor()-p, o.bounds.Min.Y.Floor()-p,
		o.bounds.Max.X.Ceil()+p, o.bounds.Max.Y.Ceil()+p,
	)
}
