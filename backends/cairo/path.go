package cairo

import (
	gocairo "github.com/novvoo/go-cairo/pkg/cairo"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/canvas"
)

// op is one device-space path command. Quadratic glyph segments are raised
// to cubics when recorded, so only four kinds occur.
type op struct {
	kind canvas.SegmentKind
	pts  [3]canvas.Point
}

// compile records geometry as device-space commands.
func compile(g canvas.Geometry) []op {
	ops := make([]op, 0, 16)
	for s := range g.DeviceSegments() {
		v := op{kind: s.Kind}
		switch s.Kind {
		case canvas.SegmentMove, canvas.SegmentLine:
			v.pts[0] = s.Points[0]
		case canvas.SegmentCubic:
			copy(v.pts[:], s.Points[:3])
		}
		ops = append(ops, v)
	}
	return ops
}

// appendGlyph records sfnt glyph segments, given in pixels relative to the
// pen with y down, in device space.
func appendGlyph(ops []op, segs sfnt.Segments, pen canvas.Point, t canvas.AffineTransform) []op {
	at := func(i int, s sfnt.Segment) canvas.Point {
		return t.Transform(canvas.Point{
			X: pen.X + float64(s.Args[i].X)/64,
			Y: pen.Y + float64(s.Args[i].Y)/64,
		})
	}
	var cur canvas.Point
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			cur = at(0, s)
			ops = append(ops, op{kind: canvas.SegmentMove, pts: [3]canvas.Point{cur}})
		case sfnt.SegmentOpLineTo:
			cur = at(0, s)
			ops = append(ops, op{kind: canvas.SegmentLine, pts: [3]canvas.Point{cur}})
		case sfnt.SegmentOpQuadTo:
			q, end := at(0, s), at(1, s)
			c1 := canvas.Point{X: cur.X + 2.0/3*(q.X-cur.X), Y: cur.Y + 2.0/3*(q.Y-cur.Y)}
			c2 := canvas.Point{X: end.X + 2.0/3*(q.X-end.X), Y: end.Y + 2.0/3*(q.Y-end.Y)}
			ops = append(ops, op{kind: canvas.SegmentCubic, pts: [3]canvas.Point{c1, c2, end}})
			cur = end
		case sfnt.SegmentOpCubeTo:
			end := at(2, s)
			ops = append(ops, op{kind: canvas.SegmentCubic, pts: [3]canvas.Point{at(0, s), at(1, s), end}})
			cur = end
		}
	}
	return ops
}

// replay builds ops as the current cairo path.
func replay(ctx gocairo.Context, ops []op) {
	ctx.NewPath()
	for _, v := range ops {
		switch v.kind {
		case canvas.SegmentMove:
			ctx.MoveTo(v.pts[0].X, v.pts[0].Y)
		case canvas.SegmentLine:
			ctx.LineTo(v.pts[0].X, v.pts[0].Y)
		case canvas.SegmentCubic:
			ctx.CurveTo(v.pts[0].X, v.pts[0].Y, v.pts[1].X, v.pts[1].Y, v.pts[2].X, v.pts[2].Y)
		case canvas.SegmentClose:
			ctx.ClosePath()
		}
	}
}

func matrix(t canvas.AffineTransform) *gocairo.Matrix {
	return &gocairo.Matrix{
		XX: t.M00, YX: t.M10,
		XY: t.M01, YY: t.M11,
		X0: t.M02, Y0: t.M12,
	}
}
