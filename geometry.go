package canvas

import "iter"

// Geometry is a path in local coordinates together with the transform that
// maps it to device space. It is what the canvas hands to a backend.
type Geometry struct {
	Path      *Path
	Transform AffineTransform
}

// DeviceSegments returns the path in device space using only Move, Line,
// Cubic and Close segments. Quads are elevated to cubics and arcs are split
// into cubics spanning at most a quarter turn. Non-square arcs are built on a
// circle mapped through a non-uniform scale, so only the geometry is scaled.
func (g Geometry) DeviceSegments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if g.Path == nil {
			return
		}
		t := g.Transform
		var pen cursor
		emit := func(s Segment) bool {
			pen.advance(&s)
			return yield(s)
		}
		point := func(k SegmentKind, p Point) Segment {
			return Segment{Kind: k, Points: [3]Point{p}}
		}
		cubicSeg := func(c1, c2, to Point) Segment {
			return Segment{Kind: SegmentCubic, Points: [3]Point{c1, c2, to}}
		}

		for s := range g.Path.Segments() {
			var ok bool
			switch s.Kind {
			case SegmentMove, SegmentLine:
				ok = emit(point(s.Kind, t.Transform(s.Points[0])))
			case SegmentQuad:
				c1, c2 := s.QuadControlPoints()
				ok = emit(cubicSeg(t.Transform(c1), t.Transform(c2), t.Transform(s.Points[1])))
			case SegmentCubic:
				ok = emit(cubicSeg(t.Transform(s.Points[0]), t.Transform(s.Points[1]), t.Transform(s.Points[2])))
			case SegmentArc:
				bounds := s.ArcBounds()
				start, sweep := arcSweep(s.StartAngle, s.EndAngle, s.Clockwise)
				first, pieces := arcCubics(bounds.W/2, start, sweep, t.Concatenate(ellipseTransform(bounds)))
				kind := SegmentMove
				if pen.open {
					kind = SegmentLine
				}
				ok = emit(point(kind, first))
				for _, c := range pieces {
					if !ok {
						break
					}
					ok = emit(cubicSeg(c.C1, c.C2, c.To))
				}
			case SegmentClose:
				ok = emit(Segment{Kind: SegmentClose})
			}
			if !ok {
				return
			}
		}
	}
}

// DeviceBounds returns the control-point hull of the device-space segments.
func (g Geometry) DeviceBounds() Rect {
	var b bounder
	for s := range g.DeviceSegments() {
		for _, p := range s.Points[:s.Kind.pointCount()] {
			b.add(p)
		}
	}
	return b.rect()
}
