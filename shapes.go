package canvas

import "fmt"

// DrawLine strokes a line from (x1, y1) to (x2, y2). Lines have no inside,
// so the stroke location does not apply.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) error {
	p := NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return c.stroke(p)
}

// DrawRectangle strokes a rectangle.
func (c *Canvas) DrawRectangle(x, y, w, h float64) error {
	r, _ := c.strokeRect(NewRect(x, y, w, h), 0)
	p := NewPath()
	p.AppendRectangle(r)
	return c.stroke(p)
}

// DrawRoundedRectangle strokes a rectangle with rounded corners.
func (c *Canvas) DrawRoundedRectangle(x, y, w, h, radius float64) error {
	r, radius := c.strokeRect(NewRect(x, y, w, h), radius)
	p := NewPath()
	p.AppendRoundedRectangle(r, radius)
	return c.stroke(p)
}

// DrawEllipse strokes the ellipse inscribed in the rectangle.
func (c *Canvas) DrawEllipse(x, y, w, h float64) error {
	r, _ := c.strokeRect(NewRect(x, y, w, h), 0)
	p := NewPath()
	p.AppendEllipse(r)
	return c.stroke(p)
}

// DrawCircle strokes a circle.
func (c *Canvas) DrawCircle(cx, cy, radius float64) error {
	return c.DrawEllipse(cx-radius, cy-radius, 2*radius, 2*radius)
}

// DrawArc strokes an arc of the ellipse inscribed in the rectangle. Angles
// are in degrees, counterclockwise from the positive x axis. When closed is
// set the chord is stroked too.
func (c *Canvas) DrawArc(x, y, w, h, startAngle, endAngle float64, clockwise, closed bool) error {
	if err := checkArc(startAngle, endAngle); err != nil {
		return err
	}
	r, _ := c.strokeRect(NewRect(x, y, w, h), 0)
	p := NewPath()
	p.AppendArc(r, startAngle, endAngle, clockwise, closed)
	return c.stroke(p)
}

// DrawPath strokes p. An Inside stroke is clipped to the path and an
// Outside stroke is clipped to everything but the path; both are drawn at
// twice the width so the visible part keeps the stroke size.
func (c *Canvas) DrawPath(p *Path) error {
	s := c.top()
	switch s.StrokeLocation {
	case StrokeInside:
		g := c.geometry(p)
		return c.clippedStroke(g, NonZero, g)
	case StrokeOutside:
		out := NewPath()
		out.AppendRectangle(s.ClipBounds)
		out.AppendPath(p.Transformed(s.Transform))
		return c.clippedStroke(Geometry{Path: out, Transform: Identity()}, EvenOdd, c.geometry(p))
	default:
		return c.stroke(p)
	}
}

// clippedStroke strokes g at double width inside clip.
func (c *Canvas) clippedStroke(clip Geometry, mode WindingMode, g Geometry) error {
	c.backend.Save()
	defer c.backend.Restore()

	if err := c.handle(c.backend.Clip(clip, mode)); err != nil {
		return err
	}
	style := c.strokeStyle()
	style.Width *= 2
	return c.handle(c.backend.Stroke(g, style))
}

// strokeRect moves the edge of a closed shape for the stroke location.
func (c *Canvas) strokeRect(r Rect, radius float64) (Rect, float64) {
	s := c.top()
	return adjustForStroke(r, radius, s.effectiveStrokeSize(), s.StrokeLocation)
}

func (c *Canvas) stroke(p *Path) error {
	return c.handle(c.backend.Stroke(c.geometry(p), c.strokeStyle()))
}

// FillRectangle fills a rectangle.
func (c *Canvas) FillRectangle(x, y, w, h float64) error {
	p := NewPath()
	p.AppendRectangle(NewRect(x, y, w, h))
	return c.fill(p, NonZero)
}

// FillRoundedRectangle fills a rectangle with rounded corners.
func (c *Canvas) FillRoundedRectangle(x, y, w, h, radius float64) error {
	p := NewPath()
	p.AppendRoundedRectangle(NewRect(x, y, w, h), radius)
	return c.fill(p, NonZero)
}

// FillEllipse fills the ellipse inscribed in the rectangle.
func (c *Canvas) FillEllipse(x, y, w, h float64) error {
	p := NewPath()
	p.AppendEllipse(NewRect(x, y, w, h))
	return c.fill(p, NonZero)
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(cx, cy, radius float64) error {
	return c.FillEllipse(cx-radius, cy-radius, 2*radius, 2*radius)
}

// FillArc fills the region between an arc of the ellipse inscribed in the
// rectangle and its chord.
func (c *Canvas) FillArc(x, y, w, h, startAngle, endAngle float64, clockwise bool) error {
	if err := checkArc(startAngle, endAngle); err != nil {
		return err
	}
	p := NewPath()
	p.AppendArc(NewRect(x, y, w, h), startAngle, endAngle, clockwise, true)
	return c.fill(p, NonZero)
}

func checkArc(startAngle, endAngle float64) error {
	if !finite(startAngle) || !finite(endAngle) {
		return fmt.Errorf("canvas: arc %v..%v: %w", startAngle, endAngle, ErrInvalidArc)
	}
	return nil
}

// FillPath fills p with the given winding rule.
func (c *Canvas) FillPath(p *Path, winding WindingMode) error {
	return c.fill(p, winding)
}

// fill paints p with the current fill. A flat color goes straight to the
// backend. Any other paint clips to the shape and paints the part of the
// clip box the shape covers.
func (c *Canvas) fill(p *Path, winding WindingMode) error {
	s := c.top()
	g := c.geometry(p)
	style := FillStyle{Composite: c.composite(), Winding: winding}
	if s.FillPaint == nil {
		return c.handle(c.backend.Fill(g, FlatColor{Color: s.FillColor}, style))
	}

	paint := toDevice(s.FillPaint, s.Transform)
	if ramp, ok := paint.(GradientRamp); ok && style.Shadow != nil {
		// One shadow under the whole ramp, cast by its most transparent stop.
		under := FlatColor{Color: White.WithAlpha(ramp.MinAlpha())}
		if err := c.handle(c.backend.Fill(g, under, style)); err != nil {
			return err
		}
		style.Shadow = nil
	}

	box := g.DeviceBounds().Intersect(s.ClipBounds)
	if box.IsEmpty() {
		return nil
	}

	c.backend.Save()
	defer c.backend.Restore()
	if err := c.handle(c.backend.Clip(g, winding)); err != nil {
		return err
	}
	area := NewPath()
	area.AppendRectangle(box)
	style.Winding = NonZero
	return c.handle(c.backend.Fill(Geometry{Path: area, Transform: Identity()}, paint, style))
}

// ClipPath intersects the clip with p.
func (c *Canvas) ClipPath(p *Path, winding WindingMode) error {
	g := c.geometry(p)
	if err := c.handle(c.backend.Clip(g, winding)); err != nil {
		return err
	}
	s := c.top()
	s.ClipBounds = s.ClipBounds.Intersect(g.DeviceBounds())
	return nil
}

// ClipRectangle intersects the clip with a rectangle.
func (c *Canvas) ClipRectangle(x, y, w, h float64) error {
	p := NewPath()
	p.AppendRectangle(NewRect(x, y, w, h))
	return c.ClipPath(p, NonZero)
}

// SubtractFromClip removes a rectangle from the clip. The clip bounds are
// unchanged.
func (c *Canvas) SubtractFromClip(x, y, w, h float64) error {
	s := c.top()
	hole := NewPath()
	hole.AppendRectangle(NewRect(x, y, w, h))

	p := NewPath()
	p.AppendRectangle(s.ClipBounds)
	p.AppendPath(hole.Transformed(s.Transform))
	return c.handle(c.backend.Clip(Geometry{Path: p, Transform: Identity()}, EvenOdd))
}
