package canvas

import "github.com/gogpu/canvas/text"

// SetFillColor sets a flat fill and clears any fill paint.
func (c *Canvas) SetFillColor(col RGBA) {
	s := c.top()
	s.FillColor = col
	s.FillPaint = nil
}

// SetFillPaint resolves paint against bounds and makes it the fill.
// Gradient points are fractions of bounds. A paint that resolves to a flat
// color sets the fill color instead. On error the fill is unchanged.
func (c *Canvas) SetFillPaint(paint Paint, bounds Rect) error {
	rp, err := ResolveFillPaint(paint, bounds)
	if err != nil {
		return err
	}
	s := c.top()
	if flat, ok := rp.(FlatColor); ok {
		s.FillColor = flat.Color
		s.FillPaint = nil
		return nil
	}
	s.FillPaint = rp
	return nil
}

// SetStrokeColor sets the stroke color.
func (c *Canvas) SetStrokeColor(col RGBA) { c.top().StrokeColor = col }

// SetStrokeSize sets the stroke width in canvas units.
func (c *Canvas) SetStrokeSize(size float64) { c.top().StrokeSize = size }

// SetLineCap sets the cap drawn at open stroke ends.
func (c *Canvas) SetLineCap(lc LineCap) { c.top().LineCap = lc }

// SetLineJoin sets the join drawn between stroke segments.
func (c *Canvas) SetLineJoin(lj LineJoin) { c.top().LineJoin = lj }

// SetMiterLimit sets the miter length limit, in stroke widths.
func (c *Canvas) SetMiterLimit(limit float64) { c.top().MiterLimit = limit }

// SetStrokeDashPattern sets the dash lengths as multiples of the stroke
// size. No arguments, or no positive length, gives a solid stroke.
func (c *Canvas) SetStrokeDashPattern(lengths ...float64) {
	s := c.top()
	var offset float64
	if s.Dash != nil {
		offset = s.Dash.Offset
	}
	s.Dash = NewDash(lengths...).WithOffset(offset)
}

// SetStrokeDashOffset sets the offset into the dash pattern.
func (c *Canvas) SetStrokeDashOffset(offset float64) {
	s := c.top()
	s.Dash = s.Dash.WithOffset(offset)
}

// SetStrokeLocation sets where strokes of closed shapes are drawn relative
// to the shape edge.
func (c *Canvas) SetStrokeLocation(loc StrokeLocation) { c.top().StrokeLocation = loc }

// SetStrokeLimit sets the minimum device stroke width kept when
// LimitStrokeScaling is on.
func (c *Canvas) SetStrokeLimit(limit float64) { c.top().StrokeLimit = limit }

// SetLimitStrokeScaling enables the stroke limit.
func (c *Canvas) SetLimitStrokeScaling(limit bool) { c.top().LimitStrokeScaling = limit }

// SetFontName sets the font by registered name. An unknown name draws with
// the system font.
func (c *Canvas) SetFontName(name string) { c.top().FontName = name }

// SetFontSize sets the font size in points.
func (c *Canvas) SetFontSize(size float64) { c.top().FontSize = size }

// SetFontColor sets the text color.
func (c *Canvas) SetFontColor(col RGBA) { c.top().FontColor = col }

// SetSystemFont selects the system font.
func (c *Canvas) SetSystemFont() { c.top().FontName = text.SystemFontName() }

// SetBoldSystemFont selects the bold system font.
func (c *Canvas) SetBoldSystemFont() { c.top().FontName = text.BoldSystemFontName() }

// SetAlpha sets the global alpha, clamped to [0, 1].
func (c *Canvas) SetAlpha(alpha float64) { c.top().Alpha = clamp01(alpha) }

// SetBlendMode sets how drawing is composited with the surface.
func (c *Canvas) SetBlendMode(mode BlendMode) { c.top().BlendMode = mode }

// SetAntialias enables or disables antialiasing.
func (c *Canvas) SetAntialias(aa bool) { c.top().Antialias = aa }

// SetShadow enables a drop shadow for subsequent drawing.
func (c *Canvas) SetShadow(offset Point, blur float64, col RGBA) {
	c.top().Shadow = &Shadow{Offset: offset, Blur: blur, Color: col}
}

// ClearShadow disables the shadow.
func (c *Canvas) ClearShadow() { c.top().Shadow = nil }

// Translate moves the origin. It applies before the current transform.
func (c *Canvas) Translate(tx, ty float64) {
	s := c.top()
	s.Transform = s.Transform.Translate(tx, ty)
}

// Scale scales subsequent drawing.
func (c *Canvas) Scale(sx, sy float64) {
	s := c.top()
	s.Transform = s.Transform.Scale(sx, sy)
}

// Rotate rotates subsequent drawing by degrees about the origin.
func (c *Canvas) Rotate(degrees float64) {
	s := c.top()
	s.Transform = s.Transform.RotateDegrees(degrees)
}

// RotateAbout rotates subsequent drawing by degrees about (px, py).
func (c *Canvas) RotateAbout(degrees, px, py float64) {
	s := c.top()
	s.Transform = s.Transform.RotateDegreesAbout(degrees, px, py)
}

// ConcatenateTransform applies t before the current transform.
func (c *Canvas) ConcatenateTransform(t AffineTransform) {
	s := c.top()
	s.Transform = s.Transform.Concatenate(t)
}

// SetTransform replaces the current transform.
func (c *Canvas) SetTransform(t AffineTransform) { c.top().Transform = t }

// Transform returns the current transform.
func (c *Canvas) Transform() AffineTransform { return c.top().Transform }

// strokeStyle returns the device-space stroke attributes of the current state.
func (c *Canvas) strokeStyle() StrokeStyle {
	s := c.top()
	dash, offset := s.DeviceDash()
	return StrokeStyle{
		Composite:  c.composite(),
		Color:      s.StrokeColor,
		Width:      s.DeviceStrokeSize(),
		Cap:        s.LineCap,
		Join:       s.LineJoin,
		MiterLimit: s.MiterLimit,
		Dash:       dash,
		DashOffset: offset,
	}
}
