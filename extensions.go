package canvas

import (
	"fmt"
	"math"
)

// ResetStroke returns the stroke to a solid 1-unit black line with butt
// caps and miter joins.
func (c *Canvas) ResetStroke() {
	s := c.top()
	s.StrokeSize = 1
	s.Dash = nil
	s.LineJoin = LineJoinMiter
	s.LineCap = LineCapButt
	s.StrokeColor = Black
}

// SetFillPattern fills with p drawn in black. A nil pattern sets a white
// fill.
func (c *Canvas) SetFillPattern(p Pattern) error {
	return c.SetFillPatternColor(p, Black)
}

// SetFillPatternColor fills with p drawn in the foreground color, tiled
// from the origin. A nil pattern sets a white fill.
func (c *Canvas) SetFillPatternColor(p Pattern, foreground RGBA) error {
	if nilPattern(p) {
		c.SetFillColor(White)
		return nil
	}
	return c.SetFillPaint(PatternPaint{Pattern: p, Foreground: foreground}, Rect{})
}

// EnableDefaultShadow turns on the default shadow.
func (c *Canvas) EnableDefaultShadow() {
	c.top().Shadow = DefaultShadow()
}

// RenderTile draws one tile of p on b in the foreground color. Backends
// call it to build the image a TiledPattern repeats.
func RenderTile(b Backend, p Pattern, foreground RGBA) error {
	if nilPattern(p) {
		return fmt.Errorf("canvas: render tile: %w", ErrInvalidPaint)
	}
	w := int(math.Ceil(p.Width()))
	h := int(math.Ceil(p.Height()))
	tc, err := New(b, w, h)
	if err != nil {
		return err
	}
	return tc.Redraw(Rect{}, DrawableFunc(func(tc *Canvas, _ Rect) error {
		tc.SetFillColor(foreground)
		tc.SetStrokeColor(foreground)
		tc.SetFontColor(foreground)
		return p.Draw(tc)
	}))
}
