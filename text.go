package canvas

import (
	"fmt"
	"image"
	"strings"
)

// MeasureString returns the advance width and line height of s in the
// current font.
func (c *Canvas) MeasureString(s string) (w, h float64) {
	st := c.top()
	return c.opts.measurer.MeasureString(s, st.FontName, st.FontSize)
}

// DrawString draws one line of text with its baseline at y. The alignment
// places x at the left end, the middle or the right end of the line.
// Justified text is drawn left-aligned.
func (c *Canvas) DrawString(s string, x, y float64, align HorizontalAlignment) error {
	w, _ := c.MeasureString(s)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	return c.drawText(s, Pt(x, y))
}

// DrawStringInRect draws text inside r. Lines are split on '\n' and
// stacked one line height apart; the block is aligned within r. Text is not
// clipped to r.
func (c *Canvas) DrawStringInRect(s string, r Rect, halign HorizontalAlignment, valign VerticalAlignment) error {
	lines := strings.Split(s, "\n")
	_, lineHeight := c.MeasureString(s)
	ascent, descent := c.fontMetrics(lineHeight)
	blockHeight := lineHeight*float64(len(lines)-1) + ascent + descent

	var baseline float64
	switch valign {
	case AlignMiddle:
		baseline = r.Y + (r.H-blockHeight)/2 + ascent
	case AlignBottom:
		baseline = r.Bottom() - blockHeight + ascent
	default:
		baseline = r.Y + ascent
	}

	for i, line := range lines {
		w, _ := c.MeasureString(line)
		x := r.X
		switch halign {
		case AlignCenter:
			x += (r.W - w) / 2
		case AlignRight:
			x = r.Right() - w
		}
		if err := c.drawText(line, Pt(x, baseline+float64(i)*lineHeight)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) fontMetrics(lineHeight float64) (ascent, descent float64) {
	st := c.top()
	if fm, ok := c.opts.measurer.(FontMetrics); ok {
		if a, d := fm.Metrics(st.FontName, st.FontSize); a > 0 {
			return a, d
		}
	}
	return lineHeight * 0.8, lineHeight * 0.2
}

func (c *Canvas) drawText(s string, origin Point) error {
	if s == "" {
		return nil
	}
	st := c.top()
	return c.handle(c.backend.DrawText(TextRun{
		Composite: c.composite(),
		Text:      s,
		Origin:    origin,
		FontName:  st.FontName,
		FontSize:  st.FontSize,
		Color:     st.FontColor,
		Transform: st.Transform,
	}))
}

// DrawImage draws img scaled into the rectangle. Under an axis-aligned
// transform the backend receives the device rectangle and an identity
// transform; otherwise it receives the local rectangle and the transform.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) error {
	if img == nil {
		return fmt.Errorf("canvas: draw image: nil image: %w", ErrInvalidPaint)
	}
	t := c.top().Transform
	dst := NewRect(x, y, w, h)
	style := ImageStyle{Composite: c.composite(), Transform: t}
	if c.opts.classifier.OnlyTranslateOrScale(t) {
		dst = RectFromPoints(t.Transform(dst.Min()), t.Transform(dst.Max()))
		style.Transform = Identity()
	}
	return c.handle(c.backend.DrawImage(img, dst, style))
}
