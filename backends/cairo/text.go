package cairo

import (
	"errors"
	"fmt"
	"math"

	gocairo "github.com/novvoo/go-cairo/pkg/cairo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/text"
)

// DrawText implements canvas.Backend. Glyphs are filled as device-space
// outlines rather than through cairo's font machinery, so both backends
// place text identically.
func (b *Backend) DrawText(run canvas.TextRun) error {
	if b.ctx == nil || run.Text == "" || run.FontSize <= 0 {
		return nil
	}
	f, err := b.fonts.Resolve(run.FontName)
	if err != nil {
		return fmt.Errorf("cairo: draw text: %w", err)
	}
	ops, err := b.textOps(f, run)
	if err != nil {
		return err
	}
	return b.draw(ops, run.Composite, func(ctx gocairo.Context) error {
		setColor(ctx, run.Color)
		ctx.SetFillRule(gocairo.FillRuleWinding)
		replay(ctx, ops)
		return ctx.Fill()
	})
}

// textOps lays out run along its baseline.
func (b *Backend) textOps(f *text.Font, run canvas.TextRun) ([]op, error) {
	sf := f.OpenType()
	ppem := fixed.Int26_6(math.Round(run.FontSize * 64))
	ops := make([]op, 0, 64*len(run.Text))

	pen := run.Origin
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range run.Text {
		idx, err := sf.GlyphIndex(&b.buf, r)
		if err != nil {
			return nil, fmt.Errorf("cairo: glyph for %q: %w", r, err)
		}
		if hasPrev {
			kern, err := sf.Kern(&b.buf, prev, idx, ppem, font.HintingNone)
			if err == nil {
				pen.X += float64(kern) / 64
			} else if !errors.Is(err, sfnt.ErrNotFound) {
				return nil, fmt.Errorf("cairo: kern: %w", err)
			}
		}

		segs, err := b.glyph(f, idx, ppem)
		if err != nil {
			return nil, err
		}
		ops = appendGlyph(ops, segs, pen, run.Transform)

		adv, err := sf.GlyphAdvance(&b.buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("cairo: advance for %q: %w", r, err)
		}
		pen.X += float64(adv) / 64
		prev, hasPrev = idx, true
	}
	return ops, nil
}

func (b *Backend) glyph(f *text.Font, idx sfnt.GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	key := glyphKey{font: f, glyph: idx, ppem: ppem}
	return b.glyphs.GetOrCreate(key, func() (sfnt.Segments, error) {
		segs, err := f.OpenType().LoadGlyph(&b.buf, idx, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("cairo: load glyph %d: %w", idx, err)
		}
		return append(sfnt.Segments(nil), segs...), nil
	})
}
