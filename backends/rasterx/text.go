package rasterx

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/text"
)

// DrawText implements canvas.Backend. Glyph outlines are loaded unhinted at
// the run's font size in local units and filled through the run transform,
// so rotated and sheared text keeps its shape.
func (b *Backend) DrawText(run canvas.TextRun) error {
	if b.dst == nil || run.Text == "" || run.FontSize <= 0 {
		return nil
	}
	f, err := b.fonts.Resolve(run.FontName)
	if err != nil {
		return fmt.Errorf("rasterx: draw text: %w", err)
	}

	o, err := b.textOutline(f, run)
	if err != nil {
		return err
	}
	b.filler.SetColor(run.Color.NRGBA())
	return b.paint(o.pixelBounds(0), run.Composite, func(image.Rectangle) {
		b.filler.Clear()
		b.filler.SetWinding(true)
		o.addTo(b.filler)
		b.filler.Draw()
	})
}

// textOutline lays out run along its baseline and returns the device-space
// outline of all glyphs. Unmapped runes draw the font's .notdef glyph.
func (b *Backend) textOutline(f *text.Font, run canvas.TextRun) (*outline, error) {
	sf := f.OpenType()
	ppem := fixed.Int26_6(math.Round(run.FontSize * 64))
	o := newOutline(64 * len(run.Text))

	pen := run.Origin
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range run.Text {
		idx, err := sf.GlyphIndex(&b.buf, r)
		if err != nil {
			return nil, fmt.Errorf("rasterx: glyph for %q: %w", r, err)
		}
		if hasPrev {
			kern, err := sf.Kern(&b.buf, prev, idx, ppem, font.HintingNone)
			if err == nil {
				pen.X += float64(kern) / 64
			} else if !errors.Is(err, sfnt.ErrNotFound) {
				return nil, fmt.Errorf("rasterx: kern: %w", err)
			}
		}

		segs, err := b.glyph(f, idx, ppem)
		if err != nil {
			return nil, err
		}
		glyphOutline(o, segs, pen, run.Transform)

		adv, err := sf.GlyphAdvance(&b.buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("rasterx: advance for %q: %w", r, err)
		}
		pen.X += float64(adv) / 64
		prev, hasPrev = idx, true
	}
	return o, nil
}

// glyph returns the cached outline of a glyph at ppem.
func (b *Backend) glyph(f *text.Font, idx sfnt.GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	key := glyphKey{font: f, glyph: idx, ppem: ppem}
	return b.glyphs.GetOrCreate(key, func() (sfnt.Segments, error) {
		segs, err := f.OpenType().LoadGlyph(&b.buf, idx, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("rasterx: load glyph %d: %w", idx, err)
		}
		// LoadGlyph reuses the buffer's storage.
		return append(sfnt.Segments(nil), segs...), nil
	})
}
