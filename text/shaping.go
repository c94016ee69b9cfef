package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// ShapingMeasurer measures strings by shaping them with HarfBuzz, so kerning
// and ligatures count toward the width. Mixed-direction text is split into
// bidi runs that are shaped separately. Line height comes from the base
// measurer.
//
// ShapingMeasurer is safe for concurrent use.
type ShapingMeasurer struct {
	base *Measurer
	pool sync.Pool // *shaping.HarfbuzzShaper, not safe for concurrent use
}

// NewShapingMeasurer creates a shaping measurer. A nil base means
// DefaultMeasurer().
func NewShapingMeasurer(base *Measurer) *ShapingMeasurer {
	if base == nil {
		base = DefaultMeasurer()
	}
	return &ShapingMeasurer{
		base: base,
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
	}
}

// MeasureString implements the canvas measurer contract. When the font
// cannot be shaped it falls back to the base measurer.
func (m *ShapingMeasurer) MeasureString(s, fontName string, fontSize float64) (width, height float64) {
	baseWidth, height := m.base.MeasureString(s, fontName, fontSize)
	if s == "" {
		return 0, height
	}
	f, err := m.base.reg.Resolve(fontName)
	if err != nil {
		return baseWidth, height
	}
	gf, err := f.shapingFont()
	if err != nil {
		Logger().Debug("text: shaping unavailable", "font", f.Name(), "err", err)
		return baseWidth, height
	}

	for _, run := range bidiRuns(s) {
		width += m.shapeRun(gf, run.text, run.dir, fontSize)
	}
	return width, height
}

// Metrics returns the ascent and descent from the base measurer.
func (m *ShapingMeasurer) Metrics(fontName string, fontSize float64) (ascent, descent float64) {
	return m.base.Metrics(fontName, fontSize)
}

func (m *ShapingMeasurer) shapeRun(f *gotext.Font, s string, dir di.Direction, size float64) float64 {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gotext.NewFace(f),
		Size:      FloatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.pool.Put(hb)

	var adv float64
	for _, g := range out.Glyphs {
		adv += FixedToFloat(g.Advance)
	}
	return adv
}

type bidiRun struct {
	text string
	dir  di.Direction
}

// bidiRuns splits s into runs of one direction.
func bidiRuns(s string) []bidiRun {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return []bidiRun{{text: s, dir: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []bidiRun{{text: s, dir: di.DirectionLTR}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, bidiRun{text: r.String(), dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
