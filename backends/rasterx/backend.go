package rasterx

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/cache"
	"github.com/gogpu/canvas/internal/filter"
	"github.com/gogpu/canvas/text"
)

// Ensure Backend implements the canvas interfaces it provides.
var (
	_ canvas.Backend     = (*Backend)(nil)
	_ canvas.Invalidator = (*Backend)(nil)
)

// Cache sizes.
const (
	pathCacheSize  = 256
	glyphCacheSize = 1024
	tileCacheSize  = 16
)

type pathKey struct {
	path      canvas.PathKey
	transform canvas.AffineTransform
}

type glyphKey struct {
	font  *text.Font
	glyph sfnt.GlyphIndex
	ppem  fixed.Int26_6
}

// Backend renders into an *image.RGBA surface with rasterx.
//
// Every draw call is scanned into a scratch layer and composited onto the
// surface through the current clip mask, global alpha and blend mode. The
// surface survives between passes so partial redraws only repaint the dirty
// rectangle.
//
// The Backend is not safe for concurrent use.
type Backend struct {
	dst     *image.RGBA
	layer   *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher

	clip  *image.Alpha // nil means unclipped
	stack []*image.Alpha

	fonts  *text.Registry
	buf    sfnt.Buffer
	paths  *cache.Cache[pathKey, *outline]
	glyphs *cache.Cache[glyphKey, sfnt.Segments]
	tiles  *cache.Cache[tileKey, *image.RGBA]
}

// Option configures a Backend.
type Option func(*Backend)

// WithFonts sets the registry used to resolve TextRun font names.
// The default is text.Default().
func WithFonts(r *text.Registry) Option {
	return func(b *Backend) {
		if r != nil {
			b.fonts = r
		}
	}
}

// New creates a backend. The surface is allocated by the first Begin.
func New(opts ...Option) *Backend {
	b := &Backend{
		paths:  cache.New[pathKey, *outline](pathCacheSize),
		glyphs: cache.New[glyphKey, sfnt.Segments](glyphCacheSize),
		tiles:  cache.New[tileKey, *image.RGBA](tileCacheSize),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.fonts == nil {
		b.fonts = text.Default()
	}
	return b
}

// Image returns the surface. It is nil before the first Begin.
func (b *Backend) Image() *image.RGBA {
	return b.dst
}

// Begin implements canvas.Backend. The surface is kept when the size is
// unchanged and reallocated, cleared, otherwise.
func (b *Backend) Begin(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("rasterx: invalid size %dx%d", width, height)
	}
	if b.dst == nil || b.dst.Bounds().Dx() != width || b.dst.Bounds().Dy() != height {
		r := image.Rect(0, 0, width, height)
		b.dst = image.NewRGBA(r)
		b.layer = image.NewRGBA(r)
		b.scanner = rasterx.NewScannerGV(width, height, b.layer, r)
		b.filler = rasterx.NewFiller(width, height, b.scanner)
		b.dasher = rasterx.NewDasher(width, height, b.scanner)
		b.paths.Clear()
	}
	b.clip = nil
	b.stack = b.stack[:0]
	canvas.Logger().Debug("rasterx: begin", "width", width, "height", height)
	return nil
}

// End implements canvas.Backend.
func (b *Backend) End() error {
	if len(b.stack) > 0 {
		canvas.Logger().Debug("rasterx: end with saved state", "depth", len(b.stack))
	}
	b.clip = nil
	b.stack = b.stack[:0]
	return nil
}

// Save implements canvas.Backend. Masks are never modified in place, so
// saving the current one is enough.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.clip)
}

// Restore implements canvas.Backend.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.clip = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// Invalidate implements canvas.Invalidator. Cached outlines, glyphs and
// pattern tiles are rebuilt on demand.
func (b *Backend) Invalidate() {
	b.paths.Clear()
	b.glyphs.Clear()
	b.tiles.Clear()
}

// Close releases the caches and the surface.
func (b *Backend) Close() error {
	b.Invalidate()
	b.dst, b.layer = nil, nil
	b.scanner, b.filler, b.dasher = nil, nil, nil
	b.clip, b.stack = nil, nil
	return nil
}

func (b *Backend) outline(g canvas.Geometry) *outline {
	if g.Path == nil {
		return newOutline(0)
	}
	key := pathKey{path: g.Path.Key(), transform: g.Transform}
	o, _ := b.paths.GetOrCreate(key, func() (*outline, error) {
		return compile(g), nil
	})
	return o
}

// Fill implements canvas.Backend.
func (b *Backend) Fill(g canvas.Geometry, paint canvas.ResolvedPaint, style canvas.FillStyle) error {
	if paint == nil {
		return fmt.Errorf("rasterx: fill without paint: %w", canvas.ErrInvalidPaint)
	}
	if b.dst == nil {
		return nil
	}
	o := b.outline(g)

	var fill func(r image.Rectangle)
	switch p := paint.(type) {
	case canvas.FlatColor:
		b.filler.SetColor(p.Color.NRGBA())
	case canvas.GradientRamp:
		rg := gradient(p)
		b.filler.SetColor(rg.GetColorFunction(1))
	case canvas.TiledPattern:
		tile, err := b.tile(p)
		if err != nil {
			return err
		}
		s := tileSampler(tile, p.StepX, p.StepY, p.Transform)
		if s == nil {
			return nil
		}
		b.filler.SetColor(color.White)
		fill = func(r image.Rectangle) { applySampler(b.layer, r, s) }
	case canvas.ImageTile:
		s := tileSampler(p.Image, p.StepX, p.StepY, p.Transform)
		if s == nil {
			return nil
		}
		b.filler.SetColor(color.White)
		fill = func(r image.Rectangle) { applySampler(b.layer, r, s) }
	default:
		return fmt.Errorf("rasterx: paint %T: %w", paint, canvas.ErrInvalidPaint)
	}

	return b.paint(o.pixelBounds(0), style.Composite, func(r image.Rectangle) {
		b.filler.Clear()
		b.filler.SetWinding(style.Winding == canvas.NonZero)
		o.addTo(b.filler)
		b.filler.Draw()
		if fill != nil {
			fill(r)
		}
	})
}

var caps = [...]rasterx.CapFunc{
	canvas.LineCapButt:   rasterx.ButtCap,
	canvas.LineCapRound:  rasterx.RoundCap,
	canvas.LineCapSquare: rasterx.SquareCap,
}

var joins = [...]rasterx.JoinMode{
	canvas.LineJoinMiter: rasterx.Miter,
	canvas.LineJoinRound: rasterx.Round,
	canvas.LineJoinBevel: rasterx.Bevel,
}

// Stroke implements canvas.Backend.
func (b *Backend) Stroke(g canvas.Geometry, style canvas.StrokeStyle) error {
	if b.dst == nil || style.Width <= 0 {
		return nil
	}
	o := b.outline(g)

	capFn := caps[canvas.LineCapButt]
	if int(style.Cap) >= 0 && int(style.Cap) < len(caps) {
		capFn = caps[style.Cap]
	}
	join := rasterx.Miter
	if int(style.Join) >= 0 && int(style.Join) < len(joins) {
		join = joins[style.Join]
	}
	var gap rasterx.GapFunc = rasterx.FlatGap
	if join == rasterx.Round {
		gap = rasterx.RoundGap
	}
	var dash []float64
	if len(style.Dash) > 0 {
		dash = style.Dash
	}

	pad := style.Width / 2 * max(style.MiterLimit, math.Sqrt2)
	return b.paint(o.pixelBounds(pad), style.Composite, func(image.Rectangle) {
		b.dasher.Clear()
		b.dasher.SetStroke(
			fixed.Int26_6(style.Width*64), fixed.Int26_6(style.MiterLimit*64),
			capFn, capFn, gap, join, dash, style.DashOffset,
		)
		b.dasher.SetColor(style.Color.NRGBA())
		o.addTo(b.dasher)
		b.dasher.Draw()
	})
}

// Clip implements canvas.Backend. The shape is scanned into a coverage mask
// that is multiplied with the current one.
func (b *Backend) Clip(g canvas.Geometry, mode canvas.WindingMode) error {
	if b.dst == nil {
		return nil
	}
	o := b.outline(g)
	bounds := b.dst.Bounds()
	clearRect(b.layer, bounds)

	b.filler.Clear()
	b.filler.SetWinding(mode == canvas.NonZero)
	b.filler.SetColor(color.White)
	o.addTo(b.filler)
	b.filler.Draw()

	mask := image.NewAlpha(bounds)
	for i := range mask.Pix {
		a := b.layer.Pix[i*4+3]
		if b.clip != nil {
			a = scale(a, b.clip.Pix[i])
		}
		mask.Pix[i] = a
	}
	clearRect(b.layer, bounds)
	b.clip = mask
	return nil
}

// DrawImage implements canvas.Backend. Images are resampled bilinearly,
// or with nearest neighbor when antialiasing is off.
func (b *Backend) DrawImage(img image.Image, dst canvas.Rect, style canvas.ImageStyle) error {
	if img == nil {
		return fmt.Errorf("rasterx: nil image: %w", canvas.ErrInvalidPaint)
	}
	src := img.Bounds()
	if b.dst == nil || src.Empty() || dst.IsEmpty() {
		return nil
	}

	t := style.Transform.
		Translate(dst.X, dst.Y).
		Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy())).
		Translate(-float64(src.Min.X), -float64(src.Min.Y))

	corners := canvas.NewPath()
	corners.AppendRectangle(dst)
	o := compile(canvas.Geometry{Path: corners, Transform: style.Transform})

	var interp draw.Interpolator = draw.ApproxBiLinear
	if !style.Antialias {
		interp = draw.NearestNeighbor
	}
	aff := f64.Aff3{t.M00, t.M01, t.M02, t.M10, t.M11, t.M12}
	comp := style.Composite
	comp.Antialias = true
	return b.paint(o.pixelBounds(0), comp, func(image.Rectangle) {
		interp.Transform(b.layer, aff, img, src, draw.Over, nil)
	})
}

// paint clears the layer inside bounds, runs render to scan into it and
// composites the result, with its shadow, onto the surface.
func (b *Backend) paint(bounds image.Rectangle, comp canvas.Composite, render func(r image.Rectangle)) error {
	r := bounds.Intersect(b.dst.Bounds())
	if r.Empty() {
		return nil
	}
	clearRect(b.layer, r)
	render(r)

	fn, ok := blend.For(comp.Blend)
	if comp.Shadow != nil {
		s := filter.DropShadow{
			OffsetX:    comp.Shadow.Offset.X,
			OffsetY:    comp.Shadow.Offset.Y,
			BlurRadius: comp.Shadow.Blur,
			Color:      comp.Shadow.Color.NRGBA(),
		}
		if shadow := s.Render(b.layer, r); shadow != nil {
			blend.Composite(b.dst, shadow, b.clip, comp.Alpha, shadow.Bounds(), fn)
		}
	}
	blend.Composite(b.dst, b.layer, b.clip, comp.Alpha, r, fn)
	clearRect(b.layer, r)

	if !ok {
		return canvas.NewUnsupported(Name, "blend mode "+comp.Blend.String())
	}
	if !comp.Antialias {
		return canvas.NewUnsupported(Name, "aliased rendering")
	}
	return nil
}

func clearRect(img *image.RGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		clear(img.Pix[i : i+4*r.Dx()])
	}
}
