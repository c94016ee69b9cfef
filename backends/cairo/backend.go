package cairo

import (
	"fmt"
	"image"

	gocairo "github.com/novvoo/go-cairo/pkg/cairo"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
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

// Backend renders into a cairo ARGB32 image surface.
//
// All geometry arrives in device space, so the context matrix stays the
// identity. Each draw call is rendered into a group and painted with the
// current operator and global alpha. Shadows are rendered on a scratch
// surface and blurred in software.
//
// The Backend is not safe for concurrent use.
type Backend struct {
	surface gocairo.ImageSurface
	ctx     gocairo.Context
	width   int
	height  int
	depth   int

	scratch    gocairo.ImageSurface
	scratchCtx gocairo.Context

	fonts  *text.Registry
	buf    sfnt.Buffer
	paths  *cache.Cache[pathKey, []op]
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
		paths:  cache.New[pathKey, []op](pathCacheSize),
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

// Surface returns the cairo surface. It is nil before the first Begin.
func (b *Backend) Surface() gocairo.ImageSurface {
	return b.surface
}

// Image returns a copy of the surface, or nil before the first Begin.
func (b *Backend) Image() *image.RGBA {
	if b.surface == nil {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	readSurface(b.surface, img)
	return img
}

// Begin implements canvas.Backend. The surface is kept when the size is
// unchanged and reallocated, cleared, otherwise.
func (b *Backend) Begin(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("cairo: invalid size %dx%d", width, height)
	}
	if b.surface == nil || b.width != width || b.height != height {
		b.release()
		s, err := newSurface(width, height)
		if err != nil {
			return err
		}
		b.surface, b.ctx = s, gocairo.NewContext(s)
		b.width, b.height = width, height
		b.paths.Clear()
	}
	b.unwind()
	b.ctx.ResetClip()
	b.ctx.IdentityMatrix()
	canvas.Logger().Debug("cairo: begin", "width", width, "height", height)
	return b.status()
}

// End implements canvas.Backend.
func (b *Backend) End() error {
	if b.ctx == nil {
		return nil
	}
	if b.depth > 0 {
		canvas.Logger().Debug("cairo: end with saved state", "depth", b.depth)
	}
	b.unwind()
	b.ctx.ResetClip()
	if err := b.surface.Flush(); err != nil {
		return fmt.Errorf("cairo: flush: %w", err)
	}
	return b.status()
}

// Save implements canvas.Backend.
func (b *Backend) Save() {
	if b.ctx == nil {
		return
	}
	if err := b.ctx.Save(); err != nil {
		canvas.Logger().Warn("cairo: save", "err", err)
		return
	}
	b.depth++
}

// Restore implements canvas.Backend.
func (b *Backend) Restore() {
	if b.ctx == nil || b.depth == 0 {
		return
	}
	if err := b.ctx.Restore(); err != nil {
		canvas.Logger().Warn("cairo: restore", "err", err)
	}
	b.depth--
}

func (b *Backend) unwind() {
	for b.depth > 0 {
		b.Restore()
	}
}

// Invalidate implements canvas.Invalidator. Cached paths, glyphs and pattern
// tiles are rebuilt on demand.
func (b *Backend) Invalidate() {
	b.paths.Clear()
	b.glyphs.Clear()
	b.tiles.Clear()
}

// Close releases the caches and the cairo surfaces and contexts.
func (b *Backend) Close() error {
	b.Invalidate()
	b.release()
	return nil
}

func (b *Backend) release() {
	if b.scratchCtx != nil {
		b.scratchCtx.Destroy()
		b.scratch.Destroy()
		b.scratch, b.scratchCtx = nil, nil
	}
	if b.ctx != nil {
		b.ctx.Destroy()
		b.surface.Destroy()
		b.surface, b.ctx = nil, nil
	}
	b.width, b.height, b.depth = 0, 0, 0
}

func (b *Backend) status() error {
	if st := b.ctx.Status(); st != gocairo.StatusSuccess {
		return fmt.Errorf("cairo: context: %v", st)
	}
	return nil
}

func (b *Backend) ops(g canvas.Geometry) []op {
	if g.Path == nil {
		return nil
	}
	key := pathKey{path: g.Path.Key(), transform: g.Transform}
	ops, _ := b.paths.GetOrCreate(key, func() ([]op, error) {
		return compile(g), nil
	})
	return ops
}

// Fill implements canvas.Backend.
func (b *Backend) Fill(g canvas.Geometry, paint canvas.ResolvedPaint, style canvas.FillStyle) error {
	if paint == nil {
		return fmt.Errorf("cairo: fill without paint: %w", canvas.ErrInvalidPaint)
	}
	if b.ctx == nil {
		return nil
	}
	ops := b.ops(g)

	var src gocairo.Pattern
	flat, isFlat := paint.(canvas.FlatColor)
	if !isFlat {
		var err error
		if src, err = b.source(paint, style.Antialias); err != nil {
			return err
		}
		if src == nil {
			return nil
		}
		defer src.Destroy()
	}

	return b.draw(ops, style.Composite, func(ctx gocairo.Context) error {
		if isFlat {
			setColor(ctx, flat.Color)
		} else {
			ctx.SetSource(src)
		}
		ctx.SetFillRule(fillRule(style.Winding))
		replay(ctx, ops)
		return ctx.Fill()
	})
}

func fillRule(mode canvas.WindingMode) gocairo.FillRule {
	if mode == canvas.EvenOdd {
		return gocairo.FillRuleEvenOdd
	}
	return gocairo.FillRuleWinding
}

func setColor(ctx gocairo.Context, c canvas.RGBA) {
	ctx.SetSourceRGBA(c.R, c.G, c.B, c.A)
}

var caps = [...]gocairo.LineCap{
	canvas.LineCapButt:   gocairo.LineCapButt,
	canvas.LineCapRound:  gocairo.LineCapRound,
	canvas.LineCapSquare: gocairo.LineCapSquare,
}

var joins = [...]gocairo.LineJoin{
	canvas.LineJoinMiter: gocairo.LineJoinMiter,
	canvas.LineJoinRound: gocairo.LineJoinRound,
	canvas.LineJoinBevel: gocairo.LineJoinBevel,
}

// Stroke implements canvas.Backend.
func (b *Backend) Stroke(g canvas.Geometry, style canvas.StrokeStyle) error {
	if b.ctx == nil || style.Width <= 0 {
		return nil
	}
	ops := b.ops(g)

	lineCap := gocairo.LineCapButt
	if int(style.Cap) >= 0 && int(style.Cap) < len(caps) {
		lineCap = caps[style.Cap]
	}
	join := gocairo.LineJoinMiter
	if int(style.Join) >= 0 && int(style.Join) < len(joins) {
		join = joins[style.Join]
	}

	return b.draw(nil, style.Composite, func(ctx gocairo.Context) error {
		setColor(ctx, style.Color)
		ctx.SetLineWidth(style.Width)
		ctx.SetLineCap(lineCap)
		ctx.SetLineJoin(join)
		ctx.SetMiterLimit(style.MiterLimit)
		ctx.SetDash(style.Dash, style.DashOffset)
		replay(ctx, ops)
		return ctx.Stroke()
	})
}

// Clip implements canvas.Backend.
func (b *Backend) Clip(g canvas.Geometry, mode canvas.WindingMode) error {
	if b.ctx == nil {
		return nil
	}
	b.ctx.SetFillRule(fillRule(mode))
	replay(b.ctx, b.ops(g))
	b.ctx.Clip()
	return b.status()
}

// DrawImage implements canvas.Backend. Images are filtered bilinearly, or
// with nearest neighbor when antialiasing is off.
func (b *Backend) DrawImage(img image.Image, dst canvas.Rect, style canvas.ImageStyle) error {
	if img == nil {
		return fmt.Errorf("cairo: nil image: %w", canvas.ErrInvalidPaint)
	}
	src := img.Bounds()
	if b.ctx == nil || src.Empty() || dst.IsEmpty() {
		return nil
	}

	t := style.Transform.
		Translate(dst.X, dst.Y).
		Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))
	inv, err := t.Inverse()
	if err != nil {
		return nil
	}
	s, err := toSurface(img, src.Dx(), src.Dy())
	if err != nil {
		return err
	}
	defer s.Destroy()
	p := gocairo.NewPatternForSurface(s)
	defer p.Destroy()
	p.SetExtend(gocairo.ExtendNone)
	p.SetMatrix(matrix(inv))
	p.SetFilter(sampling(style.Antialias))

	corners := canvas.NewPath()
	corners.AppendRectangle(dst)
	ops := compile(canvas.Geometry{Path: corners, Transform: style.Transform})

	return b.draw(ops, style.Composite, func(ctx gocairo.Context) error {
		ctx.SetSource(p)
		replay(ctx, ops)
		return ctx.Fill()
	})
}

// draw renders into a group and paints it onto the surface with the blend
// operator and global alpha. When area is set, the paint is clipped to it
// so unbounded operators stay inside the shape.
func (b *Backend) draw(area []op, comp canvas.Composite, render func(ctx gocairo.Context) error) error {
	oper, ok := operator(comp.Blend)
	antialias := gocairo.AntialiasDefault
	if !comp.Antialias {
		antialias = gocairo.AntialiasNone
	}

	if comp.Shadow != nil {
		if err := b.shadow(comp, antialias, render); err != nil {
			return err
		}
	}

	ctx := b.ctx
	if err := ctx.Save(); err != nil {
		return fmt.Errorf("cairo: save: %w", err)
	}
	ctx.SetAntialias(antialias)
	if area != nil && oper != gocairo.OperatorOver {
		ctx.SetFillRule(gocairo.FillRuleWinding)
		replay(ctx, area)
		ctx.Clip()
	}
	ctx.PushGroup()
	ctx.SetOperator(gocairo.OperatorOver)
	renderErr := render(ctx)
	ctx.PopGroupToSource()
	ctx.SetOperator(oper)
	paintErr := ctx.PaintWithAlpha(comp.Alpha)
	if err := ctx.Restore(); err != nil {
		return fmt.Errorf("cairo: restore: %w", err)
	}

	switch {
	case renderErr != nil:
		return fmt.Errorf("cairo: render: %w", renderErr)
	case paintErr != nil:
		return fmt.Errorf("cairo: paint: %w", paintErr)
	case !ok:
		return canvas.NewUnsupported(Name, "blend mode "+comp.Blend.String())
	}
	return b.status()
}

// shadow renders the shape on the scratch surface, blurs and tints its
// alpha and paints the result onto the surface.
func (b *Backend) shadow(comp canvas.Composite, antialias gocairo.Antialias, render func(ctx gocairo.Context) error) error {
	if err := b.ensureScratch(); err != nil {
		return err
	}
	sc := b.scratchCtx
	sc.SetOperator(gocairo.OperatorClear)
	if err := sc.Paint(); err != nil {
		return fmt.Errorf("cairo: clear scratch: %w", err)
	}
	sc.SetOperator(gocairo.OperatorOver)
	sc.SetAntialias(antialias)
	if err := render(sc); err != nil {
		return fmt.Errorf("cairo: render shadow: %w", err)
	}

	layer := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	readSurface(b.scratch, layer)
	ds := filter.DropShadow{
		OffsetX:    comp.Shadow.Offset.X,
		OffsetY:    comp.Shadow.Offset.Y,
		BlurRadius: comp.Shadow.Blur,
		Color:      comp.Shadow.Color.NRGBA(),
	}
	img := ds.Render(layer, alphaBounds(layer))
	if img == nil {
		return nil
	}
	r := img.Bounds()
	s, err := toSurface(img, r.Dx(), r.Dy())
	if err != nil {
		return err
	}
	defer s.Destroy()

	oper, _ := operator(comp.Blend)
	ctx := b.ctx
	if err := ctx.Save(); err != nil {
		return fmt.Errorf("cairo: save: %w", err)
	}
	ctx.SetSourceSurface(s, float64(r.Min.X), float64(r.Min.Y))
	ctx.SetOperator(oper)
	paintErr := ctx.PaintWithAlpha(comp.Alpha)
	if err := ctx.Restore(); err != nil {
		return fmt.Errorf("cairo: restore: %w", err)
	}
	if paintErr != nil {
		return fmt.Errorf("cairo: paint shadow: %w", paintErr)
	}
	return nil
}

func (b *Backend) ensureScratch() error {
	if b.scratch != nil {
		w, h := b.scratch.GetWidth(), b.scratch.GetHeight()
		if w == b.width && h == b.height {
			return nil
		}
		b.scratchCtx.Destroy()
		b.scratch.Destroy()
		b.scratch, b.scratchCtx = nil, nil
	}
	s, err := newSurface(b.width, b.height)
	if err != nil {
		return err
	}
	b.scratch, b.scratchCtx = s, gocairo.NewContext(s)
	return nil
}
