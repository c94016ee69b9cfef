package cairo

import (
	"fmt"
	"image"
	"math"

	gocairo "github.com/novvoo/go-cairo/pkg/cairo"

	"github.com/gogpu/canvas"
)

// operators maps blend modes to cairo operators. PlusDarker has no cairo
// counterpart.
var operators = map[canvas.BlendMode]gocairo.Operator{
	canvas.BlendNormal:          gocairo.OperatorOver,
	canvas.BlendMultiply:        gocairo.OperatorMultiply,
	canvas.BlendScreen:          gocairo.OperatorScreen,
	canvas.BlendOverlay:         gocairo.OperatorOverlay,
	canvas.BlendDarken:          gocairo.OperatorDarken,
	canvas.BlendLighten:         gocairo.OperatorLighten,
	canvas.BlendColorDodge:      gocairo.OperatorColorDodge,
	canvas.BlendColorBurn:       gocairo.OperatorColorBurn,
	canvas.BlendSoftLight:       gocairo.OperatorSoftLight,
	canvas.BlendHardLight:       gocairo.OperatorHardLight,
	canvas.BlendDifference:      gocairo.OperatorDifference,
	canvas.BlendExclusion:       gocairo.OperatorExclusion,
	canvas.BlendHue:             gocairo.OperatorHslHue,
	canvas.BlendSaturation:      gocairo.OperatorHslSaturation,
	canvas.BlendColor:           gocairo.OperatorHslColor,
	canvas.BlendLuminosity:      gocairo.OperatorHslLuminosity,
	canvas.BlendClear:           gocairo.OperatorClear,
	canvas.BlendCopy:            gocairo.OperatorSource,
	canvas.BlendSourceIn:        gocairo.OperatorIn,
	canvas.BlendSourceOut:       gocairo.OperatorOut,
	canvas.BlendSourceAtop:      gocairo.OperatorAtop,
	canvas.BlendDestinationOver: gocairo.OperatorDestOver,
	canvas.BlendDestinationIn:   gocairo.OperatorDestIn,
	canvas.BlendDestinationOut:  gocairo.OperatorDestOut,
	canvas.BlendDestinationAtop: gocairo.OperatorDestAtop,
	canvas.BlendXor:             gocairo.OperatorXor,
	canvas.BlendPlusLighter:     gocairo.OperatorAdd,
}

// operator returns the cairo operator for mode, or OperatorOver and false.
func operator(mode canvas.BlendMode) (gocairo.Operator, bool) {
	op, ok := operators[mode]
	if !ok {
		return gocairo.OperatorOver, false
	}
	return op, true
}

var extends = [...]gocairo.Extend{
	canvas.ExtendPad:     gocairo.ExtendPad,
	canvas.ExtendRepeat:  gocairo.ExtendRepeat,
	canvas.ExtendReflect: gocairo.ExtendReflect,
}

// gradient builds a device-space cairo gradient. The radial ramp runs from
// a zero circle at the focal point to the outer circle.
func gradient(g canvas.GradientRamp) (gocairo.Pattern, error) {
	var p gocairo.Pattern
	switch g.Kind {
	case canvas.GradientRadial:
		p = gocairo.NewPatternRadial(g.Focal.X, g.Focal.Y, 0, g.Start.X, g.Start.Y, g.Radius)
	default:
		p = gocairo.NewPatternLinear(g.Start.X, g.Start.Y, g.End.X, g.End.Y)
	}
	gp, ok := p.(gocairo.GradientPattern)
	if !ok {
		p.Destroy()
		return nil, fmt.Errorf("cairo: %v gradient pattern: %w", g.Kind, canvas.ErrInvalidPaint)
	}
	for _, s := range g.Stops {
		gp.AddColorStopRGBA(s.Offset, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	}
	extend := gocairo.ExtendPad
	if int(g.Extend) >= 0 && int(g.Extend) < len(extends) {
		extend = extends[g.Extend]
	}
	p.SetExtend(extend)
	return p, nil
}

// tiled returns a repeating pattern over img with one tile every stepX,
// stepY in the space t maps to device space.
func tiled(img image.Image, stepX, stepY float64, t canvas.AffineTransform, antialias bool) (gocairo.Pattern, error) {
	inv, err := t.Inverse()
	if err != nil {
		return nil, nil
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, nil
	}
	if stepX <= 0 {
		stepX = float64(b.Dx())
	}
	if stepY <= 0 {
		stepY = float64(b.Dy())
	}
	// Integer cells keep the repeat period aligned with the surface.
	w, h := int(math.Ceil(stepX)), int(math.Ceil(stepY))
	s, err := toSurface(img, w, h)
	if err != nil {
		return nil, err
	}
	defer s.Destroy()

	p := gocairo.NewPatternForSurface(s)
	p.SetExtend(gocairo.ExtendRepeat)
	p.SetMatrix(matrix(inv))
	p.SetFilter(sampling(antialias))
	return p, nil
}

func sampling(antialias bool) gocairo.Filter {
	if antialias {
		return gocairo.FilterBilinear
	}
	return gocairo.FilterNearest
}

// tileKey identifies a rendered pattern tile. Pattern implementations must
// be comparable.
type tileKey struct {
	pattern    canvas.Pattern
	foreground canvas.RGBA
}

// tile renders one pattern tile on a nested cairo backend, caching the
// result per pattern and foreground color.
func (b *Backend) tile(p canvas.TiledPattern) (*image.RGBA, error) {
	key := tileKey{pattern: p.Pattern, foreground: p.Foreground}
	return b.tiles.GetOrCreate(key, func() (*image.RGBA, error) {
		nested := New(WithFonts(b.fonts))
		defer nested.Close()
		if err := canvas.RenderTile(nested, p.Pattern, p.Foreground); err != nil {
			return nil, fmt.Errorf("cairo: render pattern tile: %w", err)
		}
		return nested.Image(), nil
	})
}

// source builds the cairo source for a resolved paint. A nil pattern with
// a nil error means the paint covers nothing.
func (b *Backend) source(paint canvas.ResolvedPaint, antialias bool) (gocairo.Pattern, error) {
	switch p := paint.(type) {
	case canvas.GradientRamp:
		return gradient(p)
	case canvas.TiledPattern:
		img, err := b.tile(p)
		if err != nil || img == nil {
			return nil, err
		}
		return tiled(img, p.StepX, p.StepY, p.Transform, antialias)
	case canvas.ImageTile:
		if p.Image == nil {
			return nil, fmt.Errorf("cairo: image paint without image: %w", canvas.ErrInvalidPaint)
		}
		return tiled(p.Image, p.StepX, p.StepY, p.Transform, antialias)
	default:
		return nil, fmt.Errorf("cairo: paint %T: %w", paint, canvas.ErrInvalidPaint)
	}
}
