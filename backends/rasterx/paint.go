package rasterx

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"

	"github.com/gogpu/canvas"
)

var spreads = [...]rasterx.SpreadMethod{
	canvas.ExtendPad:     rasterx.PadSpread,
	canvas.ExtendRepeat:  rasterx.RepeatSpread,
	canvas.ExtendReflect: rasterx.ReflectSpread,
}

// gradient converts a device-space ramp to a rasterx gradient in user
// space units with an identity matrix.
func gradient(g canvas.GradientRamp) rasterx.Gradient {
	stops := make([]rasterx.GradStop, len(g.Stops))
	for i, s := range g.Stops {
		// rasterx applies Opacity to an opaque stop color.
		stops[i] = rasterx.GradStop{
			StopColor: s.Color.WithAlpha(1).NRGBA(),
			Offset:    s.Offset,
			Opacity:   s.Color.A,
		}
	}

	rg := rasterx.Gradient{
		Stops:  stops,
		Matrix: rasterx.Identity,
		Units:  rasterx.UserSpaceOnUse,
		Spread: rasterx.PadSpread,
	}
	rg.Bounds.W, rg.Bounds.H = 1, 1
	if int(g.Extend) >= 0 && int(g.Extend) < len(spreads) {
		rg.Spread = spreads[g.Extend]
	}
	switch g.Kind {
	case canvas.GradientRadial:
		rg.IsRadial = true
		rg.Points = [5]float64{g.Start.X, g.Start.Y, g.Focal.X, g.Focal.Y, g.Radius}
	default:
		rg.Points = [5]float64{g.Start.X, g.Start.Y, g.End.X, g.End.Y, 0}
	}
	return rg
}

// sampler returns the premultiplied color of a tiled source at a device
// pixel.
type sampler func(x, y int) color.RGBA

// tileSampler repeats img every stepX, stepY in the space t maps to device
// space. It returns nil when t cannot be inverted.
func tileSampler(img image.Image, stepX, stepY float64, t canvas.AffineTransform) sampler {
	inv, err := t.Inverse()
	if err != nil {
		return nil
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if stepX <= 0 {
		stepX = w
	}
	if stepY <= 0 {
		stepY = h
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	return func(x, y int) color.RGBA {
		p := inv.Transform(canvas.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
		u := p.X - stepX*math.Floor(p.X/stepX)
		v := p.Y - stepY*math.Floor(p.Y/stepY)
		if u >= w || v >= h {
			return color.RGBA{}
		}
		return color.RGBAModel.Convert(img.At(b.Min.X+int(u), b.Min.Y+int(v))).(color.RGBA)
	}
}

// tileKey identifies a rendered pattern tile. Pattern implementations must
// be comparable.
type tileKey struct {
	pattern    canvas.Pattern
	foreground canvas.RGBA
}

// tile renders one pattern tile on a nested rasterx backend, caching the
// result per pattern and foreground color.
func (b *Backend) tile(p canvas.TiledPattern) (*image.RGBA, error) {
	key := tileKey{pattern: p.Pattern, foreground: p.Foreground}
	return b.tiles.GetOrCreate(key, func() (*image.RGBA, error) {
		nested := New(WithFonts(b.fonts))
		defer nested.Close()
		if err := canvas.RenderTile(nested, p.Pattern, p.Foreground); err != nil {
			return nil, fmt.Errorf("rasterx: render pattern tile: %w", err)
		}
		return nested.Image(), nil
	})
}

// applySampler replaces the white coverage in layer with colors from s.
func applySampler(layer *image.RGBA, r image.Rectangle, s sampler) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := layer.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+4 {
			p := layer.Pix[i : i+4 : i+4]
			cov := p[3]
			if cov == 0 {
				continue
			}
			c := s(x, y)
			p[0] = scale(c.R, cov)
			p[1] = scale(c.G, cov)
			p[2] = scale(c.B, cov)
			p[3] = scale(c.A, cov)
		}
	}
}

func scale(v, cov uint8) uint8 {
	return uint8((uint16(v)*uint16(cov) + 127) / 255)
}
