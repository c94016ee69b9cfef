package filter

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/canvas/internal/parallel"
)

// DropShadow renders the shadow of a layer: the layer's alpha, offset,
// blurred and tinted with Color.
type DropShadow struct {
	// OffsetX and OffsetY move the shadow in pixels.
	OffsetX, OffsetY float64

	// BlurRadius is the Gaussian sigma in pixels. Zero gives a hard shadow.
	BlurRadius float64

	Color color.NRGBA
}

// ExpandBounds returns the area the shadow of input can reach.
func (f DropShadow) ExpandBounds(input image.Rectangle) image.Rectangle {
	blur := KernelRadius(f.BlurRadius)
	dx, dy := f.offset()
	r := input.Inset(-blur)
	return r.Union(r.Add(image.Pt(dx, dy)))
}

func (f DropShadow) offset() (int, int) {
	return int(math.Round(f.OffsetX)), int(math.Round(f.OffsetY))
}

// Render returns the shadow of the pixels of layer inside bounds as a new
// premultiplied layer. The result covers ExpandBounds(bounds) clipped to
// the layer, and is nil when that area is empty.
func (f DropShadow) Render(layer *image.RGBA, bounds image.Rectangle) *image.RGBA {
	area := f.ExpandBounds(bounds).Intersect(layer.Bounds())
	if area.Empty() {
		return nil
	}

	w, h := area.Dx(), area.Dy()
	alpha := make([]float32, w*h)
	dx, dy := f.offset()
	extractAlpha(layer, bounds, alpha, area, dx, dy)
	if f.BlurRadius > 0 {
		blurAlphaChannel(alpha, w, h, f.BlurRadius)
	}

	out := image.NewRGBA(area)
	base := float32(f.Color.A) / 255
	for y := range h {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x := range w {
			a := alpha[y*w+x] * base
			if a <= 0 {
				continue
			}
			p := row[x*4 : x*4+4 : x*4+4]
			p[0] = clampUint8(float32(f.Color.R) * a)
			p[1] = clampUint8(float32(f.Color.G) * a)
			p[2] = clampUint8(float32(f.Color.B) * a)
			p[3] = clampUint8(255 * a)
		}
	}
	return out
}

// extractAlpha copies the alpha of layer inside src, moved by (dx, dy),
// into alpha, which covers area.
func extractAlpha(layer *image.RGBA, src image.Rectangle, alpha []float32, area image.Rectangle, dx, dy int) {
	src = src.Intersect(layer.Bounds())
	w := area.Dx()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		sy := y - dy
		if sy < src.Min.Y || sy >= src.Max.Y {
			continue
		}
		for x := area.Min.X; x < area.Max.X; x++ {
			sx := x - dx
			if sx < src.Min.X || sx >= src.Max.X {
				continue
			}
			a := layer.Pix[layer.PixOffset(sx, sy)+3]
			alpha[(y-area.Min.Y)*w+x-area.Min.X] = float32(a) / 255
		}
	}
}

// blurAlphaChannel blurs alpha in place with a separable Gaussian.
// Samples outside the buffer are clamped to the edge.
func blurAlphaChannel(alpha []float32, width, height int, radius float64) {
	kernel := CachedGaussianKernel(radius)
	half := len(kernel) / 2
	temp := make([]float32, len(alpha))

	parallel.Rows(0, height, width, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := alpha[y*width : (y+1)*width]
			for x := range width {
				var sum float32
				for k, weight := range kernel {
					kx := min(max(x+k-half, 0), width-1)
					sum += row[kx] * weight
				}
				temp[y*width+x] = sum
			}
		}
	})

	parallel.Rows(0, height, width, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				var sum float32
				for k, weight := range kernel {
					ky := min(max(y+k-half, 0), height-1)
					sum += temp[ky*width+x] * weight
				}
				alpha[y*width+x] = sum
			}
		}
	})
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
