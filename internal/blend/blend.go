// Package blend implements Porter-Duff compositing operators and blend modes
// for software backends.
//
// All blend operations work with premultiplied alpha values in the range 0-255,
// the layout of image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"image"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/parallel"
)

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [...]Func{
	canvas.BlendNormal:          sourceOver,
	canvas.BlendMultiply:        multiply,
	canvas.BlendScreen:          screen,
	canvas.BlendOverlay:         overlay,
	canvas.BlendDarken:          darken,
	canvas.BlendLighten:         lighten,
	canvas.BlendColorDodge:      colorDodge,
	canvas.BlendColorBurn:       colorBurn,
	canvas.BlendSoftLight:       softLight,
	canvas.BlendHardLight:       hardLight,
	canvas.BlendDifference:      difference,
	canvas.BlendExclusion:       exclusion,
	canvas.BlendHue:             hue,
	canvas.BlendSaturation:      saturation,
	canvas.BlendColor:           colorMode,
	canvas.BlendLuminosity:      luminosity,
	canvas.BlendClear:           clearMode,
	canvas.BlendCopy:            source,
	canvas.BlendSourceIn:        sourceIn,
	canvas.BlendSourceOut:       sourceOut,
	canvas.BlendSourceAtop:      sourceAtop,
	canvas.BlendDestinationOver: destinationOver,
	canvas.BlendDestinationIn:   destinationIn,
	canvas.BlendDestinationOut:  destinationOut,
	canvas.BlendDestinationAtop: destinationAtop,
	canvas.BlendXor:             xor,
	canvas.BlendPlusDarker:      plusDarker,
	canvas.BlendPlusLighter:     plus,
}

// For returns the blend function for mode. Unknown modes return source-over
// and false.
func For(mode canvas.BlendMode) (Func, bool) {
	if mode < 0 || int(mode) >= len(funcs) || funcs[mode] == nil {
		return sourceOver, false
	}
	return funcs[mode], true
}

// Composite blends src onto dst inside r using fn.
//
// Each source pixel is scaled by alpha and, when mask is non-nil, by the
// mask coverage at the same position. Only pixels the scaled source covers
// are touched, so unbounded operators such as Copy or SourceIn stay within
// the drawn shape.
func Composite(dst, src *image.RGBA, mask *image.Alpha, alpha float64, r image.Rectangle, fn Func) {
	r = r.Intersect(dst.Bounds()).Intersect(src.Bounds())
	if mask != nil {
		r = r.Intersect(mask.Bounds())
	}
	if r.Empty() || alpha <= 0 {
		return
	}
	global := byte(min(alpha, 1)*255 + 0.5)

	parallel.Rows(r.Min.Y, r.Max.Y, r.Dx(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			si := src.PixOffset(r.Min.X, y)
			di := dst.PixOffset(r.Min.X, y)
			for x := r.Min.X; x < r.Max.X; x, si, di = x+1, si+4, di+4 {
				cov := global
				if mask != nil {
					cov = mulDiv255(cov, mask.Pix[mask.PixOffset(x, y)])
				}
				s := src.Pix[si : si+4 : si+4]
				sa := mulDiv255(s[3], cov)
				if sa == 0 {
					continue
				}
				d := dst.Pix[di : di+4 : di+4]
				d[0], d[1], d[2], d[3] = fn(
					mulDiv255(s[0], cov), mulDiv255(s[1], cov), mulDiv255(s[2], cov), sa,
					d[0], d[1], d[2], d[3],
				)
			}
		}
	})
}
