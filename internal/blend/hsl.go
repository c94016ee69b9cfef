package blend

import "math"

// Lum returns the luminance of a color using BT.601 coefficients.
// Formula: Lum(r, g, b) = 0.30*r + 0.59*g + 0.11*b
//
// Parameters are normalized float32 values in [0, 1].
func Lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// Sat returns the saturation (max - min) of a color.
func Sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// ClipColor clips color components to [0,1] while preserving luminance.
func ClipColor(r, g, b float32) (float32, float32, float32) {
	l := Lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// SetLum sets the luminance of a color while preserving saturation and hue.
func SetLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - Lum(r, g, b)
	return ClipColor(r+d, g+d, b+d)
}

// SetSat sets the saturation of a color while preserving hue.
// A gray input stays gray.
func SetSat(r, g, b, s float32) (float32, float32, float32) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
		*lo = 0
	}
	return r, g, b
}

// sortRGB returns pointers to r, g, b sorted by value.
func sortRGB(r, g, b *float32) (lo, mid, hi *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// hue: SetLum(SetSat(Cs, Sat(Cb)), Lum(Cb))
func hue(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		r, g, b := SetSat(sr, sg, sb, Sat(dr, dg, db))
		return SetLum(r, g, b, Lum(dr, dg, db))
	})
}

// saturation: SetLum(SetSat(Cb, Sat(Cs)), Lum(Cb))
func saturation(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		r, g, b := SetSat(dr, dg, db, Sat(sr, sg, sb))
		return SetLum(r, g, b, Lum(dr, dg, db))
	})
}

// colorMode: SetLum(Cs, Lum(Cb))
func colorMode(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		return SetLum(sr, sg, sb, Lum(dr, dg, db))
	})
}

// luminosity: SetLum(Cb, Lum(Cs))
func luminosity(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		return SetLum(dr, dg, db, Lum(sr, sg, sb))
	})
}

// nonSeparableBlend applies an RGB-triplet blend function with the same
// compositing formula as separableBlend.
func nonSeparableBlend(
	sr, sg, sb, sa, dr, dg, db, da byte,
	blendFunc func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32),
) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	fs, fd := float32(sa), float32(da)
	br, bg, bb := blendFunc(
		float32(sr)/fs, float32(sg)/fs, float32(sb)/fs,
		float32(dr)/fd, float32(dg)/fd, float32(db)/fd,
	)

	invSa := 255 - sa
	invDa := 255 - da
	saDa := fs / 255 * fd / 255
	channel := func(s, d byte, b float32) byte {
		contrib := byte(math.Round(float64(max(0, min(1, b)) * saDa * 255)))
		return addClamp(addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa)), contrib)
	}
	return channel(sr, dr, br), channel(sg, dg, bg), channel(sb, db, bb),
		addClamp(sa, mulDiv255(da, invSa))
}
