package blend

import "math"

// separableBlend applies a per-channel blend function B to premultiplied
// colors using the W3C formula:
//
//	Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Cs, Cb)
//
// where Cs and Cb are the unmultiplied source and backdrop channels.
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, blendChan func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	sur, sug, sub := unpremultiply(sr, sa), unpremultiply(sg, sa), unpremultiply(sb, sa)
	dur, dug, dub := unpremultiply(dr, da), unpremultiply(dg, da), unpremultiply(db, da)

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	channel := func(s, d, b byte) byte {
		return addClamp(addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa)), mulDiv255(saDa, b))
	}
	return channel(sr, dr, blendChan(sur, dur)),
		channel(sg, dg, blendChan(sug, dug)),
		channel(sb, db, blendChan(sub, dub)),
		addClamp(sa, mulDiv255(da, invSa))
}

func unpremultiply(c, a byte) byte {
	return byte(min(uint16(c)*255/uint16(a), 255))
}

// multiply multiplies source and destination colors.
// Formula: B(Cb, Cs) = Cb * Cs
func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// screen produces a lighter result than multiply.
// Formula: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, screenChan)
}

func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLightChan is Multiply(Cb, 2*Cs) below half and Screen(Cb, 2*Cs - 1) above.
func hardLightChan(s, d byte) byte {
	if s <= 127 {
		return mulDiv255(2*s, d)
	}
	return screenChan(byte(2*uint16(s)-255), d)
}

// overlay is HardLight with the layers swapped.
func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChan(d, s)
	})
}

// darken selects the darker of source and destination.
// Formula: B(Cb, Cs) = min(Cb, Cs)
func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

// lighten selects the lighter of source and destination.
// Formula: B(Cb, Cs) = max(Cb, Cs)
func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

// colorDodge brightens the destination to reflect the source.
// Formula: B(Cb, Cs) = if Cb == 0: 0, Cs == 1: 1, else: min(1, Cb / (1 - Cs))
func colorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		switch {
		case d == 0:
			return 0
		case s == 255:
			return 255
		}
		return byte(min(uint16(d)*255/uint16(255-s), 255))
	})
}

// colorBurn darkens the destination to reflect the source.
// Formula: B(Cb, Cs) = if Cb == 1: 1, Cs == 0: 0, else: 1 - min(1, (1 - Cb) / Cs)
func colorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		switch {
		case d == 255:
			return 255
		case s == 0:
			return 0
		}
		return 255 - byte(min(uint16(255-d)*255/uint16(s), 255))
	})
}

// hardLight combines Multiply and Screen based on source.
func hardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

// softLight is a softer version of HardLight.
func softLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sf := float64(s) / 255
		df := float64(d) / 255

		var result float64
		if sf <= 0.5 {
			result = df - (1-2*sf)*df*(1-df)
		} else {
			dx := math.Sqrt(df)
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			}
			result = df + (2*sf-1)*(dx-df)
		}
		return byte(math.Round(math.Max(0, math.Min(1, result)) * 255))
	})
}

// difference produces the absolute difference between source and destination.
// Formula: B(Cb, Cs) = |Cb - Cs|
func difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// exclusion is similar to Difference but with lower contrast.
// Formula: B(Cb, Cs) = Cb + Cs - 2 * Cb * Cs
func exclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return subClamp(addWide(s, d), 2*uint16(mulDiv255(s, d)))
	})
}
