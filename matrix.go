package canvas

import "math"

// degenerateEpsilon is the determinant magnitude below which a transform
// cannot be inverted. Rotation snapping uses the same threshold.
const degenerateEpsilon = 1e-10

// AffineTransform is a 2x3 affine matrix:
//
//	| M00  M01  M02 |
//	| M10  M11  M12 |
//
// mapping a point as
//
//	x' = M00*x + M01*y + M02
//	y' = M10*x + M11*y + M12
//
// It is a value type. The zero value is not the identity; use Identity.
type AffineTransform struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{M00: 1, M11: 1}
}

// NewTranslation creates a translation transform.
func NewTranslation(tx, ty float64) AffineTransform {
	return AffineTransform{M00: 1, M02: tx, M11: 1, M12: ty}
}

// NewScale creates a scaling transform.
func NewScale(sx, sy float64) AffineTransform {
	return AffineTransform{M00: sx, M11: sy}
}

// NewShear creates a shear transform.
func NewShear(shx, shy float64) AffineTransform {
	return AffineTransform{M00: 1, M01: shx, M10: shy, M11: 1}
}

// NewRotation creates a rotation by theta radians. Values of cos and sin
// closer to zero than 1e-10 are snapped so quarter turns stay exact.
func NewRotation(theta float64) AffineTransform {
	sin, cos := math.Sincos(theta)
	switch {
	case math.Abs(cos) < degenerateEpsilon:
		cos = 0
		sin = math.Copysign(1, sin)
	case math.Abs(sin) < degenerateEpsilon:
		sin = 0
		cos = math.Copysign(1, cos)
	}
	return AffineTransform{
		M00: cos, M01: -sin,
		M10: sin, M11: cos,
	}
}

// NewRotationAbout creates a rotation by theta radians that keeps the pivot
// (px, py) fixed.
func NewRotationAbout(theta, px, py float64) AffineTransform {
	t := NewRotation(theta)
	t.M02 = px*(1-t.M00) + py*t.M10
	t.M12 = py*(1-t.M00) - px*t.M10
	return t
}

// Multiply returns the transform that applies first and then second.
func Multiply(first, second AffineTransform) AffineTransform {
	return AffineTransform{
		M00: second.M00*first.M00 + second.M01*first.M10,
		M01: second.M00*first.M01 + second.M01*first.M11,
		M02: second.M00*first.M02 + second.M01*first.M12 + second.M02,
		M10: second.M10*first.M00 + second.M11*first.M10,
		M11: second.M10*first.M01 + second.M11*first.M11,
		M12: second.M10*first.M02 + second.M11*first.M12 + second.M12,
	}
}

// Concatenate returns a transform that applies other to the input
// coordinates before t.
func (t AffineTransform) Concatenate(other AffineTransform) AffineTransform {
	return Multiply(other, t)
}

// PreConcatenate returns a transform that applies t first and other after it.
func (t AffineTransform) PreConcatenate(other AffineTransform) AffineTransform {
	return Multiply(t, other)
}

// Translate concatenates a translation.
func (t AffineTransform) Translate(tx, ty float64) AffineTransform {
	return t.Concatenate(NewTranslation(tx, ty))
}

// Scale concatenates a scale.
func (t AffineTransform) Scale(sx, sy float64) AffineTransform {
	return t.Concatenate(NewScale(sx, sy))
}

// Shear concatenates a shear.
func (t AffineTransform) Shear(shx, shy float64) AffineTransform {
	return t.Concatenate(NewShear(shx, shy))
}

// Rotate concatenates a rotation of theta radians.
func (t AffineTransform) Rotate(theta float64) AffineTransform {
	return t.Concatenate(NewRotation(theta))
}

// RotateAbout concatenates a rotation of theta radians around (px, py).
func (t AffineTransform) RotateAbout(theta, px, py float64) AffineTransform {
	return t.Concatenate(NewRotationAbout(theta, px, py))
}

// RotateDegrees concatenates a rotation given in degrees.
func (t AffineTransform) RotateDegrees(degrees float64) AffineTransform {
	return t.Rotate(Radians(degrees))
}

// RotateDegreesAbout concatenates a rotation in degrees around (px, py).
func (t AffineTransform) RotateDegreesAbout(degrees, px, py float64) AffineTransform {
	return t.RotateAbout(Radians(degrees), px, py)
}

// Transform applies the transform to a point.
func (t AffineTransform) Transform(p Point) Point {
	return Point{
		X: p.X*t.M00 + p.Y*t.M01 + t.M02,
		Y: p.X*t.M10 + p.Y*t.M11 + t.M12,
	}
}

// TransformXY applies the transform to the coordinates x, y.
func (t AffineTransform) TransformXY(x, y float64) (float64, float64) {
	return x*t.M00 + y*t.M01 + t.M02, x*t.M10 + y*t.M11 + t.M12
}

// TransformVector applies the linear part only (no translation).
func (t AffineTransform) TransformVector(p Point) Point {
	return Point{
		X: p.X*t.M00 + p.Y*t.M01,
		Y: p.X*t.M10 + p.Y*t.M11,
	}
}

// TransformCoords transforms n points stored as interleaved x,y pairs from
// src[srcOff:] into dst[dstOff:]. src and dst may be the same slice with
// overlapping ranges.
func (t AffineTransform) TransformCoords(src []float64, srcOff int, dst []float64, dstOff int, n int) {
	if n <= 0 {
		return
	}
	step := 2
	if &src[0] == &dst[0] && srcOff < dstOff && dstOff < srcOff+n*2 {
		srcOff += n*2 - 2
		dstOff += n*2 - 2
		step = -2
	}
	for ; n > 0; n-- {
		x, y := src[srcOff], src[srcOff+1]
		dst[dstOff] = x*t.M00 + y*t.M01 + t.M02
		dst[dstOff+1] = x*t.M10 + y*t.M11 + t.M12
		srcOff += step
		dstOff += step
	}
}

// Determinant returns the determinant of the linear part.
func (t AffineTransform) Determinant() float64 {
	return t.M00*t.M11 - t.M01*t.M10
}

// Inverse returns the inverse transform.
// It fails with ErrDegenerateTransform when |det| < 1e-10.
func (t AffineTransform) Inverse() (AffineTransform, error) {
	det := t.Determinant()
	if math.Abs(det) < degenerateEpsilon {
		return AffineTransform{}, ErrDegenerateTransform
	}
	return AffineTransform{
		M00: t.M11 / det,
		M01: -t.M01 / det,
		M02: (t.M01*t.M12 - t.M11*t.M02) / det,
		M10: -t.M10 / det,
		M11: t.M00 / det,
		M12: (t.M10*t.M02 - t.M00*t.M12) / det,
	}, nil
}

// InverseTransform maps a device point back through the transform.
// It fails with ErrDegenerateTransform when |det| < 1e-10.
func (t AffineTransform) InverseTransform(p Point) (Point, error) {
	det := t.Determinant()
	if math.Abs(det) < degenerateEpsilon {
		return Point{}, ErrDegenerateTransform
	}
	x := p.X - t.M02
	y := p.Y - t.M12
	return Point{
		X: (x*t.M11 - y*t.M01) / det,
		Y: (y*t.M00 - x*t.M10) / det,
	}, nil
}

// ScaleFactor returns the geometric mean scale, sqrt(|det|). Stroke widths
// and dash lengths are multiplied by it when mapped to device space.
func (t AffineTransform) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(t.Determinant()))
}

// IsIdentity reports whether t is exactly the identity.
func (t AffineTransform) IsIdentity() bool { return Strict.IsIdentity(t) }

// HasScale reports whether M00 or M11 differs from 1.
func (t AffineTransform) HasScale() bool { return Strict.HasScale(t) }

// HasRotate reports whether M01 or M10 is non-zero.
func (t AffineTransform) HasRotate() bool { return Strict.HasRotate(t) }

// HasTranslate reports whether M02 or M12 is non-zero.
func (t AffineTransform) HasTranslate() bool { return Strict.HasTranslate(t) }

// OnlyTranslate reports whether t is a pure translation.
func (t AffineTransform) OnlyTranslate() bool { return Strict.OnlyTranslate(t) }

// OnlyScale reports whether t is a pure scale.
func (t AffineTransform) OnlyScale() bool { return Strict.OnlyScale(t) }

// OnlyTranslateOrScale reports whether t has no rotation or shear.
func (t AffineTransform) OnlyTranslateOrScale() bool { return Strict.OnlyTranslateOrScale(t) }

// Classifier answers structural questions about a transform, comparing
// coefficients with a tolerance. The zero value compares exactly.
type Classifier struct {
	Epsilon float64
}

// Strict compares coefficients with exact float equality.
var Strict = Classifier{}

// Tolerant accepts coefficients within 1e-9 of the reference value.
var Tolerant = Classifier{Epsilon: 1e-9}

func (c Classifier) equal(a, b float64) bool {
	if c.Epsilon == 0 {
		return a == b
	}
	return math.Abs(a-b) <= c.Epsilon
}

// IsIdentity reports whether t is the identity.
func (c Classifier) IsIdentity(t AffineTransform) bool {
	return !c.HasScale(t) && !c.HasRotate(t) && !c.HasTranslate(t)
}

// HasScale reports whether t scales either axis.
func (c Classifier) HasScale(t AffineTransform) bool {
	return !c.equal(t.M00, 1) || !c.equal(t.M11, 1)
}

// HasRotate reports whether t rotates or shears.
func (c Classifier) HasRotate(t AffineTransform) bool {
	return !c.equal(t.M10, 0) || !c.equal(t.M01, 0)
}

// HasTranslate reports whether t translates.
func (c Classifier) HasTranslate(t AffineTransform) bool {
	return !c.equal(t.M02, 0) || !c.equal(t.M12, 0)
}

// OnlyTranslate reports whether t is a pure translation.
func (c Classifier) OnlyTranslate(t AffineTransform) bool {
	return !c.HasScale(t) && !c.HasRotate(t)
}

// OnlyScale reports whether t is a pure scale.
func (c Classifier) OnlyScale(t AffineTransform) bool {
	return !c.HasRotate(t) && !c.HasTranslate(t)
}

// OnlyTranslateOrScale reports whether t has neither rotation nor shear.
func (c Classifier) OnlyTranslateOrScale(t AffineTransform) bool {
	return !c.HasRotate(t)
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
