package canvas

import (
	"fmt"
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// GradientKind distinguishes linear and radial ramps.
type GradientKind int

const (
	// GradientLinear interpolates along the Start-End line.
	GradientLinear GradientKind = iota
	// GradientRadial interpolates outward from Focal to the circle at End.
	GradientRadial
)

func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "Linear"
	case GradientRadial:
		return "Radial"
	default:
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns a copy of stops ordered by offset. Stops sharing an
// offset keep their relative order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// GradientRamp is a resolved gradient: sorted stops positioned in the
// coordinate space the ramp was resolved in.
type GradientRamp struct {
	Kind   GradientKind
	Stops  []ColorStop
	Start  Point
	End    Point
	Focal  Point
	Radius float64 // radial only, |End-Start|
	Extend ExtendMode
}

func (GradientRamp) isResolvedPaint() {}

// ColorAt returns the ramp color at parameter t.
func (g GradientRamp) ColorAt(t float64) RGBA {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = applyExtendMode(t, g.Extend)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return s1.Color.Lerp(s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

// MinAlpha returns the smallest stop alpha. The shadow pre-fill pass paints
// with it so the shadow sits under the most transparent part of the ramp.
func (g GradientRamp) MinAlpha() float64 {
	if len(g.Stops) == 0 {
		return 0
	}
	a := g.Stops[0].Color.A
	for _, s := range g.Stops[1:] {
		a = math.Min(a, s.Color.A)
	}
	return a
}

// Transformed maps the ramp geometry through t. The radius scales by
// t.ScaleFactor().
func (g GradientRamp) Transformed(t AffineTransform) GradientRamp {
	g.Start = t.Transform(g.Start)
	g.End = t.Transform(g.End)
	g.Focal = t.Transform(g.Focal)
	g.Radius *= t.ScaleFactor()
	return g
}
