package canvas

import "math"

// kappa is the control point distance for a quarter circle of unit radius.
const kappa = 0.5522847498307936

// QuadToCubic elevates the quadratic Bézier (p0, c, p1) to a cubic and returns
// its two control points:
//
//	C1 = 2/3·C + 1/3·P0
//	C2 = 2/3·C + 1/3·P1
func QuadToCubic(p0, c, p1 Point) (c1, c2 Point) {
	c1 = Point{X: c.X*2/3 + p0.X/3, Y: c.Y*2/3 + p0.Y/3}
	c2 = Point{X: c.X*2/3 + p1.X/3, Y: c.Y*2/3 + p1.Y/3}
	return c1, c2
}

// arcWrapLimit bounds the +2π loop in NormalizeArcAngle. Larger magnitudes
// are reduced with math.Mod first, since adding 2π to them changes nothing.
const arcWrapLimit = 1024 * 2 * math.Pi

// NormalizeArcAngle converts an arc angle in degrees (counter-clockwise on
// screen, Y axis pointing down) to radians in the backend convention and wraps
// it into [0, 2π). Every backend must use this exact conversion.
// Non-finite angles yield NaN.
func NormalizeArcAngle(degrees float64) float64 {
	rad := -degrees * math.Pi / 180
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return math.NaN()
	}
	if math.Abs(rad) > arcWrapLimit {
		rad = math.Mod(rad, 2*math.Pi)
	}
	for rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// arcSweep returns the normalized start angle and the signed sweep, in
// radians, of an arc between two angles given in degrees. A positive sweep
// turns clockwise on screen.
func arcSweep(startDeg, endDeg float64, clockwise bool) (start, sweep float64) {
	start = NormalizeArcAngle(startDeg)
	end := NormalizeArcAngle(endDeg)

	if math.Abs(endDeg-startDeg) >= 360 {
		if clockwise {
			return start, 2 * math.Pi
		}
		return start, -2 * math.Pi
	}
	if clockwise {
		for end < start {
			end += 2 * math.Pi
		}
	} else {
		for end > start {
			end -= 2 * math.Pi
		}
	}
	return start, end - start
}

// ellipseTransform maps a circle of radius w/2 centered at the origin onto
// the ellipse inscribed in bounds: scale(1, h/w) followed by a translation to
// the center.
func ellipseTransform(bounds Rect) AffineTransform {
	c := bounds.Center()
	sy := 1.0
	if bounds.W != 0 {
		sy = bounds.H / bounds.W
	}
	return NewTranslation(c.X, c.Y).Concatenate(NewScale(1, sy))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// cubic holds the three trailing points of a cubic Bézier segment.
type cubic struct {
	C1, C2, To Point
}

// arcCubics approximates a circular arc of the given radius around the origin
// with at most quarter-turn cubic segments, mapped through m. It returns the
// mapped start point and the segments.
func arcCubics(radius, start, sweep float64, m AffineTransform) (Point, []cubic) {
	first := m.Transform(Point{X: radius * math.Cos(start), Y: radius * math.Sin(start)})
	if sweep == 0 || radius == 0 || !finite(start) || !finite(sweep) {
		return first, nil
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	half := math.Tan(step / 2)
	alpha := math.Sin(step) * (math.Sqrt(4+3*half*half) - 1) / 3

	out := make([]cubic, 0, n)
	a1 := start
	for i := 0; i < n; i++ {
		a2 := a1 + step
		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)

		p1 := Point{X: radius * cos1, Y: radius * sin1}
		p2 := Point{X: radius * cos2, Y: radius * sin2}
		c1 := Point{X: p1.X - alpha*radius*sin1, Y: p1.Y + alpha*radius*cos1}
		c2 := Point{X: p2.X + alpha*radius*sin2, Y: p2.Y - alpha*radius*cos2}

		out = append(out, cubic{C1: m.Transform(c1), C2: m.Transform(c2), To: m.Transform(p2)})
		a1 = a2
	}
	return first, out
}
