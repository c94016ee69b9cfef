package canvas

import (
	"fmt"
	"image"
	"math"
)

// Paint describes what a fill is painted with.
// This is a sealed interface - only types in this package implement it.
//
// Supported paint types:
//   - SolidPaint: a single color
//   - LinearGradientPaint, RadialGradientPaint: color ramps
//   - PatternPaint: a tile drawn by a Pattern
//   - ImagePaint: a bitmap tiled across the shape
//
// Gradient points are fractions of the bounds the paint is resolved
// against: (0,0) is the top-left corner and (1,1) the bottom-right.
type Paint interface {
	// paintMarker seals the interface.
	paintMarker()
}

// SolidPaint fills with one color.
type SolidPaint struct {
	Color RGBA
}

// LinearGradientPaint fills with a ramp along the Start-End line.
type LinearGradientPaint struct {
	Start, End Point
	Stops      []ColorStop
	Extend     ExtendMode
}

// RadialGradientPaint fills with a ramp from Focal to the circle centered at
// Start passing through End. A nil Focal means Start.
type RadialGradientPaint struct {
	Start, End Point
	Focal      *Point
	Stops      []ColorStop
	Extend     ExtendMode
}

// PatternPaint tiles a Pattern drawn in the Foreground color.
type PatternPaint struct {
	Pattern    Pattern
	Foreground RGBA
}

// ImagePaint tiles an image.
type ImagePaint struct {
	Image image.Image
}

func (SolidPaint) paintMarker()          {}
func (LinearGradientPaint) paintMarker() {}
func (RadialGradientPaint) paintMarker() {}
func (PatternPaint) paintMarker()        {}
func (ImagePaint) paintMarker()          {}

// ResolvedPaint is the fill source a backend receives: exactly one of
// FlatColor, GradientRamp, TiledPattern or ImageTile.
type ResolvedPaint interface {
	isResolvedPaint()
}

// FlatColor fills with a single color.
type FlatColor struct {
	Color RGBA
}

// TiledPattern repeats a pattern tile every StepX, StepY starting at Offset.
// Transform maps tile space to device space.
type TiledPattern struct {
	Pattern    Pattern
	Foreground RGBA
	Offset     Point
	StepX      float64
	StepY      float64
	Transform  AffineTransform
}

// ImageTile repeats an image every StepX, StepY starting at Offset.
// Transform maps image space to device space.
type ImageTile struct {
	Image     image.Image
	Offset    Point
	StepX     float64
	StepY     float64
	Transform AffineTransform
}

func (FlatColor) isResolvedPaint()    {}
func (TiledPattern) isResolvedPaint() {}
func (ImageTile) isResolvedPaint()    {}

// ResolveFillPaint turns a paint into the concrete source used to fill a
// shape with the given bounds. A nil paint resolves to white.
//
// A gradient without stops fails with ErrInvalidPaint; a gradient with one
// stop resolves to that stop's color. Pattern and image paints without a
// source fail with ErrInvalidPaint.
func ResolveFillPaint(paint Paint, bounds Rect) (ResolvedPaint, error) {
	at := func(f Point) Point {
		return Point{X: bounds.X + f.X*bounds.W, Y: bounds.Y + f.Y*bounds.H}
	}

	switch p := paint.(type) {
	case nil:
		return FlatColor{Color: White}, nil
	case SolidPaint:
		return FlatColor{Color: p.Color}, nil
	case LinearGradientPaint:
		if flat, err := degenerateStops(p.Stops); flat != nil || err != nil {
			return flat, err
		}
		start := at(p.Start)
		return GradientRamp{
			Kind:   GradientLinear,
			Stops:  sortStops(p.Stops),
			Start:  start,
			End:    at(p.End),
			Focal:  start,
			Extend: p.Extend,
		}, nil
	case RadialGradientPaint:
		if flat, err := degenerateStops(p.Stops); flat != nil || err != nil {
			return flat, err
		}
		start, end := at(p.Start), at(p.End)
		focal := start
		if p.Focal != nil {
			focal = at(*p.Focal)
		}
		return GradientRamp{
			Kind:   GradientRadial,
			Stops:  sortStops(p.Stops),
			Start:  start,
			End:    end,
			Focal:  focal,
			Radius: start.Distance(end),
			Extend: p.Extend,
		}, nil
	case PatternPaint:
		if nilPattern(p.Pattern) {
			return nil, fmt.Errorf("pattern paint without pattern: %w", ErrInvalidPaint)
		}
		return TiledPattern{
			Pattern:    p.Pattern,
			Foreground: p.Foreground,
			Offset:     bounds.Min(),
			StepX:      patternStep(p.Pattern.StepX(), p.Pattern.Width()),
			StepY:      patternStep(p.Pattern.StepY(), p.Pattern.Height()),
			Transform:  NewTranslation(bounds.X, bounds.Y),
		}, nil
	case ImagePaint:
		if p.Image == nil {
			return nil, fmt.Errorf("image paint without image: %w", ErrInvalidPaint)
		}
		size := p.Image.Bounds().Size()
		return ImageTile{
			Image:     p.Image,
			Offset:    bounds.Min(),
			StepX:     float64(size.X),
			StepY:     float64(size.Y),
			Transform: NewTranslation(bounds.X, bounds.Y),
		}, nil
	default:
		return nil, fmt.Errorf("paint %T: %w", paint, ErrInvalidPaint)
	}
}

// degenerateStops handles gradients with fewer than two stops.
func degenerateStops(stops []ColorStop) (ResolvedPaint, error) {
	switch len(stops) {
	case 0:
		return nil, fmt.Errorf("gradient without stops: %w", ErrInvalidPaint)
	case 1:
		return FlatColor{Color: stops[0].Color}, nil
	}
	return nil, nil
}

func patternStep(step, size float64) float64 {
	if step <= 0 || math.IsNaN(step) {
		return size
	}
	return step
}

// toDevice maps a paint resolved in local coordinates to device space.
func toDevice(rp ResolvedPaint, t AffineTransform) ResolvedPaint {
	switch p := rp.(type) {
	case GradientRamp:
		return p.Transformed(t)
	case TiledPattern:
		p.Transform = t.Concatenate(p.Transform)
		return p
	case ImageTile:
		p.Transform = t.Concatenate(p.Transform)
		return p
	default:
		return rp
	}
}
