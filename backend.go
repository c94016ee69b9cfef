package canvas

import "image"

// Backend is the capability set a native renderer provides to a Canvas.
// The canvas resolves state, paint and stroke policy before calling it, so a
// backend only converts device-space geometry into native calls.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using canvas.Register()
//  2. Keep its own native state stack for Save/Restore (clip, compositing)
//  3. Reproduce NormalizeArcAngle and QuadToCubic exactly when it consumes
//     raw Path segments instead of Geometry.DeviceSegments
//  4. Degrade a capability it cannot honor to a documented fallback and
//     return an error wrapping ErrUnsupported
//  5. Cache compiled geometry per backend, keyed by Path.Key, and release
//     the cache in Close (io.Closer) when it holds native handles
//
// A backend is used by one goroutine at a time.
type Backend interface {
	// Begin starts a paint pass on a surface of the given size.
	Begin(width, height int) error

	// End finishes the pass.
	End() error

	// Save pushes the native clip and compositing state.
	Save()

	// Restore pops the native state. With nothing saved it is a no-op.
	Restore()

	// Fill fills geometry with a resolved paint. Gradient ramps and tiles
	// arrive in device space.
	Fill(g Geometry, paint ResolvedPaint, style FillStyle) error

	// Stroke strokes geometry. Width and dash lengths are in device units.
	Stroke(g Geometry, style StrokeStyle) error

	// Clip intersects the current clip with geometry.
	Clip(g Geometry, mode WindingMode) error

	// DrawText draws a single line of text.
	DrawText(run TextRun) error

	// DrawImage draws img into dst, given in local coordinates.
	DrawImage(img image.Image, dst Rect, style ImageStyle) error
}

// Composite holds the compositing attributes shared by every draw call.
type Composite struct {
	Alpha     float64
	Blend     BlendMode
	Antialias bool
	Shadow    *Shadow // nil disables the shadow
}

// FillStyle configures Backend.Fill.
type FillStyle struct {
	Composite
	Winding WindingMode
}

// StrokeStyle configures Backend.Stroke.
type StrokeStyle struct {
	Composite
	Color      RGBA
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64 // even length; nil is solid
	DashOffset float64
}

// ImageStyle configures Backend.DrawImage.
type ImageStyle struct {
	Composite
	Transform AffineTransform
}

// TextRun is one line of text anchored at Origin, the left end of the
// baseline in local coordinates.
type TextRun struct {
	Composite
	Text      string
	Origin    Point
	FontName  string
	FontSize  float64
	Color     RGBA
	Transform AffineTransform
}

// Invalidator is implemented by backends that cache native handles tied to
// one surface. Invalidate drops them; they are rebuilt on demand.
type Invalidator interface {
	Invalidate()
}
