// Package cairo provides a canvas backend drawing through the pure Go cairo
// port github.com/novvoo/go-cairo.
//
// Device-space geometry is replayed as cairo paths on an identity matrix.
// Gradients map to cairo linear and radial patterns, pattern tiles and
// images to repeating surface patterns. Blend modes map to cairo operators;
// PlusDarker has no operator and falls back to source-over, reporting
// canvas.ErrUnsupported. Shadows are blurred in software.
//
// # Basic Usage
//
//	import "github.com/gogpu/canvas/backends/cairo"
//
//	b := cairo.New()
//	defer b.Close()
//	c, _ := canvas.New(b, 320, 240)
//	_ = c.Redraw(canvas.Rect{}, scene)
//	png.Encode(w, b.Image())
//
// The package registers itself as "cairo" in the canvas backend registry.
package cairo
