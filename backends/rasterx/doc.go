// Package rasterx provides a software canvas backend built on
// github.com/srwiley/rasterx.
//
// Paths are scanned with rasterx fillers and dashers into a scratch layer,
// then composited onto an *image.RGBA surface through the current clip mask,
// global alpha and blend mode. Gradients use rasterx gradient color
// functions; patterns and images are sampled per pixel. Text is drawn from
// unhinted glyph outlines, so any transform applies to it.
//
// # Basic Usage
//
//	import "github.com/gogpu/canvas/backends/rasterx"
//
//	b := rasterx.New()
//	c, _ := canvas.New(b, 320, 240)
//	_ = c.Redraw(canvas.Rect{}, scene)
//	png.Encode(w, b.Image())
//
// Antialiasing cannot be disabled for paths; such calls draw antialiased
// and report canvas.ErrUnsupported. Image draws honor it with nearest
// neighbor sampling.
//
// The package registers itself as "rasterx" in the canvas backend registry.
package rasterx
