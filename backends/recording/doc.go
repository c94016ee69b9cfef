// Package recording provides a canvas backend that captures drawing as
// commands instead of pixels.
//
// Every Backend capability call becomes a typed command (SaveCommand,
// ClipCommand, FillCommand, StrokeCommand, DrawTextCommand, ...). Paths,
// paints and images are stored in a ResourcePool and referenced by typed
// handles. Paths are deduplicated by canvas.PathKey, the same key native
// backends use for their compiled geometry caches.
//
// # Basic Usage
//
//	import "github.com/gogpu/canvas/backends/recording"
//
//	b := recording.New()
//	c, _ := canvas.New(b, 800, 600)
//	_ = c.Redraw(canvas.Rect{}, canvas.DrawableFunc(func(c *canvas.Canvas, _ canvas.Rect) error {
//	    c.SetFillColor(canvas.Red)
//	    return c.FillRectangle(10, 10, 100, 50)
//	}))
//	r, _ := b.Recording()
//	fmt.Println(r.Count(recording.CmdFill))
//
// # Playback
//
// A Recording replays to any other backend:
//
//	raster, _ := canvas.NewBackend("rasterx")
//	err := r.Playback(raster)
//
// The package registers itself as "recording" in the canvas backend
// registry.
package recording
