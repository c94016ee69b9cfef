// Package canvas provides an immediate-mode 2D drawing canvas over pluggable
// native renderers.
//
// # Overview
//
// A Canvas keeps a stack of drawing states (colors, stroke settings, font,
// compositing, transform and clip) and turns every draw call into
// device-space geometry and a resolved paint for a Backend. The canvas owns
// all policy: stroke location, clip-then-paint fills for gradients,
// patterns and images, shadow composition and text alignment. Backends only
// translate the result into native calls.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/canvas"
//	    _ "github.com/gogpu/canvas/backends/rasterx"
//	)
//
//	c, err := canvas.NewNamed("rasterx", 512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	err = c.Redraw(canvas.Rect{}, canvas.DrawableFunc(func(c *canvas.Canvas, _ canvas.Rect) error {
//	    c.SetFillColor(canvas.Hex("#3366cc"))
//	    c.SetStrokeSize(4)
//	    c.SetStrokeLocation(canvas.StrokeInside)
//	    if err := c.FillRectangle(10, 10, 200, 100); err != nil {
//	        return err
//	    }
//	    return c.DrawRectangle(10, 10, 200, 100)
//	}))
//
// # Backends
//
// Backends register themselves by name in init, database/sql style:
//   - rasterx: software scan conversion into an *image.RGBA
//   - cairo: Cairo image surfaces
//   - recording: captures draw commands for replay and tests
//
// # Coordinate System
//
// Origin (0,0) at the top-left, X to the right and Y down. Transforms are
// built like a native toolkit's: Translate, Scale and Rotate apply before
// the current transform, so the last call acts on the geometry first. Arc
// angles are degrees, counterclockwise from the positive X axis, and are
// normalized to radians in [0, 2π) before a backend sees them.
//
// # Errors
//
// Math and paint errors surface from the call that failed. A backend that
// cannot honor a capability draws a documented fallback and returns an
// error wrapping ErrUnsupported; the canvas logs each such feature once and
// carries on unless WithStrictUnsupported is set.
package canvas
