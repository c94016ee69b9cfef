package cairo

import "github.com/gogpu/canvas"

// Name is the registry name of the cairo backend.
const Name = "cairo"

func init() {
	canvas.Register(Name, func() canvas.Backend {
		return New()
	})
}
