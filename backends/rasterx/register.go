package rasterx

import "github.com/gogpu/canvas"

// Name is the registry name of the rasterx backend.
const Name = "rasterx"

func init() {
	canvas.Register(Name, func() canvas.Backend {
		return New()
	})
}
