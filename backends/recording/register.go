package recording

import "github.com/gogpu/canvas"

// Name is the registry name of the recording backend.
const Name = "recording"

func init() {
	canvas.Register(Name, func() canvas.Backend {
		return New()
	})
}
