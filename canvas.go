package canvas

import (
	"errors"
	"fmt"
	"io"
)

// Canvas is an immediate-mode 2D drawing surface. It owns a stack of
// drawing states and turns every draw call into device-space geometry and a
// resolved paint for its Backend.
//
// A Canvas is not safe for concurrent use. One goroutine owns it, the way a
// native toolkit owns its drawing context.
type Canvas struct {
	backend Backend
	width   int
	height  int
	stack   *StateStack
	opts    options

	// warned holds the unsupported features already logged.
	warned map[string]bool
	closed bool
}

// Ensure Canvas implements io.Closer
var _ io.Closer = (*Canvas)(nil)

// New creates a canvas drawing to b on a surface of the given size.
//
//	b, _ := canvas.NewBackend("rasterx")
//	c, err := canvas.New(b, 800, 600)
func New(b Backend, width, height int, opts ...Option) (*Canvas, error) {
	if b == nil {
		return nil, ErrNoBackend
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		backend: b,
		width:   width,
		height:  height,
		stack:   NewStateStack(o.defaults.state(float64(width), float64(height))),
		opts:    o,
		warned:  make(map[string]bool),
	}, nil
}

// NewNamed creates a canvas over a new instance of the registered backend.
func NewNamed(name string, width, height int, opts ...Option) (*Canvas, error) {
	b, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	return New(b, width, height, opts...)
}

// Backend returns the backend the canvas draws to.
func (c *Canvas) Backend() Backend { return c.backend }

// Width returns the surface width in device units.
func (c *Canvas) Width() int { return c.width }

// Height returns the surface height in device units.
func (c *Canvas) Height() int { return c.height }

// State returns a copy of the current drawing state.
func (c *Canvas) State() CanvasState { return c.stack.Top().Clone() }

// Depth returns the number of saved states.
func (c *Canvas) Depth() int { return c.stack.Depth() }

// top returns the mutable current state.
func (c *Canvas) top() *CanvasState { return c.stack.Top() }

// SetBackend replaces the native context, for example after the host
// recreated its surface. The previous backend's cached native handles are
// released and the state stack returns to the base state.
func (c *Canvas) SetBackend(b Backend) error {
	if b == nil {
		return ErrNoBackend
	}
	err := closeBackend(c.backend)
	c.backend = b
	c.closed = false
	c.resetStack()
	clear(c.warned)
	return err
}

// Resize changes the surface size. Backends that cache handles tied to the
// surface are invalidated and the state stack returns to the base state.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
	if inv, ok := c.backend.(Invalidator); ok {
		inv.Invalidate()
	}
	c.resetStack()
}

// Close releases the backend's cached native handles.
// It is safe to call Close multiple times.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return closeBackend(c.backend)
}

func closeBackend(b Backend) error {
	cl, ok := b.(io.Closer)
	if !ok {
		return nil
	}
	if err := cl.Close(); err != nil {
		Logger().Warn("canvas: release backend", "err", err)
		return fmt.Errorf("canvas: release backend: %w", err)
	}
	return nil
}

func (c *Canvas) resetStack() {
	c.stack.Reset(c.opts.defaults.state(float64(c.width), float64(c.height)))
}

// Drawable is the client code run by Redraw.
type Drawable interface {
	Draw(c *Canvas, dirty Rect) error
}

// DrawableFunc adapts a function to Drawable.
type DrawableFunc func(c *Canvas, dirty Rect) error

// Draw calls f(c, dirty).
func (f DrawableFunc) Draw(c *Canvas, dirty Rect) error { return f(c, dirty) }

// Redraw runs one full paint pass: it begins the backend, starts from the
// base state clipped to dirty, draws d and unwinds every state d left
// saved. An empty dirty rectangle repaints the whole surface.
func (c *Canvas) Redraw(dirty Rect, d Drawable) error {
	if c.closed {
		return fmt.Errorf("canvas: redraw after close: %w", ErrNoBackend)
	}
	if err := c.backend.Begin(c.width, c.height); err != nil {
		return fmt.Errorf("canvas: begin: %w", err)
	}
	Logger().Debug("canvas: begin", "width", c.width, "height", c.height, "dirty", dirty)
	c.resetStack()

	bounds := Rect{W: float64(c.width), H: float64(c.height)}
	if dirty.IsEmpty() {
		dirty = bounds
	}

	c.Save()
	err := c.ClipRectangle(dirty.X, dirty.Y, dirty.W, dirty.H)
	if err == nil {
		err = d.Draw(c, dirty)
	}
	for c.stack.Depth() > 0 {
		_ = c.Restore()
	}

	endErr := c.backend.End()
	Logger().Debug("canvas: end", "err", errors.Join(err, endErr))
	if endErr != nil {
		endErr = fmt.Errorf("canvas: end: %w", endErr)
	}
	return errors.Join(err, endErr)
}

// Save pushes a copy of the current state, transform and clip included.
func (c *Canvas) Save() {
	c.stack.Push()
	c.backend.Save()
	Logger().Debug("canvas: save", "depth", c.stack.Depth())
}

// Restore discards the current state. With only the base state left it
// returns ErrStateUnderflow and changes nothing.
func (c *Canvas) Restore() error {
	if err := c.stack.Pop(); err != nil {
		return err
	}
	c.backend.Restore()
	Logger().Debug("canvas: restore", "depth", c.stack.Depth())
	return nil
}

// ResetState unwinds every saved state and resets the attributes of the
// base state to the defaults. The clip bounds are kept.
func (c *Canvas) ResetState() {
	for c.stack.Depth() > 0 {
		_ = c.Restore()
	}
	clip := c.top().ClipBounds
	c.resetStack()
	c.top().ClipBounds = clip
}

// handle reports err to the caller unless it only says the backend degraded
// an unsupported capability. Those are logged once per feature.
func (c *Canvas) handle(err error) error {
	if err == nil || c.opts.strict {
		return err
	}
	var rest []error
	for _, e := range flatten(err) {
		if !errors.Is(e, ErrUnsupported) {
			rest = append(rest, e)
			continue
		}
		key := e.Error()
		var ue *UnsupportedError
		if errors.As(e, &ue) {
			key = ue.Backend + "/" + ue.Feature
		}
		if !c.warned[key] {
			c.warned[key] = true
			Logger().Warn("canvas: unsupported capability", "feature", key, "err", e)
		}
	}
	return errors.Join(rest...)
}

// flatten splits errors created by errors.Join.
func flatten(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

// composite returns the compositing attributes of the current state.
func (c *Canvas) composite() Composite {
	s := c.top()
	return Composite{
		Alpha:     s.Alpha,
		Blend:     s.BlendMode,
		Antialias: s.Antialias,
		Shadow:    s.Shadow.clone(),
	}
}

// geometry pairs p with the current transform.
func (c *Canvas) geometry(p *Path) Geometry {
	return Geometry{Path: p, Transform: c.top().Transform}
}
