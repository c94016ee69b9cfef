package recording

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/canvas"
)

// ErrNotFinished is returned by Recording when no paint pass has ended yet.
var ErrNotFinished = errors.New("recording: no finished pass")

// Ensure Backend implements canvas.Backend.
var _ canvas.Backend = (*Backend)(nil)

// Backend captures every capability call of a paint pass as a typed
// command. Begin starts a new recording; End seals it.
//
//	b := recording.New()
//	c, _ := canvas.New(b, 800, 600)
//	_ = c.Redraw(canvas.Rect{}, scene)
//	r, _ := b.Recording()
//	_ = r.Playback(other)
//
// The Backend is not safe for concurrent use.
type Backend struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	depth         int
	finished      *Recording
}

// New creates an idle recording backend.
func New() *Backend {
	return &Backend{resources: NewResourcePool()}
}

// Begin implements canvas.Backend. It discards any unfinished pass.
func (b *Backend) Begin(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("recording: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.commands = make([]Command, 0, 256)
	b.resources = NewResourcePool()
	b.depth = 0
	return nil
}

// End implements canvas.Backend.
func (b *Backend) End() error {
	b.finished = &Recording{
		width:     b.width,
		height:    b.height,
		commands:  b.commands,
		resources: b.resources,
	}
	b.commands = nil
	b.resources = NewResourcePool()
	return nil
}

// Save implements canvas.Backend.
func (b *Backend) Save() {
	b.depth++
	b.commands = append(b.commands, SaveCommand{})
}

// Restore implements canvas.Backend. Unbalanced restores are not recorded.
func (b *Backend) Restore() {
	if b.depth == 0 {
		return
	}
	b.depth--
	b.commands = append(b.commands, RestoreCommand{})
}

// Fill implements canvas.Backend.
func (b *Backend) Fill(g canvas.Geometry, paint canvas.ResolvedPaint, style canvas.FillStyle) error {
	if paint == nil {
		return fmt.Errorf("recording: fill without paint: %w", canvas.ErrInvalidPaint)
	}
	b.commands = append(b.commands, FillCommand{
		Path:      b.resources.AddPath(g.Path),
		Transform: g.Transform,
		Paint:     b.resources.AddPaint(paint),
		Style:     cloneFill(style),
	})
	return nil
}

// Stroke implements canvas.Backend.
func (b *Backend) Stroke(g canvas.Geometry, style canvas.StrokeStyle) error {
	style.Composite = cloneComposite(style.Composite)
	style.Dash = append([]float64(nil), style.Dash...)
	b.commands = append(b.commands, StrokeCommand{
		Path:      b.resources.AddPath(g.Path),
		Transform: g.Transform,
		Style:     style,
	})
	return nil
}

// Clip implements canvas.Backend.
func (b *Backend) Clip(g canvas.Geometry, mode canvas.WindingMode) error {
	b.commands = append(b.commands, ClipCommand{
		Path:      b.resources.AddPath(g.Path),
		Transform: g.Transform,
		Mode:      mode,
	})
	return nil
}

// DrawText implements canvas.Backend.
func (b *Backend) DrawText(run canvas.TextRun) error {
	run.Composite = cloneComposite(run.Composite)
	b.commands = append(b.commands, DrawTextCommand{Run: run})
	return nil
}

// DrawImage implements canvas.Backend.
func (b *Backend) DrawImage(img image.Image, dst canvas.Rect, style canvas.ImageStyle) error {
	if img == nil {
		return fmt.Errorf("recording: nil image: %w", canvas.ErrInvalidPaint)
	}
	style.Composite = cloneComposite(style.Composite)
	b.commands = append(b.commands, DrawImageCommand{
		Image: b.resources.AddImage(img),
		Dst:   dst,
		Style: style,
	})
	return nil
}

// Recording returns the last finished pass.
func (b *Backend) Recording() (*Recording, error) {
	if b.finished == nil {
		return nil, ErrNotFinished
	}
	return b.finished, nil
}

func cloneComposite(c canvas.Composite) canvas.Composite {
	if c.Shadow != nil {
		s := *c.Shadow
		c.Shadow = &s
	}
	return c
}

func cloneFill(s canvas.FillStyle) canvas.FillStyle {
	s.Composite = cloneComposite(s.Composite)
	return s
}

// Recording is an immutable container for the commands of one pass.
// It can be replayed to any canvas.Backend.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recorded surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend. Errors from
// individual commands are collected and returned after End.
func (r *Recording) Playback(backend canvas.Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	var errs []error
	geometry := func(ref PathRef, t canvas.AffineTransform) canvas.Geometry {
		return canvas.Geometry{Path: r.resources.GetPath(ref), Transform: t}
	}
	for _, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case ClipCommand:
			err = backend.Clip(geometry(c.Path, c.Transform), c.Mode)
		case FillCommand:
			err = backend.Fill(geometry(c.Path, c.Transform), r.resources.GetPaint(c.Paint), c.Style)
		case StrokeCommand:
			err = backend.Stroke(geometry(c.Path, c.Transform), c.Style)
		case DrawTextCommand:
			err = backend.DrawText(c.Run)
		case DrawImageCommand:
			err = backend.DrawImage(r.resources.GetImage(c.Image), c.Dst, c.Style)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("recording: playback %s: %w", cmd.Type(), err))
		}
	}

	errs = append(errs, backend.End())
	return errors.Join(errs...)
}
