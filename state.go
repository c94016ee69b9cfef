package canvas

// CanvasState is the set of drawing attributes in effect. Exactly one state
// is current: the top of a StateStack.
type CanvasState struct {
	FillColor RGBA
	// FillPaint is the active non-flat fill, resolved in local coordinates.
	// nil means FillColor is used. Setting either clears the other.
	FillPaint ResolvedPaint

	StrokeColor        RGBA
	StrokeSize         float64
	LineCap            LineCap
	LineJoin           LineJoin
	MiterLimit         float64
	Dash               *Dash // lengths in multiples of StrokeSize; nil is solid
	StrokeLocation     StrokeLocation
	LimitStrokeScaling bool
	StrokeLimit        float64 // minimum device stroke size when LimitStrokeScaling is set

	FontName  string
	FontSize  float64
	FontColor RGBA

	Alpha     float64
	BlendMode BlendMode
	Antialias bool
	Shadow    *Shadow

	Transform AffineTransform
	// ClipBounds is the device-space bounding box of the active clip.
	ClipBounds Rect
}

// Clone returns a deep copy. Mutable sub-fields are never shared.
func (s *CanvasState) Clone() CanvasState {
	c := *s
	c.Dash = s.Dash.Clone()
	c.Shadow = s.Shadow.clone()
	if g, ok := s.FillPaint.(GradientRamp); ok {
		g.Stops = append([]ColorStop(nil), g.Stops...)
		c.FillPaint = g
	}
	return c
}

// DeviceStrokeSize returns the stroke width in device units. When
// LimitStrokeScaling is set and the scaled size would fall below StrokeLimit,
// the size is raised so it maps to exactly StrokeLimit.
func (s *CanvasState) DeviceStrokeSize() float64 {
	return s.effectiveStrokeSize() * s.Transform.ScaleFactor()
}

func (s *CanvasState) effectiveStrokeSize() float64 {
	size := s.StrokeSize
	if s.LimitStrokeScaling {
		scale := s.Transform.ScaleFactor()
		if scale > 0 && scale*size < s.StrokeLimit {
			size = s.StrokeLimit / scale
		}
	}
	return size
}

// DeviceDash returns the dash lengths in device units: each entry multiplied
// by the effective stroke size and the transform scale. It is computed from
// the current transform on every call. A solid stroke returns nil.
func (s *CanvasState) DeviceDash() (lengths []float64, offset float64) {
	if !s.Dash.IsDashed() {
		return nil, 0
	}
	d := s.Dash.Scale(s.effectiveStrokeSize() * s.Transform.ScaleFactor())
	return d.Even(), d.Offset
}

// StateStack is a stack of canvas states with a base that is never popped.
//
// Restore policy: Pop on a stack holding only the base state returns
// ErrStateUnderflow and leaves the stack unchanged. It never panics.
type StateStack struct {
	states []CanvasState
}

// NewStateStack creates a stack whose base is a copy of base.
func NewStateStack(base CanvasState) *StateStack {
	s := &StateStack{states: make([]CanvasState, 0, 8)}
	s.states = append(s.states, base.Clone())
	return s
}

// Top returns the current state. Setters mutate it in place.
func (s *StateStack) Top() *CanvasState {
	return &s.states[len(s.states)-1]
}

// Depth returns the number of states above the base.
func (s *StateStack) Depth() int {
	return len(s.states) - 1
}

// Push duplicates the current state.
func (s *StateStack) Push() {
	s.states = append(s.states, s.Top().Clone())
}

// Pop discards the current state, restoring the one below it.
func (s *StateStack) Pop() error {
	if len(s.states) <= 1 {
		return ErrStateUnderflow
	}
	s.states[len(s.states)-1] = CanvasState{}
	s.states = s.states[:len(s.states)-1]
	return nil
}

// Reset drops every pushed state and replaces the base with base.
func (s *StateStack) Reset(base CanvasState) {
	clear(s.states)
	s.states = append(s.states[:0], base.Clone())
}
