package canvas

import (
	"fmt"
	"iter"
	"math"
	"sync/atomic"
)

// SegmentKind identifies a path instruction.
type SegmentKind uint8

const (
	// SegmentMove starts a new sub-path.
	SegmentMove SegmentKind = iota
	// SegmentLine draws a straight line.
	SegmentLine
	// SegmentQuad draws a quadratic Bézier curve.
	SegmentQuad
	// SegmentCubic draws a cubic Bézier curve.
	SegmentCubic
	// SegmentArc draws an elliptical arc inscribed in a bounding box.
	SegmentArc
	// SegmentClose closes the current sub-path.
	SegmentClose
)

var segmentKindNames = [...]string{
	SegmentMove:  "Move",
	SegmentLine:  "Line",
	SegmentQuad:  "Quad",
	SegmentCubic: "Cubic",
	SegmentArc:   "Arc",
	SegmentClose: "Close",
}

func (k SegmentKind) String() string {
	if int(k) < len(segmentKindNames) {
		return segmentKindNames[k]
	}
	return fmt.Sprintf("SegmentKind(%d)", k)
}

// pointCount returns how many points a segment of this kind stores.
func (k SegmentKind) pointCount() int {
	switch k {
	case SegmentMove, SegmentLine:
		return 1
	case SegmentQuad, SegmentArc:
		return 2
	case SegmentCubic:
		return 3
	default:
		return 0
	}
}

// Segment is one path instruction as seen by a consumer.
//
// Points holds, per kind:
//
//	Move, Line: [0] target
//	Quad:       [0] control, [1] end
//	Cubic:      [0] control 1, [1] control 2, [2] end
//	Arc:        [0] top-left, [1] bottom-right of the bounding box
//
// From is the current point before the segment.
type Segment struct {
	Kind   SegmentKind
	From   Point
	Points [3]Point

	// Arc only. Angles are in degrees, counter-clockwise on screen.
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// End returns the current point after the segment. For Close it returns
// From; the sub-path start is tracked by the enumerator.
func (s Segment) End() Point {
	switch s.Kind {
	case SegmentMove, SegmentLine:
		return s.Points[0]
	case SegmentQuad:
		return s.Points[1]
	case SegmentCubic:
		return s.Points[2]
	case SegmentArc:
		return s.arcPoint(true)
	default:
		return s.From
	}
}

// QuadControlPoints returns the cubic control points equivalent to a quad
// segment.
func (s Segment) QuadControlPoints() (c1, c2 Point) {
	return QuadToCubic(s.From, s.Points[0], s.Points[1])
}

// ArcRadians returns both arc angles normalized into [0, 2π).
func (s Segment) ArcRadians() (start, end float64) {
	return NormalizeArcAngle(s.StartAngle), NormalizeArcAngle(s.EndAngle)
}

// ArcBounds returns the bounding box of the full ellipse an arc lies on.
func (s Segment) ArcBounds() Rect {
	return RectFromPoints(s.Points[0], s.Points[1])
}

// ArcCenter returns the center of the arc's ellipse.
func (s Segment) ArcCenter() Point {
	return s.ArcBounds().Center()
}

// ArcRadius returns the horizontal radius of the arc's ellipse.
func (s Segment) ArcRadius() float64 {
	return s.ArcBounds().W / 2
}

// ArcStart returns the point where an arc segment begins.
func (s Segment) ArcStart() Point {
	return s.arcPoint(false)
}

func (s Segment) arcPoint(end bool) Point {
	bounds := s.ArcBounds()
	a, sweep := arcSweep(s.StartAngle, s.EndAngle, s.Clockwise)
	if end {
		a += sweep
	}
	r := bounds.W / 2
	return ellipseTransform(bounds).Transform(Point{X: r * math.Cos(a), Y: r * math.Sin(a)})
}

// PathKey identifies one version of a path. Backends key compiled geometry
// caches by it; any mutation of the path produces a new key.
type PathKey struct {
	ID      uint64
	Version uint64
}

var pathIDs atomic.Uint64

// cursor tracks the pen while segments are appended or enumerated.
type cursor struct {
	start   Point
	current Point
	open    bool
}

func (c *cursor) advance(s *Segment) {
	s.From = c.current
	switch s.Kind {
	case SegmentMove:
		c.start = s.Points[0]
		c.open = true
	case SegmentArc:
		if !c.open {
			c.start = s.ArcStart()
			c.open = true
		}
	case SegmentClose:
		c.current = c.start
		c.open = false
		return
	default:
		if !c.open {
			c.start = c.current
			c.open = true
		}
	}
	c.current = s.End()
}

// Path is an ordered sequence of segments. Only arc segments contribute to
// the angle and direction side tables; the Nth arc owns the Nth entries.
//
// The zero value is an empty path ready to use.
type Path struct {
	kinds        []SegmentKind
	points       []Point
	arcAngles    []float64 // start, end pairs in degrees
	arcClockwise []bool

	pen     cursor
	id      uint64
	version uint64
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		kinds:  make([]SegmentKind, 0, 16),
		points: make([]Point, 0, 32),
	}
}

// ID returns a process-unique identifier, assigned on first use.
func (p *Path) ID() uint64 {
	if p.id == 0 {
		p.id = pathIDs.Add(1)
	}
	return p.id
}

// Key returns the cache key for the current contents of the path.
func (p *Path) Key() PathKey {
	return PathKey{ID: p.ID(), Version: p.version}
}

// Version returns the mutation counter.
func (p *Path) Version() uint64 {
	return p.version
}

func (p *Path) add(s Segment) {
	p.kinds = append(p.kinds, s.Kind)
	p.points = append(p.points, s.Points[:s.Kind.pointCount()]...)
	if s.Kind == SegmentArc {
		p.arcAngles = append(p.arcAngles, s.StartAngle, s.EndAngle)
		p.arcClockwise = append(p.arcClockwise, s.Clockwise)
	}
	p.pen.advance(&s)
	p.version++
}

// ensureOpen starts a sub-path at the current point when none is open.
func (p *Path) ensureOpen() {
	if !p.pen.open {
		p.add(Segment{Kind: SegmentMove, Points: [3]Point{p.pen.current}})
	}
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.add(Segment{Kind: SegmentMove, Points: [3]Point{Pt(x, y)}})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ensureOpen()
	p.add(Segment{Kind: SegmentLine, Points: [3]Point{Pt(x, y)}})
}

// QuadTo draws a quadratic Bézier curve. The start point is the current point.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureOpen()
	p.add(Segment{Kind: SegmentQuad, Points: [3]Point{Pt(cx, cy), Pt(x, y)}})
}

// CubicTo draws a cubic Bézier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureOpen()
	p.add(Segment{Kind: SegmentCubic, Points: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)}})
}

// AddArc appends an arc of the ellipse inscribed in the box (x1, y1)-(x2, y2)
// from startAngle to endAngle, in degrees counter-clockwise on screen.
// A sweep of 360 degrees or more draws the full ellipse. An arc with a NaN
// or infinite angle is dropped.
func (p *Path) AddArc(x1, y1, x2, y2, startAngle, endAngle float64, clockwise bool) {
	if !finite(startAngle) || !finite(endAngle) {
		Logger().Warn("canvas: arc dropped", "start", startAngle, "end", endAngle)
		return
	}
	p.add(Segment{
		Kind:       SegmentArc,
		Points:     [3]Point{Pt(x1, y1), Pt(x2, y2)},
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  clockwise,
	})
}

// Close draws a line back to the start of the current sub-path and ends it.
// It does nothing when no sub-path is open.
func (p *Path) Close() {
	if !p.pen.open {
		return
	}
	p.add(Segment{Kind: SegmentClose})
}

// Reset removes all segments. The path keeps its ID.
func (p *Path) Reset() {
	p.kinds = p.kinds[:0]
	p.points = p.points[:0]
	p.arcAngles = p.arcAngles[:0]
	p.arcClockwise = p.arcClockwise[:0]
	p.pen = cursor{}
	p.version++
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.kinds) == 0
}

// SegmentCount returns the number of segments.
func (p *Path) SegmentCount() int {
	return len(p.kinds)
}

// ArcCount returns the number of arc segments.
func (p *Path) ArcCount() int {
	return len(p.arcClockwise)
}

// CurrentPoint returns the pen position after the last segment.
func (p *Path) CurrentPoint() Point {
	return p.pen.current
}

// IsSubpathOpen reports whether a sub-path is in progress.
func (p *Path) IsSubpathOpen() bool {
	return p.pen.open
}

// FirstPoint returns the first point the path visits, or the origin for an
// empty path.
func (p *Path) FirstPoint() Point {
	for s := range p.Segments() {
		if s.Kind == SegmentArc {
			return s.ArcStart()
		}
		return s.Points[0]
	}
	return Point{}
}

// Segments returns the segments in order. The sequence may be iterated any
// number of times.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var pen cursor
		pi, ai := 0, 0
		for _, k := range p.kinds {
			s := Segment{Kind: k}
			n := k.pointCount()
			copy(s.Points[:n], p.points[pi:pi+n])
			pi += n
			if k == SegmentArc {
				s.StartAngle = p.arcAngles[2*ai]
				s.EndAngle = p.arcAngles[2*ai+1]
				s.Clockwise = p.arcClockwise[ai]
				ai++
			}
			pen.advance(&s)
			if !yield(s) {
				return
			}
		}
	}
}

// Segment returns the segment at index i.
func (p *Path) Segment(i int) (Segment, error) {
	if i < 0 || i >= len(p.kinds) {
		return Segment{}, fmt.Errorf("segment %d of %d: %w", i, len(p.kinds), ErrSegmentIndex)
	}
	j := 0
	for s := range p.Segments() {
		if j == i {
			return s, nil
		}
		j++
	}
	return Segment{}, ErrSegmentIndex
}

// offsets returns the point and arc table positions of segment i.
func (p *Path) offsets(i int) (pointOff, arcOff int) {
	for _, k := range p.kinds[:i] {
		pointOff += k.pointCount()
		if k == SegmentArc {
			arcOff++
		}
	}
	return pointOff, arcOff
}

// InsertSegment inserts s before index i. i may equal SegmentCount to append.
// The From field of s is ignored.
func (p *Path) InsertSegment(i int, s Segment) error {
	if i < 0 || i > len(p.kinds) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(p.kinds), ErrSegmentIndex)
	}
	pointOff, arcOff := p.offsets(i)
	n := s.Kind.pointCount()

	p.kinds = insertAt(p.kinds, i, s.Kind)
	p.points = insertAt(p.points, pointOff, s.Points[:n]...)
	if s.Kind == SegmentArc {
		p.arcAngles = insertAt(p.arcAngles, 2*arcOff, s.StartAngle, s.EndAngle)
		p.arcClockwise = insertAt(p.arcClockwise, arcOff, s.Clockwise)
	}
	p.resync()
	return nil
}

// RemoveSegment deletes the segment at index i.
func (p *Path) RemoveSegment(i int) error {
	if i < 0 || i >= len(p.kinds) {
		return fmt.Errorf("remove %d of %d: %w", i, len(p.kinds), ErrSegmentIndex)
	}
	k := p.kinds[i]
	pointOff, arcOff := p.offsets(i)
	n := k.pointCount()

	p.kinds = append(p.kinds[:i], p.kinds[i+1:]...)
	p.points = append(p.points[:pointOff], p.points[pointOff+n:]...)
	if k == SegmentArc {
		p.arcAngles = append(p.arcAngles[:2*arcOff], p.arcAngles[2*arcOff+2:]...)
		p.arcClockwise = append(p.arcClockwise[:arcOff], p.arcClockwise[arcOff+1:]...)
	}
	p.resync()
	return nil
}

// resync recomputes the pen after an edit in the middle of the path.
func (p *Path) resync() {
	var pen cursor
	for s := range p.Segments() {
		pen.advance(&s)
	}
	p.pen = pen
	p.version++
}

func insertAt[T any](s []T, i int, v ...T) []T {
	s = append(s, v...)
	copy(s[i+len(v):], s[i:])
	copy(s[i:], v)
	return s
}

// Bounds returns the control-point hull of the path. Arcs contribute the
// bounding box of their whole ellipse.
func (p *Path) Bounds() Rect {
	var b bounder
	for s := range p.Segments() {
		switch s.Kind {
		case SegmentArc:
			b.add(s.Points[0])
			b.add(s.Points[1])
		case SegmentClose:
		default:
			for _, pt := range s.Points[:s.Kind.pointCount()] {
				b.add(pt)
			}
		}
	}
	return b.rect()
}

// Clone returns a deep copy of the path with a new identity.
func (p *Path) Clone() *Path {
	return &Path{
		kinds:        append([]SegmentKind(nil), p.kinds...),
		points:       append([]Point(nil), p.points...),
		arcAngles:    append([]float64(nil), p.arcAngles...),
		arcClockwise: append([]bool(nil), p.arcClockwise...),
		pen:          p.pen,
	}
}

// AppendPath appends every segment of q.
func (p *Path) AppendPath(q *Path) {
	for s := range q.Segments() {
		p.add(s)
	}
}

// Transformed returns a new path with every point mapped through t.
// Quads and arcs come back as cubic curves.
func (p *Path) Transformed(t AffineTransform) *Path {
	out := NewPath()
	for s := range (Geometry{Path: p, Transform: t}).DeviceSegments() {
		out.add(s)
	}
	return out
}

// AppendRectangle adds a closed rectangle.
func (p *Path) AppendRectangle(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// AppendRoundedRectangle adds a rectangle with rounded corners. The radius
// is clamped to half the shorter side.
func (p *Path) AppendRoundedRectangle(r Rect, radius float64) {
	radius = math.Min(radius, math.Min(math.Abs(r.W), math.Abs(r.H))/2)
	if radius <= 0 {
		p.AppendRectangle(r)
		return
	}
	k := radius * (1 - kappa)
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()

	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.CubicTo(x1-k, y0, x1, y0+k, x1, y0+radius)
	p.LineTo(x1, y1-radius)
	p.CubicTo(x1, y1-k, x1-k, y1, x1-radius, y1)
	p.LineTo(x0+radius, y1)
	p.CubicTo(x0+k, y1, x0, y1-k, x0, y1-radius)
	p.LineTo(x0, y0+radius)
	p.CubicTo(x0, y0+k, x0+k, y0, x0+radius, y0)
	p.Close()
}

// AppendEllipse adds the ellipse inscribed in r. It is built as a circle of
// radius W/2 scaled vertically by H/W around the center.
func (p *Path) AppendEllipse(r Rect) {
	m := ellipseTransform(r)
	rad := r.W / 2
	k := rad * kappa
	pt := func(x, y float64) Point { return m.Transform(Pt(x, y)) }

	start := pt(rad, 0)
	p.MoveTo(start.X, start.Y)
	quadrants := [4][3]Point{
		{pt(rad, k), pt(k, rad), pt(0, rad)},
		{pt(-k, rad), pt(-rad, k), pt(-rad, 0)},
		{pt(-rad, -k), pt(-k, -rad), pt(0, -rad)},
		{pt(k, -rad), pt(rad, -k), pt(rad, 0)},
	}
	for _, q := range quadrants {
		p.CubicTo(q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y)
	}
	p.Close()
}

// AppendCircle adds a circle.
func (p *Path) AppendCircle(cx, cy, radius float64) {
	p.AppendEllipse(Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius})
}

// AppendArc adds an arc of the ellipse inscribed in r. When closed is set the
// chord back to the arc start closes the sub-path.
func (p *Path) AppendArc(r Rect, startAngle, endAngle float64, clockwise, closed bool) {
	p.AddArc(r.X, r.Y, r.Right(), r.Bottom(), startAngle, endAngle, clockwise)
	if closed {
		p.Close()
	}
}

// bounder accumulates a bounding box.
type bounder struct {
	min, max Point
	any      bool
}

func (b *bounder) add(p Point) {
	if !b.any {
		b.min, b.max, b.any = p, p, true
		return
	}
	b.min.X = math.Min(b.min.X, p.X)
	b.min.Y = math.Min(b.min.Y, p.Y)
	b.max.X = math.Max(b.max.X, p.X)
	b.max.Y = math.Max(b.max.Y, p.Y)
}

func (b *bounder) rect() Rect {
	if !b.any {
		return Rect{}
	}
	return RectFromPoints(b.min, b.max)
}
