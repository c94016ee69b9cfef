package canvas

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func kinds(p *Path) []SegmentKind {
	var out []SegmentKind
	for s := range p.Segments() {
		out = append(out, s.Kind)
	}
	return out
}

func deviceKinds(g Geometry) []SegmentKind {
	var out []SegmentKind
	for s := range g.DeviceSegments() {
		out = append(out, s.Kind)
	}
	return out
}

func TestPathImplicitMove(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  []SegmentKind
	}{
		{"line", func(p *Path) { p.LineTo(10, 10) }, []SegmentKind{SegmentMove, SegmentLine}},
		{"quad", func(p *Path) { p.QuadTo(1, 1, 2, 0) }, []SegmentKind{SegmentMove, SegmentQuad}},
		{"cubic", func(p *Path) { p.CubicTo(1, 1, 2, 1, 3, 0) }, []SegmentKind{SegmentMove, SegmentCubic}},
		{"after close", func(p *Path) {
			p.MoveTo(0, 0)
			p.LineTo(5, 0)
			p.Close()
			p.LineTo(5, 5)
		}, []SegmentKind{SegmentMove, SegmentLine, SegmentClose, SegmentMove, SegmentLine}},
		{"close without subpath", func(p *Path) { p.Close() }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			if got := kinds(p); !slices.Equal(got, tt.want) {
				t.Errorf("segments = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathCloseReturnsToStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(10, 2)
	p.LineTo(10, 9)
	p.Close()
	if got := p.CurrentPoint(); got != (Point{1, 2}) {
		t.Errorf("CurrentPoint() after Close = %v, want (1,2)", got)
	}
	if p.IsSubpathOpen() {
		t.Error("sub-path still open after Close")
	}
}

func TestPathSegmentFrom(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(3, 4)
	p.QuadTo(5, 5, 6, 0)

	s, err := p.Segment(2)
	if err != nil {
		t.Fatalf("Segment(2) error = %v", err)
	}
	if s.From != (Point{3, 4}) {
		t.Errorf("quad From = %v, want (3,4)", s.From)
	}
	if _, err := p.Segment(3); !errors.Is(err, ErrSegmentIndex) {
		t.Errorf("Segment(3) error = %v, want ErrSegmentIndex", err)
	}
}

func TestPathInsertRemoveKeepsArcTables(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.AddArc(0, 0, 10, 10, 0, 90, false)
	p.LineTo(20, 20)
	p.AddArc(0, 0, 40, 20, 45, 180, true)

	if err := p.RemoveSegment(1); err != nil {
		t.Fatalf("RemoveSegment(1) error = %v", err)
	}
	if p.ArcCount() != 1 {
		t.Fatalf("ArcCount() = %d, want 1", p.ArcCount())
	}
	s, err := p.Segment(2)
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != SegmentArc || s.StartAngle != 45 || s.EndAngle != 180 || !s.Clockwise {
		t.Errorf("remaining arc = %+v, want 45..180 clockwise", s)
	}

	arc := Segment{Kind: SegmentArc, Points: [3]Point{{0, 0}, {8, 8}}, StartAngle: 10, EndAngle: 20}
	if err := p.InsertSegment(1, arc); err != nil {
		t.Fatalf("InsertSegment error = %v", err)
	}
	want := []SegmentKind{SegmentMove, SegmentArc, SegmentLine, SegmentArc}
	if got := kinds(p); !slices.Equal(got, want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	first, _ := p.Segment(1)
	last, _ := p.Segment(3)
	if first.StartAngle != 10 || last.StartAngle != 45 {
		t.Errorf("arc angles = %v, %v; want 10, 45", first.StartAngle, last.StartAngle)
	}
	if got := p.CurrentPoint(); !nearPoint(got, last.End(), 1e-9) {
		t.Errorf("CurrentPoint() = %v, want end of last arc %v", got, last.End())
	}

	for _, i := range []int{-1, 5} {
		if err := p.InsertSegment(i, arc); !errors.Is(err, ErrSegmentIndex) {
			t.Errorf("InsertSegment(%d) error = %v, want ErrSegmentIndex", i, err)
		}
	}
	if err := p.RemoveSegment(4); !errors.Is(err, ErrSegmentIndex) {
		t.Errorf("RemoveSegment(4) error = %v, want ErrSegmentIndex", err)
	}
}

func TestPathKey(t *testing.T) {
	p := NewPath()
	k0 := p.Key()
	if k0.ID == 0 {
		t.Fatal("Key().ID = 0")
	}
	p.LineTo(1, 1)
	k1 := p.Key()
	if k1.ID != k0.ID || k1.Version == k0.Version {
		t.Errorf("after mutation key = %+v, was %+v", k1, k0)
	}
	if p.Key() != k1 {
		t.Error("Key() changed without a mutation")
	}

	c := p.Clone()
	if c.ID() == p.ID() {
		t.Error("Clone shares the ID of its source")
	}
	if !slices.Equal(kinds(c), kinds(p)) {
		t.Error("Clone has different segments")
	}

	p.Reset()
	if !p.IsEmpty() || p.ID() != k0.ID || p.Key() == k1 {
		t.Errorf("Reset: empty=%v id=%d key=%+v", p.IsEmpty(), p.ID(), p.Key())
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.AppendRectangle(Rect{X: 10, Y: 20, W: 30, H: 40})
	p.AddArc(-5, -5, 5, 5, 0, 90, false)
	if got, want := p.Bounds(), (Rect{X: -5, Y: -5, W: 45, H: 65}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestFirstPoint(t *testing.T) {
	p := NewPath()
	p.AddArc(0, 0, 20, 20, 0, 90, false)
	if got := p.FirstPoint(); !nearPoint(got, Point{20, 10}, 1e-9) {
		t.Errorf("FirstPoint() = %v, want (20,10)", got)
	}
	if got := NewPath().FirstPoint(); got != (Point{}) {
		t.Errorf("empty FirstPoint() = %v", got)
	}
}

func TestArcEndPoint(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		clockwise  bool
		want       Point
	}{
		// Angles are counter-clockwise on screen: 90° is the top.
		{"ccw to top", 0, 90, false, Point{10, 0}},
		{"cw to top", 0, 90, true, Point{10, 0}},
		{"ccw to left", 0, 180, false, Point{0, 10}},
		{"ccw to bottom", 0, 270, false, Point{10, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.AddArc(0, 0, 20, 20, tt.start, tt.end, tt.clockwise)
			if got := p.CurrentPoint(); !nearPoint(got, tt.want, 1e-9) {
				t.Errorf("arc ends at %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeviceSegments(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadTo(1, 2, 2, 0)
	p.AddArc(0, 0, 10, 10, 0, 360, false)
	p.Close()

	g := Geometry{Path: p, Transform: NewTranslation(100, 0)}
	want := []SegmentKind{
		SegmentMove, SegmentCubic,
		SegmentLine, SegmentCubic, SegmentCubic, SegmentCubic, SegmentCubic,
		SegmentClose,
	}
	if got := deviceKinds(g); !slices.Equal(got, want) {
		t.Fatalf("device segments = %v, want %v", got, want)
	}

	var segs []Segment
	for s := range g.DeviceSegments() {
		segs = append(segs, s)
	}
	if !nearPoint(segs[1].Points[0], Point{100.667, 1.333}, 1e-3) {
		t.Errorf("quad c1 = %v, want (100.667, 1.333)", segs[1].Points[0])
	}
	if !nearPoint(segs[2].Points[0], Point{110, 5}, 1e-9) {
		t.Errorf("arc starts at %v, want (110, 5)", segs[2].Points[0])
	}
}

func TestEllipseNonSquare(t *testing.T) {
	p := NewPath()
	p.AppendEllipse(Rect{X: 0, Y: 0, W: 200, H: 100})
	b := p.Bounds()
	if math.Abs(b.X) > 1e-9 || math.Abs(b.Y) > 1e-9 || math.Abs(b.W-200) > 1e-9 || math.Abs(b.H-100) > 1e-9 {
		t.Errorf("ellipse bounds = %+v, want 200x100 at origin", b)
	}

	g := Geometry{Path: p, Transform: Identity()}
	for s := range g.DeviceSegments() {
		if s.Kind != SegmentCubic {
			continue
		}
		// Every on-curve point lies on x²/100² + y²/50² = 1 around (100, 50).
		e := s.Points[2]
		v := math.Pow((e.X-100)/100, 2) + math.Pow((e.Y-50)/50, 2)
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("point %v is off the ellipse (%v)", e, v)
		}
	}
}

func TestRoundedRectangleClampsRadius(t *testing.T) {
	p := NewPath()
	p.AppendRoundedRectangle(Rect{W: 20, H: 10}, 50)
	if got := p.Bounds(); got != (Rect{W: 20, H: 10}) {
		t.Errorf("Bounds() = %+v, want 20x10", got)
	}

	flat := NewPath()
	flat.AppendRoundedRectangle(Rect{W: 20, H: 10}, 0)
	if n := flat.SegmentCount(); n != 5 {
		t.Errorf("zero radius gives %d segments, want a plain rectangle (5)", n)
	}
}

func TestTransformed(t *testing.T) {
	p := NewPath()
	p.AppendRectangle(Rect{W: 10, H: 10})
	q := p.Transformed(NewScale(2, 3))
	if got := q.Bounds(); got != (Rect{W: 20, H: 30}) {
		t.Errorf("Transformed bounds = %+v, want 20x30", got)
	}
	if q.ID() == p.ID() {
		t.Error("Transformed shares the source ID")
	}
}
