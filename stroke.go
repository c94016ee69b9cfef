package canvas

import (
	"fmt"
	"strings"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// StrokeLocation places a stroke relative to the nominal shape edge.
type StrokeLocation int

const (
	// StrokeCenter straddles the edge.
	StrokeCenter StrokeLocation = iota
	// StrokeInside keeps the stroke within the shape.
	StrokeInside
	// StrokeOutside keeps the stroke outside the shape.
	StrokeOutside
)

// WindingMode is the fill rule for self-intersecting geometry.
type WindingMode int

const (
	// NonZero uses the non-zero winding rule.
	NonZero WindingMode = iota
	// EvenOdd uses the even-odd rule.
	EvenOdd
)

// HorizontalAlignment positions text horizontally against its anchor.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
	AlignJustified
)

// VerticalAlignment positions text vertically inside a box.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

var (
	lineCapNames        = []string{"Butt", "Round", "Square"}
	lineJoinNames       = []string{"Miter", "Round", "Bevel"}
	strokeLocationNames = []string{"Center", "Inside", "Outside"}
	windingModeNames    = []string{"NonZero", "EvenOdd"}
)

func enumName(names []string, v int, kind string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func parseEnum(names []string, text []byte, kind string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, string(text)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("canvas: unknown %s %q", kind, text)
}

func (c LineCap) String() string { return enumName(lineCapNames, int(c), "LineCap") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LineCap) UnmarshalText(text []byte) error {
	v, err := parseEnum(lineCapNames, text, "line cap")
	if err != nil {
		return err
	}
	*c = LineCap(v)
	return nil
}

func (j LineJoin) String() string { return enumName(lineJoinNames, int(j), "LineJoin") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *LineJoin) UnmarshalText(text []byte) error {
	v, err := parseEnum(lineJoinNames, text, "line join")
	if err != nil {
		return err
	}
	*j = LineJoin(v)
	return nil
}

func (l StrokeLocation) String() string {
	return enumName(strokeLocationNames, int(l), "StrokeLocation")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *StrokeLocation) UnmarshalText(text []byte) error {
	v, err := parseEnum(strokeLocationNames, text, "stroke location")
	if err != nil {
		return err
	}
	*l = StrokeLocation(v)
	return nil
}

func (w WindingMode) String() string { return enumName(windingModeNames, int(w), "WindingMode") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WindingMode) UnmarshalText(text []byte) error {
	v, err := parseEnum(windingModeNames, text, "winding mode")
	if err != nil {
		return err
	}
	*w = WindingMode(v)
	return nil
}

// adjustForStroke returns the rectangle a stroke of the given size is drawn
// on, and the matching corner radius, for the stroke location. Inside moves
// the edge inward by half the size; Outside moves it outward.
func adjustForStroke(r Rect, radius, size float64, loc StrokeLocation) (Rect, float64) {
	var d float64
	switch loc {
	case StrokeInside:
		d = size / 2
	case StrokeOutside:
		d = -size / 2
	default:
		return r, radius
	}
	radius -= d
	if radius < 0 {
		radius = 0
	}
	return r.Inset(d), radius
}
