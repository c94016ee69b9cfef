package canvas

// Shadow is a drop shadow drawn under filled and stroked shapes.
type Shadow struct {
	Offset Point // in canvas units, not scaled by the transform
	Blur   float64
	Color  RGBA
}

// Default shadow settings, used by EnableDefaultShadow.
var (
	DefaultShadowOffset = Point{X: 5, Y: 5}
	DefaultShadowBlur   = 5.0
	DefaultShadowColor  = RGBA{A: 0.5}
)

// DefaultShadow returns a shadow with the default settings.
func DefaultShadow() *Shadow {
	return &Shadow{Offset: DefaultShadowOffset, Blur: DefaultShadowBlur, Color: DefaultShadowColor}
}

func (s *Shadow) clone() *Shadow {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
