package canvas

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults holds the attribute values a canvas state starts from and returns
// to on ResetState. Colors are hex strings and enums are names in TOML:
//
//	fill_color = "#ffffff"
//	stroke_size = 2
//	line_join = "Round"
//	stroke_location = "Inside"
//	blend_mode = "Multiply"
type Defaults struct {
	FillColor          RGBA           `toml:"fill_color"`
	StrokeColor        RGBA           `toml:"stroke_color"`
	StrokeSize         float64        `toml:"stroke_size"`
	LineCap            LineCap        `toml:"line_cap"`
	LineJoin           LineJoin       `toml:"line_join"`
	MiterLimit         float64        `toml:"miter_limit"`
	StrokeLocation     StrokeLocation `toml:"stroke_location"`
	LimitStrokeScaling bool           `toml:"limit_stroke_scaling"`
	StrokeLimit        float64        `toml:"stroke_limit"`
	FontName           string         `toml:"font_name"` // empty selects the system font
	FontSize           float64        `toml:"font_size"`
	FontColor          RGBA           `toml:"font_color"`
	Alpha              float64        `toml:"alpha"`
	BlendMode          BlendMode      `toml:"blend_mode"`
	Antialias          bool           `toml:"antialias"`
}

// DefaultDefaults returns the built-in defaults: white fill, 1-unit black
// centered stroke with butt caps and miter joins, 12-point black system
// font, full alpha, normal blending, antialiasing on.
func DefaultDefaults() Defaults {
	return Defaults{
		FillColor:      White,
		StrokeColor:    Black,
		StrokeSize:     1,
		LineCap:        LineCapButt,
		LineJoin:       LineJoinMiter,
		MiterLimit:     10,
		StrokeLocation: StrokeCenter,
		StrokeLimit:    1,
		FontSize:       12,
		FontColor:      Black,
		Alpha:          1,
		BlendMode:      BlendNormal,
		Antialias:      true,
	}
}

// ParseDefaults decodes TOML over the built-in defaults. Keys that are not
// present keep their built-in value; unknown keys are an error.
func ParseDefaults(data []byte) (Defaults, error) {
	d := DefaultDefaults()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Defaults{}, fmt.Errorf("canvas: parse defaults: %w", err)
	}
	return d, nil
}

// LoadDefaults reads and decodes a TOML defaults file.
func LoadDefaults(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("canvas: load defaults: %w", err)
	}
	return ParseDefaults(data)
}

// state returns the base canvas state for these defaults.
func (d Defaults) state(width, height float64) CanvasState {
	return CanvasState{
		FillColor:          d.FillColor,
		StrokeColor:        d.StrokeColor,
		StrokeSize:         d.StrokeSize,
		LineCap:            d.LineCap,
		LineJoin:           d.LineJoin,
		MiterLimit:         d.MiterLimit,
		StrokeLocation:     d.StrokeLocation,
		LimitStrokeScaling: d.LimitStrokeScaling,
		StrokeLimit:        d.StrokeLimit,
		FontName:           d.FontName,
		FontSize:           d.FontSize,
		FontColor:          d.FontColor,
		Alpha:              d.Alpha,
		BlendMode:          d.BlendMode,
		Transform:          Identity(),
		ClipBounds:         Rect{W: width, H: height},
		Antialias:          d.Antialias,
	}
}
