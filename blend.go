package canvas

import (
	"fmt"
	"strings"
)

// BlendMode selects how drawn pixels are composited with the destination.
// Backends map what they can; the rest degrade to BlendNormal and report
// ErrUnsupported.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendSoftLight
	BlendHardLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendClear
	BlendCopy
	BlendSourceIn
	BlendSourceOut
	BlendSourceAtop
	BlendDestinationOver
	BlendDestinationIn
	BlendDestinationOut
	BlendDestinationAtop
	BlendXor
	BlendPlusDarker
	BlendPlusLighter
)

var blendModeNames = [...]string{
	BlendNormal:          "Normal",
	BlendMultiply:        "Multiply",
	BlendScreen:          "Screen",
	BlendOverlay:         "Overlay",
	BlendDarken:          "Darken",
	BlendLighten:         "Lighten",
	BlendColorDodge:      "ColorDodge",
	BlendColorBurn:       "ColorBurn",
	BlendSoftLight:       "SoftLight",
	BlendHardLight:       "HardLight",
	BlendDifference:      "Difference",
	BlendExclusion:       "Exclusion",
	BlendHue:             "Hue",
	BlendSaturation:      "Saturation",
	BlendColor:           "Color",
	BlendLuminosity:      "Luminosity",
	BlendClear:           "Clear",
	BlendCopy:            "Copy",
	BlendSourceIn:        "SourceIn",
	BlendSourceOut:       "SourceOut",
	BlendSourceAtop:      "SourceAtop",
	BlendDestinationOver: "DestinationOver",
	BlendDestinationIn:   "DestinationIn",
	BlendDestinationOut:  "DestinationOut",
	BlendDestinationAtop: "DestinationAtop",
	BlendXor:             "Xor",
	BlendPlusDarker:      "PlusDarker",
	BlendPlusLighter:     "PlusLighter",
}

func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a blend mode name, ignoring case.
func (m *BlendMode) UnmarshalText(text []byte) error {
	for i, name := range blendModeNames {
		if strings.EqualFold(name, string(text)) {
			*m = BlendMode(i)
			return nil
		}
	}
	return fmt.Errorf("canvas: unknown blend mode %q", text)
}
