package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a name matches no registered font and
	// no system font is available.
	ErrUnknownFont = errors.New("text: unknown font")
)
