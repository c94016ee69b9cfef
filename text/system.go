package text

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fallback names used when a bundled font carries no full name.
const (
	fallbackSystemFont     = "Go Regular"
	fallbackBoldSystemFont = "Go Bold"
)

// The system font names are process-wide state: resolved once, on first use,
// and kept for the life of the process. Nothing resets them.
var (
	systemOnce     sync.Once
	systemFont     string
	boldSystemFont string
)

// loadSystemFonts registers the bundled Go fonts in the default registry and
// records their names.
func loadSystemFonts() {
	systemOnce.Do(func() {
		systemFont = registerBundled(goregular.TTF, fallbackSystemFont)
		boldSystemFont = registerBundled(gobold.TTF, fallbackBoldSystemFont)
	})
}

func registerBundled(data []byte, fallback string) string {
	f, err := defaultRegistry.Register(fallback, data)
	if err != nil {
		Logger().Warn("text: bundled font unavailable", "name", fallback, "err", err)
		return fallback
	}
	name := f.FullName()
	if name == "" || name == fallback {
		return fallback
	}
	// Reachable under both names.
	if _, err := defaultRegistry.Register(name, data); err != nil {
		return fallback
	}
	return name
}

// SystemFontName returns the name of the regular UI font.
func SystemFontName() string {
	loadSystemFonts()
	return systemFont
}

// BoldSystemFontName returns the name of the bold UI font.
func BoldSystemFontName() string {
	loadSystemFonts()
	return boldSystemFont
}
