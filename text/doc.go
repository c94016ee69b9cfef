// Package text provides the font services a canvas needs: a font registry,
// the lazily resolved system font names, and string measurement.
//
// Fonts are registered by name and matched case-insensitively:
//
//	data, _ := os.ReadFile("Inter-Regular.ttf")
//	if _, err := text.Register("Inter", data); err != nil {
//	    log.Fatal(err)
//	}
//
// The bundled Go fonts are always present and serve as the system and bold
// system fonts. Their names are resolved on first use and cached for the
// life of the process:
//
//	name := text.SystemFontName()
//
// Two measurers are available. Measurer sums glyph advances of an opentype
// face (golang.org/x/image). ShapingMeasurer shapes with HarfBuzz
// (github.com/go-text/typesetting) after splitting the string into bidi
// runs (golang.org/x/text/unicode/bidi), so kerning and ligatures count.
//
//	w, h := text.DefaultMeasurer().MeasureString("Hello", "", 12)
package text
