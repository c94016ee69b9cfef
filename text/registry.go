package text

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/cases"
)

// Font is a registered font file. It is parsed for measurement when
// registered and parsed again for shaping on first use.
type Font struct {
	name   string
	data   []byte
	parsed *opentype.Font

	shapeOnce sync.Once
	shaped    *gotext.Font
	shapeErr  error
}

// Name returns the name the font was registered under.
func (f *Font) Name() string { return f.name }

// OpenType returns the parsed font used for metrics.
func (f *Font) OpenType() *opentype.Font { return f.parsed }

// FullName returns the full name recorded in the font file, or "".
func (f *Font) FullName() string {
	name, err := f.parsed.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// shapingFont returns the go-text font, parsing it on first use.
// The returned font is safe for concurrent use.
func (f *Font) shapingFont() (*gotext.Font, error) {
	f.shapeOnce.Do(func() {
		face, err := gotext.ParseTTF(bytes.NewReader(f.data))
		if err != nil {
			f.shapeErr = fmt.Errorf("text: parse %q for shaping: %w", f.name, err)
			return
		}
		f.shaped = face.Font
	})
	return f.shaped, f.shapeErr
}

// Registry maps font names to fonts. Names are matched case-insensitively
// using Unicode case folding.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*Font
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[string]*Font)}
}

// foldName returns the lookup key for a font name. A Caser keeps state, so
// a fresh one is used per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Register parses data and makes it available as name, replacing any font
// already registered under that name.
func (r *Registry) Register(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %q: %w", name, err)
	}
	f := &Font{name: name, data: data, parsed: parsed}

	r.mu.Lock()
	r.fonts[foldName(name)] = f
	r.mu.Unlock()

	Logger().Debug("text: font registered", "name", name, "glyphs", parsed.NumGlyphs())
	return f, nil
}

// Lookup returns the font registered under name.
func (r *Registry) Lookup(name string) (*Font, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[foldName(name)]
	return f, ok
}

// Resolve returns the font for name. An empty or unknown name resolves to
// the system font when the registry has it, like a native toolkit falling
// back to its UI font.
func (r *Registry) Resolve(name string) (*Font, error) {
	if name != "" {
		if f, ok := r.Lookup(name); ok {
			return f, nil
		}
	}
	if f, ok := r.Lookup(SystemFontName()); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fonts))
	for _, f := range r.fonts {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry. It always contains the system
// and bold system fonts.
func Default() *Registry {
	loadSystemFonts()
	return defaultRegistry
}

// Register adds a font to the default registry.
func Register(name string, data []byte) (*Font, error) {
	return Default().Register(name, data)
}
