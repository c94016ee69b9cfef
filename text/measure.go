package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas/internal/cache"
)

// faceCacheSize bounds the number of open faces per measurer.
const faceCacheSize = 64

type faceKey struct {
	name string
	size float64
}

// Measurer measures strings with opentype faces from a registry. Faces are
// opened per name and size and kept in an LRU cache; Close releases them.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	reg   *Registry
	mu    sync.Mutex // font.Face is not safe for concurrent use
	faces *cache.Cache[faceKey, font.Face]
}

// NewMeasurer creates a measurer over reg. A nil reg means Default().
func NewMeasurer(reg *Registry) *Measurer {
	if reg == nil {
		reg = Default()
	}
	return &Measurer{
		reg: reg,
		faces: cache.New[faceKey, font.Face](faceCacheSize,
			cache.WithRelease(func(k faceKey, f font.Face) {
				if err := f.Close(); err != nil {
					Logger().Warn("text: close face", "name", k.name, "size", k.size, "err", err)
				}
			})),
	}
}

var (
	defaultMeasurerOnce sync.Once
	defaultMeasurer     *Measurer
)

// DefaultMeasurer returns the process-wide measurer over Default().
func DefaultMeasurer() *Measurer {
	defaultMeasurerOnce.Do(func() {
		defaultMeasurer = NewMeasurer(nil)
	})
	return defaultMeasurer
}

// Registry returns the registry fonts are resolved in.
func (m *Measurer) Registry() *Registry { return m.reg }

// Face returns an unhinted 72 DPI face for the named font, so one unit is
// one point. Unknown names fall back to the system font.
//
// The face is shared; callers must not use it concurrently with the
// measurer or close it.
func (m *Measurer) Face(name string, size float64) (font.Face, error) {
	f, err := m.reg.Resolve(name)
	if err != nil {
		return nil, err
	}
	return m.faces.GetOrCreate(faceKey{name: f.Name(), size: size}, func() (font.Face, error) {
		face, err := opentype.NewFace(f.OpenType(), &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("text: open face %q at %v: %w", f.Name(), size, err)
		}
		return face, nil
	})
}

// MeasureString returns the advance width and line height of s. Fonts that
// cannot be opened measure as zero.
func (m *Measurer) MeasureString(s, fontName string, fontSize float64) (width, height float64) {
	face, err := m.Face(fontName, fontSize)
	if err != nil {
		Logger().Debug("text: measure without face", "font", fontName, "err", err)
		return 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return FixedToFloat(font.MeasureString(face, s)), FixedToFloat(face.Metrics().Height)
}

// Metrics returns the ascent and descent of a font at a size.
func (m *Measurer) Metrics(fontName string, fontSize float64) (ascent, descent float64) {
	face, err := m.Face(fontName, fontSize)
	if err != nil {
		return 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	metrics := face.Metrics()
	return FixedToFloat(metrics.Ascent), FixedToFloat(metrics.Descent)
}

// Close releases every cached face. The measurer remains usable.
func (m *Measurer) Close() error {
	m.faces.Clear()
	return nil
}

// FixedToFloat converts a 26.6 fixed-point value to float64.
func FixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// FloatToFixed converts a float64 to 26.6 fixed point.
func FloatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
