package canvas

import "github.com/gogpu/canvas/text"

// Measurer reports the extent of a string set in a font. Width is the
// advance; height is the line height.
type Measurer interface {
	MeasureString(s, fontName string, fontSize float64) (width, height float64)
}

// FontMetrics is implemented by measurers that know the ascent and descent
// of a font. DrawStringInRect uses it for vertical alignment; without it the
// ascent is taken as 80% of the line height.
type FontMetrics interface {
	Metrics(fontName string, fontSize float64) (ascent, descent float64)
}

// Option configures a Canvas during creation.
//
// Example:
//
//	defaults, _ := canvas.LoadDefaults("canvas.toml")
//	c, err := canvas.NewNamed("rasterx", 800, 600,
//	    canvas.WithDefaults(defaults),
//	    canvas.WithStrictUnsupported(),
//	)
type Option func(*options)

type options struct {
	measurer   Measurer
	defaults   Defaults
	strict     bool
	classifier Classifier
}

func defaultOptions() options {
	return options{
		measurer:   text.DefaultMeasurer(),
		defaults:   DefaultDefaults(),
		classifier: Strict,
	}
}

// WithMeasurer sets the string measurer used for text alignment.
// The default measures with the fonts in the text package registry.
func WithMeasurer(m Measurer) Option {
	return func(o *options) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithDefaults sets the attribute values of the base state.
func WithDefaults(d Defaults) Option {
	return func(o *options) {
		o.defaults = d
	}
}

// WithStrictUnsupported makes draw calls return errors wrapping
// ErrUnsupported instead of logging them once and continuing.
func WithStrictUnsupported() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithClassifier sets how the canvas decides whether a transform is
// axis-aligned. Images under an axis-aligned transform are handed to the
// backend as a device rectangle. The default is Strict.
func WithClassifier(c Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}
