package text

import (
	"math"
	"testing"
)

func TestMeasurerMeasureString(t *testing.T) {
	m := NewMeasurer(nil)
	defer m.Close()

	short, h := m.MeasureString("Hi", "", 12)
	long, _ := m.MeasureString("Hi there", "", 12)

	if short <= 0 || h <= 0 {
		t.Fatalf("MeasureString(Hi) = %v x %v, want positive extents", short, h)
	}
	if long <= short {
		t.Errorf("longer string measured %v, not wider than %v", long, short)
	}
}

func TestMeasurerScalesWithSize(t *testing.T) {
	m := NewMeasurer(nil)
	defer m.Close()

	w12, _ := m.MeasureString("canvas", "", 12)
	w24, _ := m.MeasureString("canvas", "", 24)

	if math.Abs(w24-2*w12) > 1 {
		t.Errorf("width at 24pt = %v, want about twice %v", w24, w12)
	}
}

func TestMeasurerUnknownFontFallsBack(t *testing.T) {
	m := NewMeasurer(nil)
	defer m.Close()

	got, _ := m.MeasureString("fallback", "Nonexistent Sans", 14)
	want, _ := m.MeasureString("fallback", SystemFontName(), 14)
	if got != want {
		t.Errorf("unknown font width = %v, want system font width %v", got, want)
	}
}

func TestMeasurerEmptyString(t *testing.T) {
	m := NewMeasurer(nil)
	defer m.Close()

	w, h := m.MeasureString("", "", 12)
	if w != 0 {
		t.Errorf("empty string width = %v, want 0", w)
	}
	if h <= 0 {
		t.Errorf("empty string line height = %v, want positive", h)
	}
}

func TestMeasurerCloseReleasesFaces(t *testing.T) {
	m := NewMeasurer(nil)
	m.MeasureString("a", "", 10)
	m.MeasureString("a", "", 11)
	if m.faces.Len() != 2 {
		t.Fatalf("cached faces = %d, want 2", m.faces.Len())
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if m.faces.Len() != 0 {
		t.Errorf("cached faces after Close = %d, want 0", m.faces.Len())
	}
	if w, _ := m.MeasureString("a", "", 10); w <= 0 {
		t.Error("measurer unusable after Close")
	}
}

func TestMetrics(t *testing.T) {
	ascent, descent := DefaultMeasurer().Metrics("", 20)
	if ascent <= 0 || descent <= 0 {
		t.Errorf("Metrics = %v, %v; want positive ascent and descent", ascent, descent)
	}
}
