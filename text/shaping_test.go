package text

import (
	"math"
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestShapingMeasurerMatchesBase(t *testing.T) {
	base := NewMeasurer(nil)
	defer base.Close()
	m := NewShapingMeasurer(base)

	tests := []string{"Hello", "canvas core", "0123456789"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			shaped, h := m.MeasureString(s, "", 16)
			plain, ph := base.MeasureString(s, "", 16)

			if h != ph {
				t.Errorf("line height = %v, want base height %v", h, ph)
			}
			// Kerning may shift the width slightly, never by much.
			if math.Abs(shaped-plain) > plain*0.1 {
				t.Errorf("shaped width %v too far from advance sum %v", shaped, plain)
			}
		})
	}
}

func TestShapingMeasurerEmpty(t *testing.T) {
	w, _ := NewShapingMeasurer(nil).MeasureString("", "", 12)
	if w != 0 {
		t.Errorf("empty string width = %v, want 0", w)
	}
}

func TestBidiRuns(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLTR bool
		wantRTL bool
	}{
		{"latin", "Hello", true, false},
		{"hebrew", "שלום", false, true},
		{"mixed", "Hello שלום", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ltr, rtl bool
			for _, r := range bidiRuns(tt.text) {
				switch r.dir {
				case di.DirectionLTR:
					ltr = true
				case di.DirectionRTL:
					rtl = true
				}
			}
			if ltr != tt.wantLTR || rtl != tt.wantRTL {
				t.Errorf("runs LTR=%v RTL=%v, want LTR=%v RTL=%v", ltr, rtl, tt.wantLTR, tt.wantRTL)
			}
		})
	}
}
