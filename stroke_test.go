package canvas

import "testing"

func TestAdjustForStroke(t *testing.T) {
	r := Rect{W: 100, H: 100}
	tests := []struct {
		name       string
		loc        StrokeLocation
		radius     float64
		want       Rect
		wantRadius float64
	}{
		{"center", StrokeCenter, 8, Rect{W: 100, H: 100}, 8},
		{"inside", StrokeInside, 8, Rect{X: 5, Y: 5, W: 90, H: 90}, 3},
		{"outside", StrokeOutside, 8, Rect{X: -5, Y: -5, W: 110, H: 110}, 13},
		{"inside clamps radius", StrokeInside, 2, Rect{X: 5, Y: 5, W: 90, H: 90}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, radius := adjustForStroke(r, tt.radius, 10, tt.loc)
			if got != tt.want || radius != tt.wantRadius {
				t.Errorf("adjustForStroke = %+v, %v; want %+v, %v", got, radius, tt.want, tt.wantRadius)
			}
			if got.Center() != r.Center() {
				t.Errorf("center moved to %v", got.Center())
			}
		})
	}
}

func TestEnumText(t *testing.T) {
	var lc LineCap
	if err := lc.UnmarshalText([]byte("round")); err != nil || lc != LineCapRound {
		t.Errorf("LineCap = %v, %v", lc, err)
	}
	var lj LineJoin
	if err := lj.UnmarshalText([]byte("Bevel")); err != nil || lj != LineJoinBevel {
		t.Errorf("LineJoin = %v, %v", lj, err)
	}
	loc := StrokeInside
	if err := loc.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("unknown StrokeLocation accepted")
	}
	if loc != StrokeInside {
		t.Errorf("failed unmarshal changed the value to %v", loc)
	}
	var w WindingMode
	if err := w.UnmarshalText([]byte("EvenOdd")); err != nil || w != EvenOdd {
		t.Errorf("WindingMode = %v, %v", w, err)
	}

	if s := StrokeOutside.String(); s != "Outside" {
		t.Errorf("StrokeOutside.String() = %q", s)
	}
	if s := LineCap(9).String(); s != "LineCap(9)" {
		t.Errorf("LineCap(9).String() = %q", s)
	}
}

func TestBlendModeText(t *testing.T) {
	for m := BlendNormal; m <= BlendPlusLighter; m++ {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%d: MarshalText error = %v", m, err)
		}
		var back BlendMode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("%s: round trip = %v, %v", text, back, err)
		}
	}
	var m BlendMode
	if err := m.UnmarshalText([]byte("hardlight")); err != nil || m != BlendHardLight {
		t.Errorf("case-insensitive parse = %v, %v", m, err)
	}
	if err := m.UnmarshalText([]byte("glow")); err == nil {
		t.Error("unknown blend mode accepted")
	}
}
