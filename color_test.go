package canvas

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "opaque red",
			c:     Red,
			wantR: 65535, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     Transparent,
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			// 0.5 rounds to 128/255 and comes back premultiplied.
			name:  "50% alpha red",
			c:     RGBA{1, 0, 0, 0.5},
			wantR: 32896, wantG: 0, wantB: 0, wantA: 32896,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#fff", "#ffffffff", false},
		{"f00", "#ff0000ff", false},
		{"#0f08", "#00ff0088", false},
		{"#336699", "#336699ff", false},
		{"33669980", "#33669980", false},
		{"", "", true},
		{"#12345", "", true},
		{"#gg0000", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && c.String() != tt.want {
				t.Errorf("ParseHex(%q) = %s, want %s", tt.in, c, tt.want)
			}
		})
	}
	if Hex("not a color") != Black {
		t.Error("Hex of a malformed string should fall back to black")
	}
}

func TestRGBATextRoundTrip(t *testing.T) {
	in := Hex("#10203040")
	text, err := in.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var out RGBA
	if err := out.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}

	keep := Red
	if err := keep.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText accepted a malformed color")
	}
	if keep != Red {
		t.Error("failed UnmarshalText changed the color")
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	if got != Magenta {
		t.Errorf("FromColor = %+v, want magenta", got)
	}
	half := FromColor(color.RGBA{R: 128, A: 128})
	if math.Abs(half.R-1) > 1e-2 || math.Abs(half.A-128.0/255) > 1e-3 {
		t.Errorf("FromColor unpremultiplied = %+v", half)
	}
}

func TestColorHelpers(t *testing.T) {
	if got := Red.WithAlpha(0.25); got.A != 0.25 || got.R != 1 {
		t.Errorf("WithAlpha = %+v", got)
	}
	if got := Red.WithAlpha(0.5).MultiplyAlpha(0.5); got.A != 0.25 {
		t.Errorf("MultiplyAlpha = %+v", got)
	}
	if got := Black.Lerp(White, 0.5); got != (RGBA{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Lerp = %+v", got)
	}
	if got := (RGBA{1, 0.5, 0, 0.5}).Premultiply(); got != (RGBA{0.5, 0.25, 0, 0.5}) {
		t.Errorf("Premultiply = %+v", got)
	}
}
