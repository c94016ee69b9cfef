package blend

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/canvas"
)

type px struct{ r, g, b, a byte }

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestForCoversEveryMode(t *testing.T) {
	for m := canvas.BlendNormal; m <= canvas.BlendPlusLighter; m++ {
		if _, ok := For(m); !ok {
			t.Errorf("For(%v) not supported", m)
		}
	}
	if _, ok := For(canvas.BlendMode(99)); ok {
		t.Error("For(99) should report unsupported")
	}
	if _, ok := For(canvas.BlendMode(-1)); ok {
		t.Error("For(-1) should report unsupported")
	}
}

func TestModes(t *testing.T) {
	red := px{255, 0, 0, 255}
	blue := px{0, 0, 255, 255}
	gray := px{128, 128, 128, 255}
	white := px{255, 255, 255, 255}
	black := px{0, 0, 0, 255}

	tests := []struct {
		mode     canvas.BlendMode
		src, dst px
		want     px
	}{
		{canvas.BlendNormal, red, blue, red},
		{canvas.BlendNormal, px{128, 0, 0, 128}, blue, px{128, 0, 127, 255}},
		{canvas.BlendCopy, px{128, 0, 0, 128}, blue, px{128, 0, 0, 128}},
		{canvas.BlendClear, red, blue, px{}},
		{canvas.BlendXor, red, blue, px{}},
		{canvas.BlendSourceIn, red, px{}, px{}},
		{canvas.BlendDestinationOver, red, blue, blue},
		{canvas.BlendDestinationOut, red, blue, px{}},
		{canvas.BlendSourceAtop, red, blue, red},
		{canvas.BlendMultiply, white, gray, gray},
		{canvas.BlendScreen, black, gray, gray},
		{canvas.BlendDifference, gray, gray, black},
		{canvas.BlendDarken, red, blue, black},
		{canvas.BlendLighten, red, blue, px{255, 0, 255, 255}},
		{canvas.BlendPlusLighter, px{200, 200, 200, 255}, px{100, 100, 100, 255}, white},
		{canvas.BlendPlusDarker, px{100, 100, 100, 255}, px{200, 200, 200, 255}, px{45, 45, 45, 255}},
		{canvas.BlendLuminosity, white, gray, white},
		{canvas.BlendMultiply, px{}, gray, gray},
		{canvas.BlendHue, red, px{}, red},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			fn, _ := For(tt.mode)
			r, g, b, a := fn(tt.src.r, tt.src.g, tt.src.b, tt.src.a, tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			if got := (px{r, g, b, a}); got != tt.want {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.mode, tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func newRGBA(w int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, 1))
	for x := range w {
		img.SetRGBA(x, 0, c)
	}
	return img
}

func TestComposite(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}

	src := image.NewRGBA(image.Rect(0, 0, 4, 1))
	src.SetRGBA(1, 0, red)
	src.SetRGBA(2, 0, red)

	t.Run("source over", func(t *testing.T) {
		dst := newRGBA(4, blue)
		Composite(dst, src, nil, 1, dst.Bounds(), sourceOver)
		want := []color.RGBA{blue, red, red, blue}
		for x, w := range want {
			if got := dst.RGBAAt(x, 0); got != w {
				t.Errorf("pixel %d = %v, want %v", x, got, w)
			}
		}
	})

	t.Run("copy stays inside source", func(t *testing.T) {
		dst := newRGBA(4, blue)
		Composite(dst, src, nil, 1, dst.Bounds(), source)
		if got := dst.RGBAAt(0, 0); got != blue {
			t.Errorf("uncovered pixel changed to %v", got)
		}
	})

	t.Run("mask", func(t *testing.T) {
		dst := newRGBA(4, blue)
		mask := image.NewAlpha(dst.Bounds())
		mask.SetAlpha(2, 0, color.Alpha{A: 255})
		Composite(dst, src, mask, 1, dst.Bounds(), sourceOver)
		if got := dst.RGBAAt(1, 0); got != blue {
			t.Errorf("masked pixel = %v, want %v", got, blue)
		}
		if got := dst.RGBAAt(2, 0); got != red {
			t.Errorf("unmasked pixel = %v, want %v", got, red)
		}
	})

	t.Run("global alpha", func(t *testing.T) {
		dst := newRGBA(4, blue)
		Composite(dst, src, nil, 0.5, dst.Bounds(), sourceOver)
		want := color.RGBA{R: 128, B: 127, A: 255}
		if got := dst.RGBAAt(1, 0); got != want {
			t.Errorf("pixel = %v, want %v", got, want)
		}
	})

	t.Run("zero alpha", func(t *testing.T) {
		dst := newRGBA(4, blue)
		Composite(dst, src, nil, 0, dst.Bounds(), sourceOver)
		if got := dst.RGBAAt(1, 0); got != blue {
			t.Errorf("pixel = %v, want %v", got, blue)
		}
	})
}
