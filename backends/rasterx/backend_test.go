package rasterx

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/backends/recording"
)

var (
	red         = color.RGBA{R: 255, A: 255}
	blue        = color.RGBA{B: 255, A: 255}
	transparent = color.RGBA{}
)

func render(t *testing.T, w, h int, draw func(c *canvas.Canvas) error) *image.RGBA {
	t.Helper()
	b := New()
	c, err := canvas.New(b, w, h)
	require.NoError(t, err)
	require.NoError(t, c.Redraw(canvas.Rect{}, canvas.DrawableFunc(func(c *canvas.Canvas, _ canvas.Rect) error {
		return draw(c)
	})))
	require.NotNil(t, b.Image())
	return b.Image()
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	got := img.RGBAAt(x, y)
	const tol = 2
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -tol && d <= tol
	}
	assert.True(t, near(got.R, want.R) && near(got.G, want.G) && near(got.B, want.B) && near(got.A, want.A),
		"pixel (%d,%d) = %v, want %v", x, y, got, want)
}

func coveredPixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestFillRectangle(t *testing.T) {
	img := render(t, 20, 20, func(c *canvas.Canvas) error {
		c.SetFillColor(canvas.Red)
		return c.FillRectangle(5, 5, 10, 10)
	})
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
	assertPixel(t, img, 10, 10, red)
	assertPixel(t, img, 5, 5, red)
	assertPixel(t, img, 2, 2, transparent)
	assertPixel(t, img, 15, 15, transparent)
}

func TestClipAndRestore(t *testing.T) {
	img := render(t, 20, 20, func(c *canvas.Canvas) error {
		c.SetFillColor(canvas.Red)
		c.Save()
		if err := c.ClipRectangle(0, 0, 10, 20); err != nil {
			return err
		}
		if err := c.FillRectangle(0, 0, 20, 10); err != nil {
			return err
		}
		if err := c.Restore(); err != nil {
			return err
		}
		c.SetFillColor(canvas.Blue)
		return c.FillRectangle(0, 10, 20, 10)
	})
	assertPixel(t, img, 5, 5, red)
	assertPixel(t, img, 15, 5, transparent)
	assertPixel(t, img, 15, 15, blue)
}

func TestStrokeLine(t *testing.T) {
	img := render(t, 20, 20, func(c *canvas.Canvas) error {
		c.SetStrokeColor(canvas.Blue)
		c.SetStrokeSize(2)
		return c.DrawLine(0, 10, 20, 10)
	})
	assertPixel(t, img, 10, 9, blue)
	assertPixel(t, img, 10, 10, blue)
	assertPixel(t, img, 10, 5, transparent)
}

func TestDashedStrokeLeavesGaps(t *testing.T) {
	img := render(t, 40, 10, func(c *canvas.Canvas) error {
		c.SetStrokeSize(2)
		c.SetStrokeDashPattern(5, 5)
		return c.DrawLine(0, 5, 40, 5)
	})
	assert.Equal(t, uint8(255), img.RGBAAt(2, 5).A)
	assert.Equal(t, uint8(0), img.RGBAAt(7, 5).A)
}

func TestLinearGradient(t *testing.T) {
	img := render(t, 20, 20, func(c *canvas.Canvas) error {
		err := c.SetFillPaint(canvas.LinearGradientPaint{
			End:   canvas.Point{X: 1},
			Stops: []canvas.ColorStop{{Offset: 0, Color: canvas.Red}, {Offset: 1, Color: canvas.Blue}},
		}, canvas.Rect{W: 20, H: 20})
		if err != nil {
			return err
		}
		return c.FillRectangle(0, 0, 20, 20)
	})
	left, right := img.RGBAAt(1, 10), img.RGBAAt(18, 10)
	assert.Greater(t, left.R, left.B)
	assert.Greater(t, right.B, right.R)
	assert.Equal(t, uint8(255), left.A)
}

func TestGlobalAlphaAndBlend(t *testing.T) {
	img := render(t, 10, 10, func(c *canvas.Canvas) error {
		c.SetFillColor(canvas.Red)
		c.SetAlpha(0.5)
		return c.FillRectangle(0, 0, 10, 10)
	})
	assertPixel(t, img, 5, 5, color.RGBA{R: 128, A: 128})

	img = render(t, 10, 10, func(c *canvas.Canvas) error {
		c.SetFillColor(canvas.White)
		if err := c.FillRectangle(0, 0, 10, 10); err != nil {
			return err
		}
		c.SetBlendMode(canvas.BlendDifference)
		return c.FillRectangle(0, 0, 5, 10)
	})
	assertPixel(t, img, 2, 5, color.RGBA{A: 255})
	assertPixel(t, img, 7, 5, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestShadow(t *testing.T) {
	draw := func(shadow bool) *image.RGBA {
		return render(t, 30, 30, func(c *canvas.Canvas) error {
			if shadow {
				c.EnableDefaultShadow()
			}
			c.SetFillColor(canvas.Red)
			return c.FillRectangle(2, 2, 10, 10)
		})
	}
	assert.Zero(t, draw(false).RGBAAt(14, 14).A)
	withShadow := draw(true)
	assert.NotZero(t, withShadow.RGBAAt(14, 14).A)
	assertPixel(t, withShadow, 6, 6, red)
}

func TestPatternFill(t *testing.T) {
	checker := canvas.NewTilePattern(2, 2, 0, 0, func(c *canvas.Canvas) error {
		return c.FillRectangle(0, 0, 1, 1)
	})
	img := render(t, 8, 8, func(c *canvas.Canvas) error {
		if err := c.SetFillPatternColor(checker, canvas.Red); err != nil {
			return err
		}
		return c.FillRectangle(0, 0, 8, 8)
	})
	assertPixel(t, img, 0, 0, red)
	assertPixel(t, img, 2, 2, red)
	assertPixel(t, img, 1, 1, transparent)
	assertPixel(t, img, 3, 0, transparent)
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			src.SetRGBA(x, y, red)
		}
	}
	img := render(t, 16, 16, func(c *canvas.Canvas) error {
		return c.DrawImage(src, 4, 4, 8, 8)
	})
	assertPixel(t, img, 8, 8, red)
	assertPixel(t, img, 2, 2, transparent)
	assertPixel(t, img, 13, 13, transparent)
}

func TestDrawString(t *testing.T) {
	img := render(t, 40, 20, func(c *canvas.Canvas) error {
		return c.DrawString("Hi", 2, 15, canvas.AlignLeft)
	})
	assert.Positive(t, coveredPixels(img))

	rotated := render(t, 40, 40, func(c *canvas.Canvas) error {
		c.RotateAbout(90, 20, 20)
		return c.DrawString("Hi", 20, 20, canvas.AlignLeft)
	})
	assert.Positive(t, coveredPixels(rotated))
}

func TestSurfaceKeptBetweenPasses(t *testing.T) {
	b := New()
	c, err := canvas.New(b, 10, 10)
	require.NoError(t, err)
	require.NoError(t, c.Redraw(canvas.Rect{}, canvas.DrawableFunc(func(c *canvas.Canvas, _ canvas.Rect) error {
		c.SetFillColor(canvas.Red)
		return c.FillRectangle(0, 0, 10, 10)
	})))
	require.NoError(t, c.Redraw(canvas.Rect{W: 5, H: 10}, canvas.DrawableFunc(func(c *canvas.Canvas, _ canvas.Rect) error {
		c.SetFillColor(canvas.Blue)
		return c.FillRectangle(0, 0, 10, 10)
	})))
	assertPixel(t, b.Image(), 2, 5, blue)
	assertPixel(t, b.Image(), 7, 5, red)
}

func TestAliasedFillReportsUnsupported(t *testing.T) {
	b := New()
	require.NoError(t, b.Begin(10, 10))
	p := canvas.NewPath()
	p.AppendRectangle(canvas.Rect{W: 4, H: 4})

	err := b.Fill(canvas.Geometry{Path: p, Transform: canvas.Identity()}, canvas.FlatColor{Color: canvas.Red},
		canvas.FillStyle{Composite: canvas.Composite{Alpha: 1}})
	assert.ErrorIs(t, err, canvas.ErrUnsupported)
	assertPixel(t, b.Image(), 2, 2, red)
}

func TestInvalidInputs(t *testing.T) {
	b := New()
	assert.Error(t, b.Begin(-1, 5))
	require.NoError(t, b.Begin(5, 5))
	assert.ErrorIs(t, b.Fill(canvas.Geometry{}, nil, canvas.FillStyle{}), canvas.ErrInvalidPaint)
	assert.ErrorIs(t, b.DrawImage(nil, canvas.Rect{}, canvas.ImageStyle{}), canvas.ErrInvalidPaint)
}

func TestRestoreWithoutSave(t *testing.T) {
	b := New()
	require.NoError(t, b.Begin(4, 4))
	b.Restore()
	b.Save()
	b.Restore()
	require.NoError(t, b.End())
}

func TestPlaybackFromRecording(t *testing.T) {
	rec := recording.New()
	c, err := canvas.New(rec, 20, 20)
	require.NoError(t, err)
	require.NoError(t, c.Redraw(canvas.Rect{}, canvas.DrawableFunc(func(c *canvas.Canvas, _ canvas.Rect) error {
		c.SetFillColor(canvas.Blue)
		return c.FillCircle(10, 10, 6)
	})))
	r, err := rec.Recording()
	require.NoError(t, err)

	b := New()
	require.NoError(t, r.Playback(b))
	assertPixel(t, b.Image(), 10, 10, blue)
	assertPixel(t, b.Image(), 1, 1, transparent)
}

func TestInvalidateAndClose(t *testing.T) {
	b := New()
	require.NoError(t, b.Begin(4, 4))
	require.NotNil(t, b.Image())
	b.Invalidate()
	require.NoError(t, b.Close())
	assert.Nil(t, b.Image())
}

func TestRegistered(t *testing.T) {
	b, err := canvas.NewBackend(Name)
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, b)
}
