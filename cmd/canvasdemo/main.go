// Command canvasdemo draws a demonstration scene with a canvas backend.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"strings"

	"github.com/gogpu/canvas"
	_ "github.com/gogpu/canvas/backends/cairo"
	_ "github.com/gogpu/canvas/backends/rasterx"
	"github.com/gogpu/canvas/text"
)

// imager is implemented by backends that render into a memory image.
type imager interface {
	Image() *image.RGBA
}

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "demo.png", "output file")
		backend  = flag.String("backend", "rasterx", "backend name ("+strings.Join(canvas.Backends(), ", ")+")")
		defaults = flag.String("defaults", "", "TOML file with canvas state defaults")
		shaping  = flag.Bool("shaping", false, "measure text with bidi-aware shaping")
	)
	flag.Parse()

	var opts []canvas.Option
	if *defaults != "" {
		d, err := canvas.LoadDefaults(*defaults)
		if err != nil {
			log.Fatalf("Failed to load defaults: %v", err)
		}
		opts = append(opts, canvas.WithDefaults(d))
	}
	if *shaping {
		opts = append(opts, canvas.WithMeasurer(text.NewShapingMeasurer(nil)))
	}

	b, err := canvas.NewBackend(*backend)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}
	c, err := canvas.New(b, *width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Close()

	if err := c.Redraw(canvas.Rect{}, canvas.DrawableFunc(drawScene)); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	out, ok := b.(imager)
	if !ok {
		log.Fatalf("Backend %q does not render to an image", *backend)
	}
	if err := savePNG(*output, out.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %s)\n", *output, *width, *height, *backend)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func drawScene(c *canvas.Canvas, _ canvas.Rect) error {
	steps := []func(*canvas.Canvas) error{
		drawBackground,
		drawShapesDemo,
		drawTransformDemo,
		drawPathDemo,
		drawTextDemo,
	}
	for _, step := range steps {
		c.Save()
		err := step(c)
		if rerr := c.Restore(); err == nil {
			err = rerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func drawBackground(c *canvas.Canvas) error {
	w, h := float64(c.Width()), float64(c.Height())
	err := c.SetFillPaint(canvas.LinearGradientPaint{
		End: canvas.Point{Y: 1},
		Stops: []canvas.ColorStop{
			{Offset: 0, Color: canvas.RGB(0.1, 0.2, 0.4)},
			{Offset: 1, Color: canvas.RGB(0.5, 0.5, 0.6)},
		},
	}, canvas.Rect{W: w, H: h})
	if err != nil {
		return err
	}
	return c.FillRectangle(0, 0, w, h)
}

func drawShapesDemo(c *canvas.Canvas) error {
	// Overlapping circles
	c.SetBlendMode(canvas.BlendScreen)
	circles := []struct {
		x, y float64
		col  canvas.RGBA
	}{
		{150, 150, canvas.RGBA2(1, 0.3, 0.3, 0.8)},
		{200, 150, canvas.RGBA2(0.3, 1, 0.3, 0.8)},
		{175, 200, canvas.RGBA2(0.3, 0.3, 1, 0.8)},
	}
	for _, cc := range circles {
		c.SetFillColor(cc.col)
		if err := c.FillCircle(cc.x, cc.y, 60); err != nil {
			return err
		}
	}
	c.SetBlendMode(canvas.BlendNormal)

	// Shadowed rounded rectangle
	c.EnableDefaultShadow()
	c.SetFillColor(canvas.RGB(1, 0.8, 0))
	if err := c.FillRoundedRectangle(350, 100, 120, 80, 15); err != nil {
		return err
	}
	c.ClearShadow()

	c.SetStrokeColor(canvas.White)
	c.SetStrokeSize(4)
	return c.DrawRectangle(350, 100, 120, 80)
}

func drawTransformDemo(c *canvas.Canvas) error {
	for i := range 8 {
		c.Save()
		c.Translate(600, 150)
		c.Rotate(float64(i) * 45)
		c.SetAlpha(0.3 + float64(i)*0.08)
		c.SetFillColor(canvas.RGB(0.2+float64(i)*0.1, 0.6, 1-float64(i)*0.1))
		err := c.FillRectangle(-30, -30, 60, 60)
		if rerr := c.Restore(); err == nil {
			err = rerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func drawPathDemo(c *canvas.Canvas) error {
	c.Translate(150, 400)

	wave := canvas.NewPath()
	wave.MoveTo(0, 0)
	wave.CubicTo(50, -50, 100, 50, 150, 0)
	wave.CubicTo(200, -30, 250, 30, 300, 0)
	c.SetStrokeColor(canvas.RGB(1, 0.5, 0))
	c.SetStrokeSize(6)
	c.SetLineCap(canvas.LineCapRound)
	if err := c.DrawPath(wave); err != nil {
		return err
	}

	const points = 5
	outerR, innerR := 60.0, 30.0
	star := canvas.NewPath()
	for i := range points * 2 {
		angle := float64(i) * math.Pi / points
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := r * math.Cos(angle-math.Pi/2)
		y := r * math.Sin(angle-math.Pi/2)
		if i == 0 {
			star.MoveTo(x+400, y)
		} else {
			star.LineTo(x+400, y)
		}
	}
	star.Close()
	c.SetFillColor(canvas.RGB(1, 1, 0))
	if err := c.FillPath(star, canvas.NonZero); err != nil {
		return err
	}

	c.SetStrokeColor(canvas.White)
	c.SetStrokeSize(2)
	c.SetStrokeDashPattern(6, 4)
	return c.DrawPath(star)
}

func drawTextDemo(c *canvas.Canvas) error {
	c.SetFontSize(28)
	c.SetFontColor(canvas.White)
	return c.DrawString("canvas demo", float64(c.Width())/2, float64(c.Height())-40, canvas.AlignCenter)
}
