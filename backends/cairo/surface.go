package cairo

import (
	"fmt"
	"image"
	"image/color"

	gocairo "github.com/novvoo/go-cairo/pkg/cairo"
)

// newSurface creates an ARGB32 image surface.
func newSurface(width, height int) (gocairo.ImageSurface, error) {
	s := gocairo.NewImageSurface(gocairo.FormatARGB32, width, height)
	img, ok := s.(gocairo.ImageSurface)
	if !ok {
		s.Destroy()
		return nil, fmt.Errorf("cairo: create %dx%d image surface", width, height)
	}
	if st := img.Status(); st != gocairo.StatusSuccess {
		img.Destroy()
		return nil, fmt.Errorf("cairo: create %dx%d image surface: %v", width, height, st)
	}
	return img, nil
}

// toSurface copies img into a new surface of size w x h, anchored at the
// surface origin. Pixels beyond img stay transparent.
func toSurface(img image.Image, w, h int) (gocairo.ImageSurface, error) {
	s, err := newSurface(w, h)
	if err != nil {
		return nil, err
	}
	data, stride := s.GetData(), s.GetStride()
	b := img.Bounds()
	for y := range min(h, b.Dy()) {
		row := data[y*stride:]
		for x := range min(w, b.Dx()) {
			// Cairo stores premultiplied BGRA.
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			p := row[x*4 : x*4+4 : x*4+4]
			p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
		}
	}
	s.MarkDirty()
	return s, nil
}

// readSurface copies s into dst, which must have the surface's size.
func readSurface(s gocairo.ImageSurface, dst *image.RGBA) {
	_ = s.Flush()
	data, stride := s.GetData(), s.GetStride()
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for y := range h {
		src := data[y*stride:]
		out := dst.Pix[y*dst.Stride:]
		for x := range w {
			i := x * 4
			out[i], out[i+1], out[i+2], out[i+3] = src[i+2], src[i+1], src[i], src[i+3]
		}
	}
}

// alphaBounds returns the smallest rectangle holding every pixel of img
// with non-zero alpha.
func alphaBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, i = x+1, i+4 {
			if img.Pix[i+3] != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}
