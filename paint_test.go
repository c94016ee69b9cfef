package canvas

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestResolveFillPaint(t *testing.T) {
	bounds := Rect{X: 10, Y: 20, W: 100, H: 50}
	stops := []ColorStop{{Offset: 1, Color: Blue}, {Offset: 0, Color: Red}}
	tile := NewTilePattern(8, 8, 0, 12, nil)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	tests := []struct {
		name    string
		paint   Paint
		want    func(t *testing.T, rp ResolvedPaint)
		wantErr error
	}{
		{
			name:  "nil is white",
			paint: nil,
			want: func(t *testing.T, rp ResolvedPaint) {
				if rp != (FlatColor{Color: White}) {
					t.Errorf("got %#v, want white", rp)
				}
			},
		},
		{
			name:  "solid",
			paint: SolidPaint{Color: Red},
			want: func(t *testing.T, rp ResolvedPaint) {
				if rp != (FlatColor{Color: Red}) {
					t.Errorf("got %#v, want red", rp)
				}
			},
		},
		{
			name:  "one stop is flat",
			paint: LinearGradientPaint{End: Point{1, 0}, Stops: []ColorStop{{Offset: 0, Color: Green}}},
			want: func(t *testing.T, rp ResolvedPaint) {
				if rp != (FlatColor{Color: Green}) {
					t.Errorf("got %#v, want flat green", rp)
				}
			},
		},
		{
			name:    "no stops",
			paint:   RadialGradientPaint{End: Point{1, 1}},
			wantErr: ErrInvalidPaint,
		},
		{
			name:  "linear",
			paint: LinearGradientPaint{Start: Point{0, 0.5}, End: Point{1, 0.5}, Stops: stops},
			want: func(t *testing.T, rp ResolvedPaint) {
				g, ok := rp.(GradientRamp)
				if !ok {
					t.Fatalf("got %T, want GradientRamp", rp)
				}
				if g.Kind != GradientLinear || g.Start != (Point{10, 45}) || g.End != (Point{110, 45}) {
					t.Errorf("ramp = %+v", g)
				}
				if g.Stops[0].Offset != 0 || g.Stops[1].Offset != 1 {
					t.Errorf("stops not sorted: %+v", g.Stops)
				}
			},
		},
		{
			name:  "radial defaults focal to start",
			paint: RadialGradientPaint{Start: Point{0.5, 0.5}, End: Point{1, 0.5}, Stops: stops},
			want: func(t *testing.T, rp ResolvedPaint) {
				g := rp.(GradientRamp)
				if g.Focal != g.Start || g.Start != (Point{60, 45}) || g.Radius != 50 {
					t.Errorf("ramp = %+v", g)
				}
			},
		},
		{
			name:  "radial focal",
			paint: RadialGradientPaint{Start: Point{0.5, 0.5}, End: Point{1, 0.5}, Focal: &Point{0, 0}, Stops: stops},
			want: func(t *testing.T, rp ResolvedPaint) {
				if g := rp.(GradientRamp); g.Focal != (Point{10, 20}) {
					t.Errorf("focal = %v, want (10,20)", g.Focal)
				}
			},
		},
		{
			name:  "pattern",
			paint: PatternPaint{Pattern: tile, Foreground: Red},
			want: func(t *testing.T, rp ResolvedPaint) {
				p := rp.(TiledPattern)
				if p.StepX != 8 || p.StepY != 12 || p.Offset != (Point{10, 20}) || p.Foreground != Red {
					t.Errorf("pattern = %+v", p)
				}
				if got := p.Transform.Transform(Point{}); got != (Point{10, 20}) {
					t.Errorf("tile origin maps to %v", got)
				}
			},
		},
		{
			name:    "pattern without pattern",
			paint:   PatternPaint{},
			wantErr: ErrInvalidPaint,
		},
		{
			name:    "nil tile pattern",
			paint:   PatternPaint{Pattern: (*TilePattern)(nil)},
			wantErr: ErrInvalidPaint,
		},
		{
			name:  "image",
			paint: ImagePaint{Image: img},
			want: func(t *testing.T, rp ResolvedPaint) {
				it := rp.(ImageTile)
				if it.StepX != 4 || it.StepY != 3 {
					t.Errorf("steps = %v, %v; want 4, 3", it.StepX, it.StepY)
				}
			},
		},
		{
			name:    "image without image",
			paint:   ImagePaint{},
			wantErr: ErrInvalidPaint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rp, err := ResolveFillPaint(tt.paint, bounds)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.want(t, rp)
		})
	}
}

func TestResolveDoesNotAliasStops(t *testing.T) {
	stops := []ColorStop{{Offset: 1, Color: Blue}, {Offset: 0, Color: Red}}
	rp, err := ResolveFillPaint(LinearGradientPaint{End: Point{1, 0}, Stops: stops}, Rect{W: 1, H: 1})
	if err != nil {
		t.Fatal(err)
	}
	if stops[0].Offset != 1 {
		t.Error("resolving sorted the caller's stops")
	}
	rp.(GradientRamp).Stops[0].Color = Green
	if stops[1].Color != Red {
		t.Error("ramp shares storage with the caller's stops")
	}
}

func TestGradientColorAt(t *testing.T) {
	g := GradientRamp{Stops: []ColorStop{
		{Offset: 0, Color: Black},
		{Offset: 0.5, Color: White},
		{Offset: 1, Color: Red},
	}}
	tests := []struct {
		name   string
		extend ExtendMode
		t      float64
		want   RGBA
	}{
		{"first stop", ExtendPad, 0, Black},
		{"midway", ExtendPad, 0.25, RGBA{0.5, 0.5, 0.5, 1}},
		{"last stop", ExtendPad, 1, Red},
		{"pad below", ExtendPad, -1, Black},
		{"pad above", ExtendPad, 2, Red},
		{"repeat", ExtendRepeat, 1.25, RGBA{0.5, 0.5, 0.5, 1}},
		{"reflect", ExtendReflect, 1.75, RGBA{0.5, 0.5, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Extend = tt.extend
			got := g.ColorAt(tt.t)
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 || math.Abs(got.A-tt.want.A) > 1e-9 {
				t.Errorf("ColorAt(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestGradientMinAlpha(t *testing.T) {
	g := GradientRamp{Stops: []ColorStop{
		{Offset: 0, Color: Red.WithAlpha(0.8)},
		{Offset: 0.5, Color: Blue.WithAlpha(0.3)},
		{Offset: 1, Color: Green},
	}}
	if got := g.MinAlpha(); got != 0.3 {
		t.Errorf("MinAlpha() = %v, want 0.3", got)
	}
}

func TestToDevice(t *testing.T) {
	m := NewTranslation(5, 5).Concatenate(NewScale(2, 2))
	ramp := GradientRamp{Kind: GradientRadial, Start: Point{1, 1}, End: Point{2, 1}, Focal: Point{1, 1}, Radius: 1}
	got := toDevice(ramp, m).(GradientRamp)
	if got.Start != (Point{7, 7}) || got.End != (Point{9, 7}) || got.Radius != 2 {
		t.Errorf("device ramp = %+v", got)
	}

	tile := TiledPattern{Transform: NewTranslation(10, 0)}
	dt := toDevice(tile, m).(TiledPattern)
	if o := dt.Transform.Transform(Point{}); o != (Point{25, 5}) {
		t.Errorf("tile origin in device space = %v, want (25,5)", o)
	}

	flat := FlatColor{Color: Red}
	if toDevice(flat, m) != flat {
		t.Error("flat color changed by toDevice")
	}
}

func TestNilTilePattern(t *testing.T) {
	var p *TilePattern
	if p.Width() != 0 || p.Height() != 0 || p.StepX() != 0 || p.StepY() != 0 {
		t.Error("nil TilePattern reports a size")
	}
	if err := p.Draw(nil); err != nil {
		t.Errorf("Draw() error = %v", err)
	}
	if err := RenderTile(&mockBackend{}, p, Black); !errors.Is(err, ErrInvalidPaint) {
		t.Errorf("RenderTile() error = %v, want ErrInvalidPaint", err)
	}
}
