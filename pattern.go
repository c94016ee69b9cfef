package canvas

import "reflect"

// Pattern is a tile that is drawn repeatedly to fill a shape. The tile is
// Width x Height and repeats every StepX, StepY. A non-positive step means
// the tile size.
type Pattern interface {
	Width() float64
	Height() float64
	StepX() float64
	StepY() float64

	// Draw renders one tile. The canvas fill and stroke colors are set to
	// the paint's foreground color.
	Draw(c *Canvas) error
}

// nilPattern reports whether p is nil or an interface holding a nil pointer.
func nilPattern(p Pattern) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// TilePattern is a Pattern backed by a drawing function. A nil
// *TilePattern is an empty tile.
type TilePattern struct {
	width, height float64
	stepX, stepY  float64
	draw          func(*Canvas) error
}

// NewTilePattern creates a pattern whose tile is rendered by draw.
func NewTilePattern(width, height, stepX, stepY float64, draw func(*Canvas) error) *TilePattern {
	return &TilePattern{width: width, height: height, stepX: stepX, stepY: stepY, draw: draw}
}

// Width implements Pattern.
func (p *TilePattern) Width() float64 {
	if p == nil {
		return 0
	}
	return p.width
}

// Height implements Pattern.
func (p *TilePattern) Height() float64 {
	if p == nil {
		return 0
	}
	return p.height
}

// StepX implements Pattern.
func (p *TilePattern) StepX() float64 {
	if p == nil {
		return 0
	}
	return p.stepX
}

// StepY implements Pattern.
func (p *TilePattern) StepY() float64 {
	if p == nil {
		return 0
	}
	return p.stepY
}

// Draw implements Pattern.
func (p *TilePattern) Draw(c *Canvas) error {
	if p == nil || p.draw == nil {
		return nil
	}
	return p.draw(c)
}
