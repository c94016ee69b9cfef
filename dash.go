package canvas

import "math"

// Dash is a stroke dash pattern of alternating dash and gap lengths.
//
// On a canvas the lengths are multiples of the stroke size, so a pattern
// of [2, 1] with a 4-unit stroke gives 8-unit dashes and 4-unit gaps.
// DeviceDash converts them to device units.
type Dash struct {
	// Array contains alternating dash/gap lengths. An odd-length array is
	// logically repeated ([5] behaves like [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are made positive. Returns nil if no length is positive.
//
// Examples:
//
//	NewDash(5, 3)        // 5 dash, 3 gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // same as NewDash(5, 5)
func NewDash(lengths ...float64) *Dash {
	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		positive = positive || normalized[i] > 0
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the length of one full cycle, counting the
// repetition of odd-length arrays.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.Even() {
		total += l
	}
	return total
}

// IsDashed reports whether d describes a dashed, not solid, line.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: append([]float64(nil), d.Array...), Offset: d.Offset}
}

// NormalizedOffset returns the offset wrapped into one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}
	n := d.PatternLength()
	if n <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, n)
	if offset < 0 {
		offset += n
	}
	return offset
}

// Scale returns a new Dash with all lengths and the offset multiplied by
// factor. A non-positive factor returns d unchanged.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

// Even returns the lengths with odd-length arrays repeated once so the
// result always alternates dash and gap.
func (d *Dash) Even() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	out := make([]float64, 0, len(d.Array)*2)
	out = append(out, d.Array...)
	return append(out, d.Array...)
}
