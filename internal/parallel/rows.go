package parallel

import "sync"

// MinPixels is the smallest area Rows splits across workers. Smaller areas
// run on the calling goroutine.
const MinPixels = 256 * 256

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the shared pool, started on first use.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = NewPool(0)
	})
	return defaultPool
}

// Rows calls fn for disjoint bands [y0, y1) covering [minY, maxY). Areas of
// width*(maxY-minY) at least MinPixels are banded across the default pool.
// fn must only touch its own rows.
func Rows(minY, maxY, width int, fn func(y0, y1 int)) {
	h := maxY - minY
	if h <= 0 || width <= 0 {
		return
	}
	if h*width < MinPixels || h < 2 {
		fn(minY, maxY)
		return
	}
	p := Default()
	bands := min(h, p.Workers()*2)
	tasks := make([]func(), 0, bands)
	for i := range bands {
		y0 := minY + h*i/bands
		y1 := minY + h*(i+1)/bands
		if y0 == y1 {
			continue
		}
		tasks = append(tasks, func() { fn(y0, y1) })
	}
	p.Run(tasks)
}
