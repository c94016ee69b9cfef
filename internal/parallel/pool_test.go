package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewPoolWorkers(t *testing.T) {
	p := NewPool(3)
	defer p.Close()
	if p.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", p.Workers())
	}

	q := NewPool(0)
	defer q.Close()
	if q.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want GOMAXPROCS", q.Workers())
	}
}

func TestRunWaitsForAllTasks(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var n atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { n.Add(1) }
	}
	p.Run(tasks)
	if n.Load() != 100 {
		t.Errorf("ran %d tasks, want 100", n.Load())
	}
}

func TestRunAfterCloseIsInline(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	ran := false
	p.Run([]func(){func() { ran = true }})
	if !ran {
		t.Error("task did not run on closed pool")
	}
}

func TestRowsCoversEveryRowOnce(t *testing.T) {
	tests := []struct {
		name              string
		minY, maxY, width int
	}{
		{"small inline", 0, 10, 10},
		{"banded", 3, 1003, 300},
		{"empty", 5, 5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make(map[int]int)
			Rows(tt.minY, tt.maxY, tt.width, func(y0, y1 int) {
				mu.Lock()
				defer mu.Unlock()
				for y := y0; y < y1; y++ {
					seen[y]++
				}
			})
			if len(seen) != tt.maxY-tt.minY {
				t.Fatalf("covered %d rows, want %d", len(seen), tt.maxY-tt.minY)
			}
			for y := tt.minY; y < tt.maxY; y++ {
				if seen[y] != 1 {
					t.Errorf("row %d visited %d times", y, seen[y])
				}
			}
		})
	}
}
