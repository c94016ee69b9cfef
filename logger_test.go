package canvas

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/canvas/text"
)

// captureHandler keeps every record it handles.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

// messages returns the messages logged at level.
func (h *captureHandler) messages(level slog.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, r := range h.records {
		if r.Level == level {
			out = append(out, r.Message)
		}
	}
	return out
}

// attr returns the value of key on the records with message msg, in order.
func (h *captureHandler) attr(msg, key string) []slog.Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Value
	for _, r := range h.records {
		if r.Message != msg {
			continue
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				out = append(out, a.Value)
				return false
			}
			return true
		})
	}
	return out
}

func captureLogs(t *testing.T) *captureHandler {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	h := &captureHandler{}
	SetLogger(slog.New(h))
	return h
}

func TestLoggerDefaultSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestSetLoggerPropagatesToText(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	if Logger() != custom || text.Logger() != custom {
		t.Error("SetLogger did not reach the text package")
	}

	SetLogger(nil)
	if text.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) left the text package logging")
	}
}

func TestSaveRestoreDepthRecords(t *testing.T) {
	h := captureLogs(t)
	c, _ := newTestCanvas(t)

	c.Save()
	c.Save()
	if err := c.Restore(); err != nil {
		t.Fatal(err)
	}
	if err := c.Restore(); err != nil {
		t.Fatal(err)
	}

	var saves, restores []int64
	for _, v := range h.attr("canvas: save", "depth") {
		saves = append(saves, v.Int64())
	}
	for _, v := range h.attr("canvas: restore", "depth") {
		restores = append(restores, v.Int64())
	}
	if !slices.Equal(saves, []int64{1, 2}) {
		t.Errorf("save depths = %v, want [1 2]", saves)
	}
	if !slices.Equal(restores, []int64{1, 0}) {
		t.Errorf("restore depths = %v, want [1 0]", restores)
	}
	if warns := h.messages(slog.LevelWarn); len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
}

func TestRedrawLogsPass(t *testing.T) {
	h := captureLogs(t)
	c, _ := newTestCanvas(t)
	if err := c.Redraw(Rect{}, DrawableFunc(func(*Canvas, Rect) error { return nil })); err != nil {
		t.Fatal(err)
	}
	debug := h.messages(slog.LevelDebug)
	if len(debug) < 2 || debug[0] != "canvas: begin" || debug[len(debug)-1] != "canvas: end" {
		t.Errorf("debug records = %v, want begin ... end", debug)
	}
	if got := h.attr("canvas: begin", "width"); len(got) != 1 || got[0].Int64() != 200 {
		t.Errorf("begin width = %v, want 200", got)
	}
}

func TestUnsupportedWarningAttrs(t *testing.T) {
	h := captureLogs(t)
	c, b := newTestCanvas(t)
	b.unsupported = map[string]bool{"fill": true, "stroke": true}

	for range 2 {
		_ = c.FillRectangle(0, 0, 5, 5)
		_ = c.DrawLine(0, 0, 5, 5)
	}

	var features []string
	for _, v := range h.attr("canvas: unsupported capability", "feature") {
		features = append(features, v.String())
	}
	slices.Sort(features)
	if want := []string{"mock/fill", "mock/stroke"}; !slices.Equal(features, want) {
		t.Errorf("warned features = %v, want %v", features, want)
	}
}

func TestDroppedArcWarns(t *testing.T) {
	h := captureLogs(t)
	p := NewPath()
	p.AddArc(0, 0, 10, 10, math.Inf(1), 90, false)
	if p.SegmentCount() != 0 {
		t.Errorf("SegmentCount() = %d, want 0", p.SegmentCount())
	}
	if warns := h.messages(slog.LevelWarn); !slices.Equal(warns, []string{"canvas: arc dropped"}) {
		t.Errorf("warnings = %v", warns)
	}
}
