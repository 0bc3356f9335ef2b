package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixResizeOverflow(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		w, h   int
		wantXY [2]int
	}{
		{"pulled up", Rect{X: 0, Y: 500, W: 100, H: 100}, 1000, 550, [2]int{0, 450}},
		{"already fits", Rect{X: 0, Y: 10, W: 100, H: 100}, 1000, 600, [2]int{0, 10}},
		{"pulled left", Rect{X: 700, Y: 0, W: 200, H: 50}, 800, 600, [2]int{600, 0}},
		{"both axes", Rect{X: 90, Y: 90, W: 20, H: 20}, 100, 100, [2]int{80, 80}},
		{"taller than viewport", Rect{X: 0, Y: 30, W: 10, H: 200}, 100, 100, [2]int{0, 30}},
		{"height equals viewport", Rect{X: 0, Y: 30, W: 10, H: 100}, 100, 100, [2]int{0, 30}},
		{"touching edge", Rect{X: 0, Y: 50, W: 10, H: 50}, 100, 100, [2]int{0, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			w := NewWindow("W", tt.rect)
			_, _ = m.AddComponent(w)

			m.FixResizeOverflow(tt.w, tt.h)

			r := w.Root().Rect
			assert.Equal(t, tt.wantXY, [2]int{r.X, r.Y})
			assert.Equal(t, tt.rect.W, r.W, "width never changes")
			assert.Equal(t, tt.rect.H, r.H, "height never changes")
		})
	}
}

func TestFixResizeOverflow_Idempotent(t *testing.T) {
	m := NewManager()
	a := NewWindow("A", Rect{X: 300, Y: 500, W: 100, H: 100})
	b := NewWindow("B", Rect{X: 10, Y: 10, W: 30, H: 30})
	_, _ = m.AddComponent(a)
	_, _ = m.AddComponent(b)

	m.FixResizeOverflow(350, 550)
	first := []Rect{a.Root().Rect, b.Root().Rect}
	m.FixResizeOverflow(350, 550)
	assert.Equal(t, first, []Rect{a.Root().Rect, b.Root().Rect})
	assert.Equal(t, Rect{X: 250, Y: 450, W: 100, H: 100}, a.Root().Rect)
}

func TestFixResizeOverflow_SkipsRootless(t *testing.T) {
	m := NewManager()
	_, _ = m.AddComponent(&stubComponent{name: "Headless"})
	w := NewWindow("W", Rect{Y: 90, H: 20})
	_, _ = m.AddComponent(w)

	assert.NotPanics(t, func() { m.FixResizeOverflow(100, 100) })
	assert.Equal(t, 80, w.Root().Rect.Y)
}

func TestFixResizeOverflow_DetachedComponentsToo(t *testing.T) {
	m := NewManager()
	w := NewWindow("Hidden", Rect{Y: 90, W: 10, H: 20})
	_, _ = m.AddComponent(w)
	assert.False(t, w.Attached())

	m.FixResizeOverflow(100, 100)
	assert.Equal(t, 80, w.Root().Rect.Y)
}
