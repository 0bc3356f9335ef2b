package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCellManager(t *testing.T) (*Manager, *int) {
	t.Helper()
	return newTestManager(t,
		WithViewport(&Size{W: 80, H: 24}),
		WithDialogGeometry(DialogGeometry{Width: 40, Height: 8, ZIndex: 100}),
	)
}

func TestView_Dimensions(t *testing.T) {
	m, _ := newCellManager(t)
	w := NewWindow("Info", Rect{X: 2, Y: 1, W: 20, H: 4})
	w.Root().Title = "Novice"
	_, _ = m.AddComponent(w)
	require.NoError(t, w.Append())

	out := m.View(80, 24)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	for i, l := range lines {
		assert.Equal(t, 80, ansi.StringWidth(l), "line %d", i)
	}
	assert.Contains(t, ansi.Strip(out), "Novice")
	assert.Empty(t, m.View(0, 10))
}

func TestView_ClipsAtEdges(t *testing.T) {
	m, _ := newCellManager(t)
	w := NewWindow("Wide", Rect{X: 70, Y: 20, W: 30, H: 6})
	w.Root().Text = "hangs off the screen"
	_, _ = m.AddComponent(w)
	require.NoError(t, w.Append())

	lines := strings.Split(m.View(80, 24), "\n")
	require.Len(t, lines, 24)
	for _, l := range lines {
		assert.Equal(t, 80, ansi.StringWidth(l))
	}
}

func TestView_RecordsButtonHitRegions(t *testing.T) {
	m, _ := newCellManager(t)
	d, err := m.ShowPromptBox("Leave?", "yes", "no", nil, nil)
	require.NoError(t, err)
	// top = (24-8)/1.5 - 8 = 2, left = (80-40)/2 = 20
	require.Equal(t, Rect{X: 20, Y: 2, W: 40, H: 8}, d.Window().Root().Rect)

	out := ansi.Strip(m.View(80, 24))
	assert.Contains(t, out, "Confirm")
	assert.Contains(t, out, "Leave?")
	assert.Contains(t, out, "[ yes ]")
	assert.Contains(t, out, "[ no ]")

	// Border on row 2, then title, text, a blank line and the buttons on row 6.
	regions := m.hits.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, "WinPrompt/yes", regions[0].ID)
	assert.Equal(t, Rect{X: 22, Y: 6, W: 7, H: 1}, regions[0].Rect)
	assert.Equal(t, "WinPrompt/no", regions[1].ID)
	assert.Equal(t, Rect{X: 30, Y: 6, W: 6, H: 1}, regions[1].Rect)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "[ yes ]", ansi.Cut(lines[6], 22, 29))
}

func TestClick_PressesRenderedButton(t *testing.T) {
	m, _ := newCellManager(t)
	var accepted, cancelled int
	d, err := m.ShowPromptBox("Leave?", "yes", "no", func() { accepted++ }, func() { cancelled++ })
	require.NoError(t, err)

	assert.False(t, m.Click(30, 6), "nothing rendered yet")

	m.View(80, 24)
	assert.False(t, m.Click(0, 0))
	assert.True(t, m.Click(31, 6))
	assert.Equal(t, 0, accepted)
	assert.Equal(t, 1, cancelled)
	assert.Equal(t, DialogClosed, d.State())

	assert.False(t, m.Click(23, 6), "stale regions belong to a detached window")
}

func TestClick_BlockedBeneathOverlay(t *testing.T) {
	m, _ := newCellManager(t)
	var pressed int
	hud := NewWindow("Shop", Rect{X: 0, Y: 16, W: 20, H: 5})
	hud.Root().Buttons = []*Button{NewButton("buy", func() { pressed++ })}
	_, _ = m.AddComponent(hud)
	require.NoError(t, hud.Append())

	m.View(80, 24)
	regions := m.hits.Regions()
	require.Len(t, regions, 1)
	buy := regions[0].Rect

	_, err := m.ShowErrorBox("Disconnected.")
	require.NoError(t, err)
	m.View(80, 24)
	assert.False(t, m.Click(buy.X, buy.Y))
	assert.Zero(t, pressed)

	press(t, m, KeyEnter)
	m.View(80, 24)
	assert.True(t, m.Click(buy.X, buy.Y))
	assert.Equal(t, 1, pressed)
}

func TestClick_CoveredByHigherWindow(t *testing.T) {
	m, _ := newCellManager(t)
	var pressed int
	below := NewWindow("Below", Rect{X: 0, Y: 0, W: 20, H: 5})
	below.Root().Buttons = []*Button{NewButton("go", func() { pressed++ })}
	above := NewWindow("Above", Rect{X: 0, Y: 0, W: 30, H: 10})
	above.Root().ZIndex = 5
	for _, w := range []*Window{below, above} {
		_, _ = m.AddComponent(w)
		require.NoError(t, w.Append())
	}

	m.View(80, 24)
	for _, r := range m.hits.Regions() {
		assert.False(t, m.Click(r.Rect.X, r.Rect.Y))
	}
	assert.Zero(t, pressed)
}

func TestHitMap_LastAddedWins(t *testing.T) {
	h := NewHitMap()
	h.Add(HitRegion{ID: "a", Rect: Rect{W: 10, H: 10}})
	h.Add(HitRegion{ID: "b", Rect: Rect{X: 5, Y: 5, W: 10, H: 10}})

	require.NotNil(t, h.Test(6, 6))
	assert.Equal(t, "b", h.Test(6, 6).ID)
	assert.Equal(t, "a", h.Test(1, 1).ID)
	assert.Nil(t, h.Test(20, 20))

	h.Clear()
	assert.Nil(t, h.Test(1, 1))
	assert.Empty(t, h.Regions())
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	a := &Overlay{Class: "a", ZIndex: 1}
	b := &Overlay{Class: "b", ZIndex: 2}
	s.Push(a)
	s.Push(b)

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, b, top)

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove(b))
	_, ok = s.Peek()
	assert.False(t, ok)
}
