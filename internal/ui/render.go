package ui

import (
	"strings"

	"gameui/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View paints every attached window into a width x height block, bottom to
// top, dimming whatever lies beneath the topmost overlay. It also rebuilds the
// hit map used by Click, so positions refer to the last rendered frame.
func (m *Manager) View(width, height int) string {
	m.hits.Clear()
	if width <= 0 || height <= 0 {
		return ""
	}
	cv := newCanvas(width, height)
	top, hasOverlay := m.screen.overlays.Peek()
	dimmed := false
	for _, c := range m.screen.paintOrder() {
		if hasOverlay && !dimmed && zIndexOf(c) > top.ZIndex {
			cv.dim()
			dimmed = true
		}
		if w, ok := c.(*Window); ok {
			m.paintWindow(cv, w)
		}
	}
	if hasOverlay && !dimmed {
		cv.dim()
	}
	return cv.String()
}

func (m *Manager) paintWindow(cv *canvas, w *Window) {
	r := w.root.Rect
	block, buttonRow, offsets := renderRoot(w.root)
	cv.paste(r.X, r.Y, block)
	if buttonRow < 0 {
		return
	}
	// Content starts one cell in for the border and one for the padding.
	for i, b := range w.root.Buttons {
		m.hits.Add(HitRegion{
			ID:     w.name + "/" + b.Label,
			Rect:   Rect{X: r.X + 2 + offsets[i], Y: r.Y + 1 + buttonRow, W: ansi.StringWidth(buttonText(b)), H: 1},
			Owner:  w,
			Button: b,
		})
	}
}

// renderRoot draws a framed root. It returns the block, the content line of
// the button row (-1 if none) and each button's column within that row.
func renderRoot(root *Root) (string, int, []int) {
	r := root.Rect
	innerW := max(r.W-4, 1)

	var lines []string
	if root.Title != "" {
		lines = append(lines, titleStyle(root.Class).Render(textutil.Truncate(root.Title, innerW)))
	}
	if root.Text != "" {
		text := textStyle(root.Class).Width(innerW).Render(root.Text)
		lines = append(lines, strings.Split(text, "\n")...)
	}

	buttonRow := -1
	var offsets []int
	if len(root.Buttons) > 0 {
		lines = append(lines, "")
		buttonRow = len(lines)
		parts := make([]string, 0, len(root.Buttons))
		x := 0
		for _, b := range root.Buttons {
			label := buttonText(b)
			style := ModalStyles.Button
			if b.Fired() {
				style = ModalStyles.ButtonFired
			}
			offsets = append(offsets, x)
			parts = append(parts, style.Render(label))
			x += ansi.StringWidth(label) + 1
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	if root.Hint != "" {
		lines = append(lines, Styles.Hint.Render(root.Hint))
	}

	frame := frameStyle(root.Class).
		Width(max(r.W-2, 1)).
		Height(max(r.H-2, 1)).
		MaxWidth(max(r.W, 1)).
		MaxHeight(max(r.H, 1))
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)), buttonRow, offsets
}

// sgrReset clears attributes so pasted blocks do not bleed into the base line.
const sgrReset = "\x1b[0m"

func buttonText(b *Button) string {
	return "[ " + b.Label + " ]"
}

// canvas is a fixed grid of terminal lines that blocks are pasted onto.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{width: width, lines: lines}
}

// paste draws block with its top-left corner at (x, y), clipping at the edges.
func (c *canvas) paste(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		lw := ansi.StringWidth(line)
		col := x
		if col < 0 {
			line = ansi.Cut(line, -col, lw)
			lw += col
			col = 0
		}
		if lw <= 0 || col >= c.width {
			continue
		}
		if col+lw > c.width {
			line = ansi.Truncate(line, c.width-col, "")
			lw = c.width - col
		}
		base := c.lines[row]
		c.lines[row] = ansi.Truncate(base, col, "") + sgrReset +
			line + sgrReset + ansi.Cut(base, col+lw, c.width)
	}
}

// dim repaints everything drawn so far as backdrop.
func (c *canvas) dim() {
	for i, l := range c.lines {
		c.lines[i] = Styles.Backdrop.Render(ansi.Strip(l))
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
