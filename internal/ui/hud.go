package ui

import (
	"fmt"
	"strings"
)

// bootstrap registers the popup template and appends the HUD windows.
// It runs at startup and again on every reload.
func bootstrap(m *Manager, template string) error {
	tmpl := NewWindow(template, Rect{})
	tmpl.Root().Class = "win_popup"
	if _, err := m.AddComponent(tmpl); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	for _, w := range hudWindows() {
		if _, err := m.AddComponent(w); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		if err := w.Append(); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}
	return nil
}

func hudWindows() []*Window {
	info := NewWindow("BasicInfo", Rect{X: 0, Y: 0, W: 30, H: 6})
	info.Root().Title = "Novice"
	info.Root().Text = "HP 40/40  SP 11/11\nBase Lv 1  Job Lv 1"

	minimap := NewWindow("MiniMap", Rect{X: 56, Y: 0, W: 24, H: 7})
	minimap.Root().Title = "prontera"
	minimap.Root().Text = "156, 180"

	return []*Window{info, minimap, newChatBox(Rect{X: 0, Y: 15, W: 50, H: 8})}
}

// newChatBox returns a window that collects typed runes and "sends" them on
// ENTER. It listens behind the global hotkeys, so it only sees keys they
// did not consume.
func newChatBox(rect Rect) *Window {
	w := NewWindow("ChatBox", rect)
	w.Root().Title = "Chat"
	var history []string
	var line strings.Builder
	redraw := func(w *Window) {
		start := max(len(history)-(rect.H-4), 0)
		lines := append([]string{}, history[start:]...)
		w.Root().Text = strings.Join(append(lines, "> "+line.String()), "\n")
	}
	w.Init = func(w *Window) error {
		redraw(w)
		return nil
	}
	w.OnKeyDown = func(w *Window, ev KeyEvent) (Propagation, error) {
		switch {
		case ev.Which == KeyEnter:
			if line.Len() > 0 {
				history = append(history, line.String())
				line.Reset()
			}
		case ev.Which == KeyBackspace:
			s := []rune(line.String())
			if len(s) > 0 {
				line.Reset()
				line.WriteString(string(s[:len(s)-1]))
			}
		case len(ev.Msg.Runes) > 0:
			line.WriteString(string(ev.Msg.Runes))
		default:
			return Continue, nil
		}
		redraw(w)
		return Stop, nil
	}
	return w
}
