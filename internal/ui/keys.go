package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyCode identifies a key the way the game client's input layer reports it.
// Values follow the browser keyCode table so skins and scripts written against
// the web client keep working.
type KeyCode int

const (
	KeyUnknown   KeyCode = 0
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
)

// KeyEvent is a single key-down delivered through the InputStack.
type KeyEvent struct {
	Which KeyCode
	Msg   tea.KeyMsg
}

// NewKeyEvent decodes a Bubble Tea key message.
func NewKeyEvent(msg tea.KeyMsg) KeyEvent {
	return KeyEvent{Which: keyCodeOf(msg), Msg: msg}
}

// KeyEventOf builds an event for a bare key code (scripted input, tests).
func KeyEventOf(code KeyCode) KeyEvent {
	return KeyEvent{Which: code}
}

func (e KeyEvent) String() string {
	if e.Msg.Type == 0 && len(e.Msg.Runes) == 0 {
		switch e.Which {
		case KeyEnter:
			return "enter"
		case KeyEscape:
			return "esc"
		}
	}
	return e.Msg.String()
}

func keyCodeOf(msg tea.KeyMsg) KeyCode {
	switch msg.Type {
	case tea.KeyEnter:
		return KeyEnter
	case tea.KeyEsc:
		return KeyEscape
	case tea.KeySpace:
		return KeySpace
	case tea.KeyTab:
		return KeyTab
	case tea.KeyBackspace:
		return KeyBackspace
	case tea.KeyLeft:
		return KeyLeft
	case tea.KeyUp:
		return KeyUp
	case tea.KeyRight:
		return KeyRight
	case tea.KeyDown:
		return KeyDown
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return KeyUnknown
		}
		r := msg.Runes[0]
		switch {
		case r >= 'a' && r <= 'z':
			return KeyCode(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return KeyCode(r)
		case r == ' ':
			return KeySpace
		}
	}
	return KeyUnknown
}

// DialogKeys are the accelerators a keyboard-enabled dialog accepts.
var DialogKeys = struct {
	Accept key.Binding
	Close  key.Binding
}{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ok"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// isDismissKey reports whether ev is ENTER or ESCAPE.
func isDismissKey(ev KeyEvent) bool {
	if ev.Which == KeyEnter || ev.Which == KeyEscape {
		return true
	}
	return key.Matches(ev.Msg, DialogKeys.Accept, DialogKeys.Close)
}
