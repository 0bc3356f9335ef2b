package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyHandler_NestedSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC d e", tea.Quit, "Error box")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("d"))
	if !consumed || cmd != nil {
		t.Errorf("d: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Fatal("expected to stay in leader mode after SPC d")
	}
	consumed, cmd = h.Handle(keyMsg("e"))
	if !consumed || cmd == nil {
		t.Errorf("e: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("leader should reset after SPC d e")
	}
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC d e", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting || len(h.Buffer) != 0 {
		t.Errorf("expected reset, waiting=%v buffer=%v", h.LeaderWaiting, h.Buffer)
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC d e", tea.Quit, "Error box")
	reg.BindWithDesc("SPC d m", tea.Quit, "Message box")

	top := reg.LeaderHints("")
	if top["q"] != "Quit" {
		t.Errorf("q hint = %q", top["q"])
	}
	if top["d"] != "Dialog" {
		t.Errorf("d hint = %q, want submenu label", top["d"])
	}

	sub := reg.LeaderHints("SPC d")
	if len(sub) != 2 || sub["e"] != "Error box" || sub["m"] != "Message box" {
		t.Errorf("SPC d hints = %v", sub)
	}
}

func TestKeyHandler_ListenerQueuesCommands(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", func() tea.Msg { return StatusMsg{Text: "x"} })
	h := NewKeyHandler(reg)
	l := h.Listener()

	if p, _ := l(NewKeyEvent(keyMsg(" "))); p != Stop {
		t.Error("leader key should stop propagation")
	}
	if p, _ := l(NewKeyEvent(keyMsg("x"))); p != Stop {
		t.Error("bound key should stop propagation")
	}
	if p, _ := l(NewKeyEvent(keyMsg("j"))); p != Continue {
		t.Error("unbound key should continue")
	}

	cmd := h.Drain()
	if cmd == nil {
		t.Fatal("expected a queued command")
	}
	if h.Drain() != nil {
		t.Error("drain should empty the queue")
	}
}

func TestKeyHandler_ModalHidesHotkeys(t *testing.T) {
	m, _ := newTestManager(t)
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)
	m.Input().Register("keybinds", h.Listener())

	if _, err := m.ShowMessageBox("hold on", "", nil, false); err != nil {
		t.Fatalf("ShowMessageBox: %v", err)
	}
	m.Input().Dispatch(NewKeyEvent(keyMsg(" ")))
	if h.LeaderWaiting {
		t.Error("modal should swallow the leader key")
	}

	m.Input().Dispatch(NewKeyEvent(keyMsg("esc")))
	m.Input().Dispatch(NewKeyEvent(keyMsg(" ")))
	if !h.LeaderWaiting {
		t.Error("leader key should reach the hotkeys once the dialog is closed")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	case "x":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	case "j":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
