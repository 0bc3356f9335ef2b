package ui

import "fmt"

// Window is the base component: a named, positioned box with overridable
// lifecycle hooks. Hooks may be replaced before the first Append.
type Window struct {
	// Init runs once, the first time the window is displayed.
	Init func(w *Window) error
	// OnKeyDown receives key-downs while the window is attached.
	OnKeyDown func(w *Window, ev KeyEvent) (Propagation, error)
	// OnAppend runs right after the window is attached.
	OnAppend func(w *Window) error
	// OnRemove runs right after the window is detached.
	OnRemove func(w *Window)

	name        string
	root        *Root
	manager     *Manager
	draggable   bool
	modal       bool
	attached    bool
	initialized bool
	listener    ListenerID
}

// Ensure Window implements Component.
var _ Component = (*Window)(nil)

// NewWindow creates a detached window occupying rect.
func NewWindow(name string, rect Rect) *Window {
	return &Window{
		name: name,
		root: &Root{Rect: rect},
	}
}

// Name implements Component.
func (w *Window) Name() string { return w.name }

// Root implements Component.
func (w *Window) Root() *Root { return w.root }

// Manager implements Component.
func (w *Window) Manager() *Manager { return w.manager }

// SetManager implements Component.
func (w *Window) SetManager(m *Manager) { w.manager = m }

// Attached reports whether the window is on screen.
func (w *Window) Attached() bool { return w.attached }

// Modal reports whether the window claims input priority when appended.
func (w *Window) Modal() bool { return w.modal }

// SetModal makes the window's key listener run in front of every other
// listener and swallow every key while attached.
func (w *Window) SetModal(modal bool) { w.modal = modal }

// Draggable allows the window to be moved with DragBy.
func (w *Window) Draggable() { w.draggable = true }

// IsDraggable reports whether DragBy moves the window.
func (w *Window) IsDraggable() bool { return w.draggable }

// DragBy moves a draggable window. Returns false if it is not draggable.
func (w *Window) DragBy(dx, dy int) bool {
	if !w.draggable {
		return false
	}
	w.root.Rect.X += dx
	w.root.Rect.Y += dy
	return true
}

// Clone copies the window under a new name. The copy keeps the hooks, skin
// and geometry but has no buttons, no manager and has never been displayed.
func (w *Window) Clone(name string) *Window {
	return &Window{
		Init:      w.Init,
		OnKeyDown: w.OnKeyDown,
		OnAppend:  w.OnAppend,
		OnRemove:  w.OnRemove,
		name:      name,
		root:      w.root.clone(),
		draggable: w.draggable,
		modal:     w.modal,
	}
}

// Append implements Component: attach, Init on first display, register the
// key listener, then OnAppend. A failing Init leaves the window detached.
func (w *Window) Append() error {
	if w.manager == nil {
		return fmt.Errorf("append %q: %w", w.name, ErrNoManager)
	}
	if w.attached {
		return nil
	}
	w.manager.screen.attach(w)
	w.attached = true

	if !w.initialized {
		if w.Init != nil {
			if err := w.Init(w); err != nil {
				w.detach()
				return fmt.Errorf("init %q: %w", w.name, err)
			}
		}
		w.initialized = true
	}

	if w.OnKeyDown != nil {
		w.listener = w.registerListener(w.manager.input)
	}

	w.manager.log.Debug().Str("component", w.name).Bool("modal", w.modal).Msg("component appended")

	if w.OnAppend != nil {
		if err := w.OnAppend(w); err != nil {
			return fmt.Errorf("append hook %q: %w", w.name, err)
		}
	}
	return nil
}

func (w *Window) registerListener(s *InputStack) ListenerID {
	if !w.modal {
		return s.Register(w.name, func(ev KeyEvent) (Propagation, error) {
			return w.OnKeyDown(w, ev)
		})
	}
	return s.RegisterTop(w.name, func(ev KeyEvent) (Propagation, error) {
		_, err := w.OnKeyDown(w, ev)
		return Stop, err
	})
}

// Remove implements Component: detach, retire the key listener, then OnRemove.
// Removing a detached window does nothing.
func (w *Window) Remove() {
	if !w.attached {
		return
	}
	w.detach()
	w.manager.log.Debug().Str("component", w.name).Msg("component removed")
	if w.OnRemove != nil {
		w.OnRemove(w)
	}
}

func (w *Window) detach() {
	w.attached = false
	if w.listener != 0 {
		w.manager.input.Unregister(w.listener)
		w.listener = 0
	}
	w.manager.screen.detach(w)
}
