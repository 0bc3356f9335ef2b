package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DialogKind is one of the closed set of modal dialogs the Manager builds.
type DialogKind int

const (
	DialogError DialogKind = iota
	DialogMessage
	DialogPrompt
)

func (k DialogKind) String() string {
	switch k {
	case DialogError:
		return "error"
	case DialogMessage:
		return "message"
	case DialogPrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// windowName is the registry key the dialog's window is stored under.
func (k DialogKind) windowName() string {
	switch k {
	case DialogError:
		return "WinError"
	case DialogMessage:
		return "WinMSG"
	case DialogPrompt:
		return "WinPrompt"
	default:
		return "WinDialog"
	}
}

// title is the caption drawn in the dialog's title bar.
func (k DialogKind) title() string {
	switch k {
	case DialogError:
		return "Error"
	case DialogPrompt:
		return "Confirm"
	default:
		return "Notice"
	}
}

func (k DialogKind) class() string {
	if k == DialogError {
		return "win_error"
	}
	return "win_popup"
}

// DialogState tracks a dialog from display to dismissal. Transitions only go
// forward: Open -> Closing -> Closed.
type DialogState int

const (
	DialogOpen DialogState = iota
	DialogClosing
	DialogClosed
)

func (s DialogState) String() string {
	switch s {
	case DialogOpen:
		return "Open"
	case DialogClosing:
		return "Closing"
	case DialogClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// ButtonSpec describes one dialog button and the continuation it runs.
type ButtonSpec struct {
	Label  string
	Action func()
}

// DialogConfig is everything needed to build a dialog.
type DialogConfig struct {
	Kind    DialogKind
	Text    string
	Buttons []ButtonSpec
	// AcceptKeys lets ENTER or ESCAPE dismiss the dialog and run OnKey.
	AcceptKeys bool
	OnKey      func()
	// Overlay blocks pointer input to everything beneath the dialog.
	Overlay   bool
	Draggable bool
}

// Dialog is a modal window cloned from the template. At most one
// continuation runs per dialog, whichever dismissal path wins.
type Dialog struct {
	cfg     DialogConfig
	mgr     *Manager
	window  *Window
	overlay *Overlay
	state   DialogState
	reason  string
	span    oteltrace.Span
}

// Window returns the dialog's window.
func (d *Dialog) Window() *Window { return d.window }

// Kind returns the dialog variant.
func (d *Dialog) Kind() DialogKind { return d.cfg.Kind }

// State returns where the dialog is in its lifecycle.
func (d *Dialog) State() DialogState { return d.state }

// Reason returns how the dialog was dismissed, or "" while open.
func (d *Dialog) Reason() string { return d.reason }

// Overlay returns the blocking overlay, or nil if the dialog has none.
func (d *Dialog) Overlay() *Overlay { return d.overlay }

// Buttons returns the dialog's buttons in display order.
func (d *Dialog) Buttons() []*Button { return d.window.root.Buttons }

// Button returns the button labelled label, or nil.
func (d *Dialog) Button(label string) *Button {
	for _, b := range d.window.root.Buttons {
		if b.Label == label {
			return b
		}
	}
	return nil
}

// Dismiss closes the dialog without running any continuation.
// Returns false if it was already closed.
func (d *Dialog) Dismiss() bool {
	return d.close("dismissed", nil)
}

func (d *Dialog) init(w *Window) error {
	root := w.root
	root.Title = d.cfg.Kind.title()
	root.Text = d.cfg.Text
	root.Class = d.cfg.Kind.class()
	root.Rect = dialogRect(d.mgr.viewport, d.mgr.geometry)
	root.ZIndex = d.mgr.geometry.ZIndex
	if d.cfg.Draggable {
		w.Draggable()
	}

	root.Buttons = make([]*Button, 0, len(d.cfg.Buttons))
	for _, spec := range d.cfg.Buttons {
		action := spec.Action
		reason := "button:" + spec.Label
		root.Buttons = append(root.Buttons, NewButton(spec.Label, func() {
			d.close(reason, action)
		}))
	}

	if d.cfg.AcceptKeys {
		root.Hint = help.New().ShortHelpView([]key.Binding{DialogKeys.Accept, DialogKeys.Close})
	}
	return nil
}

// onKeyDown swallows every key; ENTER and ESCAPE dismiss when AcceptKeys is set.
func (d *Dialog) onKeyDown(_ *Window, ev KeyEvent) (Propagation, error) {
	if d.cfg.AcceptKeys && isDismissKey(ev) {
		d.close("key:"+ev.String(), d.cfg.OnKey)
	}
	return Stop, nil
}

func (d *Dialog) onAppend(w *Window) error {
	d.span.AddEvent("appended", oteltrace.WithAttributes(
		attribute.Int("dialog.x", w.root.Rect.X),
		attribute.Int("dialog.y", w.root.Rect.Y),
	))
	return nil
}

// onRemove catches removals that did not go through close, such as
// RemoveComponents during teardown.
func (d *Dialog) onRemove(_ *Window) {
	if d.state == DialogOpen {
		d.state = DialogClosing
		d.finish("removed")
	}
}

func (d *Dialog) close(reason string, then func()) bool {
	if d.state != DialogOpen {
		return false
	}
	d.state = DialogClosing
	d.window.Remove()
	d.finish(reason)
	if then != nil {
		then()
	}
	return true
}

func (d *Dialog) finish(reason string) {
	if d.overlay != nil {
		d.mgr.RemoveOverlay(d.overlay)
	}
	d.state = DialogClosed
	d.reason = reason
	d.span.SetAttributes(attribute.String("dialog.reason", reason))
	d.span.End()
	d.mgr.log.Info().
		Str("dialog", d.cfg.Kind.String()).
		Str("component", d.window.name).
		Str("reason", reason).
		Msg("dialog closed")
}

func (d *Dialog) fail(err error) {
	d.span.RecordError(err)
	d.span.SetStatus(codes.Error, err.Error())
	d.state = DialogClosing
	d.window.Remove()
	d.finish("failed")
}

// dialogRect centers the dialog horizontally and puts it just above the
// vertical center: top = (vh-dh)/1.5 - dh, left = (vw-dw)/2.
func dialogRect(v Viewport, g DialogGeometry) Rect {
	top := int(float64(v.Height()-g.Height)/1.5) - g.Height
	left := (v.Width() - g.Width) / 2
	// Clamped to 0: on a viewport smaller than about 2.5 dialog heights the
	// formula goes negative and would put the title bar off screen.
	return Rect{X: max(left, 0), Y: max(top, 0), W: g.Width, H: g.Height}
}
