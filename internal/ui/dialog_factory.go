package ui

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// cloner is implemented by components that can serve as a dialog template.
type cloner interface {
	Clone(name string) *Window
}

// OpenDialog clones the template, registers the clone under the kind's
// window name (replacing any previous dialog of that kind), and appends it
// in front of every key listener.
func (m *Manager) OpenDialog(cfg DialogConfig) (*Dialog, error) {
	tmpl, err := m.GetComponent(m.template)
	if err != nil {
		return nil, fmt.Errorf("open %s dialog: %w", cfg.Kind, err)
	}
	c, ok := tmpl.(cloner)
	if !ok {
		return nil, fmt.Errorf("open %s dialog: template %q: %w", cfg.Kind, m.template, ErrNotClonable)
	}

	w := c.Clone(cfg.Kind.windowName())
	d := &Dialog{cfg: cfg, mgr: m, window: w, state: DialogOpen}
	w.Init = d.init
	w.OnKeyDown = d.onKeyDown
	w.OnAppend = d.onAppend
	w.OnRemove = d.onRemove
	w.SetModal(true)

	if _, err := m.AddComponent(w); err != nil {
		return nil, err
	}

	_, d.span = m.tracer.Start(context.Background(), "ui.dialog",
		oteltrace.WithAttributes(
			attribute.String("dialog.kind", cfg.Kind.String()),
			attribute.String("dialog.component", w.name),
			attribute.Int("dialog.buttons", len(cfg.Buttons)),
			attribute.Bool("dialog.accept_keys", cfg.AcceptKeys),
		))

	if cfg.Overlay {
		d.overlay = m.AddOverlay("win_popup_overlay", m.geometry.ZIndex-1)
	}

	if err := w.Append(); err != nil {
		d.fail(err)
		return nil, fmt.Errorf("open %s dialog: %w", cfg.Kind, err)
	}

	m.log.Info().
		Str("dialog", cfg.Kind.String()).
		Str("component", w.name).
		Int("listeners", m.input.Len()).
		Msg("dialog opened")
	return d, nil
}

// ShowErrorBox opens the fatal error dialog. It blocks the rest of the UI
// with an overlay; ENTER or ESCAPE closes it and reloads the application.
// Every other key is swallowed.
func (m *Manager) ShowErrorBox(text string) (*Dialog, error) {
	return m.OpenDialog(DialogConfig{
		Kind:       DialogError,
		Text:       text,
		AcceptKeys: true,
		OnKey:      m.runReload,
		Overlay:    true,
	})
}

// ShowMessageBox opens an informational dialog. With a button label it shows
// one button; without one, or when alsoAcceptKeydown is set, ENTER or ESCAPE
// also dismiss it. onDismiss runs at most once whichever path closes it.
func (m *Manager) ShowMessageBox(text, buttonLabel string, onDismiss func(), alsoAcceptKeydown bool) (*Dialog, error) {
	cfg := DialogConfig{
		Kind:       DialogMessage,
		Text:       text,
		AcceptKeys: buttonLabel == "" || alsoAcceptKeydown,
		OnKey:      onDismiss,
		Draggable:  true,
	}
	if buttonLabel != "" {
		cfg.Buttons = []ButtonSpec{{Label: buttonLabel, Action: onDismiss}}
	}
	return m.OpenDialog(cfg)
}

// ShowPromptBox opens a two-button question. Exactly one of onAccept and
// onCancel runs, after the dialog is removed. There is no keyboard accelerator.
func (m *Manager) ShowPromptBox(text, acceptLabel, cancelLabel string, onAccept, onCancel func()) (*Dialog, error) {
	return m.OpenDialog(DialogConfig{
		Kind: DialogPrompt,
		Text: text,
		Buttons: []ButtonSpec{
			{Label: acceptLabel, Action: onAccept},
			{Label: cancelLabel, Action: onCancel},
		},
		Draggable: true,
	})
}

func (m *Manager) runReload() {
	if m.reload == nil {
		m.log.Warn().Msg("error box dismissed but no reload action is set")
		return
	}
	m.log.Info().Msg("reloading after error box")
	m.reload()
}
