package ui

import (
	"errors"
	"fmt"
	"strings"

	"gameui/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// AppOptions configures the terminal host.
type AppOptions struct {
	Geometry DialogGeometry
	Template string
	Logger   zerolog.Logger
	Tracer   oteltrace.Tracer
}

// AppModel hosts a Manager inside a Bubble Tea program. The terminal is the
// renderer: its size is the viewport and its key and mouse events are the
// input source.
type AppModel struct {
	Manager    *Manager
	KeyHandler *KeyHandler
	Size       *Size
	Status     string
	Reloads    int

	template string
	log      zerolog.Logger
	queue    []tea.Cmd
	err      error
	drag     *dragState
}

// dragState follows a left-button drag of a draggable window.
type dragState struct {
	window *Window
	x, y   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the host, registers the global hotkeys as the bottom
// key listener and builds the initial UI.
func NewAppModel(opts AppOptions) (*AppModel, error) {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.Geometry == (DialogGeometry{}) {
		opts.Geometry = DefaultDialogGeometry
	}
	a := &AppModel{
		Size:     &Size{W: 80, H: 24},
		Status:   "SPC for commands",
		template: opts.Template,
		log:      opts.Logger,
	}
	a.Manager = NewManager(
		WithLogger(opts.Logger),
		WithViewport(a.Size),
		WithReload(a.reload),
		WithDialogGeometry(opts.Geometry),
		WithTemplate(opts.Template),
		WithTracer(opts.Tracer),
	)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC d e", func() tea.Msg {
		return ShowErrorBoxMsg{Text: "Disconnected from the map server."}
	}, "Error box")
	reg.BindWithDesc("SPC d m", func() tea.Msg {
		return ShowMessageBoxMsg{Text: "You have reached base level 2.", Button: "ok", AcceptKeys: true}
	}, "Message box")
	reg.BindWithDesc("SPC d n", func() tea.Msg {
		return ShowMessageBoxMsg{Text: "Press enter to continue."}
	}, "Notice")
	reg.BindWithDesc("SPC d p", func() tea.Msg {
		return ShowPromptBoxMsg{Text: "Leave the game?", Accept: "yes", Cancel: "no"}
	}, "Prompt box")
	a.KeyHandler = NewKeyHandler(reg)
	a.Manager.Input().Register("keybinds", a.KeyHandler.Listener())

	if err := bootstrap(a.Manager, a.template); err != nil {
		return nil, err
	}
	return a, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Err returns the error that stopped the host, if any.
func (a *AppModel) Err() error {
	return a.err
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Size.W, a.Size.H = msg.Width, msg.Height
		a.Manager.FixResizeOverflow(msg.Width, a.screenHeight())
		return a, nil
	case tea.KeyMsg:
		// ctrl+c always leaves, even with a modal open
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if _, err := a.Manager.Input().Dispatch(NewKeyEvent(msg)); err != nil {
			a.fail(err)
		}
	case tea.MouseMsg:
		a.handleMouse(msg)
	case ShowErrorBoxMsg:
		if _, err := a.Manager.ShowErrorBox(msg.Text); err != nil {
			a.abort(err)
		}
	case ShowMessageBoxMsg:
		_, err := a.Manager.ShowMessageBox(msg.Text, msg.Button, func() {
			a.post(StatusMsg{Text: "message dismissed"})
		}, msg.AcceptKeys)
		if err != nil {
			a.fail(err)
		}
	case ShowPromptBoxMsg:
		_, err := a.Manager.ShowPromptBox(msg.Text, msg.Accept, msg.Cancel,
			func() { a.queue = append(a.queue, tea.Quit) },
			func() { a.post(StatusMsg{Text: "stayed in game"}) },
		)
		if err != nil {
			a.fail(err)
		}
	case DialogGeometryMsg:
		a.Manager.SetDialogGeometry(msg.Geometry)
		a.Status = "dialog size updated"
	case StatusMsg:
		a.Status = msg.Text
	}
	return a, a.flush()
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	h := a.screenHeight()
	help := ""
	if a.KeyHandler.LeaderWaiting {
		help = RenderKeybindHelp(a.KeyHandler)
		h = max(h-lipgloss.Height(help), 0)
	}
	parts := []string{a.Manager.View(a.Size.W, h)}
	if help != "" {
		parts = append(parts, help)
	}
	parts = append(parts, Styles.Status.Render(textutil.PadRight(a.statusLine(), a.Size.W)))
	return strings.Join(parts, "\n")
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if a.Manager.Click(msg.X, msg.Y) {
			return
		}
		if w, ok := a.Manager.PointerTarget(msg.X, msg.Y).(*Window); ok && w.IsDraggable() {
			a.drag = &dragState{window: w, x: msg.X, y: msg.Y}
		}
	case tea.MouseActionMotion:
		if a.drag == nil {
			return
		}
		if !a.drag.window.Attached() {
			a.drag = nil
			return
		}
		a.drag.window.DragBy(msg.X-a.drag.x, msg.Y-a.drag.y)
		a.drag.x, a.drag.y = msg.X, msg.Y
	case tea.MouseActionRelease:
		a.drag = nil
	}
}

// screenHeight leaves the last terminal row for the status line.
func (a *AppModel) screenHeight() int {
	return max(a.Size.H-1, 0)
}

func (a *AppModel) statusLine() string {
	front, _ := a.Manager.Input().Front()
	return fmt.Sprintf("%s | windows %d | input %s", a.Status, len(a.Manager.Attached()), front)
}

// post queues msg to be delivered after the current update.
func (a *AppModel) post(msg tea.Msg) {
	a.queue = append(a.queue, func() tea.Msg { return msg })
}

func (a *AppModel) flush() tea.Cmd {
	if c := a.KeyHandler.Drain(); c != nil {
		a.queue = append(a.queue, c)
	}
	if len(a.queue) == 0 {
		return nil
	}
	cmds := a.queue
	a.queue = nil
	return tea.Batch(cmds...)
}

// fail reports an unrecoverable UI error to the player through the error box.
func (a *AppModel) fail(err error) {
	a.log.Error().Err(err).Msg("ui failure")
	if _, boxErr := a.Manager.ShowErrorBox(err.Error()); boxErr != nil {
		a.abort(errors.Join(err, boxErr))
	}
}

// abort stops the program when even the error box cannot be shown.
func (a *AppModel) abort(err error) {
	a.log.Error().Err(err).Msg("cannot show error box, quitting")
	a.err = err
	a.queue = append(a.queue, tea.Quit)
}

// reload is the application reload action: tear everything down and build
// the initial UI again.
func (a *AppModel) reload() {
	a.Manager.RemoveComponents()
	if err := bootstrap(a.Manager, a.template); err != nil {
		a.abort(fmt.Errorf("reload: %w", err))
		return
	}
	a.Reloads++
	a.Status = "reloaded"
	a.Manager.FixResizeOverflow(a.Size.W, a.screenHeight())
}
