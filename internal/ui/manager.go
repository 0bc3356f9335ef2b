package ui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Viewport supplies the current renderer dimensions.
type Viewport interface {
	Width() int
	Height() int
}

// Size is a fixed Viewport. Hosts keep a *Size and update it on resize.
type Size struct {
	W, H int
}

func (s *Size) Width() int  { return s.W }
func (s *Size) Height() int { return s.H }

// DialogGeometry is the size and stacking order of dialogs built from the template.
type DialogGeometry struct {
	Width  int
	Height int
	ZIndex int
}

// DefaultDialogGeometry matches the popup skin of the web client (pixels).
var DefaultDialogGeometry = DialogGeometry{Width: 280, Height: 120, ZIndex: 100}

// DefaultTemplate is the registered window dialogs are cloned from.
const DefaultTemplate = "WinPopup"

// Manager owns the live components of one UI session: the registry, the
// display tree, the key-down priority order and the dialog factory.
type Manager struct {
	components map[string]Component
	screen     *screen
	input      *InputStack
	hits       *HitMap
	viewport   Viewport
	reload     func()
	geometry   DialogGeometry
	template   string
	log        zerolog.Logger
	tracer     oteltrace.Tracer
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithViewport sets the renderer dimensions used to place dialogs.
func WithViewport(v Viewport) Option {
	return func(m *Manager) { m.viewport = v }
}

// WithReload sets the action run after an error box is dismissed.
func WithReload(fn func()) Option {
	return func(m *Manager) { m.reload = fn }
}

// WithInputStack shares an existing InputStack instead of creating one.
func WithInputStack(s *InputStack) Option {
	return func(m *Manager) { m.input = s }
}

// WithDialogGeometry overrides DefaultDialogGeometry.
func WithDialogGeometry(g DialogGeometry) Option {
	return func(m *Manager) { m.geometry = g }
}

// WithTemplate sets the name of the window dialogs are cloned from.
func WithTemplate(name string) Option {
	return func(m *Manager) { m.template = name }
}

// WithTracer sets the tracer used for dialog lifecycle spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(m *Manager) { m.tracer = t }
}

// NewManager creates an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		components: make(map[string]Component),
		screen:     &screen{},
		hits:       NewHitMap(),
		viewport:   &Size{},
		geometry:   DefaultDialogGeometry,
		template:   DefaultTemplate,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.input == nil {
		m.input = NewInputStack()
	}
	if m.tracer == nil {
		m.tracer = otel.Tracer("gameui/ui")
	}
	return m
}

// SetDialogGeometry changes the size and stacking order of dialogs opened
// from now on. Open dialogs keep their geometry.
func (m *Manager) SetDialogGeometry(g DialogGeometry) {
	m.geometry = g
}

// Input returns the key-down priority order shared by every component.
func (m *Manager) Input() *InputStack { return m.input }

// Viewport returns the current renderer dimensions.
func (m *Manager) Viewport() Viewport { return m.viewport }

// AddComponent stores c under its name, replacing any previous entry, and
// makes m its owning manager.
func (m *Manager) AddComponent(c Component) (Component, error) {
	if isNil(c) {
		return nil, fmt.Errorf("add component: %w", ErrInvalidComponent)
	}
	name := c.Name()
	if name == "" {
		return nil, fmt.Errorf("add component: empty name: %w", ErrInvalidComponent)
	}
	if prev, ok := m.components[name]; ok && prev != c {
		m.log.Debug().Str("component", name).Msg("replacing registered component")
	}
	c.SetManager(m)
	m.components[name] = c
	return c, nil
}

// isNil catches both a nil interface and an interface holding a nil pointer,
// map, slice, func or chan.
func isNil(c Component) bool {
	if c == nil {
		return true
	}
	switch v := reflect.ValueOf(c); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetComponent returns the component registered under name.
func (m *Manager) GetComponent(name string) (Component, error) {
	c, ok := m.components[name]
	if !ok {
		return nil, fmt.Errorf("component %q: %w", name, ErrComponentNotFound)
	}
	return c, nil
}

// RemoveComponents calls Remove once on every component registered at call
// time, and on attached components whose registry entry was replaced by a
// later component of the same name. Entries stay registered. Must not be
// called from a Remove hook.
func (m *Manager) RemoveComponents() {
	seen := make(map[Component]bool, len(m.components))
	snapshot := make([]Component, 0, len(m.components)+len(m.screen.attached))
	for _, c := range m.components {
		seen[c] = true
		snapshot = append(snapshot, c)
	}
	for _, c := range m.screen.attached {
		if !seen[c] {
			seen[c] = true
			snapshot = append(snapshot, c)
		}
	}
	m.log.Info().Int("components", len(snapshot)).Msg("removing all components")
	for _, c := range snapshot {
		c.Remove()
	}
}

// Components returns the registered names, sorted.
func (m *Manager) Components() []string {
	names := make([]string, 0, len(m.components))
	for name := range m.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Attached returns the components on screen, bottom to top.
func (m *Manager) Attached() []Component {
	return m.screen.paintOrder()
}

// AddOverlay puts a blocking overlay on screen.
func (m *Manager) AddOverlay(class string, zIndex int) *Overlay {
	o := &Overlay{Class: class, ZIndex: zIndex}
	m.screen.overlays.Push(o)
	return o
}

// RemoveOverlay takes o off screen. Returns false if it was not there.
func (m *Manager) RemoveOverlay(o *Overlay) bool {
	return m.screen.overlays.Remove(o)
}

// Overlays returns the number of overlays on screen.
func (m *Manager) Overlays() int {
	return m.screen.overlays.Len()
}

// PointerTarget returns the topmost attached component under (x, y) that is
// not blocked by an overlay, or nil.
func (m *Manager) PointerTarget(x, y int) Component {
	order := m.screen.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		c := order[i]
		r := c.Root()
		if r == nil || !r.Rect.Contains(x, y) {
			continue
		}
		if m.screen.blocked(c) {
			return nil
		}
		return c
	}
	return nil
}

// Click presses the button drawn at (x, y) during the last render.
// Returns false when nothing clickable is there or its window is covered.
func (m *Manager) Click(x, y int) bool {
	region := m.hits.Test(x, y)
	if region == nil || region.Button == nil {
		return false
	}
	if m.PointerTarget(x, y) != region.Owner {
		return false
	}
	m.log.Debug().Str("component", region.Owner.Name()).Str("button", region.Button.Label).Msg("button clicked")
	return region.Button.Click()
}
