package ui

// Component is a managed UI element with an append/remove lifecycle.
type Component interface {
	Name() string
	// Root returns the visual root, or nil if the component has none yet.
	Root() *Root
	Manager() *Manager
	SetManager(m *Manager)
	Append() error
	Remove()
}

// Rect is a resolved position and size in viewport units.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Root is the mutable visual state of a component.
type Root struct {
	Rect    Rect
	ZIndex  int
	Class   string // skin class, e.g. "win_popup" or "win_error"
	Title   string
	Text    string
	Hint    string
	Buttons []*Button
}

func (r *Root) clone() *Root {
	c := *r
	c.Buttons = nil
	return &c
}

// Button is a clickable control inside a Root. A button fires once; later
// clicks are ignored.
type Button struct {
	Label string
	// Skin assets for the normal, hover and pressed states.
	Background string
	Hover      string
	Down       string

	onClick func()
	fired   bool
}

// NewButton creates a button whose skin follows the btn_<label>.bmp convention.
func NewButton(label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		Background: "btn_" + label + ".bmp",
		Hover:      "btn_" + label + "_a.bmp",
		Down:       "btn_" + label + "_b.bmp",
		onClick:    onClick,
	}
}

// Click fires the button. Returns false if it already fired.
func (b *Button) Click() bool {
	if b.fired {
		return false
	}
	b.fired = true
	if b.onClick != nil {
		b.onClick()
	}
	return true
}

// Fired reports whether the button has been clicked.
func (b *Button) Fired() bool {
	return b.fired
}
