package ui

// Overlay is a full-screen layer that blocks pointer input to every component
// painted beneath it.
type Overlay struct {
	Class  string
	ZIndex int
}

// OverlayStack manages the blocking overlays on screen (topmost last).
type OverlayStack struct {
	Stack []*Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o *Overlay) {
	s.Stack = append(s.Stack, o)
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (*Overlay, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Remove takes o out of the stack wherever it is.
// Returns false if o is not on the stack.
func (s *OverlayStack) Remove(o *Overlay) bool {
	for i, e := range s.Stack {
		if e == o {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}
