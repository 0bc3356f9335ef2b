package ui

import "sort"

// screen is the display tree: attached components and blocking overlays.
type screen struct {
	attached []Component
	overlays OverlayStack
}

func (s *screen) attach(c Component) {
	s.attached = append(s.attached, c)
}

func (s *screen) detach(c Component) {
	for i, a := range s.attached {
		if a == c {
			s.attached = append(s.attached[:i], s.attached[i+1:]...)
			return
		}
	}
}

// paintOrder returns attached components bottom to top: by z-index, then by
// attach order.
func (s *screen) paintOrder() []Component {
	out := make([]Component, len(s.attached))
	copy(out, s.attached)
	sort.SliceStable(out, func(i, j int) bool {
		return zIndexOf(out[i]) < zIndexOf(out[j])
	})
	return out
}

// blocked reports whether c sits beneath the topmost overlay.
func (s *screen) blocked(c Component) bool {
	top, ok := s.overlays.Peek()
	if !ok {
		return false
	}
	return zIndexOf(c) <= top.ZIndex
}

func zIndexOf(c Component) int {
	if r := c.Root(); r != nil {
		return r.ZIndex
	}
	return 0
}
