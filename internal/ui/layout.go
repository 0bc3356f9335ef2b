package ui

// FixResizeOverflow pulls back every component that now hangs past the
// bottom or right edge of a width x height viewport. Components larger than
// the viewport on an axis are left alone on that axis.
func (m *Manager) FixResizeOverflow(width, height int) {
	for name, c := range m.components {
		root := c.Root()
		if root == nil {
			continue
		}
		r := &root.Rect
		x, y := r.X, r.Y

		if r.Y+r.H > height && height > r.H {
			r.Y = height - r.H
		}
		if r.X+r.W > width && width > r.W {
			r.X = width - r.W
		}

		if x != r.X || y != r.Y {
			m.log.Debug().
				Str("component", name).
				Int("from_x", x).Int("from_y", y).
				Int("to_x", r.X).Int("to_y", r.Y).
				Msg("overflow corrected")
		}
	}
}
