package ui

// HitRegion is a clickable area recorded while rendering.
type HitRegion struct {
	ID     string
	Rect   Rect
	Owner  Component
	Button *Button
}

// HitMap resolves screen positions to the regions painted there.
// Regions added later take priority over earlier ones.
type HitMap struct {
	regions []HitRegion
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add records a region.
func (h *HitMap) Add(r HitRegion) {
	h.regions = append(h.regions, r)
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *HitRegion {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns every recorded region in insertion order.
func (h *HitMap) Regions() []HitRegion {
	return h.regions
}

// Clear drops all regions. Called before each render.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}
