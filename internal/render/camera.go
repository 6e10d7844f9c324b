package render

// Camera maps shop tiles to terminal cells. Every tile is two columns wide
// so emoji glyphs line up with ASCII ones.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on tile (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Resize changes the viewport, keeping the current center.
func (c *Camera) Resize(viewW, viewH int) {
	cx := c.OffsetX + (c.ViewWidth/2)/2
	cy := c.OffsetY + c.ViewHeight/2
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.Center(cx, cy)
}

// Center moves the camera so that tile (cx, cy) sits in the middle of the
// viewport.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// WorldToScreen converts tile (wx, wy) to screen (sx, sy). visible is false
// when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
