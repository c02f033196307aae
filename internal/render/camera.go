package render

import "forklifts/internal/grid"

// CellWidth is the number of terminal columns one board cell takes.
// Emoji occupy two columns.
const CellWidth = 2

// Camera translates between board cells and screen coordinates. It keeps the
// whole board centred in the area above the HUD.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera that centres b in a viewW×viewH area.
func NewCamera(b grid.Bounds, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Fit(b)
	return c
}

// Fit recentres the board. When the view is too small the board is pinned
// one cell in from the top-left corner so the frame stays visible.
func (c *Camera) Fit(b grid.Bounds) {
	c.OffsetX = max((c.ViewWidth-b.Width*CellWidth)/2, 1)
	c.OffsetY = max((c.ViewHeight-b.Height)/2, 1)
}

// CellToScreen converts cell p to the screen column and row of its left half.
// visible is false when the result falls outside the view.
func (c *Camera) CellToScreen(p grid.Position) (sx, sy int, visible bool) {
	sx = c.OffsetX + p.X*CellWidth
	sy = c.OffsetY + p.Y
	visible = sx >= 0 && sx+CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToCell converts a screen coordinate to the board cell under it.
func (c *Camera) ScreenToCell(sx, sy int) grid.Position {
	return grid.Position{X: floorDiv(sx-c.OffsetX, CellWidth), Y: sy - c.OffsetY}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
