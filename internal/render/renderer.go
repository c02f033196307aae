package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"forklifts/internal/entity"
	"forklifts/internal/grid"
	"forklifts/internal/sim"
)

// HUDRows is the number of screen rows reserved below the board.
const HUDRows = 4

// Renderer draws the board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	bounds grid.Bounds
	theme  Theme
}

// NewRenderer creates a Renderer for a board of size b.
func NewRenderer(screen tcell.Screen, b grid.Bounds) *Renderer {
	r := &Renderer{screen: screen, bounds: b, theme: DefaultTheme}
	r.Resize()
	return r
}

// Resize refits the camera to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(r.bounds, w, h-HUDRows)
}

// Camera exposes the board-to-screen mapping.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders the outline, managers and forklift. blink paints the
// outline in the alert color. Call DrawHUD afterwards to show the frame.
func (r *Renderer) DrawFrame(st sim.State, blink bool) {
	r.screen.Clear()
	frame := r.theme.FrameColor
	if blink {
		frame = r.theme.BlinkColor
	}
	r.drawOutline(tcell.StyleDefault.Foreground(frame))
	r.drawEmpty()
	r.drawManagers(st.Managers)
	r.drawForklift(st.Forklift)
}

// drawOutline draws a box one cell outside the board.
func (r *Renderer) drawOutline(style tcell.Style) {
	c := r.camera
	left, top := c.OffsetX-1, c.OffsetY-1
	right, bottom := c.OffsetX+r.bounds.Width*CellWidth, c.OffsetY+r.bounds.Height

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawEmpty() {
	style := tcell.StyleDefault.Foreground(r.theme.FrameColor)
	for _, p := range r.bounds.Cells() {
		r.putCell(p, r.theme.Empty, style)
	}
}

// drawManagers draws corpses first so a live manager is never hidden.
func (r *Renderer) drawManagers(managers []entity.Manager) {
	style := tcell.StyleDefault
	for _, m := range managers {
		if !m.Alive() {
			r.putCell(m.Position, r.theme.DeadManager, style)
		}
	}
	for _, m := range managers {
		if m.Alive() {
			r.putCell(m.Position, r.theme.AliveManager, style)
		}
	}
}

func (r *Renderer) drawForklift(f entity.Forklift) {
	style := tcell.StyleDefault.Foreground(r.theme.ForkliftColor).Bold(true)
	r.putCell(f.Position, r.theme.ForkliftGlyph(f.Direction), style)
}

func (r *Renderer) putCell(p grid.Position, glyph string, style tcell.Style) {
	sx, sy, ok := r.camera.CellToScreen(p)
	if !ok {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < CellWidth {
		// Narrow glyphs leave the right half of the cell blank.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
