package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"forklifts/internal/sim"
)

// HelpLine lists the controls.
const HelpLine = "arrows / hjkl / wasd drive  ·  any other key quits"

// DrawHUD renders the status bar under the board and shows the screen.
func (r *Renderer) DrawHUD(st sim.State, stats sim.Stats, interval time.Duration) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, r.theme.FrameColor)

	alive, dead := st.Counts()
	status := fmt.Sprintf("Managers: %d  Down: %d  Kills: %d  Tick: %s",
		alive, dead, stats.Kills, interval)
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(r.theme.TextColor))
	r.drawText(0, hudY+2, HelpLine, tcell.StyleDefault.Foreground(r.theme.DimColor))
	if alive == 0 && dead == 0 {
		r.drawText(0, hudY+3, "The floor is clear.", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, tcell.RuneHLine, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
