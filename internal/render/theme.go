package render

import (
	"github.com/gdamore/tcell/v2"

	"forklifts/internal/grid"
)

// Theme holds the glyphs and colors used to draw the board.
// Emoji bring their own colors, so managers are told apart by glyph rather
// than by foreground color.
type Theme struct {
	Forklift     [4]string // indexed by grid.Direction
	AliveManager string
	DeadManager  string
	Empty        string

	ForkliftColor tcell.Color
	FrameColor    tcell.Color
	BlinkColor    tcell.Color
	TextColor     tcell.Color
	DimColor      tcell.Color
}

// DefaultTheme draws the forklift as an arrow pointing where it last drove.
var DefaultTheme = Theme{
	Forklift: [4]string{
		grid.Right: "▶",
		grid.Left:  "◀",
		grid.Up:    "▲",
		grid.Down:  "▼",
	},
	AliveManager: "👔",
	DeadManager:  "💀",
	Empty:        "·",

	ForkliftColor: tcell.ColorYellow,
	FrameColor:    tcell.ColorGray,
	BlinkColor:    tcell.ColorRed,
	TextColor:     tcell.ColorWhite,
	DimColor:      tcell.ColorLightYellow,
}

// ForkliftGlyph returns the forklift sprite for facing d.
func (t Theme) ForkliftGlyph(d grid.Direction) string {
	if int(d) >= len(t.Forklift) {
		return t.Forklift[grid.Right]
	}
	return t.Forklift[d]
}
