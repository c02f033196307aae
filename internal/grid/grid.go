package grid

import (
	"errors"
	"fmt"
)

// ErrEmptyBounds is returned by Validate for a grid with no cells.
var ErrEmptyBounds = errors.New("grid has no cells")

// Default board size in cells.
const (
	DefaultWidth  = 12
	DefaultHeight = 6
)

// Position is a cell coordinate. Zero value is the top-left cell.
type Position struct {
	X, Y int
}

// Less orders positions by X, then Y.
func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Bounds is a fixed rectangular cell grid anchored at the origin.
type Bounds struct {
	Width, Height int
}

// Default returns the 12×6 board.
func Default() Bounds {
	return Bounds{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate reports an error when the grid has a non-positive dimension.
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyBounds, b.Width, b.Height)
	}
	return nil
}

// Contains reports whether p lies inside the grid.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Clamp returns the nearest in-bounds position to p.
func (b Bounds) Clamp(p Position) Position {
	p.X = clamp(p.X, 0, b.Width-1)
	p.Y = clamp(p.Y, 0, b.Height-1)
	return p
}

// Offset moves p one cell along d. At an edge the position is unchanged.
func (b Bounds) Offset(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return b.Clamp(Position{X: p.X + dx, Y: p.Y + dy})
}

// Cells returns every position of the grid, column by column.
func (b Bounds) Cells() []Position {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}
	cells := make([]Position, 0, b.Width*b.Height)
	for x := range b.Width {
		for y := range b.Height {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
