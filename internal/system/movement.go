package system

import (
	"forklifts/internal/entity"
	"forklifts/internal/grid"
)

// Step computes where m ends up after one cell of movement along d on b.
// The position is clamped to the grid, so stepping into an edge leaves it
// unchanged. The facing is always updated, even when the move is blocked.
// The caller assigns the returned position.
func Step(b grid.Bounds, m entity.Mover, d grid.Direction) grid.Position {
	next := b.Offset(m.Pos(), d)
	m.Face(d)
	return next
}

// MoveForklift steps the forklift and writes the new position back.
func MoveForklift(b grid.Bounds, f *entity.Forklift, d grid.Direction) grid.Position {
	f.Position = Step(b, f, d)
	return f.Position
}
