package system

import (
	"forklifts/internal/entity"
	"forklifts/internal/grid"
)

// Uniform draws a value in [0, 1). *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// VerticalBias is the draw below which a manager with two useful axes
// moves vertically instead of horizontally.
const VerticalBias = 0.5

// Hunt computes the next position of manager m (at index self in the tick
// snapshot) chasing target. It never writes the position; the caller does.
//
// Dead managers stay put. A manager with both an x and a y move available
// picks one at random; a manager already on the target stays put. A move onto
// a cell that another manager held when the tick started is rejected.
func Hunt(b grid.Bounds, m *entity.Manager, target grid.Position,
	snapshot []grid.Position, self int, rng Uniform) grid.Position {

	if !m.Alive() {
		return m.Position
	}

	dir, ok := chaseDirection(m.Position, target, rng)
	if !ok {
		return m.Position
	}

	candidate := Step(b, m, dir)
	if Occupied(candidate, snapshot, self) {
		return m.Position
	}
	return candidate
}

// chaseDirection picks the single-axis step toward target.
// rng is only consulted when both axes would close the distance.
func chaseDirection(from, target grid.Position, rng Uniform) (grid.Direction, bool) {
	xDir, hasX := axisDirection(target.X-from.X, grid.Right, grid.Left)
	yDir, hasY := axisDirection(target.Y-from.Y, grid.Down, grid.Up)

	switch {
	case hasX && hasY:
		if rng.Float64() < VerticalBias {
			return yDir, true
		}
		return xDir, true
	case hasX:
		return xDir, true
	case hasY:
		return yDir, true
	}
	return 0, false
}

func axisDirection(delta int, pos, neg grid.Direction) (grid.Direction, bool) {
	switch sign(delta) {
	case 1:
		return pos, true
	case -1:
		return neg, true
	}
	return 0, false
}

// Occupied reports whether p equals the snapshot position of any manager
// other than the one at index self.
func Occupied(p grid.Position, snapshot []grid.Position, self int) bool {
	for i, q := range snapshot {
		if i == self {
			continue
		}
		if q == p {
			return true
		}
	}
	return false
}

// Positions copies the current manager positions, index for index.
func Positions(managers []entity.Manager) []grid.Position {
	out := make([]grid.Position, len(managers))
	for i := range managers {
		out[i] = managers[i].Position
	}
	return out
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
