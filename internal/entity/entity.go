// Package entity holds the two kinds of things that live on the board:
// the player's forklift and the managers chasing it.
package entity

import (
	"time"

	"forklifts/internal/grid"
)

// Mover is anything that reports a position and can be turned to face a direction.
type Mover interface {
	Pos() grid.Position
	Face(d grid.Direction)
}

// Forklift is the player-controlled entity. It has no death state.
type Forklift struct {
	Position  grid.Position
	Direction grid.Direction
}

func (f *Forklift) Pos() grid.Position    { return f.Position }
func (f *Forklift) Face(d grid.Direction) { f.Direction = d }

// Manager is an autonomous pursuer. A nil TimeOfDeath means alive.
type Manager struct {
	Position    grid.Position
	Direction   grid.Direction
	TimeOfDeath *time.Time
}

func (m *Manager) Pos() grid.Position    { return m.Position }
func (m *Manager) Face(d grid.Direction) { m.Direction = d }

// Alive reports whether the manager has not been killed.
func (m Manager) Alive() bool { return m.TimeOfDeath == nil }

// Kill stamps the time of death. It is a no-op for an already dead manager.
func (m *Manager) Kill(now time.Time) bool {
	if m.TimeOfDeath != nil {
		return false
	}
	t := now
	m.TimeOfDeath = &t
	return true
}

// DeadFor returns how long the manager has been dead at now, and false if alive.
func (m Manager) DeadFor(now time.Time) (time.Duration, bool) {
	if m.TimeOfDeath == nil {
		return 0, false
	}
	return now.Sub(*m.TimeOfDeath), true
}

// Clone returns a copy that shares no memory with m.
func (m Manager) Clone() Manager {
	if m.TimeOfDeath != nil {
		t := *m.TimeOfDeath
		m.TimeOfDeath = &t
	}
	return m
}

// NewManager creates a live manager at p facing Right.
func NewManager(p grid.Position) Manager {
	return Manager{Position: p, Direction: grid.Right}
}

// SeedManagers fills every cell of b with a live manager, column by column.
func SeedManagers(b grid.Bounds) []Manager {
	cells := b.Cells()
	managers := make([]Manager, 0, len(cells))
	for _, p := range cells {
		managers = append(managers, NewManager(p))
	}
	return managers
}
