package system

import (
	"time"

	"forklifts/internal/entity"
	"forklifts/internal/grid"
)

// DespawnAfter is how long a dead manager stays on the board.
const DespawnAfter = 3 * time.Second

// CheckKill marks m dead at now when it is alive and shares the forklift's cell.
// It reports true only on the transition, so callers can notify exactly once.
// It does not matter who moved onto whom.
func CheckKill(m *entity.Manager, forklift grid.Position, now time.Time) bool {
	if !m.Alive() || m.Position != forklift {
		return false
	}
	return m.Kill(now)
}

// KillAt runs CheckKill over every manager and returns the indices of the
// managers that died in this call.
func KillAt(managers []entity.Manager, forklift grid.Position, now time.Time) []int {
	var killed []int
	for i := range managers {
		if CheckKill(&managers[i], forklift, now) {
			killed = append(killed, i)
		}
	}
	return killed
}

// Expired reports whether m has been dead for strictly longer than after.
func Expired(m entity.Manager, now time.Time, after time.Duration) bool {
	d, dead := m.DeadFor(now)
	return dead && d > after
}

// Despawn returns the managers that are alive or have not been dead for longer
// than after, in their original order. The input slice is not modified.
func Despawn(managers []entity.Manager, now time.Time, after time.Duration) []entity.Manager {
	kept := make([]entity.Manager, 0, len(managers))
	for _, m := range managers {
		if Expired(m, now, after) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
