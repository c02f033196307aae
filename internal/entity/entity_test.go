package entity

import (
	"testing"
	"time"

	"forklifts/internal/grid"
)

func TestManagerKillIsOneShot(t *testing.T) {
	m := NewManager(grid.Position{X: 2, Y: 3})
	if !m.Alive() {
		t.Fatal("new manager should be alive")
	}
	first := time.Unix(100, 0)
	if !m.Kill(first) {
		t.Fatal("first Kill should report a transition")
	}
	if m.Kill(first.Add(time.Second)) {
		t.Fatal("second Kill should be a no-op")
	}
	if !m.TimeOfDeath.Equal(first) {
		t.Errorf("TimeOfDeath = %v; want %v", m.TimeOfDeath, first)
	}
}

func TestDeadFor(t *testing.T) {
	m := NewManager(grid.Position{})
	if _, dead := m.DeadFor(time.Unix(0, 0)); dead {
		t.Fatal("alive manager reported as dead")
	}
	m.Kill(time.Unix(10, 0))
	d, dead := m.DeadFor(time.Unix(12, 0))
	if !dead || d != 2*time.Second {
		t.Errorf("DeadFor = %v,%v; want 2s,true", d, dead)
	}
}

func TestCloneDoesNotShareDeath(t *testing.T) {
	m := NewManager(grid.Position{})
	m.Kill(time.Unix(5, 0))
	c := m.Clone()
	*c.TimeOfDeath = time.Unix(99, 0)
	if !m.TimeOfDeath.Equal(time.Unix(5, 0)) {
		t.Error("mutating the clone changed the original")
	}
}

func TestSeedManagersCoversBoard(t *testing.T) {
	b := grid.Default()
	ms := SeedManagers(b)
	if len(ms) != b.Width*b.Height {
		t.Fatalf("expected %d managers, got %d", b.Width*b.Height, len(ms))
	}
	seen := make(map[grid.Position]bool)
	for _, m := range ms {
		if !m.Alive() || m.Direction != grid.Right {
			t.Errorf("seed manager %v should be alive and facing right", m.Position)
		}
		seen[m.Position] = true
	}
	if len(seen) != len(ms) {
		t.Errorf("expected distinct positions, got %d unique", len(seen))
	}
}

func TestForkliftDefaults(t *testing.T) {
	var f Forklift
	if f.Pos() != (grid.Position{}) || f.Direction != grid.Right {
		t.Errorf("zero forklift = %+v; want origin facing right", f)
	}
}
