package sim

import (
	"errors"
	"testing"
	"time"

	"forklifts/internal/entity"
	"forklifts/internal/grid"
	"forklifts/internal/system"
)

type fixedDraw float64

func (f fixedDraw) Float64() float64 { return float64(f) }

// recorder is a Notifier that remembers every kill it was told about.
type recorder struct {
	kills []entity.Manager
}

func (r *recorder) Kill(m entity.Manager) { r.kills = append(r.kills, m) }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestSim builds a 12×6 simulation with a manual clock and fixed draw.
func newTestSim(t *testing.T, managers []entity.Manager) (*Sim, *ManualClock, *recorder) {
	t.Helper()
	clock := NewManualClock(epoch)
	rec := &recorder{}
	s, err := New(Options{
		Bounds:   grid.Default(),
		Clock:    clock,
		Rand:     fixedDraw(0.99),
		Notifier: rec,
		Managers: managers,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, clock, rec
}

// tick advances past one interval and runs Update.
func tick(t *testing.T, s *Sim, clock *ManualClock) {
	t.Helper()
	clock.Advance(s.TickInterval() + time.Millisecond)
	if !s.Update() {
		t.Fatal("Update did not tick after the interval elapsed")
	}
}

func managersAt(ps ...grid.Position) []entity.Manager {
	out := make([]entity.Manager, len(ps))
	for i, p := range ps {
		out[i] = entity.NewManager(p)
	}
	return out
}

func TestUpdateGatedByInterval(t *testing.T) {
	s, clock, _ := newTestSim(t, managersAt(grid.Position{X: 5, Y: 5}))
	if s.Update() {
		t.Fatal("Update ticked immediately after New")
	}
	clock.Advance(DefaultTickInterval)
	if s.Update() {
		t.Fatal("Update ticked at exactly one interval; it must be exceeded")
	}
	clock.Advance(time.Nanosecond)
	if !s.Update() {
		t.Fatal("Update should tick once the interval is exceeded")
	}
	if s.Update() {
		t.Fatal("tick timer was not reset")
	}
	if got := s.Stats().Ticks; got != 1 {
		t.Errorf("Ticks = %d; want 1", got)
	}
}

func TestEndToEndChaseKillDespawn(t *testing.T) {
	s, clock, rec := newTestSim(t, managersAt(grid.Position{X: 5, Y: 5}))

	var killedAt time.Time
	for i := 1; i <= 10; i++ {
		tick(t, s, clock)
		m := s.State().Managers[0]
		if m.Position == (grid.Position{}) {
			if i != 10 {
				t.Fatalf("reached the forklift after %d ticks; want 10", i)
			}
			if m.TimeOfDeath == nil {
				t.Fatal("manager on the forklift's cell should be dead")
			}
			killedAt = *m.TimeOfDeath
			if !killedAt.Equal(clock.Now()) {
				t.Errorf("TimeOfDeath = %v; want the tick time %v", killedAt, clock.Now())
			}
		} else if m.TimeOfDeath != nil {
			t.Fatalf("tick %d: manager at %v died early", i, m.Position)
		}
	}
	if killedAt.IsZero() {
		t.Fatal("manager never reached the forklift")
	}

	tick(t, s, clock)
	if len(s.State().Managers) != 1 {
		t.Fatal("dead manager despawned one tick after dying")
	}

	clock.Advance(system.DespawnAfter)
	s.Update()
	if n := len(s.State().Managers); n != 0 {
		t.Fatalf("expected dead manager to be gone, %d remain", n)
	}
	if len(rec.kills) != 1 {
		t.Errorf("expected exactly one kill notification, got %d", len(rec.kills))
	}
	st := s.Stats()
	if st.Kills != 1 || st.Despawned != 1 {
		t.Errorf("stats = %+v; want 1 kill and 1 despawn", st)
	}
}

func TestMoveKillsManagerOnce(t *testing.T) {
	s, _, rec := newTestSim(t, managersAt(grid.Position{X: 1, Y: 0}))
	if pos := s.Move(grid.Right); pos != (grid.Position{X: 1, Y: 0}) {
		t.Fatalf("forklift at %v; want (1,0)", pos)
	}
	first := s.State().Managers[0].TimeOfDeath
	if first == nil {
		t.Fatal("forklift driving onto a manager should kill it")
	}
	s.Move(grid.Left)
	s.Move(grid.Right)
	again := s.State().Managers[0].TimeOfDeath
	if !again.Equal(*first) {
		t.Errorf("time of death changed from %v to %v", first, again)
	}
	if len(rec.kills) != 1 {
		t.Errorf("expected one notification, got %d", len(rec.kills))
	}
	if f := s.State().Forklift; f.Direction != grid.Right {
		t.Errorf("forklift facing %v; want right", f.Direction)
	}
}

func TestMoveNotGatedByTick(t *testing.T) {
	s, _, _ := newTestSim(t, []entity.Manager{})
	for range 3 {
		s.Move(grid.Down)
	}
	if got := s.State().Forklift.Position; got != (grid.Position{X: 0, Y: 3}) {
		t.Errorf("forklift at %v; want (0,3)", got)
	}
	if s.Stats().Ticks != 0 {
		t.Error("moving the forklift should not tick the managers")
	}
}

func TestTickUsesStartOfTickPositions(t *testing.T) {
	// A at (2,0) steps to (1,0). B at (3,0) wants (2,0): A held it when the
	// tick started, so B waits even though A has left.
	s, clock, _ := newTestSim(t, managersAt(grid.Position{X: 2, Y: 0}, grid.Position{X: 3, Y: 0}))
	tick(t, s, clock)
	ms := s.State().Managers
	if ms[0].Position != (grid.Position{X: 1, Y: 0}) {
		t.Errorf("A at %v; want (1,0)", ms[0].Position)
	}
	if ms[1].Position != (grid.Position{X: 3, Y: 0}) {
		t.Errorf("B at %v; want (3,0)", ms[1].Position)
	}
	tick(t, s, clock)
	ms = s.State().Managers
	if ms[1].Position != (grid.Position{X: 2, Y: 0}) {
		t.Errorf("B at %v after second tick; want (2,0)", ms[1].Position)
	}
}

func TestSeededBoardFirstTick(t *testing.T) {
	s, clock, rec := newTestSim(t, nil)
	b := s.Bounds()
	if n := len(s.State().Managers); n != b.Width*b.Height {
		t.Fatalf("seeded %d managers; want %d", n, b.Width*b.Height)
	}
	before := s.State()
	tick(t, s, clock)
	after := s.State()
	alive, dead := after.Counts()
	if dead != 1 || alive != b.Width*b.Height-1 {
		t.Errorf("alive=%d dead=%d; want %d and 1", alive, dead, b.Width*b.Height-1)
	}
	if len(rec.kills) != 1 || rec.kills[0].Position != (grid.Position{}) {
		t.Errorf("kills = %+v; want the manager at the origin", rec.kills)
	}
	for i := range before.Managers {
		if before.Managers[i].Position != after.Managers[i].Position {
			t.Errorf("manager %d moved on a full board: %v -> %v",
				i, before.Managers[i].Position, after.Managers[i].Position)
		}
	}
}

func TestStateIsACopy(t *testing.T) {
	s, _, _ := newTestSim(t, managersAt(grid.Position{X: 1, Y: 0}))
	st := s.State()
	st.Managers[0].Position = grid.Position{X: 9, Y: 9}
	st.Forklift.Position = grid.Position{X: 4, Y: 4}
	if s.State().Managers[0].Position != (grid.Position{X: 1, Y: 0}) {
		t.Error("mutating the returned state changed the simulation")
	}
	if s.State().Forklift.Position != (grid.Position{}) {
		t.Error("mutating the returned forklift changed the simulation")
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	clock := NewManualClock(epoch)
	valid := func() Options {
		return Options{Bounds: grid.Default(), Clock: clock, Rand: fixedDraw(0)}
	}
	cases := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"empty bounds", func(o *Options) { o.Bounds = grid.Bounds{} }, grid.ErrEmptyBounds},
		{"negative interval", func(o *Options) { o.TickInterval = -time.Second }, ErrInvalid},
		{"negative despawn", func(o *Options) { o.DespawnAfter = -time.Second }, ErrInvalid},
		{"nil clock", func(o *Options) { o.Clock = nil }, ErrInvalid},
		{"nil random", func(o *Options) { o.Rand = nil }, ErrInvalid},
		{"forklift off board", func(o *Options) { o.Forklift.Position = grid.Position{X: 12} }, ErrOutOfBounds},
		{"manager off board", func(o *Options) { o.Managers = managersAt(grid.Position{Y: -1}) }, ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := valid()
			tc.mutate(&opts)
			if _, err := New(opts); !errors.Is(err, tc.want) {
				t.Errorf("New error = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestManualClockIgnoresNegative(t *testing.T) {
	c := NewManualClock(epoch)
	c.Advance(-time.Hour)
	if !c.Now().Equal(epoch) {
		t.Errorf("clock moved backwards to %v", c.Now())
	}
}
