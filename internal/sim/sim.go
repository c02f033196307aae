// Package sim runs the forklift-versus-managers simulation. A Sim owns the
// board state and is driven from a single goroutine: Update gates the
// manager tick on a fixed interval, and Move applies one forklift step per
// accepted input event.
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"forklifts/internal/entity"
	"forklifts/internal/grid"
	"forklifts/internal/system"
)

// DefaultTickInterval is the period between manager moves.
const DefaultTickInterval = 250 * time.Millisecond

var (
	// ErrInvalid is returned by New for unusable options.
	ErrInvalid = errors.New("invalid simulation options")
	// ErrOutOfBounds is returned by New when an entity starts off the board.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Notifier is told about every manager that dies, exactly once per manager.
type Notifier interface {
	Kill(m entity.Manager)
}

// State is the board: one forklift and the managers in insertion order.
type State struct {
	Forklift entity.Forklift
	Managers []entity.Manager
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{Forklift: s.Forklift, Managers: make([]entity.Manager, len(s.Managers))}
	for i, m := range s.Managers {
		out.Managers[i] = m.Clone()
	}
	return out
}

// Counts returns the number of live and dead managers.
func (s State) Counts() (alive, dead int) {
	for _, m := range s.Managers {
		if m.Alive() {
			alive++
		} else {
			dead++
		}
	}
	return alive, dead
}

// Options configures a Sim. Zero durations fall back to the defaults.
type Options struct {
	Bounds       grid.Bounds
	TickInterval time.Duration
	DespawnAfter time.Duration
	Clock        Clock
	Rand         system.Uniform
	Notifier     Notifier
	Logger       *slog.Logger

	// Forklift is the starting forklift; the zero value is the origin facing right.
	Forklift entity.Forklift
	// Managers is the starting population. Nil fills every cell.
	Managers []entity.Manager
}

// Sim is the simulation state machine. Not safe for concurrent use.
type Sim struct {
	bounds       grid.Bounds
	interval     time.Duration
	despawnAfter time.Duration
	clock        Clock
	rng          system.Uniform
	notifier     Notifier
	logger       *slog.Logger

	state    State
	lastTick time.Time
	stats    Stats
}

// New validates opts and returns a Sim whose tick timer starts now.
func New(opts Options) (*Sim, error) {
	if err := opts.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if opts.TickInterval == 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.TickInterval < 0 {
		return nil, fmt.Errorf("%w: tick interval %v", ErrInvalid, opts.TickInterval)
	}
	if opts.DespawnAfter == 0 {
		opts.DespawnAfter = system.DespawnAfter
	}
	if opts.DespawnAfter < 0 {
		return nil, fmt.Errorf("%w: despawn threshold %v", ErrInvalid, opts.DespawnAfter)
	}
	if opts.Clock == nil {
		return nil, fmt.Errorf("%w: nil clock", ErrInvalid)
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalid)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	managers := opts.Managers
	if managers == nil {
		managers = entity.SeedManagers(opts.Bounds)
	}
	if !opts.Bounds.Contains(opts.Forklift.Position) {
		return nil, fmt.Errorf("%w: forklift at %v", ErrOutOfBounds, opts.Forklift.Position)
	}
	state := State{Forklift: opts.Forklift, Managers: make([]entity.Manager, len(managers))}
	for i, m := range managers {
		if !opts.Bounds.Contains(m.Position) {
			return nil, fmt.Errorf("%w: manager %d at %v", ErrOutOfBounds, i, m.Position)
		}
		state.Managers[i] = m.Clone()
	}

	now := opts.Clock.Now()
	return &Sim{
		bounds:       opts.Bounds,
		interval:     opts.TickInterval,
		despawnAfter: opts.DespawnAfter,
		clock:        opts.Clock,
		rng:          opts.Rand,
		notifier:     opts.Notifier,
		logger:       opts.Logger,
		state:        state,
		lastTick:     now,
		stats:        Stats{Started: now},
	}, nil
}

// Bounds returns the board size.
func (s *Sim) Bounds() grid.Bounds { return s.bounds }

// TickInterval returns the period between manager moves.
func (s *Sim) TickInterval() time.Duration { return s.interval }

// State returns a deep copy of the board for readers such as renderers.
func (s *Sim) State() State { return s.state.Clone() }

// Stats returns the counters gathered so far.
func (s *Sim) Stats() Stats {
	st := s.stats
	st.Elapsed = s.clock.Now().Sub(st.Started)
	return st
}

// Due reports whether more than one tick interval has passed since the last tick.
func (s *Sim) Due() bool {
	return s.clock.Now().Sub(s.lastTick) > s.interval
}

// Update runs a tick if one is due and reports whether it did.
func (s *Sim) Update() bool {
	if !s.Due() {
		return false
	}
	s.Tick()
	return true
}

// Tick moves every manager one step toward the forklift, kills managers
// that reached it and drops managers that have been dead long enough.
// Occupancy is judged against the positions held when the tick started.
func (s *Sim) Tick() {
	now := s.clock.Now()
	s.lastTick = now

	managers := s.state.Managers
	snapshot := system.Positions(managers)
	target := s.state.Forklift.Position
	for i := range managers {
		managers[i].Position = system.Hunt(s.bounds, &managers[i], target, snapshot, i, s.rng)
	}
	s.notifyKills(system.KillAt(managers, target, now))

	kept := system.Despawn(managers, now, s.despawnAfter)
	if gone := len(managers) - len(kept); gone > 0 {
		s.stats.Despawned += gone
		s.logger.Debug("managers despawned", "count", gone, "remaining", len(kept))
	}
	s.state.Managers = kept
	s.stats.Ticks++
}

// Move steps the forklift one cell along d and kills any live manager it
// lands on. It is not gated by the tick interval.
func (s *Sim) Move(d grid.Direction) grid.Position {
	pos := system.MoveForklift(s.bounds, &s.state.Forklift, d)
	s.stats.Moves++
	s.notifyKills(system.KillAt(s.state.Managers, pos, s.clock.Now()))
	return pos
}

func (s *Sim) notifyKills(idx []int) {
	for _, i := range idx {
		m := s.state.Managers[i]
		s.stats.Kills++
		s.logger.Debug("manager killed", "position", m.Position.String(), "kills", s.stats.Kills)
		if s.notifier != nil {
			s.notifier.Kill(m.Clone())
		}
	}
}
