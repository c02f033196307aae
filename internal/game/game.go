// Package game drives a simulation from a terminal: it pumps tcell events into
// a small queue, ticks the managers on their interval, moves the forklift on
// every directional key and redraws after each step.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"forklifts/internal/config"
	"forklifts/internal/notify"
	"forklifts/internal/render"
	"forklifts/internal/sim"
	"forklifts/internal/system"
)

// Options wires a Game to its collaborators. Nil fields get production defaults.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	Clock  sim.Clock
	Rand   system.Uniform
	// Notifiers receive kills in addition to the built-in bell and blink.
	Notifiers []sim.Notifier
}

// Game is one running session on one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sim      *sim.Sim
	blink    *notify.Blink
	cfg      config.Config
	logger   *slog.Logger
	events   chan tcell.Event
	dropped  atomic.Int64
}

// NewTerminal opens the local terminal and returns a Game drawing on it.
func NewTerminal(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := New(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// New creates a Game on an already initialized screen.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = sim.SystemClock{}
	}
	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	blink := notify.NewBlink(clock, notify.BlinkDuration)
	notifiers := notify.Multi{notify.Bell{Screen: screen, Logger: logger}, blink}
	notifiers = append(notifiers, opts.Notifiers...)

	s, err := sim.New(sim.Options{
		Bounds:       cfg.Bounds(),
		TickInterval: cfg.TickInterval,
		DespawnAfter: cfg.DespawnAfter,
		Clock:        clock,
		Rand:         rng,
		Notifier:     notifiers,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.Bounds()),
		sim:      s,
		blink:    blink,
		cfg:      cfg,
		logger:   logger,
		events:   make(chan tcell.Event, cfg.QueueSize),
	}, nil
}

// Sim exposes the simulation, mostly for tests.
func (g *Game) Sim() *sim.Sim { return g.sim }

// Run is the main loop. It returns the session's stats when the player quits
// or the screen goes away, and finalizes the screen.
func (g *Game) Run() sim.Stats {
	defer g.screen.Fini()

	go g.pumpEvents()

	b := g.sim.Bounds()
	g.logger.Info("game started", "width", b.Width, "height", b.Height,
		"tick", g.cfg.TickInterval, "managers", len(g.sim.State().Managers))

	poll := time.NewTimer(g.cfg.PollTimeout)
	defer poll.Stop()

	g.draw()
	for {
		g.sim.Update()

		poll.Reset(g.cfg.PollTimeout)
		select {
		case ev, ok := <-g.events:
			if !ok || !g.handleEvent(ev) {
				stats := g.sim.Stats()
				g.logger.Info("game over", "stats", stats, "dropped_events", g.dropped.Load())
				return stats
			}
		case <-poll.C:
		}
		g.draw()
	}
}

// pumpEvents forwards screen events into the bounded queue. Events that do
// not fit are dropped. It exits when the screen is finalized.
func (g *Game) pumpEvents() {
	defer close(g.events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		default:
			g.dropped.Add(1)
		}
	}
}

// handleEvent applies one event and reports whether the game continues.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		dir, ok := actionToDirection(keyToAction(ev))
		if !ok {
			return false
		}
		g.sim.Move(dir)
	}
	return true
}

func (g *Game) draw() {
	st := g.sim.State()
	g.renderer.DrawFrame(st, g.blink.Active())
	g.renderer.DrawHUD(st, g.sim.Stats(), g.sim.TickInterval())
}
