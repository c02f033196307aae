// Package notify turns manager kills into player feedback: a terminal bell in
// place of vibration, a red blink of the board frame and a short C4 tone.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"forklifts/internal/entity"
	"forklifts/internal/sim"
)

// Multi fans a kill out to every notifier in order.
type Multi []sim.Notifier

func (m Multi) Kill(man entity.Manager) {
	for _, n := range m {
		if n != nil {
			n.Kill(man)
		}
	}
}

// Beeper is satisfied by tcell.Screen.
type Beeper interface {
	Beep() error
}

// Bell rings the terminal bell on every kill.
type Bell struct {
	Screen Beeper
	Logger *slog.Logger
}

func (b Bell) Kill(entity.Manager) {
	if err := b.Screen.Beep(); err != nil && b.Logger != nil {
		b.Logger.Warn("bell failed", "error", err)
	}
}

// BlinkDuration is how long the frame stays red after a kill.
const BlinkDuration = 400 * time.Millisecond

// Blink remembers when the last kill happened so the renderer can flash the
// board frame. Safe for concurrent use.
type Blink struct {
	clock    sim.Clock
	duration time.Duration

	mu    sync.Mutex
	until time.Time
}

// NewBlink returns a Blink that stays lit for d after each kill.
func NewBlink(clock sim.Clock, d time.Duration) *Blink {
	return &Blink{clock: clock, duration: d}
}

func (b *Blink) Kill(entity.Manager) {
	b.mu.Lock()
	b.until = b.clock.Now().Add(b.duration)
	b.mu.Unlock()
}

// Active reports whether the blink window is still open.
func (b *Blink) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clock.Now().Before(b.until)
}
