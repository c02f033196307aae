package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"forklifts/internal/entity"
	"forklifts/internal/grid"
	"forklifts/internal/sim"
)

type countingNotifier struct{ n int }

func (c *countingNotifier) Kill(entity.Manager) { c.n++ }

type fakeBeeper struct {
	beeps int
	err   error
}

func (f *fakeBeeper) Beep() error {
	f.beeps++
	return f.err
}

func victim() entity.Manager { return entity.NewManager(grid.Position{X: 1, Y: 1}) }

func TestMultiFansOut(t *testing.T) {
	a, b := &countingNotifier{}, &countingNotifier{}
	m := Multi{a, nil, b}
	m.Kill(victim())
	m.Kill(victim())
	if a.n != 2 || b.n != 2 {
		t.Errorf("counts = %d,%d; want 2,2", a.n, b.n)
	}
}

func TestBellRings(t *testing.T) {
	fb := &fakeBeeper{err: errors.New("no tty")}
	Bell{Screen: fb}.Kill(victim())
	if fb.beeps != 1 {
		t.Errorf("beeps = %d; want 1", fb.beeps)
	}
}

func TestBlinkWindow(t *testing.T) {
	clock := sim.NewManualClock(time.Unix(0, 0))
	b := NewBlink(clock, BlinkDuration)
	if b.Active() {
		t.Fatal("blink active before any kill")
	}
	b.Kill(victim())
	if !b.Active() {
		t.Fatal("blink should be active right after a kill")
	}
	clock.Advance(BlinkDuration)
	if b.Active() {
		t.Error("blink should end after its duration")
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, err := Tone(rate, NoteC4, KillToneDuration)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	want := rate.N(KillToneDuration)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		for i := range n {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples; want %d", total, want)
	}
}

func TestSoundPlaysOnKill(t *testing.T) {
	var played []beep.Streamer
	s := &Sound{play: func(st beep.Streamer) { played = append(played, st) }}
	s.Kill(victim())
	if len(played) != 1 {
		t.Fatalf("played %d tones; want 1", len(played))
	}
}
