package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"forklifts/internal/entity"
)

const (
	sampleRate = beep.SampleRate(44100)

	// NoteC4 is middle C in Hz.
	NoteC4 = 261.63
	// KillToneDuration is the length of the kill tone.
	KillToneDuration = 50 * time.Millisecond
)

var speakerOnce struct {
	sync.Once
	err error
}

// initSpeaker opens the audio device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerOnce.err
}

// Tone returns a sine streamer of freq Hz lasting d.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.2f Hz: %w", freq, err)
	}
	return beep.Take(rate.N(d), sine), nil
}

// Sound plays a short C4 tone on every kill.
type Sound struct {
	play func(beep.Streamer)
}

// NewSound opens the speaker. Callers treat an error as "no sound" and carry on.
func NewSound() (*Sound, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{play: func(s beep.Streamer) { speaker.Play(s) }}, nil
}

func (s *Sound) Kill(entity.Manager) {
	tone, err := Tone(sampleRate, NoteC4, KillToneDuration)
	if err != nil {
		return
	}
	s.play(tone)
}
