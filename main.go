// forklifts is a terminal game: drive the forklift, and every manager that
// catches up with it (or gets run over) goes down. Run it with no arguments;
// settings come from ~/.config/forklifts/config.yaml and FORKLIFTS_* variables.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"forklifts/internal/config"
	"forklifts/internal/game"
	"forklifts/internal/notify"
	"forklifts/internal/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := config.OpenLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else {
		defer closer.Close()
	}

	var extra []sim.Notifier
	if cfg.Sound {
		// Non-fatal, the game can run without sound.
		if snd, err := notify.NewSound(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			extra = append(extra, snd)
		}
	}

	g, err := game.NewTerminal(game.Options{Config: cfg, Logger: logger, Notifiers: extra})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	st := g.Run()
	fmt.Printf("Managers down: %d in %s.\n", st.Kills, st.Elapsed.Round(time.Second))
}
