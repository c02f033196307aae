package sim

import (
	"log/slog"
	"time"
)

// Stats counts what happened during one game. It is logged when the game
// ends and never written to disk.
type Stats struct {
	Started   time.Time
	Elapsed   time.Duration
	Ticks     int
	Moves     int
	Kills     int
	Despawned int
}

// LogValue groups the counters under one slog attribute.
func (st Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("elapsed", st.Elapsed),
		slog.Int("ticks", st.Ticks),
		slog.Int("moves", st.Moves),
		slog.Int("kills", st.Kills),
		slog.Int("despawned", st.Despawned),
	)
}
