package fern

import (
	"context"
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and draw metrics. Timings are only
// measured when the scene is in debug mode.
type frameStats struct {
	sortTime    time.Duration
	drawTime    time.Duration
	entityCount int
	culled      int
	drawn       int
	saves       int
}

// logStats writes frame stats to Logger at debug level.
func (s *Scene) logStats(stats frameStats) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("fern: frame",
		slog.Duration("sort", stats.sortTime),
		slog.Duration("draw", stats.drawTime),
		slog.Int("entities", stats.entityCount),
		slog.Int("culled", stats.culled),
		slog.Int("drawn", stats.drawn),
		slog.Int("saves", stats.saves),
	)
}
