package worker

import (
	"context"
	"log/slog"
	"time"
)

// SessionSweeper is the store side the sweeper needs.
type SessionSweeper interface {
	Sweep(idleTTL time.Duration) int
	Len() int
}

// SessionWorker periodically evicts page sessions that went idle.
type SessionWorker struct {
	sessions SessionSweeper
	idleTTL  time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewSessionWorker(
	sessions SessionSweeper,
	idleTTL time.Duration,
	interval time.Duration,
	logger *slog.Logger,
) *SessionWorker {
	return &SessionWorker{
		sessions: sessions,
		idleTTL:  idleTTL,
		interval: interval,
		logger:   logger,
	}
}

func (w *SessionWorker) Start(ctx context.Context) {
	w.logger.Info("session worker started", "interval", w.interval, "idle_ttl", w.idleTTL)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session worker stopping")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SessionWorker) sweep() {
	removed := w.sessions.Sweep(w.idleTTL)
	if removed == 0 {
		return
	}

	w.logger.Info("evicted idle sessions",
		"evicted", removed,
		"remaining", w.sessions.Len())
}
