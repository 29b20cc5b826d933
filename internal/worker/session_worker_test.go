package worker_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/cardform/internal/worker"
	"github.com/stretchr/testify/assert"
)

type countingStore struct {
	mu     sync.Mutex
	sweeps int
	ttl    time.Duration
}

func (s *countingStore) Sweep(idleTTL time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweeps++
	s.ttl = idleTTL
	return 1
}

func (s *countingStore) Len() int { return 0 }

func (s *countingStore) snapshot() (int, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweeps, s.ttl
}

func TestSessionWorker_SweepsUntilCancelled(t *testing.T) {
	store := &countingStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := worker.NewSessionWorker(store, 30*time.Minute, 5*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		sweeps, _ := store.snapshot()
		return sweeps >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}

	_, ttl := store.snapshot()
	assert.Equal(t, 30*time.Minute, ttl)
}
