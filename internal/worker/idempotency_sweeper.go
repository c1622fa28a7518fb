package worker

import (
	"context"
	"log/slog"
	"time"

	"meeting-room-reservation/internal/pkg/clock"
)

type ExpiredKeyDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// IdempotencySweeper periodically removes expired idempotency keys.
type IdempotencySweeper struct {
	keys     ExpiredKeyDeleter
	clock    clock.Clock
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewIdempotencySweeper(keys ExpiredKeyDeleter, clk clock.Clock, interval time.Duration) *IdempotencySweeper {
	return &IdempotencySweeper{
		keys:     keys,
		clock:    clk,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (s *IdempotencySweeper) Start(ctx context.Context) {
	slog.Info("Idempotency sweeper started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(s.doneCh)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Idempotency sweeper stopped (context cancelled)")
			return
		case <-s.stopCh:
			slog.Info("Idempotency sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *IdempotencySweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

func (s *IdempotencySweeper) sweep(ctx context.Context) {
	count, err := s.keys.DeleteExpired(ctx, s.clock.Now())
	if err != nil {
		slog.Error("failed to delete expired idempotency keys", "error", err)
		return
	}

	if count > 0 {
		slog.Info("expired idempotency keys deleted", "count", count)
	}
}
