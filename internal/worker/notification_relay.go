package worker

import (
	"context"
	"log/slog"
	"time"

	"meeting-room-reservation/internal/infra/messaging"
	"meeting-room-reservation/internal/infra/repository"
	"meeting-room-reservation/internal/pkg/clock"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	relayBackoffBase = 10 * time.Second
	relayBackoffMax  = time.Hour
)

type JobStore interface {
	ClaimDue(ctx context.Context, now, staleBefore time.Time, batchSize int32) ([]*queries.NotificationJobView, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, nextRunAt *time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, msg messaging.Message) error
}

type RelayRecorder interface {
	ObserveRelay(status string)
}

type RelayConfig struct {
	Interval          time.Duration
	BatchSize         int32
	MaxAttempts       int32
	ProcessingTimeout time.Duration
}

// NotificationRelay drains the notification outbox to the broker. Jobs are claimed in
// batches; failed jobs are rescheduled with exponential backoff until MaxAttempts.
type NotificationRelay struct {
	jobs      JobStore
	publisher Publisher
	recorder  RelayRecorder
	clock     clock.Clock
	cfg       RelayConfig
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func NewNotificationRelay(jobs JobStore, publisher Publisher, recorder RelayRecorder, clk clock.Clock, cfg RelayConfig) *NotificationRelay {
	return &NotificationRelay{
		jobs:      jobs,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (r *NotificationRelay) Start(ctx context.Context) {
	slog.Info("Notification relay started",
		"interval", r.cfg.Interval,
		"batch_size", r.cfg.BatchSize,
	)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification relay stopped (context cancelled)")
			return
		case <-r.stopCh:
			slog.Info("Notification relay stopped")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

func (r *NotificationRelay) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// RunOnce claims and publishes a single batch. It returns the number of jobs sent.
func (r *NotificationRelay) RunOnce(ctx context.Context) int {
	now := r.clock.Now()
	jobs, err := r.jobs.ClaimDue(ctx, now, now.Add(-r.cfg.ProcessingTimeout), r.cfg.BatchSize)
	if err != nil {
		slog.Error("failed to claim notification jobs", "error", err)
		return 0
	}

	sent := 0
	for _, job := range jobs {
		if r.relay(ctx, job) {
			sent++
		}
	}

	if len(jobs) > 0 {
		slog.Debug("notification batch relayed", "claimed", len(jobs), "sent", sent)
	}
	return sent
}

func (r *NotificationRelay) relay(ctx context.Context, job *queries.NotificationJobView) bool {
	err := r.publisher.Publish(ctx, messaging.Message{
		ID:         job.ID.String(),
		RoutingKey: job.Topic,
		Body:       job.Payload,
		Timestamp:  job.CreatedAt,
	})
	if err == nil {
		r.markSent(ctx, job)
		return true
	}

	msg := err.Error()
	if job.Attempts >= r.cfg.MaxAttempts {
		slog.Error("notification job exhausted retries",
			"job_id", job.ID,
			"topic", job.Topic,
			"attempts", job.Attempts,
			"error", msg,
		)
		r.update(ctx, job.ID, repository.NotificationStatusDead, &msg, nil)
		r.recorder.ObserveRelay(repository.NotificationStatusDead)
		return false
	}

	next := r.clock.Now().Add(RetryBackoff(job.Attempts))
	slog.Warn("notification publish failed, rescheduling",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"next_run_at", next,
		"error", msg,
	)
	r.update(ctx, job.ID, repository.NotificationStatusFailed, &msg, &next)
	r.recorder.ObserveRelay(repository.NotificationStatusFailed)
	return false
}

func (r *NotificationRelay) markSent(ctx context.Context, job *queries.NotificationJobView) {
	r.update(ctx, job.ID, repository.NotificationStatusSent, nil, nil)
	r.recorder.ObserveRelay(repository.NotificationStatusSent)
}

func (r *NotificationRelay) update(ctx context.Context, id uuid.UUID, status string, lastError *string, nextRunAt *time.Time) {
	if err := r.jobs.UpdateJobStatus(ctx, id, status, lastError, nextRunAt); err != nil {
		slog.Error("failed to update notification job", "job_id", id, "status", status, "error", err)
	}
}

// RetryBackoff returns the delay before retry number attempts (1-based), doubling from
// relayBackoffBase and capped at relayBackoffMax.
func RetryBackoff(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := relayBackoffBase
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= relayBackoffMax {
			return relayBackoffMax
		}
	}
	return d
}
