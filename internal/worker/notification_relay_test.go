//go:build unit

package worker

import (
	"context"
	"testing"
	"time"

	"meeting-room-reservation/internal/infra/messaging"
	"meeting-room-reservation/internal/infra/repository"
	"meeting-room-reservation/internal/pkg/clock"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) ClaimDue(ctx context.Context, now, staleBefore time.Time, batchSize int32) ([]*queries.NotificationJobView, error) {
	args := m.Called(ctx, now, staleBefore, batchSize)
	jobs, _ := args.Get(0).([]*queries.NotificationJobView)
	return jobs, args.Error(1)
}

func (m *MockJobStore) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, nextRunAt *time.Time) error {
	args := m.Called(ctx, jobID, status, lastError, nextRunAt)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, msg messaging.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockRelayRecorder struct {
	mock.Mock
}

func (m *MockRelayRecorder) ObserveRelay(status string) {
	m.Called(status)
}

var relayNow = time.Date(2025, 8, 5, 9, 0, 0, 0, time.UTC)

func newTestRelay(jobs *MockJobStore, pub *MockPublisher, rec *MockRelayRecorder) *NotificationRelay {
	return NewNotificationRelay(jobs, pub, rec, clock.NewFixedClock(relayNow), RelayConfig{
		Interval:          time.Second,
		BatchSize:         10,
		MaxAttempts:       3,
		ProcessingTimeout: time.Minute,
	})
}

func newJob(attempts int32) *queries.NotificationJobView {
	return &queries.NotificationJobView{
		ID:        uuid.New(),
		Kind:      "reservation_event",
		Topic:     "reservation.approved",
		Payload:   []byte(`{"type":"reservation.approved"}`),
		Attempts:  attempts,
		Status:    repository.NotificationStatusProcessing,
		CreatedAt: relayNow.Add(-time.Minute),
	}
}

func TestNotificationRelay_RunOnce(t *testing.T) {
	t.Run("publishes claimed jobs and marks them sent", func(t *testing.T) {
		jobs, pub, rec := new(MockJobStore), new(MockPublisher), new(MockRelayRecorder)
		job := newJob(1)

		jobs.On("ClaimDue", mock.Anything, relayNow, relayNow.Add(-time.Minute), int32(10)).
			Return([]*queries.NotificationJobView{job}, nil)
		pub.On("Publish", mock.Anything, mock.MatchedBy(func(msg messaging.Message) bool {
			return msg.ID == job.ID.String() && msg.RoutingKey == "reservation.approved"
		})).Return(nil)
		jobs.On("UpdateJobStatus", mock.Anything, job.ID, repository.NotificationStatusSent, (*string)(nil), (*time.Time)(nil)).Return(nil)
		rec.On("ObserveRelay", repository.NotificationStatusSent).Return()

		sent := newTestRelay(jobs, pub, rec).RunOnce(context.Background())

		assert.Equal(t, 1, sent)
		jobs.AssertExpectations(t)
		pub.AssertExpectations(t)
		rec.AssertExpectations(t)
	})

	t.Run("reschedules failed publish with backoff", func(t *testing.T) {
		jobs, pub, rec := new(MockJobStore), new(MockPublisher), new(MockRelayRecorder)
		job := newJob(2)

		jobs.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]*queries.NotificationJobView{job}, nil)
		pub.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)
		jobs.On("UpdateJobStatus", mock.Anything, job.ID, repository.NotificationStatusFailed,
			mock.MatchedBy(func(s *string) bool { return s != nil && *s == assert.AnError.Error() }),
			mock.MatchedBy(func(next *time.Time) bool { return next != nil && next.Equal(relayNow.Add(20*time.Second)) }),
		).Return(nil)
		rec.On("ObserveRelay", repository.NotificationStatusFailed).Return()

		sent := newTestRelay(jobs, pub, rec).RunOnce(context.Background())

		assert.Equal(t, 0, sent)
		jobs.AssertExpectations(t)
		rec.AssertExpectations(t)
	})

	t.Run("marks job dead after max attempts", func(t *testing.T) {
		jobs, pub, rec := new(MockJobStore), new(MockPublisher), new(MockRelayRecorder)
		job := newJob(3)

		jobs.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]*queries.NotificationJobView{job}, nil)
		pub.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)
		jobs.On("UpdateJobStatus", mock.Anything, job.ID, repository.NotificationStatusDead, mock.Anything, (*time.Time)(nil)).Return(nil)
		rec.On("ObserveRelay", repository.NotificationStatusDead).Return()

		newTestRelay(jobs, pub, rec).RunOnce(context.Background())

		jobs.AssertExpectations(t)
		rec.AssertExpectations(t)
	})

	t.Run("claim failure publishes nothing", func(t *testing.T) {
		jobs, pub, rec := new(MockJobStore), new(MockPublisher), new(MockRelayRecorder)
		jobs.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		sent := newTestRelay(jobs, pub, rec).RunOnce(context.Background())

		assert.Equal(t, 0, sent)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestRetryBackoff(t *testing.T) {
	tests := []struct {
		attempts int32
		want     time.Duration
	}{
		{attempts: 0, want: 10 * time.Second},
		{attempts: 1, want: 10 * time.Second},
		{attempts: 2, want: 20 * time.Second},
		{attempts: 4, want: 80 * time.Second},
		{attempts: 20, want: time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RetryBackoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestNotificationRelay_StartStop(t *testing.T) {
	jobs, pub, rec := new(MockJobStore), new(MockPublisher), new(MockRelayRecorder)
	jobs.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*queries.NotificationJobView{}, nil).Maybe()

	relay := NewNotificationRelay(jobs, pub, rec, clock.NewZonedClock(time.UTC), RelayConfig{
		Interval:          20 * time.Millisecond,
		BatchSize:         10,
		MaxAttempts:       3,
		ProcessingTimeout: time.Minute,
	})

	go relay.Start(context.Background())
	time.Sleep(60 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		relay.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}
