package repository

import (
	"context"
	"time"

	"meeting-room-reservation/internal/infra"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/pkg/pgconv"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	NotificationStatusQueued     = "queued"
	NotificationStatusProcessing = "processing"
	NotificationStatusSent       = "sent"
	NotificationStatusFailed     = "failed"
	NotificationStatusDead       = "dead"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  NotificationStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue marks up to batchSize due jobs as processing and returns them. Jobs
// stuck in processing since before staleBefore are reclaimed.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now, staleBefore time.Time, batchSize int32) ([]*queries.NotificationJobView, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		Now:         pgconv.TimeToPgtype(now),
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
		BatchSize:   batchSize,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationJobView(row)
	}
	return result, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, nextRunAt *time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    status,
		LastError: pgconv.StringPtrToPgtype(lastError),
	}
	if nextRunAt != nil {
		params.NextRunAt = pgconv.TimeToPgtype(*nextRunAt)
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}

func toNotificationJobView(row sqlc.NotificationJobs) *queries.NotificationJobView {
	return &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		Attempts:  row.Attempts,
		Status:    row.Status,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
