package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/infra/readstore"
	"meeting-room-reservation/internal/infra/repository"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/pkg/errs"
	"meeting-room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Retryable SQLSTATEs. 55P03 comes from lock_timeout while another request holds the
// reservation row.
const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type Options struct {
	MaxRetries  int
	BackoffBase time.Duration
	// LockTimeout bounds row-lock waits inside write transactions. Zero leaves the server default.
	LockTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{MaxRetries: 3, BackoffBase: 100 * time.Millisecond, LockTimeout: 3 * time.Second}
}

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
	opts Options
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, opts Options) *PostgresUoW {
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = DefaultOptions().BackoffBase
	}
	return &PostgresUoW{pool: pool, q: q, opts: opts}
}

// Within runs fn in a ReadCommitted transaction. Double booking is guarded by the
// booking_windows exclusion constraint and status compare-and-swap, not by isolation.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt >= u.opts.MaxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns one transaction so the rollback defer does not pile up across retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if u.opts.LockTimeout > 0 {
		// SET LOCAL does not accept bind parameters
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.opts.LockTimeout.Milliseconds())
		if _, err := pgxTx.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "failed to set lock timeout")
		}
	}

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives fn a consistent multi-table view.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// backoff doubles per attempt with up to 20% jitter.
func (u *PostgresUoW) backoff(attempt int) time.Duration {
	wait := u.opts.BackoffBase << attempt
	return wait + rand.N(wait/5+1)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	// the request context may be done; rollback must still reach the server
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads serves write-side lookups on the same connection as the
// surrounding transaction, so snapshots see uncommitted writes of that tx.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	roomStore        *readstore.RoomReadStore
	reservationStore *readstore.ReservationReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) rooms() *readstore.RoomReadStore {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}
	return r.roomStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	room, err := r.rooms().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.RoomSnapshot{
		ID:       room.ID,
		Name:     room.Name,
		IsActive: room.IsActive,
	}
	return snapshot, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.reservations().FindDomainByID(ctx, id)
}

func (r *commandReads) RoomSnapshot(ctx context.Context, roomID uuid.UUID, dates []reservation.Date) (*reservation.Snapshot, error) {
	return r.reservations().SnapshotForRoom(ctx, roomID, dates)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}

	return r.idempotencyStore.Get(ctx, r.dbtx, key, userID)
}
