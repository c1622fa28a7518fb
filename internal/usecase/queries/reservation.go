package queries

import (
	"context"
	"log/slog"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/domain/user"
	"meeting-room-reservation/internal/infra"
	"meeting-room-reservation/internal/infra/cache"
	"meeting-room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxScheduleDays bounds a room schedule request.
const MaxScheduleDays = 92

var (
	ErrReservationNotFound = errs.ErrReservationNotFound
	ErrReservationAccess   = errs.ErrReservationAccess
	ErrScheduleWindow      = errs.New("schedule window is too large")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRequesterFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByRequesterKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	RoomSchedule(ctx context.Context, roomID uuid.UUID, from, to reservation.Date) ([]*ScheduleEntry, error)
	CountByStatus(ctx context.Context, filter StatsFilter) (reservation.Stats, error)
}

type StatsCache interface {
	Get(ctx context.Context, filterKey string) (reservation.Stats, error)
	Set(ctx context.Context, filterKey string, stats reservation.Stats) error
}

type StatsRecorder interface {
	ObserveUnrecognizedStatuses(n int)
	ObserveStatsCache(hit bool)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips access checks. Used for idempotent replays and read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	RoomSchedule(ctx context.Context, roomID uuid.UUID, from, to reservation.Date) ([]*ScheduleEntry, error)
	Stats(ctx context.Context, filter StatsFilter) (*StatsView, error)
}

type reservationQueriesImpl struct {
	repo     ReservationReadStore
	rooms    RoomReadStore
	cache    StatsCache
	recorder StatsRecorder
}

func NewReservationQueries(repo ReservationReadStore, rooms RoomReadStore, cache StatsCache, recorder StatsRecorder) ReservationQueries {
	return &reservationQueriesImpl{
		repo:     repo,
		rooms:    rooms,
		cache:    cache,
		recorder: recorder,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.RequestedBy != actorID && !actorRole.CanDecide() {
		// hide existence from other requesters
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByRequesterFirstPage(ctx, userID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByRequesterKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) RoomSchedule(ctx context.Context, roomID uuid.UUID, from, to reservation.Date) ([]*ScheduleEntry, error) {
	if to.Before(from) {
		return nil, reservation.ErrInvalidDateRange
	}
	if from.DaysUntil(to) >= MaxScheduleDays {
		return nil, ErrScheduleWindow
	}

	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return q.repo.RoomSchedule(ctx, roomID, from, to)
}

// Stats aggregates statuses through the normalization table. Unrecognized stored
// values are counted in the total only and reported as a data-quality warning.
func (q *reservationQueriesImpl) Stats(ctx context.Context, filter StatsFilter) (*StatsView, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, reservation.ErrInvalidDateRange
	}

	key := filter.CacheKey()
	stats, err := q.cache.Get(ctx, key)
	switch {
	case err == nil:
		q.recorder.ObserveStatsCache(true)
		return toStatsView(stats), nil
	case errs.Is(err, cache.ErrCacheMiss):
		q.recorder.ObserveStatsCache(false)
	default:
		q.recorder.ObserveStatsCache(false)
		slog.Warn("stats cache unavailable", "error", err)
	}

	stats, err = q.repo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	if stats.HasUnrecognized() {
		slog.Warn("reservations with unrecognized status values",
			"count", stats.Unrecognized,
			"total", stats.Total,
			"filter", key,
		)
		q.recorder.ObserveUnrecognizedStatuses(stats.Unrecognized)
	}

	if err := q.cache.Set(ctx, key, stats); err != nil {
		slog.Warn("failed to populate stats cache", "error", err)
	}

	return toStatsView(stats), nil
}

func toStatsView(s reservation.Stats) *StatsView {
	return &StatsView{
		Total:        s.Total,
		Pending:      s.Pending,
		Approved:     s.Approved,
		Rejected:     s.Rejected,
		Cancelled:    s.Cancelled,
		Unrecognized: s.Unrecognized,
	}
}
