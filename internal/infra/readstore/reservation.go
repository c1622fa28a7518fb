package readstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/infra"
	"meeting-room-reservation/internal/infra/repository/converter"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/pkg/pgconv"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	GetReservationsByRequesterFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByRequesterFirstPageParams) ([]sqlc.GetReservationsByRequesterFirstPageRow, error)
	GetReservationsByRequesterKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByRequesterKeysetParams) ([]sqlc.GetReservationsByRequesterKeysetRow, error)
	ListRoomReservationsOnDates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomReservationsOnDatesParams) ([]sqlc.ListRoomReservationsOnDatesRow, error)
	ListRoomSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomScheduleParams) ([]sqlc.ListRoomScheduleRow, error)
	CountReservationsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsByStatusParams) ([]sqlc.CountReservationsByStatusRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dates, err := converter.ResolveRecordDates(row.ID, row.BookingDates, row.RangeStart, row.RangeEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve reservation dates", err)
	}

	return &queries.ReservationView{
		ID:             row.ID,
		RoomID:         row.RoomID,
		RoomName:       row.RoomName,
		RequestedBy:    row.RequestedBy,
		RequesterEmail: row.RequesterEmail,
		RequesterName:  row.RequesterName,
		Purpose:        row.Purpose,
		Status:         displayStatus(row.ID, row.Status),
		Dates:          dates,
		StartTime:      reservation.TimeOfDay(row.StartMinute).String(),
		EndTime:        reservation.TimeOfDay(row.EndMinute).String(),
		DecidedBy:      pgconv.UUIDPtrFromPgtype(row.DecidedBy),
		DecisionReason: pgconv.StringPtrFromPgtype(row.DecisionReason),
		DecidedAt:      pgconv.TimePtrFromPgtype(row.DecidedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// FindDomainByID loads the reservation aggregate for the command side.
func (r *ReservationReadStore) FindDomainByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := converter.RecordToDomain(converter.RecordFromByIDRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild reservation", err)
	}
	return res, nil
}

func (r *ReservationReadStore) getByID(ctx context.Context, id uuid.UUID) (sqlc.GetReservationByIDRow, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.GetReservationByIDRow{}, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return sqlc.GetReservationByIDRow{}, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return row, nil
}

// SnapshotForRoom fetches the active reservations of roomID that touch any of
// dates. Rows whose status does not normalize are left out and logged.
func (r *ReservationReadStore) SnapshotForRoom(ctx context.Context, roomID uuid.UUID, dates []reservation.Date) (*reservation.Snapshot, error) {
	rows, err := r.queries.ListRoomReservationsOnDates(ctx, r.db, sqlc.ListRoomReservationsOnDatesParams{
		RoomID:           roomID,
		InactiveStatuses: converter.InactiveStatusLabels(),
		Dates:            pgconv.DatesToPgtype(dates),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room reservations", err)
	}

	existing := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.RecordToDomain(converter.RecordFromRoomRow(row))
		if err != nil {
			if errors.Is(err, reservation.ErrUnknownStatus) {
				slog.Warn("skipping reservation with unrecognized status in conflict snapshot",
					"reservation_id", row.ID.String(),
					"status", row.Status)
				continue
			}
			return nil, infra.WrapRepoErr("failed to rebuild reservation for snapshot", err)
		}
		existing = append(existing, res)
	}

	return reservation.NewSnapshot(existing), nil
}

func (r *ReservationReadStore) FindByRequesterFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.GetReservationsByRequesterFirstPageParams{
		RequestedBy: userID,
		RowLimit:    limit,
	}

	rows, err := r.queries.GetReservationsByRequesterFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}

	result := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toReservationListItem(listRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, nil
}

func (r *ReservationReadStore) FindByRequesterKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.GetReservationsByRequesterKeysetParams{
		RequestedBy: userID,
		CreatedAt:   pgconv.TimeToPgtype(lastCreatedAt),
		ID:          lastID,
		RowLimit:    limit,
	}

	rows, err := r.queries.GetReservationsByRequesterKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}

	result := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toReservationListItem(listRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, nil
}

// RoomSchedule lists active reservations of roomID with at least one date in
// [from, to]. Each entry only carries its dates inside that window.
func (r *ReservationReadStore) RoomSchedule(ctx context.Context, roomID uuid.UUID, from, to reservation.Date) ([]*queries.ScheduleEntry, error) {
	rows, err := r.queries.ListRoomSchedule(ctx, r.db, sqlc.ListRoomScheduleParams{
		RoomID:           roomID,
		InactiveStatuses: converter.InactiveStatusLabels(),
		FromDate:         pgconv.DateToPgtype(from),
		ToDate:           pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room schedule", err)
	}

	result := make([]*queries.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		dates, err := converter.ResolveRecordDates(row.ID, row.BookingDates, row.RangeStart, row.RangeEnd)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to resolve reservation dates", err)
		}
		inWindow := make([]reservation.Date, 0, len(dates))
		for _, d := range dates {
			if !d.Before(from) && !d.After(to) {
				inWindow = append(inWindow, d)
			}
		}
		if len(inWindow) == 0 {
			continue
		}
		result = append(result, &queries.ScheduleEntry{
			ReservationID: row.ID,
			RequestedBy:   row.RequestedBy,
			RequesterName: row.RequesterName,
			Purpose:       row.Purpose,
			Status:        displayStatus(row.ID, row.Status),
			Dates:         inWindow,
			StartTime:     reservation.TimeOfDay(row.StartMinute).String(),
			EndTime:       reservation.TimeOfDay(row.EndMinute).String(),
		})
	}

	return result, nil
}

// CountByStatus aggregates stored statuses across both label encodings.
func (r *ReservationReadStore) CountByStatus(ctx context.Context, filter queries.StatsFilter) (reservation.Stats, error) {
	rows, err := r.queries.CountReservationsByStatus(ctx, r.db, sqlc.CountReservationsByStatusParams{
		RoomID:   pgconv.UUIDPtrToPgtype(filter.RoomID),
		FromDate: pgconv.DatePtrToPgtype(filter.From),
		ToDate:   pgconv.DatePtrToPgtype(filter.To),
	})
	if err != nil {
		return reservation.Stats{}, infra.WrapRepoErr("failed to count reservations by status", err)
	}

	counts := make([]reservation.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = reservation.StatusCount{Status: row.Status, Count: int(row.Total)}
	}
	return reservation.AggregateCounts(counts), nil
}

// reservationListRow unifies the first-page and keyset row shapes.
type reservationListRow struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	RoomName     string
	Purpose      string
	Status       string
	StartMinute  int32
	EndMinute    int32
	RangeStart   pgtype.Date
	RangeEnd     pgtype.Date
	CreatedAt    pgtype.Timestamptz
	BookingDates []pgtype.Date
}

func listRow[T sqlc.GetReservationsByRequesterFirstPageRow | sqlc.GetReservationsByRequesterKeysetRow](row T) reservationListRow {
	return reservationListRow(row)
}

func toReservationListItem(row reservationListRow) (*queries.ReservationListItem, error) {
	dates, err := converter.ResolveRecordDates(row.ID, row.BookingDates, row.RangeStart, row.RangeEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve reservation dates", err)
	}
	return &queries.ReservationListItem{
		ID:        row.ID,
		RoomID:    row.RoomID,
		RoomName:  row.RoomName,
		Purpose:   row.Purpose,
		Status:    displayStatus(row.ID, row.Status),
		Dates:     dates,
		StartTime: reservation.TimeOfDay(row.StartMinute).String(),
		EndTime:   reservation.TimeOfDay(row.EndMinute).String(),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// displayStatus returns the canonical status, or the raw value when it does not
// normalize so the row is still visible.
func displayStatus(id uuid.UUID, raw string) string {
	s, ok := reservation.NormalizeStatus(raw)
	if !ok {
		slog.Warn("reservation has unrecognized status", "reservation_id", id.String(), "status", raw)
		return raw
	}
	return s.String()
}
