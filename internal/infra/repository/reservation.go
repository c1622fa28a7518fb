package repository

import (
	"context"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/infra"
	"meeting-room-reservation/internal/infra/repository/converter"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	InsertReservationDates(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationDatesParams) error
	DeleteReservationDates(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) error
	InsertBookingWindows(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingWindowsParams) error
	DeleteBookingWindows(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (int64, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	UpdateReservationSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationScheduleParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores the reservation, its dates and its booking windows. A window
// overlap rejected by the exclusion constraint surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	dates := res.Dates()
	if err := r.queries.InsertReservationDates(ctx, tx, sqlc.InsertReservationDatesParams{
		ReservationID: resultID,
		BookingDates:  pgconv.DatesToPgtype(dates),
	}); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation dates", err)
	}

	if res.IsActive() {
		if err := r.queries.InsertBookingWindows(ctx, tx, converter.WindowsToInfra(resultID, res.RoomID(), dates, res.TimeRange())); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert booking windows", err)
		}
	}

	return resultID, nil
}

// ApplyStatus writes a state transition guarded by the patch's From status.
// Zero affected rows means another writer moved the reservation first.
func (r *ReservationRepository) ApplyStatus(ctx context.Context, tx sqlc.DBTX, patch reservation.StatusPatch) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, tx, converter.StatusPatchToInfra(patch))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindPreconditionFailed)
	}

	if patch.ReleasesWindows() {
		if _, err := r.queries.DeleteBookingWindows(ctx, tx, patch.ReservationID); err != nil {
			return infra.WrapRepoErr("failed to release booking windows", err)
		}
	}

	return nil
}

// ApplyEdit replaces the schedule of a pending reservation. Dates and windows are
// rewritten wholesale so legacy range rows end up in explicit form.
func (r *ReservationRepository) ApplyEdit(ctx context.Context, tx sqlc.DBTX, patch reservation.ReservationPatch) error {
	affected, err := r.queries.UpdateReservationSchedule(ctx, tx, converter.EditPatchToInfra(patch))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation schedule", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindPreconditionFailed)
	}

	if err := r.queries.DeleteReservationDates(ctx, tx, patch.ReservationID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation dates", err)
	}
	if err := r.queries.InsertReservationDates(ctx, tx, sqlc.InsertReservationDatesParams{
		ReservationID: patch.ReservationID,
		BookingDates:  pgconv.DatesToPgtype(patch.Dates),
	}); err != nil {
		return infra.WrapRepoErr("failed to insert reservation dates", err)
	}

	if _, err := r.queries.DeleteBookingWindows(ctx, tx, patch.ReservationID); err != nil {
		return infra.WrapRepoErr("failed to delete booking windows", err)
	}
	if err := r.queries.InsertBookingWindows(ctx, tx, converter.WindowsToInfra(patch.ReservationID, patch.RoomID, patch.Dates, patch.TimeRange)); err != nil {
		return infra.WrapRepoErr("failed to insert booking windows", err)
	}

	return nil
}
