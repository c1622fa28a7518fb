package converter

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	tr := res.TimeRange()
	return sqlc.CreateReservationParams{
		ID:          res.ID(),
		RoomID:      res.RoomID(),
		RequestedBy: res.RequestedBy(),
		Purpose:     res.Purpose(),
		Status:      res.Status().String(),
		StartMinute: minuteToInt32(tr.Start()),
		EndMinute:   minuteToInt32(tr.End()),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func StatusPatchToInfra(p reservation.StatusPatch) sqlc.UpdateReservationStatusParams {
	params := sqlc.UpdateReservationStatusParams{
		ToStatus:         p.To.String(),
		UpdatedAt:        pgconv.TimeToPgtype(p.At),
		ID:               p.ReservationID,
		ExpectedStatuses: StatusLabels(p.From),
	}
	if p.Decision != nil {
		params.DecidedBy = pgconv.UUIDToPgtype(p.Decision.DecidedBy())
		params.DecidedAt = pgconv.TimeToPgtype(p.Decision.DecidedAt())
		if reason := p.Decision.Reason(); reason != "" {
			params.DecisionReason = pgconv.StringToPgtype(reason)
		}
	}
	return params
}

func EditPatchToInfra(p reservation.ReservationPatch) sqlc.UpdateReservationScheduleParams {
	return sqlc.UpdateReservationScheduleParams{
		Purpose:          p.Purpose,
		StartMinute:      minuteToInt32(p.TimeRange.Start()),
		EndMinute:        minuteToInt32(p.TimeRange.End()),
		UpdatedAt:        pgconv.TimeToPgtype(p.At),
		ID:               p.ReservationID,
		ExpectedStatuses: StatusLabels(p.ExpectedStatus),
	}
}

func WindowsToInfra(reservationID, roomID uuid.UUID, dates []reservation.Date, tr reservation.TimeRange) sqlc.InsertBookingWindowsParams {
	return sqlc.InsertBookingWindowsParams{
		ReservationID: reservationID,
		RoomID:        roomID,
		BookingDates:  pgconv.DatesToPgtype(dates),
		StartMinute:   minuteToInt32(tr.Start()),
		EndMinute:     minuteToInt32(tr.End()),
	}
}

// StatusLabels lists every stored value equivalent to s, lowercased for the
// lower(btrim(status)) comparisons in SQL.
func StatusLabels(statuses ...reservation.Status) []string {
	var out []string
	for _, s := range statuses {
		for _, l := range s.Labels() {
			out = append(out, strings.ToLower(l))
		}
	}
	return out
}

func InactiveStatusLabels() []string {
	return StatusLabels(reservation.StatusRejected, reservation.StatusCancelled)
}

// ReservationRecord is the column set shared by every reservation row shape
// that can be rebuilt into a domain reservation.
type ReservationRecord struct {
	ID             uuid.UUID
	RoomID         uuid.UUID
	RequestedBy    uuid.UUID
	Purpose        string
	Status         string
	StartMinute    int32
	EndMinute      int32
	RangeStart     pgtype.Date
	RangeEnd       pgtype.Date
	DecidedBy      pgtype.UUID
	DecisionReason pgtype.Text
	DecidedAt      pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
	BookingDates   []pgtype.Date
}

func RecordFromByIDRow(row sqlc.GetReservationByIDRow) ReservationRecord {
	return ReservationRecord{
		ID:             row.ID,
		RoomID:         row.RoomID,
		RequestedBy:    row.RequestedBy,
		Purpose:        row.Purpose,
		Status:         row.Status,
		StartMinute:    row.StartMinute,
		EndMinute:      row.EndMinute,
		RangeStart:     row.RangeStart,
		RangeEnd:       row.RangeEnd,
		DecidedBy:      row.DecidedBy,
		DecisionReason: row.DecisionReason,
		DecidedAt:      row.DecidedAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		BookingDates:   row.BookingDates,
	}
}

func RecordFromRoomRow(row sqlc.ListRoomReservationsOnDatesRow) ReservationRecord {
	return ReservationRecord{
		ID:             row.ID,
		RoomID:         row.RoomID,
		RequestedBy:    row.RequestedBy,
		Purpose:        row.Purpose,
		Status:         row.Status,
		StartMinute:    row.StartMinute,
		EndMinute:      row.EndMinute,
		RangeStart:     row.RangeStart,
		RangeEnd:       row.RangeEnd,
		DecidedBy:      row.DecidedBy,
		DecisionReason: row.DecisionReason,
		DecidedAt:      row.DecidedAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		BookingDates:   row.BookingDates,
	}
}

// RecordToDomain rebuilds a reservation from its stored form. Status labels are
// normalized and legacy range rows are expanded into explicit dates.
func RecordToDomain(rec ReservationRecord) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	dates, err := ResolveRecordDates(rec.ID, rec.BookingDates, rec.RangeStart, rec.RangeEnd)
	if err != nil {
		return nil, err
	}

	tr, err := reservation.NewTimeRange(reservation.TimeOfDay(rec.StartMinute), reservation.TimeOfDay(rec.EndMinute))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", rec.ID, err)
	}

	var decision *reservation.Decision
	if decidedBy := pgconv.UUIDPtrFromPgtype(rec.DecidedBy); decidedBy != nil && status.HasDecision() {
		var decidedAt time.Time
		if rec.DecidedAt.Valid {
			decidedAt = rec.DecidedAt.Time
		}
		reason := ""
		if r := pgconv.StringPtrFromPgtype(rec.DecisionReason); r != nil {
			reason = *r
		}
		d := reservation.ReconstructDecision(*decidedBy, decidedAt, reason)
		decision = &d
	}

	return reservation.ReconstructReservation(
		rec.ID,
		rec.RoomID,
		rec.RequestedBy,
		dates,
		tr,
		status,
		rec.Purpose,
		decision,
		pgconv.TimeFromPgtype(rec.CreatedAt),
		pgconv.TimeFromPgtype(rec.UpdatedAt),
	), nil
}

// ResolveRecordDates applies the explicit-list-wins rule to a stored row and
// flags rows that carry both forms.
func ResolveRecordDates(id uuid.UUID, booking []pgtype.Date, rangeStart, rangeEnd pgtype.Date) ([]reservation.Date, error) {
	explicit, err := pgconv.DatesFromPgtype(booking)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", id, err)
	}
	rs, err := pgconv.DatePtrFromPgtype(rangeStart)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", id, err)
	}
	re, err := pgconv.DatePtrFromPgtype(rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", id, err)
	}

	res, err := reservation.ResolveDates(explicit, rs, re)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", id, err)
	}
	if res.Conflicting {
		slog.Warn("reservation carries both explicit dates and a date range; using explicit dates",
			"reservation_id", id.String(),
			"explicit_dates", len(explicit))
	}
	return res.Dates, nil
}

func minuteToInt32(t reservation.TimeOfDay) int32 {
	// #nosec G115 -- TimeOfDay is bounded to a single day
	return int32(t.Minutes())
}
