package request

import (
	"meeting-room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// ScheduleInput is shared by create requests and dry-run conflict checks. Either
// dates or a start_date/end_date range must be supplied; dates wins when both are.
type ScheduleInput struct {
	Dates     []string `json:"dates" binding:"omitempty,max=366,dive,isodate"`
	StartDate *string  `json:"start_date,omitempty" binding:"omitempty,isodate"`
	EndDate   *string  `json:"end_date,omitempty" binding:"omitempty,isodate"`
	StartTime string   `json:"start_time" binding:"required,clock"`
	EndTime   string   `json:"end_time" binding:"required,clock"`
}

// ResolveDates parses the date inputs and picks the effective booking dates.
func (s ScheduleInput) ResolveDates() (reservation.DateResolution, error) {
	explicit, err := parseDates(s.Dates)
	if err != nil {
		return reservation.DateResolution{}, err
	}
	start, err := parseDatePtr(s.StartDate)
	if err != nil {
		return reservation.DateResolution{}, err
	}
	end, err := parseDatePtr(s.EndDate)
	if err != nil {
		return reservation.DateResolution{}, err
	}
	return reservation.ResolveDates(explicit, start, end)
}

func (s ScheduleInput) Times() (reservation.TimeOfDay, reservation.TimeOfDay, error) {
	start, err := reservation.ParseClock(s.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := reservation.ParseClock(s.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

type CreateReservationRequest struct {
	RoomID uuid.UUID `json:"room_id" binding:"required"`
	ScheduleInput
	Purpose string `json:"purpose" binding:"max=1000"`
}

func (r CreateReservationRequest) ToDomain(userID uuid.UUID, dates []reservation.Date) (reservation.CreateRequest, error) {
	start, end, err := r.Times()
	if err != nil {
		return reservation.CreateRequest{}, err
	}
	return reservation.CreateRequest{
		RoomID:      r.RoomID,
		Dates:       dates,
		Start:       start,
		End:         end,
		Purpose:     r.Purpose,
		RequestedBy: userID,
	}, nil
}

// UpdateReservationRequest edits a pending reservation. Omitted fields keep their value.
type UpdateReservationRequest struct {
	Dates     []string `json:"dates,omitempty" binding:"omitempty,min=1,max=366,dive,isodate"`
	StartTime *string  `json:"start_time,omitempty" binding:"omitempty,clock"`
	EndTime   *string  `json:"end_time,omitempty" binding:"omitempty,clock"`
	Purpose   *string  `json:"purpose,omitempty" binding:"omitempty,max=1000"`
}

func (r UpdateReservationRequest) ToDomain() (reservation.EditChanges, error) {
	dates, err := parseDates(r.Dates)
	if err != nil {
		return reservation.EditChanges{}, err
	}
	changes := reservation.EditChanges{Dates: dates, Purpose: r.Purpose}
	if r.StartTime != nil {
		t, err := reservation.ParseClock(*r.StartTime)
		if err != nil {
			return reservation.EditChanges{}, err
		}
		changes.Start = &t
	}
	if r.EndTime != nil {
		t, err := reservation.ParseClock(*r.EndTime)
		if err != nil {
			return reservation.EditChanges{}, err
		}
		changes.End = &t
	}
	return changes, nil
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type CheckConflictsRequest struct {
	RoomID uuid.UUID `json:"room_id" binding:"required"`
	ScheduleInput
	ExcludeID *uuid.UUID `json:"exclude_id,omitempty"`
}

func (r CheckConflictsRequest) ToDomain(dates []reservation.Date) (reservation.ConflictQuery, error) {
	start, end, err := r.Times()
	if err != nil {
		return reservation.ConflictQuery{}, err
	}
	tr, err := reservation.NewTimeRange(start, end)
	if err != nil {
		return reservation.ConflictQuery{}, err
	}
	return reservation.ConflictQuery{
		RoomID:    r.RoomID,
		Dates:     dates,
		Start:     tr.Start(),
		End:       tr.End(),
		ExcludeID: r.ExcludeID,
	}, nil
}

type ListReservationsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type RoomScheduleQuery struct {
	From string `form:"from" binding:"required,isodate"`
	To   string `form:"to" binding:"required,isodate"`
}

type StatsQuery struct {
	RoomID *string `form:"room_id" binding:"omitempty,uuid"`
	From   *string `form:"from" binding:"omitempty,isodate"`
	To     *string `form:"to" binding:"omitempty,isodate"`
}

func parseDates(raw []string) ([]reservation.Date, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dates := make([]reservation.Date, 0, len(raw))
	for _, s := range raw {
		d, err := reservation.ParseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func parseDatePtr(raw *string) (*reservation.Date, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := reservation.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseDatePtr is parseDatePtr for query handlers.
func ParseDatePtr(raw *string) (*reservation.Date, error) {
	return parseDatePtr(raw)
}

// RoomUUID returns nil when no room filter was given.
func (q StatsQuery) RoomUUID() (*uuid.UUID, error) {
	if q.RoomID == nil || *q.RoomID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*q.RoomID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func ParseDate(raw string) (reservation.Date, error) {
	return reservation.ParseDate(raw)
}
