//go:build unit || e2e

package builder

import (
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	reqdto "meeting-room-reservation/internal/handler/dto/request"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	RoomName    string
	RequestedBy uuid.UUID
	Dates       []string
	Start       string
	End         string
	Status      reservation.Status
	Purpose     string
	Decision    *reservation.Decision
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		RoomID:      uuid.New(),
		RoomName:    "Meeting Room 1",
		RequestedBy: uuid.New(),
		Dates:       []string{"2025-08-05"},
		Start:       "09:00",
		End:         "11:00",
		Status:      reservation.StatusPending,
		Purpose:     "Thesis defense",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	start := mustTime(b.Start)
	end := mustTime(b.End)
	tr, err := reservation.NewTimeRange(start, end)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		b.ID, b.RoomID, b.RequestedBy,
		b.domainDates(), tr, b.Status, b.Purpose, b.Decision,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateRequest() reservation.CreateRequest {
	return reservation.CreateRequest{
		RoomID:      b.RoomID,
		Dates:       b.domainDates(),
		Start:       mustTime(b.Start),
		End:         mustTime(b.End),
		Purpose:     b.Purpose,
		RequestedBy: b.RequestedBy,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID: b.RoomID,
		ScheduleInput: reqdto.ScheduleInput{
			Dates:     append([]string(nil), b.Dates...),
			StartTime: b.Start,
			EndTime:   b.End,
		},
		Purpose: b.Purpose,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             b.ID,
		RoomID:         b.RoomID,
		RoomName:       b.RoomName,
		RequestedBy:    b.RequestedBy,
		RequesterEmail: "requester@example.ac.th",
		RequesterName:  "Requester",
		Purpose:        b.Purpose,
		Status:         b.Status.String(),
		Dates:          b.domainDates(),
		StartTime:      b.Start,
		EndTime:        b.End,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        b.ID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		Purpose:   b.Purpose,
		Status:    b.Status.String(),
		Dates:     b.domainDates(),
		StartTime: b.Start,
		EndTime:   b.End,
		CreatedAt: b.CreatedAt,
	}
}

func (b *ReservationBuilder) domainDates() []reservation.Date {
	dates := make([]reservation.Date, len(b.Dates))
	for i, s := range b.Dates {
		d, err := reservation.ParseDate(s)
		if err != nil {
			panic(err)
		}
		dates[i] = d
	}
	return dates
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithRoomID(roomID uuid.UUID) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithRequestedBy(userID uuid.UUID) *ReservationBuilder {
	b.RequestedBy = userID
	return b
}

func (b *ReservationBuilder) WithDates(dates ...string) *ReservationBuilder {
	b.Dates = dates
	return b
}

func (b *ReservationBuilder) WithTimes(start, end string) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithPurpose(purpose string) *ReservationBuilder {
	b.Purpose = purpose
	return b
}

func (b *ReservationBuilder) AsApproved(by uuid.UUID) *ReservationBuilder {
	d := reservation.NewApproval(by, b.UpdatedAt)
	b.Status = reservation.StatusApproved
	b.Decision = &d
	return b
}

func mustTime(s string) reservation.TimeOfDay {
	t, err := reservation.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}
