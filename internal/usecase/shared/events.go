package shared

import (
	"time"

	"meeting-room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// NotificationKindReservationEvent tags outbox jobs carrying a ReservationEvent.
const NotificationKindReservationEvent = "reservation_event"

// Event types double as broker routing keys.
const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationApproved  = "reservation.approved"
	EventReservationRejected  = "reservation.rejected"
	EventReservationCancelled = "reservation.cancelled"
)

type ReservationEvent struct {
	Type          string             `json:"type"`
	ReservationID uuid.UUID          `json:"reservation_id"`
	RoomID        uuid.UUID          `json:"room_id"`
	RequestedBy   uuid.UUID          `json:"requested_by"`
	ActorID       uuid.UUID          `json:"actor_id"`
	Status        string             `json:"status"`
	StatusLabel   string             `json:"status_label"`
	Dates         []reservation.Date `json:"dates"`
	StartTime     string             `json:"start_time"`
	EndTime       string             `json:"end_time"`
	Reason        string             `json:"reason,omitempty"`
	OccurredAt    time.Time          `json:"occurred_at"`
}

// NewReservationEvent snapshots r for the outbox. StatusLabel carries the Thai display
// text consumers show to requesters.
func NewReservationEvent(eventType string, r *reservation.Reservation, actorID uuid.UUID, at time.Time) ReservationEvent {
	ev := ReservationEvent{
		Type:          eventType,
		ReservationID: r.ID(),
		RoomID:        r.RoomID(),
		RequestedBy:   r.RequestedBy(),
		ActorID:       actorID,
		Status:        r.Status().String(),
		StatusLabel:   r.Status().DisplayLabel(),
		Dates:         r.Dates(),
		StartTime:     r.TimeRange().Start().String(),
		EndTime:       r.TimeRange().End().String(),
		OccurredAt:    at,
	}
	if d, ok := r.Decision(); ok {
		ev.Reason = d.Reason()
	}
	return ev
}
