package queries

import (
	"time"

	"meeting-room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationView is the full read model of a single reservation.
type ReservationView struct {
	ID             uuid.UUID          `json:"id"`
	RoomID         uuid.UUID          `json:"room_id"`
	RoomName       string             `json:"room_name"`
	RequestedBy    uuid.UUID          `json:"requested_by"`
	RequesterEmail string             `json:"requester_email"`
	RequesterName  string             `json:"requester_name"`
	Purpose        string             `json:"purpose"`
	Status         string             `json:"status"`
	Dates          []reservation.Date `json:"dates"`
	StartTime      string             `json:"start_time"`
	EndTime        string             `json:"end_time"`
	DecidedBy      *uuid.UUID         `json:"decided_by,omitempty"`
	DecisionReason *string            `json:"decision_reason,omitempty"`
	DecidedAt      *time.Time         `json:"decided_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type ReservationListItem struct {
	ID        uuid.UUID          `json:"id"`
	RoomID    uuid.UUID          `json:"room_id"`
	RoomName  string             `json:"room_name"`
	Purpose   string             `json:"purpose"`
	Status    string             `json:"status"`
	Dates     []reservation.Date `json:"dates"`
	StartTime string             `json:"start_time"`
	EndTime   string             `json:"end_time"`
	CreatedAt time.Time          `json:"created_at"`
}

// ScheduleEntry is one active reservation on a room calendar. Dates are limited
// to the requested window.
type ScheduleEntry struct {
	ReservationID uuid.UUID          `json:"reservation_id"`
	RequestedBy   uuid.UUID          `json:"requested_by"`
	RequesterName string             `json:"requester_name"`
	Purpose       string             `json:"purpose"`
	Status        string             `json:"status"`
	Dates         []reservation.Date `json:"dates"`
	StartTime     string             `json:"start_time"`
	EndTime       string             `json:"end_time"`
}

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Building  string    `json:"building"`
	Capacity  int32     `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// StatsFilter narrows the reservations counted by Stats. Nil fields are unbounded.
type StatsFilter struct {
	RoomID *uuid.UUID
	From   *reservation.Date
	To     *reservation.Date
}

// CacheKey renders the filter as a stable cache key segment.
func (f StatsFilter) CacheKey() string {
	room, from, to := "*", "*", "*"
	if f.RoomID != nil {
		room = f.RoomID.String()
	}
	if f.From != nil {
		from = f.From.String()
	}
	if f.To != nil {
		to = f.To.String()
	}
	return room + ":" + from + ":" + to
}

type StatsView struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	Cancelled    int `json:"cancelled"`
	Unrecognized int `json:"unrecognized"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
