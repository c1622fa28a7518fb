package reservation

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPurpose         = errors.New("purpose is required")
	ErrMissingRejectionReason = errors.New("rejection reason is required")
	ErrNotEditable            = errors.New("only pending reservations can be edited")
	ErrPurposeTooLong         = errors.New("purpose exceeds maximum length")
)

const MaxPurposeLength = 1000

type Decision struct {
	decidedBy uuid.UUID
	decidedAt time.Time
	reason    string
}

func NewApproval(decidedBy uuid.UUID, at time.Time) Decision {
	return Decision{decidedBy: decidedBy, decidedAt: at}
}

func NewRejection(decidedBy uuid.UUID, at time.Time, reason string) (Decision, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Decision{}, ErrMissingRejectionReason
	}
	return Decision{decidedBy: decidedBy, decidedAt: at, reason: reason}, nil
}

func ReconstructDecision(decidedBy uuid.UUID, at time.Time, reason string) Decision {
	return Decision{decidedBy: decidedBy, decidedAt: at, reason: reason}
}

func (d Decision) DecidedBy() uuid.UUID { return d.decidedBy }
func (d Decision) DecidedAt() time.Time { return d.decidedAt }
func (d Decision) Reason() string       { return d.reason }

type Reservation struct {
	id          uuid.UUID
	roomID      uuid.UUID
	requestedBy uuid.UUID
	dates       []Date
	timeRange   TimeRange
	status      Status
	purpose     string
	decision    *Decision
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructReservation(
	id, roomID, requestedBy uuid.UUID,
	dates []Date,
	timeRange TimeRange,
	status Status,
	purpose string,
	decision *Decision,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		roomID:      roomID,
		requestedBy: requestedBy,
		dates:       NormalizeDates(dates),
		timeRange:   timeRange,
		status:      status,
		purpose:     purpose,
		decision:    decision,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RoomID() uuid.UUID      { return r.roomID }
func (r *Reservation) RequestedBy() uuid.UUID { return r.requestedBy }
func (r *Reservation) Dates() []Date          { return slices.Clone(r.dates) }
func (r *Reservation) TimeRange() TimeRange   { return r.timeRange }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Purpose() string        { return r.purpose }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Reservation) Decision() (Decision, bool) {
	if r.decision == nil {
		return Decision{}, false
	}
	return *r.decision, true
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.requestedBy == userID
}

// Windows expands the reservation into one BookingWindow per date.
func (r *Reservation) Windows() []BookingWindow {
	windows := make([]BookingWindow, len(r.dates))
	for i, d := range r.dates {
		windows[i] = BookingWindow{Date: d, Range: r.timeRange}
	}
	return windows
}

// WithStatusPatch returns a copy of r with p applied. r is left untouched.
func (r *Reservation) WithStatusPatch(p StatusPatch) *Reservation {
	next := r.clone()
	next.status = p.To
	next.decision = nil
	if p.Decision != nil {
		d := *p.Decision
		next.decision = &d
	}
	next.updatedAt = p.At
	return next
}

// WithEditPatch returns a copy of r with the edited schedule and purpose.
func (r *Reservation) WithEditPatch(p ReservationPatch) *Reservation {
	next := r.clone()
	next.dates = NormalizeDates(p.Dates)
	next.timeRange = p.TimeRange
	next.purpose = p.Purpose
	next.updatedAt = p.At
	return next
}

func (r *Reservation) clone() *Reservation {
	c := *r
	c.dates = slices.Clone(r.dates)
	if r.decision != nil {
		d := *r.decision
		c.decision = &d
	}
	return &c
}

func normalizePurpose(purpose string, required bool) (string, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" && required {
		return "", ErrMissingPurpose
	}
	if len([]rune(purpose)) > MaxPurposeLength {
		return "", ErrPurposeTooLong
	}
	return purpose, nil
}
