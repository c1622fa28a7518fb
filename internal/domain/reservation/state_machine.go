package reservation

import (
	"errors"
	"fmt"
	"time"

	"meeting-room-reservation/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrActorNotPermitted = errors.New("actor is not permitted to perform this transition")
	ErrUnknownEvent      = errors.New("unknown reservation event")
)

type Event string

const (
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventCancel  Event = "cancel"
)

func (e Event) String() string { return string(e) }

// Actor identifies who is driving a transition.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type Transition struct {
	Event  Event
	Actor  Actor
	Reason string
	At     time.Time
}

// StatusPatch is the state change produced by Apply. From is the compare-and-swap
// precondition the store must check before writing To.
type StatusPatch struct {
	ReservationID uuid.UUID
	Event         Event
	From          Status
	To            Status
	Decision      *Decision
	At            time.Time
}

// ReleasesWindows reports whether the reservation stops holding its booking windows.
func (p StatusPatch) ReleasesWindows() bool {
	return p.From.IsActive() && !p.To.IsActive()
}

var transitions = map[Status]map[Event]Status{
	StatusPending: {
		EventApprove: StatusApproved,
		EventReject:  StatusRejected,
		EventCancel:  StatusCancelled,
	},
	StatusApproved: {
		EventCancel: StatusCancelled,
	},
}

// CanTransition reports whether ev is defined from s, ignoring actor rules.
func CanTransition(s Status, ev Event) bool {
	_, ok := transitions[s][ev]
	return ok
}

// Apply validates t against r and returns the patch to persist. r is not modified.
func Apply(r *Reservation, t Transition) (*StatusPatch, error) {
	switch t.Event {
	case EventApprove, EventReject, EventCancel:
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrIllegalTransition, ErrUnknownEvent, t.Event)
	}

	to, ok := transitions[r.status][t.Event]
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a %s reservation", ErrIllegalTransition, t.Event, r.status)
	}

	patch := &StatusPatch{
		ReservationID: r.id,
		Event:         t.Event,
		From:          r.status,
		To:            to,
		At:            t.At,
	}

	switch t.Event {
	case EventApprove:
		if !t.Actor.Role.CanDecide() {
			return nil, fmt.Errorf("%w: %w: role %q cannot approve", ErrIllegalTransition, ErrActorNotPermitted, t.Actor.Role)
		}
		d := NewApproval(t.Actor.ID, t.At)
		patch.Decision = &d
	case EventReject:
		if !t.Actor.Role.CanDecide() {
			return nil, fmt.Errorf("%w: %w: role %q cannot reject", ErrIllegalTransition, ErrActorNotPermitted, t.Actor.Role)
		}
		d, err := NewRejection(t.Actor.ID, t.At, t.Reason)
		if err != nil {
			return nil, err
		}
		patch.Decision = &d
	case EventCancel:
		if !r.IsOwnedBy(t.Actor.ID) && !t.Actor.Role.CanOverrideCancel() {
			return nil, fmt.Errorf("%w: %w: only the requester or an officer can cancel", ErrIllegalTransition, ErrActorNotPermitted)
		}
	}
	return patch, nil
}
