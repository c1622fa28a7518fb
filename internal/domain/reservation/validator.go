package reservation

import (
	"errors"
	"fmt"
	"time"

	"meeting-room-reservation/internal/pkg/clock"
	"meeting-room-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrTooManyDates = errors.New("too many booking dates in one request")
	ErrDateInPast   = errors.New("booking date is in the past")
)

type Policy struct {
	// RequirePurpose rejects requests with a blank purpose.
	RequirePurpose bool
	// MaxDates caps the number of dates per reservation. Zero means no cap.
	MaxDates int
	// AllowPastDates lets requests target dates before today.
	AllowPastDates bool
}

func DefaultPolicy() Policy {
	return Policy{RequirePurpose: true, MaxDates: 31}
}

type Validator struct {
	clock  clock.Clock
	policy Policy
}

func NewValidator(clk clock.Clock, policy Policy) *Validator {
	return &Validator{clock: clk, policy: policy}
}

func (v *Validator) Policy() Policy { return v.policy }

type CreateRequest struct {
	RoomID      uuid.UUID
	Dates       []Date
	Start       TimeOfDay
	End         TimeOfDay
	Purpose     string
	RequestedBy uuid.UUID
}

// ValidateAndBuildCreate runs structural and conflict checks and returns a new pending
// reservation. Nothing is returned when any check fails.
func (v *Validator) ValidateAndBuildCreate(req CreateRequest, snapshot *Snapshot) (*Reservation, error) {
	dates, tr, err := v.checkSchedule(req.Dates, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	purpose, err := normalizePurpose(req.Purpose, v.policy.RequirePurpose)
	if err != nil {
		return nil, err
	}
	if err := checkConflicts(req.RoomID, dates, tr, nil, snapshot); err != nil {
		return nil, err
	}

	now := v.clock.Now()
	return &Reservation{
		id:          uuid.New(),
		roomID:      req.RoomID,
		requestedBy: req.RequestedBy,
		dates:       dates,
		timeRange:   tr,
		status:      StatusPending,
		purpose:     purpose,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// EditChanges lists the fields an edit may touch. Nil or empty fields keep their value.
type EditChanges struct {
	Dates   []Date
	Start   *TimeOfDay
	End     *TimeOfDay
	Purpose *string
}

func (c EditChanges) IsEmpty() bool {
	return len(c.Dates) == 0 && c.Start == nil && c.End == nil && c.Purpose == nil
}

// ReservationPatch is the validated result of an edit. ExpectedStatus is the
// compare-and-swap precondition for the store.
type ReservationPatch struct {
	ReservationID  uuid.UUID
	RoomID         uuid.UUID
	ExpectedStatus Status
	Dates          []Date
	TimeRange      TimeRange
	Purpose        string
	At             time.Time
}

// Windows expands the patched schedule into booking windows.
func (p ReservationPatch) Windows() []BookingWindow {
	windows := make([]BookingWindow, len(p.Dates))
	for i, d := range p.Dates {
		windows[i] = BookingWindow{Date: d, Range: p.TimeRange}
	}
	return windows
}

func (v *Validator) ValidateEdit(existing *Reservation, changes EditChanges, snapshot *Snapshot) (*ReservationPatch, error) {
	if existing.status != StatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrNotEditable, existing.status)
	}

	dates := patch.CoalesceSlice(changes.Dates, existing.dates)
	start := patch.Coalesce(changes.Start, existing.timeRange.Start())
	end := patch.Coalesce(changes.End, existing.timeRange.End())

	normalized, tr, err := v.checkSchedule(dates, start, end)
	if err != nil {
		return nil, err
	}
	purpose, err := normalizePurpose(patch.Coalesce(changes.Purpose, existing.purpose), v.policy.RequirePurpose)
	if err != nil {
		return nil, err
	}
	id := existing.id
	if err := checkConflicts(existing.roomID, normalized, tr, &id, snapshot); err != nil {
		return nil, err
	}

	return &ReservationPatch{
		ReservationID:  existing.id,
		RoomID:         existing.roomID,
		ExpectedStatus: existing.status,
		Dates:          normalized,
		TimeRange:      tr,
		Purpose:        purpose,
		At:             v.clock.Now(),
	}, nil
}

func (v *Validator) checkSchedule(dates []Date, start, end TimeOfDay) ([]Date, TimeRange, error) {
	if len(dates) == 0 {
		return nil, TimeRange{}, ErrEmptyDates
	}
	normalized := NormalizeDates(dates)
	if err := v.checkDateCount(len(normalized)); err != nil {
		return nil, TimeRange{}, err
	}
	if !v.policy.AllowPastDates {
		today := DateOf(v.clock.Now())
		if normalized[0].Before(today) {
			return nil, TimeRange{}, fmt.Errorf("%w: %s", ErrDateInPast, normalized[0])
		}
	}
	tr, err := NewTimeRange(start, end)
	if err != nil {
		return nil, TimeRange{}, err
	}
	return normalized, tr, nil
}

// CheckDateCount applies the per-request date cap to the distinct dates in dates.
func (v *Validator) CheckDateCount(dates []Date) error {
	return v.checkDateCount(len(NormalizeDates(dates)))
}

func (v *Validator) checkDateCount(n int) error {
	if v.policy.MaxDates > 0 && n > v.policy.MaxDates {
		return fmt.Errorf("%w: %d > %d", ErrTooManyDates, n, v.policy.MaxDates)
	}
	return nil
}

func checkConflicts(roomID uuid.UUID, dates []Date, tr TimeRange, excludeID *uuid.UUID, snapshot *Snapshot) error {
	conflicts, err := FindConflicts(ConflictQuery{
		RoomID:    roomID,
		Dates:     dates,
		Start:     tr.Start(),
		End:       tr.End(),
		ExcludeID: excludeID,
	}, snapshot)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}
	return nil
}
