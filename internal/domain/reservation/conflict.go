package reservation

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBookingConflict  = errors.New("booking conflicts with an existing reservation")
	ErrSnapshotRequired = errors.New("reservation snapshot is required; use EmptySnapshotFallback to proceed without one")
)

// Snapshot is an immutable set of existing reservations fetched by the caller
// immediately before validation.
type Snapshot struct {
	reservations []*Reservation
	fallback     bool
}

func NewSnapshot(reservations []*Reservation) *Snapshot {
	return &Snapshot{reservations: slices.Clone(reservations)}
}

// EmptySnapshotFallback is the explicit opt-in for checking against nothing when the
// store could not be read. Results built on it may miss conflicts.
func EmptySnapshotFallback() *Snapshot {
	return &Snapshot{fallback: true}
}

func (s *Snapshot) IsFallback() bool { return s.fallback }
func (s *Snapshot) Len() int         { return len(s.reservations) }

type ConflictQuery struct {
	RoomID    uuid.UUID
	Dates     []Date
	Start     TimeOfDay
	End       TimeOfDay
	ExcludeID *uuid.UUID
}

// ParseConflictQuery builds a query from boundary strings. Times must be HH:MM.
func ParseConflictQuery(roomID uuid.UUID, dates []string, start, end string, excludeID *uuid.UUID) (ConflictQuery, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return ConflictQuery{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return ConflictQuery{}, err
	}
	parsed := make([]Date, 0, len(dates))
	for _, raw := range dates {
		d, err := ParseDate(raw)
		if err != nil {
			return ConflictQuery{}, err
		}
		parsed = append(parsed, d)
	}
	return ConflictQuery{
		RoomID:    roomID,
		Dates:     NormalizeDates(parsed),
		Start:     s,
		End:       e,
		ExcludeID: excludeID,
	}, nil
}

// ConflictRecord describes one collision between the candidate and an existing reservation.
type ConflictRecord struct {
	ReservationID uuid.UUID
	Date          Date
	Start         TimeOfDay
	End           TimeOfDay
	RequestedBy   uuid.UUID
}

func (c ConflictRecord) String() string {
	return fmt.Sprintf("%s %s-%s (reservation %s by %s)", c.Date, c.Start, c.End, c.ReservationID, c.RequestedBy)
}

// ConflictError carries every conflict found. It matches ErrBookingConflict.
type ConflictError struct {
	Conflicts []ConflictRecord
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", ErrBookingConflict, strings.Join(parts, "; "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}

// FindConflicts returns every active reservation window in the snapshot that overlaps the
// candidate. An empty result means the candidate is clear.
func FindConflicts(q ConflictQuery, snapshot *Snapshot) ([]ConflictRecord, error) {
	if snapshot == nil {
		return nil, ErrSnapshotRequired
	}
	if !q.Start.IsValid() || !q.End.IsValid() {
		return nil, ErrInvalidTimeFormat
	}
	if q.Start >= q.End {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, q.Start, q.End)
	}

	candidateDates := make(map[Date]struct{}, len(q.Dates))
	for _, d := range q.Dates {
		candidateDates[d] = struct{}{}
	}

	conflicts := []ConflictRecord{}
	for _, r := range snapshot.reservations {
		if r.roomID != q.RoomID || !r.IsActive() {
			continue
		}
		if q.ExcludeID != nil && r.id == *q.ExcludeID {
			continue
		}
		if !IntervalsOverlap(q.Start.Minutes(), q.End.Minutes(), r.timeRange.Start().Minutes(), r.timeRange.End().Minutes()) {
			continue
		}
		for _, d := range r.dates {
			if _, ok := candidateDates[d]; !ok {
				continue
			}
			conflicts = append(conflicts, ConflictRecord{
				ReservationID: r.id,
				Date:          d,
				Start:         r.timeRange.Start(),
				End:           r.timeRange.End(),
				RequestedBy:   r.requestedBy,
			})
		}
	}

	slices.SortFunc(conflicts, func(a, b ConflictRecord) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := cmpInt(a.Start.Minutes(), b.Start.Minutes()); c != 0 {
			return c
		}
		return strings.Compare(a.ReservationID.String(), b.ReservationID.String())
	})
	return conflicts, nil
}
