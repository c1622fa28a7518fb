package reservation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownStatus = errors.New("unknown reservation status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// statusSynonyms is the single equivalence table between stored status values and
// canonical states. Matching is case-insensitive and ignores surrounding space.
// Keep in sync with whatever the backing store or legacy imports emit.
var statusSynonyms = map[Status][]string{
	StatusPending:   {"pending", "รออนุมัติ", "รอการอนุมัติ"},
	StatusApproved:  {"approved", "อนุมัติ", "อนุมัติแล้ว"},
	StatusRejected:  {"rejected", "ไม่อนุมัติ", "ปฏิเสธ"},
	StatusCancelled: {"cancelled", "canceled", "ยกเลิก", "ยกเลิกแล้ว"},
}

var statusLookup = buildStatusLookup()

func buildStatusLookup() map[string]Status {
	m := make(map[string]Status)
	for status, labels := range statusSynonyms {
		for _, l := range labels {
			m[strings.ToLower(l)] = status
		}
	}
	return m
}

// Labels returns every raw value that normalizes to s.
func (s Status) Labels() []string {
	return slices.Clone(statusSynonyms[s])
}

// NormalizeStatus maps a raw status value (machine code or Thai display text) to its
// canonical state. ok is false for unrecognized values.
func NormalizeStatus(raw string) (Status, bool) {
	s, ok := statusLookup[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

func ParseStatus(raw string) (Status, error) {
	s, ok := NormalizeStatus(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// DisplayLabel returns the Thai text shown to requesters.
func (s Status) DisplayLabel() string {
	switch s {
	case StatusPending:
		return "รออนุมัติ"
	case StatusApproved:
		return "อนุมัติ"
	case StatusRejected:
		return "ไม่อนุมัติ"
	case StatusCancelled:
		return "ยกเลิก"
	default:
		return string(s)
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether reservations in this state take part in conflict checks.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

func (s Status) HasDecision() bool {
	return s == StatusApproved || s == StatusRejected
}
