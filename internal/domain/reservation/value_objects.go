package reservation

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format: expected HH:MM")
	ErrInvalidDateFormat = errors.New("invalid date format: expected YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("end date is before start date")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
	ErrEmptyDates        = errors.New("at least one booking date is required")
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	dateLayout     = "2006-01-02"
	secondsPerDay  = 24 * 60 * 60
)

// MaxRangeDays bounds how many days a start/end date range may expand to.
const MaxRangeDays = 366

// TimeToMinutes converts a strict 24-hour "HH:MM" string into minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return h*minutesPerHour + m, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// IntervalsOverlap reports whether the half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeOfDay(hour*minutesPerHour + minute), nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m, err := TimeToMinutes(s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(m), nil
}

var clockLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseClock accepts "HH:MM", "HH:MM:SS" with zero seconds, or an ISO-8601 timestamp.
// Timestamps contribute their wall-clock time as written, without zone conversion.
func ParseClock(s string) (TimeOfDay, error) {
	if t, err := ParseTimeOfDay(s); err == nil {
		return t, nil
	}
	if len(s) == 8 && s[5] == ':' {
		if s[6:] != "00" {
			return 0, fmt.Errorf("%w: %q has sub-minute precision", ErrInvalidTimeFormat, s)
		}
		return ParseTimeOfDay(s[:5])
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Second() != 0 || t.Nanosecond() != 0 {
			return 0, fmt.Errorf("%w: %q has sub-minute precision", ErrInvalidTimeFormat, s)
		}
		return NewTimeOfDay(t.Hour(), t.Minute())
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/minutesPerHour, int(t)%minutesPerHour)
}

func (t TimeOfDay) IsValid() bool {
	return t >= 0 && int(t) < minutesPerDay
}

// TimeRange is a half-open [start, end) interval within a single day.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.IsValid() || !end.IsValid() {
		return TimeRange{}, ErrInvalidTimeFormat
	}
	if start >= end {
		return TimeRange{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return TimeRange{start: start, end: end}, nil
}

func (r TimeRange) Start() TimeOfDay { return r.start }
func (r TimeRange) End() TimeOfDay   { return r.end }

func (r TimeRange) Overlaps(other TimeRange) bool {
	return IntervalsOverlap(r.start.Minutes(), r.end.Minutes(), other.start.Minutes(), other.end.Minutes())
}

func (r TimeRange) String() string {
	return r.start.String() + "-" + r.end.String()
}

// Date is a calendar date without time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateOf(t), nil
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == (Date{}) }
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

// DaysUntil returns the number of days from d to o (negative when o is earlier).
func (d Date) DaysUntil(o Date) int {
	return int((o.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ExpandDateRange lists every date from start to end inclusive, in order.
func ExpandDateRange(start, end Date) ([]Date, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidDateRange, start, end)
	}
	n := start.DaysUntil(end) + 1
	dates := make([]Date, 0, n)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// NormalizeDates returns a sorted copy of dates without duplicates.
func NormalizeDates(dates []Date) []Date {
	out := slices.Clone(dates)
	slices.SortFunc(out, Date.Compare)
	return slices.Compact(out)
}

type DateSource string

const (
	DateSourceExplicit DateSource = "explicit"
	DateSourceRange    DateSource = "range"
)

type DateResolution struct {
	Dates  []Date
	Source DateSource
	// Conflicting is set when both an explicit list and a range were supplied.
	Conflicting bool
}

// ResolveDates picks the effective booking dates from an explicit list and/or a legacy range.
// The explicit list always wins when non-empty. A range with only a start bound is a single day.
// Ranges longer than MaxRangeDays are refused before expansion.
func ResolveDates(explicit []Date, rangeStart, rangeEnd *Date) (DateResolution, error) {
	hasRange := rangeStart != nil || rangeEnd != nil
	if len(explicit) > 0 {
		return DateResolution{
			Dates:       NormalizeDates(explicit),
			Source:      DateSourceExplicit,
			Conflicting: hasRange,
		}, nil
	}
	if !hasRange {
		return DateResolution{}, ErrEmptyDates
	}
	if rangeStart == nil {
		return DateResolution{}, fmt.Errorf("%w: range has an end date but no start date", ErrInvalidDateRange)
	}
	end := *rangeStart
	if rangeEnd != nil {
		end = *rangeEnd
	}
	if n := rangeStart.DaysUntil(end) + 1; n > MaxRangeDays {
		return DateResolution{}, fmt.Errorf("%w: range %s..%s spans %d days", ErrTooManyDates, *rangeStart, end, n)
	}
	dates, err := ExpandDateRange(*rangeStart, end)
	if err != nil {
		return DateResolution{}, err
	}
	return DateResolution{Dates: dates, Source: DateSourceRange}, nil
}

// BookingWindow is one date paired with a time interval.
type BookingWindow struct {
	Date  Date
	Range TimeRange
}

func (w BookingWindow) Overlaps(o BookingWindow) bool {
	return w.Date == o.Date && w.Range.Overlaps(o.Range)
}
