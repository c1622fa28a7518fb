package clock

import "time"

// Clock is the time source for booking rules, idempotency expiry and workers.
type Clock interface {
	Now() time.Time
}

// ZonedClock reports wall time in a fixed location so calendar dates match the campus
// regardless of the server's TZ.
type ZonedClock struct {
	loc *time.Location
}

func NewZonedClock(loc *time.Location) *ZonedClock {
	if loc == nil {
		loc = time.UTC
	}
	return &ZonedClock{loc: loc}
}

func (c *ZonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock is a settable clock for tests.
type FixedClock struct {
	current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

func (c *FixedClock) Now() time.Time {
	return c.current
}

func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
