//go:build unit

package reservation_test

import (
	"testing"

	"meeting-room-reservation/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conflictQuery(t *testing.T, roomID uuid.UUID, dates []string, start, end string) reservation.ConflictQuery {
	t.Helper()
	q, err := reservation.ParseConflictQuery(roomID, dates, start, end, nil)
	require.NoError(t, err)
	return q
}

func TestFindConflicts(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()

	existing := newReservation(t, resOpts{roomID: roomA, dates: []string{"2025-08-05", "2025-08-06"}, start: "10:00", end: "12:00"})
	approved := newReservation(t, resOpts{roomID: roomA, status: reservation.StatusApproved, dates: []string{"2025-08-07"}, start: "13:00", end: "15:00"})
	cancelled := newReservation(t, resOpts{roomID: roomA, status: reservation.StatusCancelled, dates: []string{"2025-08-05"}, start: "09:00", end: "17:00"})
	rejected := newReservation(t, resOpts{roomID: roomA, status: reservation.StatusRejected, dates: []string{"2025-08-05"}, start: "09:00", end: "17:00"})
	otherRoom := newReservation(t, resOpts{roomID: roomB, dates: []string{"2025-08-05"}, start: "09:00", end: "17:00"})

	snapshot := reservation.NewSnapshot([]*reservation.Reservation{existing, approved, cancelled, rejected, otherRoom})

	cases := []struct {
		name  string
		dates []string
		start string
		end   string
		want  []uuid.UUID
	}{
		{name: "overlapping window on one shared date", dates: []string{"2025-08-05"}, start: "11:00", end: "13:00", want: []uuid.UUID{existing.ID()}},
		{name: "touching at the end boundary is clear", dates: []string{"2025-08-05"}, start: "12:00", end: "13:00"},
		{name: "touching at the start boundary is clear", dates: []string{"2025-08-05"}, start: "08:00", end: "10:00"},
		{name: "contained interval conflicts", dates: []string{"2025-08-06"}, start: "10:30", end: "11:00", want: []uuid.UUID{existing.ID()}},
		{name: "enclosing interval conflicts", dates: []string{"2025-08-07"}, start: "08:00", end: "18:00", want: []uuid.UUID{approved.ID()}},
		{name: "no shared date is clear", dates: []string{"2025-08-08"}, start: "10:00", end: "12:00"},
		{name: "every shared date is reported", dates: []string{"2025-08-06", "2025-08-05"}, start: "09:00", end: "10:30", want: []uuid.UUID{existing.ID(), existing.ID()}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reservation.FindConflicts(conflictQuery(t, roomA, c.dates, c.start, c.end), snapshot)
			require.NoError(t, err)
			ids := make([]uuid.UUID, len(got))
			for i, r := range got {
				ids[i] = r.ReservationID
			}
			if len(c.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, c.want, ids)
		})
	}
}

func TestFindConflictsRecordsAreOrdered(t *testing.T) {
	roomID := uuid.New()
	late := newReservation(t, resOpts{roomID: roomID, dates: []string{"2025-08-05"}, start: "14:00", end: "16:00"})
	early := newReservation(t, resOpts{roomID: roomID, dates: []string{"2025-08-05"}, start: "08:00", end: "10:00"})
	nextDay := newReservation(t, resOpts{roomID: roomID, dates: []string{"2025-08-06"}, start: "07:00", end: "08:00"})

	got, err := reservation.FindConflicts(
		conflictQuery(t, roomID, []string{"2025-08-05", "2025-08-06"}, "07:00", "17:00"),
		reservation.NewSnapshot([]*reservation.Reservation{nextDay, late, early}),
	)
	require.NoError(t, err)

	want := []reservation.ConflictRecord{
		{ReservationID: early.ID(), Date: mustDate(t, "2025-08-05"), Start: mustTime(t, "08:00"), End: mustTime(t, "10:00"), RequestedBy: early.RequestedBy()},
		{ReservationID: late.ID(), Date: mustDate(t, "2025-08-05"), Start: mustTime(t, "14:00"), End: mustTime(t, "16:00"), RequestedBy: late.RequestedBy()},
		{ReservationID: nextDay.ID(), Date: mustDate(t, "2025-08-06"), Start: mustTime(t, "07:00"), End: mustTime(t, "08:00"), RequestedBy: nextDay.RequestedBy()},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(reservation.Date{})); diff != "" {
		t.Errorf("conflict records mismatch (-want +got):\n%s", diff)
	}
}

func TestFindConflictsExcludesSelf(t *testing.T) {
	roomID := uuid.New()
	self := newReservation(t, resOpts{roomID: roomID})

	q := conflictQuery(t, roomID, []string{"2025-08-05"}, "09:00", "11:00")
	got, err := reservation.FindConflicts(q, reservation.NewSnapshot([]*reservation.Reservation{self}))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	id := self.ID()
	q.ExcludeID = &id
	got, err = reservation.FindConflicts(q, reservation.NewSnapshot([]*reservation.Reservation{self}))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindConflictsSnapshot(t *testing.T) {
	q := conflictQuery(t, uuid.New(), []string{"2025-08-05"}, "09:00", "10:00")

	t.Run("nil snapshot is refused", func(t *testing.T) {
		_, err := reservation.FindConflicts(q, nil)
		require.ErrorIs(t, err, reservation.ErrSnapshotRequired)
	})

	t.Run("explicit fallback checks against nothing", func(t *testing.T) {
		snap := reservation.EmptySnapshotFallback()
		assert.True(t, snap.IsFallback())
		got, err := reservation.FindConflicts(q, snap)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid candidate time", func(t *testing.T) {
		bad := q
		bad.End = reservation.TimeOfDay(24 * 60)
		_, err := reservation.FindConflicts(bad, reservation.NewSnapshot(nil))
		require.ErrorIs(t, err, reservation.ErrInvalidTimeFormat)
	})
}

func TestFindConflictsRejectsEmptyOrInvertedInterval(t *testing.T) {
	roomID := uuid.New()
	booked := newReservation(t, resOpts{roomID: roomID, status: reservation.StatusApproved, dates: []string{"2025-08-05"}, start: "09:00", end: "11:00"})
	snapshot := reservation.NewSnapshot([]*reservation.Reservation{booked})

	cases := []struct {
		name       string
		start, end string
	}{
		{name: "inverted", start: "12:00", end: "10:00"},
		{name: "zero length inside a booking", start: "10:00", end: "10:00"},
		{name: "zero length at midnight", start: "00:00", end: "00:00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reservation.FindConflicts(conflictQuery(t, roomID, []string{"2025-08-05"}, c.start, c.end), snapshot)
			require.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
			assert.Nil(t, got)
		})
	}
}

func TestFindConflictsIsSymmetric(t *testing.T) {
	roomID := uuid.New()
	windows := [][2]string{
		{"08:00", "09:00"}, {"08:30", "10:00"}, {"09:00", "10:00"}, {"09:15", "09:45"},
		{"10:00", "12:00"}, {"11:59", "12:30"}, {"07:00", "18:00"}, {"12:30", "13:00"},
	}

	for _, a := range windows {
		for _, b := range windows {
			resA := newReservation(t, resOpts{roomID: roomID, dates: []string{"2025-08-05"}, start: a[0], end: a[1]})
			resB := newReservation(t, resOpts{roomID: roomID, dates: []string{"2025-08-05"}, start: b[0], end: b[1]})

			aAgainstB, err := reservation.FindConflicts(conflictQuery(t, roomID, []string{"2025-08-05"}, a[0], a[1]),
				reservation.NewSnapshot([]*reservation.Reservation{resB}))
			require.NoError(t, err)
			bAgainstA, err := reservation.FindConflicts(conflictQuery(t, roomID, []string{"2025-08-05"}, b[0], b[1]),
				reservation.NewSnapshot([]*reservation.Reservation{resA}))
			require.NoError(t, err)

			want := reservation.IntervalsOverlap(mustTime(t, a[0]).Minutes(), mustTime(t, a[1]).Minutes(),
				mustTime(t, b[0]).Minutes(), mustTime(t, b[1]).Minutes())
			assert.Equal(t, want, len(aAgainstB) == 1, "%v against %v", a, b)
			assert.Equal(t, want, len(bAgainstA) == 1, "%v against %v", b, a)
		}
	}
}

func TestParseConflictQuery(t *testing.T) {
	roomID := uuid.New()

	q, err := reservation.ParseConflictQuery(roomID, []string{"2025-08-06", "2025-08-05", "2025-08-06"}, "09:00", "10:00", nil)
	require.NoError(t, err)
	assert.Equal(t, []reservation.Date{mustDate(t, "2025-08-05"), mustDate(t, "2025-08-06")}, q.Dates)

	_, err = reservation.ParseConflictQuery(roomID, []string{"2025-08-05"}, "9:00", "10:00", nil)
	require.ErrorIs(t, err, reservation.ErrInvalidTimeFormat)

	_, err = reservation.ParseConflictQuery(roomID, []string{"05/08/2025"}, "09:00", "10:00", nil)
	require.ErrorIs(t, err, reservation.ErrInvalidDateFormat)
}

func TestConflictErrorMatchesSentinel(t *testing.T) {
	err := &reservation.ConflictError{Conflicts: []reservation.ConflictRecord{{ReservationID: uuid.New(), Date: mustDate(t, "2025-08-05")}}}
	require.ErrorIs(t, err, reservation.ErrBookingConflict)
	assert.Contains(t, err.Error(), "2025-08-05")
}
