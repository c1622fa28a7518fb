//go:build unit

package reservation_test

import (
	"testing"

	"meeting-room-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	cases := []struct {
		name     string
		statuses []string
		want     reservation.Stats
	}{
		{
			name: "empty collection",
			want: reservation.Stats{},
		},
		{
			name:     "machine codes only",
			statuses: []string{"pending", "approved", "approved", "rejected", "cancelled"},
			want:     reservation.Stats{Total: 5, Pending: 1, Approved: 2, Rejected: 1, Cancelled: 1},
		},
		{
			name:     "Thai labels and codes count together",
			statuses: []string{"รออนุมัติ", "pending", "อนุมัติแล้ว", "approved", "ปฏิเสธ", "ยกเลิก", "canceled"},
			want:     reservation.Stats{Total: 7, Pending: 2, Approved: 2, Rejected: 1, Cancelled: 2},
		},
		{
			name:     "unknown values only reach total",
			statuses: []string{"pending", "archived", "", "draft"},
			want:     reservation.Stats{Total: 4, Pending: 1, Unrecognized: 3},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := reservation.Aggregate(c.statuses)
			assert.Equal(t, c.want, got)
			assert.Equal(t, got.Total, got.Pending+got.Approved+got.Rejected+got.Cancelled+got.Unrecognized)
			assert.Equal(t, c.want.Unrecognized > 0, got.HasUnrecognized())
		})
	}
}

func TestAggregateIgnoresEncoding(t *testing.T) {
	want := reservation.Stats{Total: 10, Pending: 3, Approved: 4, Rejected: 2, Cancelled: 1}
	collection := func(pending, approved, rejected, cancelled string) []string {
		var out []string
		out = append(out, pending, pending, pending)
		out = append(out, approved, approved, approved, approved)
		out = append(out, rejected, rejected)
		return append(out, cancelled)
	}

	english := collection("pending", "approved", "rejected", "cancelled")
	thai := collection("รออนุมัติ", "อนุมัติ", "ไม่อนุมัติ", "ยกเลิก")
	mixed := append(append([]string{}, english[:5]...), thai[5:]...)

	for name, statuses := range map[string][]string{"english": english, "thai": thai, "mixed": mixed} {
		t.Run(name, func(t *testing.T) {
			assert.Len(t, statuses, 10)
			assert.Equal(t, want, reservation.Aggregate(statuses))
		})
	}
}

func TestAggregateCounts(t *testing.T) {
	got := reservation.AggregateCounts([]reservation.StatusCount{
		{Status: "pending", Count: 3},
		{Status: "รออนุมัติ", Count: 2},
		{Status: "approved", Count: 4},
		{Status: "legacy", Count: 1},
	})
	assert.Equal(t, reservation.Stats{Total: 10, Pending: 5, Approved: 4, Unrecognized: 1}, got)
}

func TestAggregateReservations(t *testing.T) {
	rs := []*reservation.Reservation{
		newReservation(t, resOpts{status: reservation.StatusPending}),
		newReservation(t, resOpts{status: reservation.StatusApproved}),
		newReservation(t, resOpts{status: reservation.StatusCancelled}),
	}
	assert.Equal(t, reservation.Stats{Total: 3, Pending: 1, Approved: 1, Cancelled: 1}, reservation.AggregateReservations(rs))
}

func TestStatsMerge(t *testing.T) {
	a := reservation.Stats{Total: 3, Pending: 1, Approved: 1, Unrecognized: 1}
	b := reservation.Stats{Total: 2, Rejected: 1, Cancelled: 1}
	assert.Equal(t, reservation.Stats{Total: 5, Pending: 1, Approved: 1, Rejected: 1, Cancelled: 1, Unrecognized: 1}, a.Merge(b))
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "รออนุมัติ", reservation.StatusPending.DisplayLabel())
	assert.Equal(t, "อนุมัติ", reservation.StatusApproved.DisplayLabel())
	assert.Equal(t, "ไม่อนุมัติ", reservation.StatusRejected.DisplayLabel())
	assert.Equal(t, "ยกเลิก", reservation.StatusCancelled.DisplayLabel())
	assert.Equal(t, "archived", reservation.Status("archived").DisplayLabel())
}
