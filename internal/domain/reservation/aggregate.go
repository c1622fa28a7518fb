package reservation

// Stats holds status counts over a reservation collection. Values that do not normalize
// are counted in Total and Unrecognized only.
type Stats struct {
	Total        int
	Pending      int
	Approved     int
	Rejected     int
	Cancelled    int
	Unrecognized int
}

func (s Stats) HasUnrecognized() bool {
	return s.Unrecognized > 0
}

func (s *Stats) add(raw string, n int) {
	s.Total += n
	status, ok := NormalizeStatus(raw)
	if !ok {
		s.Unrecognized += n
		return
	}
	switch status {
	case StatusPending:
		s.Pending += n
	case StatusApproved:
		s.Approved += n
	case StatusRejected:
		s.Rejected += n
	case StatusCancelled:
		s.Cancelled += n
	}
}

// Merge returns the element-wise sum of s and o.
func (s Stats) Merge(o Stats) Stats {
	return Stats{
		Total:        s.Total + o.Total,
		Pending:      s.Pending + o.Pending,
		Approved:     s.Approved + o.Approved,
		Rejected:     s.Rejected + o.Rejected,
		Cancelled:    s.Cancelled + o.Cancelled,
		Unrecognized: s.Unrecognized + o.Unrecognized,
	}
}

func Aggregate(statuses []string) Stats {
	return AggregateBy(statuses, func(s string) string { return s })
}

func AggregateBy[T any](items []T, status func(T) string) Stats {
	var s Stats
	for _, it := range items {
		s.add(status(it), 1)
	}
	return s
}

func AggregateReservations(rs []*Reservation) Stats {
	return AggregateBy(rs, func(r *Reservation) string { return string(r.status) })
}

// StatusCount is a pre-grouped count for one raw status value, as produced by a
// GROUP BY over stored statuses.
type StatusCount struct {
	Status string
	Count  int
}

func AggregateCounts(counts []StatusCount) Stats {
	var s Stats
	for _, c := range counts {
		s.add(c.Status, c.Count)
	}
	return s
}
