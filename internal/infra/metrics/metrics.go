package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for ReservationOps.
const (
	OutcomeSuccess   = "success"
	OutcomeConflict  = "conflict"
	OutcomeLockBusy  = "lock_busy"
	OutcomeRejected  = "rejected"
	OutcomeStale     = "stale"
	OutcomeError     = "error"
	OutcomeReplayed  = "replayed"
	OutcomeForbidden = "forbidden"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// ReservationOps counts command outcomes (operation, outcome).
	ReservationOps *prometheus.CounterVec

	// ConflictsDetected counts conflict records returned to callers.
	ConflictsDetected prometheus.Counter

	// UnrecognizedStatuses counts stored status values that failed to normalize.
	UnrecognizedStatuses prometheus.Counter

	RoomLockDuration *prometheus.HistogramVec

	StatsCacheLookups *prometheus.CounterVec

	NotificationsRelayed *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ReservationOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_operations_total",
				Help: "Reservation command outcomes",
			},
			[]string{"operation", "outcome"},
		),
		ConflictsDetected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "reservation_conflicts_detected_total",
				Help: "Conflict records found by create, edit and dry-run checks",
			},
		),
		UnrecognizedStatuses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "reservation_unrecognized_status_total",
				Help: "Stored reservation statuses that did not map to a known state",
			},
		),
		RoomLockDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "room_lock_acquire_duration_seconds",
				Help:    "Time spent acquiring the per-room lock",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"status"},
		),
		StatsCacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stats_cache_lookups_total",
				Help: "Stats cache lookups by result",
			},
			[]string{"result"},
		),
		NotificationsRelayed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_relayed_total",
				Help: "Notification jobs processed by the relay worker",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReservationOps,
		m.ConflictsDetected,
		m.UnrecognizedStatuses,
		m.RoomLockDuration,
		m.StatsCacheLookups,
		m.NotificationsRelayed,
	)

	return m
}

func (m *Metrics) ObserveReservationOp(operation, outcome string) {
	m.ReservationOps.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveConflicts(n int) {
	m.ConflictsDetected.Add(float64(n))
}

func (m *Metrics) ObserveLockWait(d time.Duration, acquired bool) {
	status := "acquired"
	if !acquired {
		status = "busy"
	}
	m.RoomLockDuration.WithLabelValues(status).Observe(d.Seconds())
}

func (m *Metrics) ObserveUnrecognizedStatuses(n int) {
	m.UnrecognizedStatuses.Add(float64(n))
}

func (m *Metrics) ObserveStatsCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.StatsCacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRelay(status string) {
	m.NotificationsRelayed.WithLabelValues(status).Inc()
}
