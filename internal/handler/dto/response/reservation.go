package response

import (
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/usecase/commands"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	RoomID         uuid.UUID  `json:"room_id"`
	RoomName       string     `json:"room_name"`
	RequestedBy    uuid.UUID  `json:"requested_by"`
	RequesterEmail string     `json:"requester_email"`
	RequesterName  string     `json:"requester_name"`
	Purpose        string     `json:"purpose"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label" copier:"-"`
	Dates          []string   `json:"dates" copier:"-"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	DecidedBy      *uuid.UUID `json:"decided_by,omitempty"`
	DecisionReason *string    `json:"decision_reason,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	RoomName    string    `json:"room_name"`
	Purpose     string    `json:"purpose"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label" copier:"-"`
	Dates       []string  `json:"dates" copier:"-"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

type ScheduleEntryResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	RequestedBy   uuid.UUID `json:"requested_by"`
	RequesterName string    `json:"requester_name"`
	Purpose       string    `json:"purpose"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label" copier:"-"`
	Dates         []string  `json:"dates" copier:"-"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
}

type RoomScheduleResponse struct {
	RoomID  uuid.UUID                `json:"room_id"`
	From    string                   `json:"from"`
	To      string                   `json:"to"`
	Entries []*ScheduleEntryResponse `json:"entries"`
}

type ConflictResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	RequestedBy   uuid.UUID `json:"requested_by"`
}

type ConflictCheckResponse struct {
	HasConflict bool                `json:"has_conflict"`
	Conflicts   []*ConflictResponse `json:"conflicts"`
}

type StatsResponse struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	Cancelled    int `json:"cancelled"`
	Unrecognized int `json:"unrecognized"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	res := &ReservationResponse{}
	_ = copier.Copy(res, v)
	res.Dates = formatDates(v.Dates)
	res.StatusLabel = statusLabel(v.Status)
	return res
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationPageResponse {
	page := &ReservationPageResponse{Items: make([]*ReservationListResponse, len(items))}
	for i, it := range items {
		res := &ReservationListResponse{}
		_ = copier.Copy(res, it)
		res.Dates = formatDates(it.Dates)
		res.StatusLabel = statusLabel(it.Status)
		page.Items[i] = res
	}
	if next != nil {
		page.NextCursor = next.After
	}
	return page
}

func FromSchedule(roomID uuid.UUID, from, to reservation.Date, entries []*queries.ScheduleEntry) *RoomScheduleResponse {
	res := &RoomScheduleResponse{
		RoomID:  roomID,
		From:    from.String(),
		To:      to.String(),
		Entries: make([]*ScheduleEntryResponse, len(entries)),
	}
	for i, e := range entries {
		entry := &ScheduleEntryResponse{}
		_ = copier.Copy(entry, e)
		entry.Dates = formatDates(e.Dates)
		entry.StatusLabel = statusLabel(e.Status)
		res.Entries[i] = entry
	}
	return res
}

func FromConflicts(records []reservation.ConflictRecord) []*ConflictResponse {
	res := make([]*ConflictResponse, len(records))
	for i, c := range records {
		res[i] = &ConflictResponse{
			ReservationID: c.ReservationID,
			Date:          c.Date.String(),
			StartTime:     c.Start.String(),
			EndTime:       c.End.String(),
			RequestedBy:   c.RequestedBy,
		}
	}
	return res
}

func FromConflictCheck(r *commands.ConflictCheckResult) *ConflictCheckResponse {
	return &ConflictCheckResponse{
		HasConflict: len(r.Conflicts) > 0,
		Conflicts:   FromConflicts(r.Conflicts),
	}
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	res := &StatsResponse{}
	_ = copier.Copy(res, v)
	return res
}

func formatDates(dates []reservation.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

// statusLabel renders the Thai display label, falling back to the raw value.
func statusLabel(raw string) string {
	s, ok := reservation.NormalizeStatus(raw)
	if !ok {
		return raw
	}
	return s.DisplayLabel()
}
