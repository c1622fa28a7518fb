//go:build e2e

package reservation

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"meeting-room-reservation/internal/domain/user"
	resdto "meeting-room-reservation/internal/handler/dto/response"
	"meeting-room-reservation/tests/common/authtest"
	"meeting-room-reservation/tests/common/dbtest"
	"meeting-room-reservation/tests/common/httptest"
	"meeting-room-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationE2ETestSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestReservationE2ETestSuite(t *testing.T) {
	suite.Run(t, new(ReservationE2ETestSuite))
}

func (s *ReservationE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

type actor struct {
	id    uuid.UUID
	token string
}

func (s *ReservationE2ETestSuite) newActor(email string, role user.Role) actor {
	id := dbtest.CreateTestUser(s.T(), s.DB, email, string(role))
	return actor{id: id, token: s.jwt.GenerateToken(s.T(), id, role)}
}

func createBody(roomID uuid.UUID, dates []string, start, end string) map[string]any {
	return map[string]any{
		"room_id":    roomID,
		"dates":      dates,
		"start_time": start,
		"end_time":   end,
		"purpose":    "Faculty meeting",
	}
}

func (s *ReservationE2ETestSuite) create(a actor, body map[string]any) *resdto.ReservationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", body, a.token)
	var res resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res
}

func (s *ReservationE2ETestSuite) TestReservationLifecycle() {
	s.Run("create, conflict, approve, cancel", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		other := s.newActor("other@example.ac.th", user.RoleUser)
		officer := s.newActor("officer@example.ac.th", user.RoleOfficer)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seminar Room A", true)

		created := s.create(requester, createBody(roomID, []string{"2030-03-04", "2030-03-05"}, "09:00", "10:30"))
		s.Equal("pending", created.Status)
		s.Equal("รออนุมัติ", created.StatusLabel)
		s.Equal([]string{"2030-03-04", "2030-03-05"}, created.Dates)
		s.Equal("09:00", created.StartTime)
		s.Equal("10:30", created.EndTime)

		// overlapping on one date
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			createBody(roomID, []string{"2030-03-05"}, "10:00", "11:00"), other.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Booking conflicts with an existing reservation")
		s.Contains(w.Body.String(), created.ID.String())

		// touching end to start is allowed
		adjacent := s.create(other, createBody(roomID, []string{"2030-03-05"}, "10:30", "11:30"))
		s.Equal("pending", adjacent.Status)

		// requester cannot approve
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", created.ID), nil, requester.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", created.ID), nil, officer.token)
		var approved resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &approved)
		s.Equal("approved", approved.Status)
		s.Equal("อนุมัติ", approved.StatusLabel)
		s.Require().NotNil(approved.DecidedBy)
		s.Equal(officer.id, *approved.DecidedBy)

		// approving twice is an illegal transition
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", created.ID), nil, officer.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Reservation cannot move to the requested status")

		// other users cannot see it
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/reservations/%s", created.ID), nil, other.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/cancel", created.ID), nil, requester.token)
		var cancelled resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.Status)
		s.Equal("ยกเลิก", cancelled.StatusLabel)

		// the slot is free again once cancelled
		rebooked := s.create(other, createBody(roomID, []string{"2030-03-04"}, "09:00", "10:00"))
		s.Equal("pending", rebooked.Status)
	})

	s.Run("reject requires a reason", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		officer := s.newActor("officer@example.ac.th", user.RoleOfficer)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seminar Room B", true)
		created := s.create(requester, createBody(roomID, []string{"2030-04-01"}, "13:00", "14:00"))

		path := fmt.Sprintf("/api/reservations/%s/reject", created.ID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, map[string]any{"reason": "  "}, officer.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, map[string]any{"reason": "Room under maintenance"}, officer.token)
		var rejected resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rejected)
		s.Equal("rejected", rejected.Status)
		s.Equal("ไม่อนุมัติ", rejected.StatusLabel)
		s.Require().NotNil(rejected.DecisionReason)
		s.Equal("Room under maintenance", *rejected.DecisionReason)
	})

	s.Run("edit pending reservation", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seminar Room C", true)
		created := s.create(requester, createBody(roomID, []string{"2030-05-01"}, "08:00", "09:00"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			fmt.Sprintf("/api/reservations/%s", created.ID),
			map[string]any{"dates": []string{"2030-05-02", "2030-05-03"}, "end_time": "09:30"}, requester.token)
		var edited resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &edited)
		s.Equal([]string{"2030-05-02", "2030-05-03"}, edited.Dates)
		s.Equal("08:00", edited.StartTime)
		s.Equal("09:30", edited.EndTime)
	})
}

func (s *ReservationE2ETestSuite) TestCreateValidation() {
	requester := func() actor { return s.newActor("requester@example.ac.th", user.RoleUser) }

	s.Run("end before start", func() {
		a := requester()
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seminar Room D", true)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			createBody(roomID, []string{"2030-03-04"}, "11:00", "10:00"), a.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "End time must be after start time")
	})

	s.Run("inactive room", func() {
		a := requester()
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Closed Room", false)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			createBody(roomID, []string{"2030-03-04"}, "09:00", "10:00"), a.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Room is not accepting reservations")
	})

	s.Run("unknown room", func() {
		a := requester()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			createBody(uuid.New(), []string{"2030-03-04"}, "09:00", "10:00"), a.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			createBody(uuid.New(), []string{"2030-03-04"}, "09:00", "10:00"), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("expired token", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "expired@example.ac.th", string(user.RoleUser))
		token := s.jwt.CreateExpiredToken(s.T(), id, user.RoleUser)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			createBody(uuid.New(), []string{"2030-03-04"}, "09:00", "10:00"), token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *ReservationE2ETestSuite) TestIdempotentCreate() {
	s.Run("same key replays the first result", func() {
		a := s.newActor("requester@example.ac.th", user.RoleUser)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seminar Room E", true)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		body := createBody(roomID, []string{"2030-06-01"}, "09:00", "10:00")

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/reservations", body, headers, a.token)
		var first resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &first)

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/reservations", body, headers, a.token)
		var second resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Idempotent-Replayed": "true"})
		s.Equal(first.ID, second.ID)

		body["purpose"] = "Something else"
		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/reservations", body, headers, a.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
	})
}

func (s *ReservationE2ETestSuite) TestLegacyStatusesAndStats() {
	s.Run("legacy Thai labels are normalized and counted", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		executive := s.newActor("dean@example.ac.th", user.RoleExecutive)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Council Room", true)
		day := time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)

		legacyID := dbtest.InsertLegacyReservation(s.T(), s.DB, roomID, requester.id, "ยกเลิกแล้ว", day)
		dbtest.InsertLegacyReservation(s.T(), s.DB, roomID, requester.id, "อนุมัติแล้ว", day.AddDate(0, 0, 1))
		dbtest.InsertLegacyReservation(s.T(), s.DB, roomID, requester.id, "archived", day.AddDate(0, 0, 2))
		s.create(requester, createBody(roomID, []string{"2030-07-10"}, "09:00", "10:00"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/reservations/%s", legacyID), nil, requester.token)
		var legacy resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &legacy)
		s.Equal("cancelled", legacy.Status)
		s.Equal("ยกเลิก", legacy.StatusLabel)

		// requesters cannot read stats
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reservations/stats", nil, requester.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/reservations/stats?room_id=%s", roomID), nil, executive.token)
		var stats resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &stats)
		s.Equal(resdto.StatsResponse{Total: 4, Pending: 1, Approved: 1, Cancelled: 1, Unrecognized: 1}, stats)
	})

	s.Run("stats refresh after a status change", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		executive := s.newActor("dean@example.ac.th", user.RoleExecutive)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Council Room", true)
		path := fmt.Sprintf("/api/reservations/stats?room_id=%s", roomID)

		created := s.create(requester, createBody(roomID, []string{"2030-07-10"}, "09:00", "10:00"))

		var before resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(),
			httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, executive.token), http.StatusOK, &before)
		s.Equal(1, before.Pending)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/cancel", created.ID), nil, requester.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		var after resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(),
			httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, executive.token), http.StatusOK, &after)
		s.Equal(0, after.Pending)
		s.Equal(1, after.Cancelled)
	})
}

func (s *ReservationE2ETestSuite) TestRoomScheduleAndConflictCheck() {
	s.Run("schedule lists active bookings in the window", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Lecture Hall", true)
		inWindow := s.create(requester, createBody(roomID, []string{"2030-09-01"}, "09:00", "10:00"))
		s.create(requester, createBody(roomID, []string{"2030-10-15"}, "09:00", "10:00"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/rooms/%s/reservations?from=2030-09-01&to=2030-09-30", roomID), nil, requester.token)
		var schedule resdto.RoomScheduleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &schedule)
		s.Require().Len(schedule.Entries, 1)
		s.Equal(inWindow.ID, schedule.Entries[0].ReservationID)
		s.Equal("รออนุมัติ", schedule.Entries[0].StatusLabel)
	})

	s.Run("dry-run conflict check", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Lecture Hall", true)
		existing := s.create(requester, createBody(roomID, []string{"2030-09-01"}, "09:00", "10:00"))

		body := createBody(roomID, []string{"2030-09-01", "2030-09-02"}, "09:30", "11:00")
		delete(body, "purpose")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/conflicts", body, requester.token)
		var check resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &check)
		s.True(check.HasConflict)
		s.Require().Len(check.Conflicts, 1)
		s.Equal(existing.ID, check.Conflicts[0].ReservationID)
		s.Equal("2030-09-01", check.Conflicts[0].Date)

		body["exclude_id"] = existing.ID
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/conflicts", body, requester.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &check)
		s.False(check.HasConflict)

		inverted := createBody(roomID, []string{"2030-09-01"}, "12:00", "10:00")
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/conflicts", inverted, requester.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "End time must be after start time")
	})

	s.Run("list rooms", func() {
		requester := s.newActor("requester@example.ac.th", user.RoleUser)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms", nil, requester.token)
		var rooms []*resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rooms)
		names := make([]string, len(rooms))
		for i, r := range rooms {
			names[i] = r.Name
		}
		s.Contains(names, "Meeting Room 1")
		s.Contains(names, "Meeting Room 2")
	})
}
