//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/handler/api"
	reqdto "meeting-room-reservation/internal/handler/dto/request"
	resdto "meeting-room-reservation/internal/handler/dto/response"
	"meeting-room-reservation/internal/usecase/queries"
	"meeting-room-reservation/tests/common/builder"
	"meeting-room-reservation/tests/common/httptest"
	queriesmock "meeting-room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockRooms        *queriesmock.MockRoomQueries
	mockReservations *queriesmock.MockReservationQueries
	handler          *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidations())
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockRooms, s.mockReservations)

	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/:id/schedule", s.handler.Schedule)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *RoomHandlerTestSuite) TestList() {
	rooms := []*queries.RoomView{
		builder.NewRoomBuilder().BuildView(),
		builder.NewRoomBuilder().WithName("Seminar Room").AsInactive().BuildView(),
	}

	s.Run("success: active rooms by default", func() {
		s.mockRooms.EXPECT().List(gomock.Any(), false).Return(rooms[:1], nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")
		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(rooms[0].ID, body[0].ID)
		s.True(body[0].IsActive)
	})

	s.Run("success: include_inactive lists every room", func() {
		s.mockRooms.EXPECT().List(gomock.Any(), true).Return(rooms, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?include_inactive=true", nil, "")
		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("Seminar Room", body[1].Name)
		s.False(body[1].IsActive)
	})

	s.Run("error: 500 Internal Server Error", func() {
		s.mockRooms.EXPECT().List(gomock.Any(), false).Return(nil, errors.New("database error"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load rooms")
	})
}

// ================================================================================
// TestSchedule
// ================================================================================

func (s *RoomHandlerTestSuite) TestSchedule() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/schedule"
	from, _ := reservation.ParseDate("2025-08-01")
	to, _ := reservation.ParseDate("2025-08-07")

	s.Run("success: returns entries with display labels", func() {
		entry := &queries.ScheduleEntry{
			ReservationID: uuid.New(),
			RequestedBy:   uuid.New(),
			RequesterName: "Requester",
			Purpose:       "Lab meeting",
			Status:        "approved",
			Dates:         []reservation.Date{reservation.NewDate(2025, 8, 5)},
			StartTime:     "13:00",
			EndTime:       "15:00",
		}
		s.mockReservations.EXPECT().RoomSchedule(gomock.Any(), roomID, from, to).
			Return([]*queries.ScheduleEntry{entry}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2025-08-01&to=2025-08-07", nil, "")
		var body resdto.RoomScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(roomID, body.RoomID)
		s.Equal("2025-08-01", body.From)
		s.Equal("2025-08-07", body.To)
		s.Require().Len(body.Entries, 1)
		s.Equal("อนุมัติ", body.Entries[0].StatusLabel)
		s.Equal([]string{"2025-08-05"}, body.Entries[0].Dates)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name  string
			query string
		}{
			{name: "missing from", query: "?to=2025-08-07"},
			{name: "missing to", query: "?from=2025-08-01"},
			{name: "malformed date", query: "?from=2025/08/01&to=2025-08-07"},
			{name: "impossible date", query: "?from=2025-02-30&to=2025-03-01"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/abc/schedule?from=2025-08-01&to=2025-08-07", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown room", err: queries.ErrRoomNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Room not found"},
			{name: "window too large", err: queries.ErrScheduleWindow, expectedStatus: http.StatusBadRequest, expectedMsg: "Schedule window"},
			{name: "inverted window", err: reservation.ErrInvalidDateRange, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid date range"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReservations.EXPECT().RoomSchedule(gomock.Any(), roomID, gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2025-08-01&to=2025-08-07", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
