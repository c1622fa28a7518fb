//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/domain/user"
	"meeting-room-reservation/internal/handler/api"
	reqdto "meeting-room-reservation/internal/handler/dto/request"
	resdto "meeting-room-reservation/internal/handler/dto/response"
	"meeting-room-reservation/internal/pkg/errs"
	"meeting-room-reservation/internal/usecase/commands"
	"meeting-room-reservation/internal/usecase/queries"
	"meeting-room-reservation/tests/common/builder"
	"meeting-room-reservation/tests/common/httptest"
	"meeting-room-reservation/tests/common/testutil"
	commandsmock "meeting-room-reservation/tests/mock/commands"
	queriesmock "meeting-room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *ReservationHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidations())
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.role = user.RoleUser

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.List)
	s.router.POST("/reservations/conflicts", authMiddleware, s.handler.CheckConflicts)
	s.router.GET("/reservations/stats", authMiddleware, s.handler.Stats)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/reservations/:id", authMiddleware, s.handler.Edit)
	s.router.POST("/reservations/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/reservations/:id/reject", authMiddleware, s.handler.Reject)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	expectedResult := &commands.CreateReservationResult{ReservationID: returnView.ID}

	expectSuccess := func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
	}

	s.Run("success: returns 201 Created with the reservation", func() {
		expectSuccess()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("pending", body.Status)
		s.Equal("รออนุมัติ", body.StatusLabel)
		s.Equal([]string{"2025-08-05"}, body.Dates)
		s.Equal("09:00", body.StartTime)
	})

	s.Run("success: passes the authenticated user and parsed schedule", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ any, req reservation.CreateRequest, _ *uuid.UUID) (*commands.CreateReservationResult, error) {
				s.Equal(s.userID, req.RequestedBy)
				s.Equal(reqBody.RoomID, req.RoomID)
				s.Equal("09:00", req.Start.String())
				s.Equal("11:00", req.End.String())
				return expectedResult, nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: legacy date range expands to every day", func() {
		body := testutil.BodyMap(s.T(), reqBody,
			testutil.Field("dates", nil),
			testutil.Field("start_date", "2025-08-05"),
			testutil.Field("end_date", "2025-08-07"),
		)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reservation.CreateRequest, _ *uuid.UUID) (*commands.CreateReservationResult, error) {
				s.Len(req.Dates, 3)
				return expectedResult, nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: explicit dates win over a range", func() {
		body := testutil.BodyMap(s.T(), reqBody,
			testutil.Field("start_date", "2025-09-01"),
			testutil.Field("end_date", "2025-09-30"),
		)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reservation.CreateRequest, _ *uuid.UUID) (*commands.CreateReservationResult, error) {
				s.Require().Len(req.Dates, 1)
				s.Equal("2025-08-05", req.Dates[0].String())
				return expectedResult, nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: idempotent replay returns 200 with replay header", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), &key).
			Return(&commands.CreateReservationResult{ReservationID: returnView.ID, IsReplayed: true}, nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request on malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	bound := []testCaseReservation{
		{name: "purpose length OK (1000 chars)", mutate: testutil.Field("purpose", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "purpose length invalid (1001 chars)", mutate: testutil.Field("purpose", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "time 23:59 OK", mutate: testutil.Field("end_time", "23:59"), expectCode: http.StatusCreated},
		{name: "ISO timestamp time OK", mutate: testutil.Field("start_time", "2025-08-05T09:00:00"), expectCode: http.StatusCreated},
		{name: "time 24:00 invalid", mutate: testutil.Field("end_time", "24:00"), expectCode: http.StatusBadRequest},
		{name: "single-digit hour invalid", mutate: testutil.Field("start_time", "9:00"), expectCode: http.StatusBadRequest},
		{name: "impossible date invalid", mutate: testutil.Field("dates", []string{"2025-02-30"}), expectCode: http.StatusBadRequest},
		{name: "non-ISO date invalid", mutate: testutil.Field("dates", []string{"05/08/2025"}), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReservation{
		{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing dates and range", mutate: testutil.Field("dates", nil), expectCode: http.StatusBadRequest},
		{name: "range end without start", mutate: func(m map[string]any) {
			delete(m, "dates")
			m["end_date"] = "2025-08-07"
		}, expectCode: http.StatusBadRequest},
		{name: "range end before start", mutate: func(m map[string]any) {
			delete(m, "dates")
			m["start_date"] = "2025-08-07"
			m["end_date"] = "2025-08-05"
		}, expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReservation{bound, missing}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.BodyMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						expectSuccess()
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 Conflict lists the colliding reservations", func() {
		conflicting := uuid.New()
		conflictErr := &reservation.ConflictError{Conflicts: []reservation.ConflictRecord{{
			ReservationID: conflicting,
			Date:          reservation.NewDate(2025, 8, 5),
			Start:         reservation.TimeOfDay(600),
			End:           reservation.TimeOfDay(720),
			RequestedBy:   uuid.New(),
		}}}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflictErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking conflicts")
		s.Contains(rec.Body.String(), conflicting.String())
		s.Contains(rec.Body.String(), `"start_time":"10:00"`)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "exclusion constraint conflict", commandsError: errs.Mark(errors.New("pg exclusion"), reservation.ErrBookingConflict), expectedStatus: http.StatusConflict, expectedMsg: "Booking conflicts"},
			{name: "room not found", commandsError: errs.ErrRoomNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Room not found"},
			{name: "room inactive", commandsError: errs.ErrRoomInactive, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "not accepting"},
			{name: "room busy", commandsError: errs.ErrRoomBusy, expectedStatus: http.StatusConflict, expectedMsg: "another request"},
			{name: "idempotency in progress", commandsError: errs.ErrIdempotencyInProgress, expectedStatus: http.StatusConflict, expectedMsg: "being processed"},
			{name: "idempotency mismatch", commandsError: errs.ErrIdempotencyMismatch, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "different request"},
			{name: "past date", commandsError: fmt.Errorf("%w: 2020-01-01", reservation.ErrDateInPast), expectedStatus: http.StatusBadRequest, expectedMsg: "in the past"},
			{name: "too many dates", commandsError: reservation.ErrTooManyDates, expectedStatus: http.StatusBadRequest, expectedMsg: "Too many dates"},
			{name: "missing purpose", commandsError: reservation.ErrMissingPurpose, expectedStatus: http.StatusBadRequest, expectedMsg: "Purpose is required"},
			{name: "snapshot unavailable", commandsError: errs.Mark(errors.New("timeout"), errs.ErrSnapshotUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "temporarily unavailable"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().AsApproved(uuid.New()).BuildView()

	s.Run("success: returns the reservation with its Thai label", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleUser, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "bearer-token")
		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body.Status)
		s.Equal("อนุมัติ", body.StatusLabel)
	})

	s.Run("success: stored Thai status renders its canonical label", func() {
		legacy := builder.NewReservationBuilder().BuildView()
		legacy.Status = "ยกเลิกแล้ว"
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any(), legacy.ID).Return(legacy, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+legacy.ID.String(), nil, "bearer-token")
		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ยกเลิก", body.StatusLabel)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any(), view.ID).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().BuildListItem(),
		builder.NewReservationBuilder().WithStatus(reservation.StatusRejected).BuildListItem(),
	}

	s.Run("success: returns a page with the next cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, (*queries.Cursor)(nil), 2).
			Return(items, &queries.Cursor{After: "next-page"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=2", nil, "bearer-token")
		var body resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("ไม่อนุมัติ", body.Items[1].StatusLabel)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("success: forwards the cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.ReservationListItem{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=abc", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.NotContains(rec.Body.String(), "next_cursor")
	})

	s.Run("error: 400 Bad Request on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 Bad Request on invalid cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=broken", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestEdit
// ================================================================================

func (s *ReservationHandlerTestSuite) TestEdit() {
	view := builder.NewReservationBuilder().WithTimes("09:00", "12:00").BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns the updated reservation", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), view.ID, gomock.Any(), reservation.Actor{ID: s.userID, Role: user.RoleUser}).
			DoAndReturn(func(_ any, _ uuid.UUID, changes reservation.EditChanges, _ reservation.Actor) error {
				s.Require().NotNil(changes.End)
				s.Equal("12:00", changes.End.String())
				s.Nil(changes.Start)
				s.Empty(changes.Dates)
				return nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"end_time": "12:00"}, "bearer-token")
		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("12:00", body.EndTime)
	})

	s.Run("error: 400 Bad Request on empty dates list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"dates": []string{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "not editable", err: fmt.Errorf("%w: status is approved", reservation.ErrNotEditable), expectedStatus: http.StatusConflict},
			{name: "not the owner", err: errs.ErrReservationAccess, expectedStatus: http.StatusForbidden},
			{name: "stale write", err: errs.ErrConcurrentModification, expectedStatus: http.StatusConflict},
			{name: "inverted times", err: reservation.ErrInvalidTimeRange, expectedStatus: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Edit(gomock.Any(), view.ID, gomock.Any(), gomock.Any()).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"purpose": "New"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestApprove() {
	view := builder.NewReservationBuilder().AsApproved(uuid.New()).BuildView()
	url := "/reservations/" + view.ID.String() + "/approve"

	s.Run("success: officer approves", func() {
		s.role = user.RoleOfficer
		defer func() { s.role = user.RoleUser }()

		s.mockCommands.EXPECT().Approve(gomock.Any(), view.ID, reservation.Actor{ID: s.userID, Role: user.RoleOfficer}).Return(nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("อนุมัติ", body.StatusLabel)
	})

	s.Run("error: maps transition errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "actor not permitted",
				err:            fmt.Errorf("%w: %w: role %q cannot approve", reservation.ErrIllegalTransition, reservation.ErrActorNotPermitted, "user"),
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not permitted",
			},
			{
				name:           "illegal transition",
				err:            fmt.Errorf("%w: cannot approve a cancelled reservation", reservation.ErrIllegalTransition),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "cannot move",
			},
			{name: "concurrent modification", err: errs.ErrConcurrentModification, expectedStatus: http.StatusConflict, expectedMsg: "modified concurrently"},
			{name: "not found", err: errs.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Reservation not found"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), view.ID, gomock.Any()).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestReject() {
	view := builder.NewReservationBuilder().WithStatus(reservation.StatusRejected).BuildView()
	url := "/reservations/" + view.ID.String() + "/reject"

	s.Run("success: forwards the reason", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), view.ID, gomock.Any(), "Room closed for renovation").Return(nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "Room closed for renovation"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when the reason is missing", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), view.ID, gomock.Any(), "").Return(reservation.ErrMissingRejectionReason)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Rejection reason is required")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	view := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildView()
	url := "/reservations/" + view.ID.String() + "/cancel"

	s.Run("success: returns the cancelled reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, reservation.Actor{ID: s.userID, Role: user.RoleUser}).Return(nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ยกเลิก", body.StatusLabel)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCheckConflicts
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckConflicts() {
	roomID := uuid.New()
	body := map[string]any{
		"room_id":    roomID,
		"dates":      []string{"2025-08-05"},
		"start_time": "09:00",
		"end_time":   "10:00",
	}

	s.Run("success: reports conflicts", func() {
		existing := uuid.New()
		s.mockCommands.EXPECT().CheckConflicts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q reservation.ConflictQuery) (*commands.ConflictCheckResult, error) {
				s.Equal(roomID, q.RoomID)
				s.Nil(q.ExcludeID)
				return &commands.ConflictCheckResult{Conflicts: []reservation.ConflictRecord{{
					ReservationID: existing,
					Date:          q.Dates[0],
					Start:         q.Start,
					End:           q.End,
				}}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/conflicts", body, "bearer-token")
		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.HasConflict)
		s.Require().Len(res.Conflicts, 1)
		s.Equal(existing, res.Conflicts[0].ReservationID)
		s.Equal("2025-08-05", res.Conflicts[0].Date)
	})

	s.Run("error: 503 Service Unavailable when stored reservations cannot be read", func() {
		s.mockCommands.EXPECT().CheckConflicts(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrSnapshotUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/conflicts", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})

	s.Run("error: 400 Bad Request on an empty or inverted interval", func() {
		cases := []struct {
			name       string
			start, end string
		}{
			{name: "inverted", start: "12:00", end: "10:00"},
			{name: "zero length", start: "10:00", end: "10:00"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				bad := testutil.BodyMap(s.T(), body, testutil.Field("start_time", tc.start), testutil.Field("end_time", tc.end))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/conflicts", bad, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End time must be after start time")
			})
		}
	})

	s.Run("error: 400 Bad Request on a date range that is too long", func() {
		bad := map[string]any{
			"room_id":    roomID,
			"start_date": "0001-01-01",
			"end_date":   "9999-12-31",
			"start_time": "09:00",
			"end_time":   "10:00",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/conflicts", bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Too many dates")
	})

	s.Run("error: 400 Bad Request on malformed time", func() {
		bad := testutil.BodyMap(s.T(), body, testutil.Field("start_time", "09.00"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/conflicts", bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestStats
// ================================================================================

func (s *ReservationHandlerTestSuite) TestStats() {
	s.Run("success: returns counts", func() {
		roomID := uuid.New()
		s.mockQueries.EXPECT().Stats(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.StatsFilter) (*queries.StatsView, error) {
				s.Require().NotNil(f.RoomID)
				s.Equal(roomID, *f.RoomID)
				s.Require().NotNil(f.From)
				s.Equal("2025-08-01", f.From.String())
				s.Nil(f.To)
				return &queries.StatsView{Total: 5, Pending: 2, Approved: 2, Unrecognized: 1}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/stats?room_id="+roomID.String()+"&from=2025-08-01", nil, "bearer-token")
		var body resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.StatsResponse{Total: 5, Pending: 2, Approved: 2, Unrecognized: 1}, body)
	})

	s.Run("error: 400 Bad Request when from is after to", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/stats?from=2025-08-10&to=2025-08-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/stats?from=08-01-2025", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
