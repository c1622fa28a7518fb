package api

import (
	"log/slog"
	"net/http"

	"meeting-room-reservation/internal/domain/reservation"
	reqdto "meeting-room-reservation/internal/handler/dto/request"
	resdto "meeting-room-reservation/internal/handler/dto/response"
	"meeting-room-reservation/internal/handler/httperr"
	"meeting-room-reservation/internal/handler/middleware"
	"meeting-room-reservation/internal/pkg/errs"
	"meeting-room-reservation/internal/usecase/commands"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader     = "Idempotency-Key"
	idempotentReplayedHeader = "Idempotent-Replayed"
)

var errUnauthenticated = errs.New("missing authenticated user")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Request a room for one or more dates. Supply either dates or a start_date/end_date range.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed idempotent request"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	idempotencyKey, err := parseIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	resolution, err := req.ResolveDates()
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	if resolution.Conflicting {
		slog.WarnContext(c.Request.Context(), "both dates and date range supplied, using dates",
			"user_id", actor.ID, "room_id", req.RoomID)
	}
	domainReq, err := req.ToDomain(actor.ID, resolution.Dates)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), domainReq, idempotencyKey)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	view, err := h.q.GetByIDSystem(c.Request.Context(), result.ReservationID)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(idempotentReplayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the caller's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}

	items, next, err := h.q.ListMine(c.Request.Context(), actor.ID, cursor, q.Limit)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor.ID, actor.Role, id)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Edit reservation
// @Description Change the dates, times or purpose of a pending reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Edit(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	changes, err := req.ToDomain()
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	if err := h.cmds.Edit(c.Request.Context(), id, changes, actor); err != nil {
		abortWithReservationError(c, err)
		return
	}
	h.respondWithReservation(c, id)
}

// @Summary Approve reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/approve [post]
func (h *ReservationHandler) Approve(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	if err := h.cmds.Approve(c.Request.Context(), id, actor); err != nil {
		abortWithReservationError(c, err)
		return
	}
	h.respondWithReservation(c, id)
}

// @Summary Reject reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest true "Rejection reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	var req reqdto.RejectReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Reject(c.Request.Context(), id, actor, req.Reason); err != nil {
		abortWithReservationError(c, err)
		return
	}
	h.respondWithReservation(c, id)
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, actor); err != nil {
		abortWithReservationError(c, err)
		return
	}
	h.respondWithReservation(c, id)
}

// @Summary Check conflicts
// @Description Dry-run conflict check. Nothing is written.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckConflictsRequest true "Candidate booking"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/conflicts [post]
func (h *ReservationHandler) CheckConflicts(c *gin.Context) {
	var req reqdto.CheckConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	resolution, err := req.ResolveDates()
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	q, err := req.ToDomain(resolution.Dates)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	result, err := h.cmds.CheckConflicts(c.Request.Context(), q)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictCheck(result))
}

// @Summary Reservation statistics
// @Description Count reservations per status
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param room_id query string false "Room ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} resdto.StatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/stats [get]
func (h *ReservationHandler) Stats(c *gin.Context) {
	var q reqdto.StatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	roomID, err := q.RoomUUID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, err := reqdto.ParseDatePtr(q.From)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	to, err := reqdto.ParseDatePtr(q.To)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		abortWithReservationError(c, reservation.ErrInvalidDateRange)
		return
	}

	stats, err := h.q.Stats(c.Request.Context(), queries.StatsFilter{RoomID: roomID, From: from, To: to})
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}

func (h *ReservationHandler) respondWithReservation(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByIDSystem(c.Request.Context(), id)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func actorFrom(c *gin.Context) (reservation.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return reservation.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return reservation.Actor{}, false
	}
	return reservation.Actor{ID: userID, Role: role}, true
}

func pathUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// parseIdempotencyKey returns nil when the header is absent.
func parseIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
