package api

import (
	"net/http"

	reqdto "meeting-room-reservation/internal/handler/dto/request"
	resdto "meeting-room-reservation/internal/handler/dto/response"
	"meeting-room-reservation/internal/handler/httperr"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	reservations queries.ReservationQueries
}

func NewRoomHandler(rooms queries.RoomQueries, reservations queries.ReservationQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms, reservations: reservations}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include rooms closed for booking"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	rooms, err := h.rooms.List(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rooms", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}

// @Summary Room schedule
// @Description Active reservations of a room between two dates
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} resdto.RoomScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/reservations [get]
func (h *RoomHandler) Schedule(c *gin.Context) {
	roomID, ok := pathUUID(c)
	if !ok {
		return
	}
	var q reqdto.RoomScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, err := reqdto.ParseDate(q.From)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	to, err := reqdto.ParseDate(q.To)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}

	entries, err := h.reservations.RoomSchedule(c.Request.Context(), roomID, from, to)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSchedule(roomID, from, to, entries))
}
