package api

import (
	"net/http"

	"meeting-room-reservation/internal/domain/reservation"
	resdto "meeting-room-reservation/internal/handler/dto/response"
	"meeting-room-reservation/internal/handler/httperr"
	"meeting-room-reservation/internal/pkg/errs"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// order matters: the first match wins
var reservationErrorMappings = []errorMapping{
	{reservation.ErrBookingConflict, http.StatusConflict, "Booking conflicts with an existing reservation"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrReservationAccess, http.StatusForbidden, "Access to reservation denied"},
	{reservation.ErrActorNotPermitted, http.StatusForbidden, "Not permitted to perform this action"},
	{reservation.ErrIllegalTransition, http.StatusConflict, "Reservation cannot move to the requested status"},
	{reservation.ErrNotEditable, http.StatusConflict, "Reservation can no longer be edited"},
	{errs.ErrConcurrentModification, http.StatusConflict, "Reservation was modified concurrently"},
	{errs.ErrRoomBusy, http.StatusConflict, "Room is being booked by another request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Reservation request is currently being processed"},
	{errs.ErrIdempotencyMismatch, http.StatusUnprocessableEntity, "Idempotency key reused with a different request"},
	{errs.ErrRoomInactive, http.StatusUnprocessableEntity, "Room is not accepting reservations"},
	{reservation.ErrMissingRejectionReason, http.StatusUnprocessableEntity, "Rejection reason is required"},
	{reservation.ErrInvalidTimeFormat, http.StatusBadRequest, "Invalid time format"},
	{reservation.ErrInvalidDateFormat, http.StatusBadRequest, "Invalid date format"},
	{reservation.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{reservation.ErrInvalidTimeRange, http.StatusBadRequest, "End time must be after start time"},
	{reservation.ErrEmptyDates, http.StatusBadRequest, "At least one date is required"},
	{reservation.ErrMissingPurpose, http.StatusBadRequest, "Purpose is required"},
	{reservation.ErrPurposeTooLong, http.StatusBadRequest, "Purpose is too long"},
	{reservation.ErrTooManyDates, http.StatusBadRequest, "Too many dates in one request"},
	{reservation.ErrDateInPast, http.StatusBadRequest, "Booking date is in the past"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrScheduleWindow, http.StatusBadRequest, "Schedule window is too large"},
	{errs.ErrSnapshotUnavailable, http.StatusServiceUnavailable, "Reservations are temporarily unavailable"},
}

func abortWithReservationError(c *gin.Context, err error) {
	for _, m := range reservationErrorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		var ce *reservation.ConflictError
		if m.target == reservation.ErrBookingConflict && errs.As(err, &ce) {
			detail = gin.H{"conflicts": resdto.FromConflicts(ce.Conflicts)}
		}
		httperr.AbortWithError(c, m.status, err, m.msg, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
