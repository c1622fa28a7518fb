package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomInactive = errors.New("room is not accepting reservations")

	// Reservation errors
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrReservationAccess      = errors.New("reservation access denied")
	ErrConcurrentModification = errors.New("reservation was modified concurrently")
	ErrRoomBusy               = errors.New("room is being booked by another request")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyMismatch    = errors.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrSnapshotUnavailable     = errors.New("reservation snapshot unavailable")
)
