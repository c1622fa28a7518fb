package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoomLocker serializes schedule writes per room. Contention returns errs.ErrRoomBusy.
type RoomLocker interface {
	Acquire(ctx context.Context, roomID uuid.UUID) (release func(), err error)
}

type StatsInvalidator interface {
	Invalidate(ctx context.Context) error
}

type OpRecorder interface {
	ObserveReservationOp(operation, outcome string)
	ObserveConflicts(n int)
	ObserveLockWait(d time.Duration, acquired bool)
}
