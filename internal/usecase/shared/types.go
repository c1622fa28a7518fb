package shared

import (
	"time"

	"github.com/google/uuid"
)

type RoomSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}
