//go:build unit || e2e

package builder

import (
	"time"

	"meeting-room-reservation/internal/domain/room"
	"meeting-room-reservation/internal/usecase/queries"
	"meeting-room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID       uuid.UUID
	Name     string
	Building string
	Capacity int
	IsActive bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:       uuid.New(),
		Name:     "Meeting Room 1",
		Building: "Administration Building",
		Capacity: 12,
		IsActive: true,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.ID, r.Name, r.Building, r.Capacity)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:        r.ID,
		Name:      r.Name,
		Building:  r.Building,
		Capacity:  int32(r.Capacity), // #nosec G115 -- test fixture values are small
		IsActive:  r.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:       r.ID,
		Name:     r.Name,
		IsActive: r.IsActive,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}

func (r *RoomBuilder) AsInactive() *RoomBuilder {
	r.IsActive = false
	return r
}
