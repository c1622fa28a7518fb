package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrRoomInactive    = errors.New("room is not accepting reservations")
)

const (
	MaxRoomNameLength = 255
)

type Room struct {
	id        uuid.UUID
	name      string
	building  string
	capacity  int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(id uuid.UUID, name, building string, capacity int) (*Room, error) {
	if err := validateRoomName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:       id,
		name:     strings.TrimSpace(name),
		building: strings.TrimSpace(building),
		capacity: capacity,
		isActive: true,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name, building string, capacity int, isActive bool, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		building:  building,
		capacity:  capacity,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// EnsureBookable fails when the room has been withdrawn from booking.
func (r *Room) EnsureBookable() error {
	if !r.isActive {
		return ErrRoomInactive
	}
	return nil
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Building() string     { return r.building }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) IsActive() bool       { return r.isActive }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
