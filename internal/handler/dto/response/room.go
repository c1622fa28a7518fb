package response

import (
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Building string    `json:"building"`
	Capacity int32     `json:"capacity"`
	IsActive bool      `json:"is_active"`
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, 0, len(views))
	_ = copier.Copy(&res, views)
	return res
}
