package response

import (
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func FromUserView(v *queries.UserView) *MeResponse {
	return &MeResponse{
		ID:    v.ID,
		Email: v.Email,
		Name:  v.Name,
		Role:  v.Role,
	}
}
