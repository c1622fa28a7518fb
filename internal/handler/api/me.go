package api

import (
	"net/http"

	resdto "meeting-room-reservation/internal/handler/dto/response"
	"meeting-room-reservation/internal/handler/httperr"
	"meeting-room-reservation/internal/handler/middleware"
	"meeting-room-reservation/internal/pkg/errs"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	users queries.UserQueries
}

func NewMeHandler(users queries.UserQueries) *MeHandler {
	return &MeHandler{users: users}
}

// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /me [get]
func (h *MeHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	user, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound), errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "User not found or inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(user))
}
