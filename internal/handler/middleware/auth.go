package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"meeting-room-reservation/internal/domain/user"
	"meeting-room-reservation/internal/handler/httperr"
	"meeting-room-reservation/internal/pkg/cookie"
	"meeting-room-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var (
	errMissingToken = errors.New("access token missing")
	errNoIdentity   = errors.New("role check ran before authentication")
	errRoleTooLow   = errors.New("role below required level")
)

// AuthMiddleware trusts HS256 tokens issued by the campus identity provider.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "token rejected", "request_id", GetRequestID(c), "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoIdentity, "Internal server error", nil)
			return
		}
		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleTooLow, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if userID, role, err := m.tokenValidator.ValidateToken(token); err == nil {
				setIdentity(c, userID, role)
			}
		}
		c.Next()
	}
}

// extractToken prefers the web login cookie over the Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func setIdentity(c *gin.Context, userID uuid.UUID, role user.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
