package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stemsi/absensi-backend/internal/response"
	"github.com/stemsi/absensi-backend/internal/service"
)

// ContextKeyUser is the Gin context key for the authenticated profile.
const ContextKeyUser = "current_user"

// RequireRole resolves the current user from the session cookie and checks
// the role. No roles means any authenticated user.
func RequireRole(authService *service.AuthService, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authService.RequireAuth(c.Request.Context(), SessionToken(c), roles...)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthenticated):
				response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			case errors.Is(err, service.ErrForbidden):
				response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			default:
				_ = c.Error(err)
				response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			}
			return
		}

		// The gate and the store must agree on who is calling.
		if id, _, ok := GateIdentity(c); ok && id != user.ID {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the profile stored by RequireRole.
func CurrentUser(c *gin.Context) *model.Profile {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.Profile)
	if !ok {
		return nil
	}
	return user
}
