package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/absensi-backend/internal/middleware"
	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stemsi/absensi-backend/internal/response"
	"github.com/stemsi/absensi-backend/internal/service"
	"github.com/stemsi/absensi-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// Login godoc
// POST /api/auth/login
// Validates email + password and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			response.Fail(c, http.StatusBadRequest, response.ErrFieldsRequired)
		case errors.Is(err, service.ErrInvalidEmailFormat):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidEmailFormat)
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		default:
			_ = c.Error(err)
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	middleware.SetSessionCookie(c, result.Token, result.ExpiresAt, h.secureCookie)
	response.Success(c, http.StatusOK, model.LoginResponse{Success: true, User: result.User})
}

// Logout godoc
// POST /api/auth/logout
// Revokes the current token, if any, and expires the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.authService.Logout(c.Request.Context(), middleware.SessionToken(c))
	middleware.ClearSessionCookie(c, h.secureCookie)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrLogoutFailed)
		return
	}

	response.OK(c, http.StatusOK)
}

// Me godoc
// GET /api/auth/me
// Returns the profile of the currently authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	response.Success(c, http.StatusOK, user)
}
