package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/absensi-backend/internal/middleware"
	"github.com/stemsi/absensi-backend/internal/service"
)

// AppName is shown in page titles.
const AppName = "Sistem Absensi"

// PageHandler renders the login page and the role dashboard shell.
type PageHandler struct {
	authService  *service.AuthService
	secureCookie bool
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(authService *service.AuthService, secureCookie bool) *PageHandler {
	return &PageHandler{authService: authService, secureCookie: secureCookie}
}

// Login renders the login form.
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"AppName": AppName})
}

// Dashboard renders the dashboard for the current user's role.
func (h *PageHandler) Dashboard(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Terjadi kesalahan server")
		return
	}
	if user == nil {
		// The token outlived its user.
		middleware.ClearSessionCookie(c, h.secureCookie)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"AppName":   AppName,
		"User":      user,
		"RoleLabel": user.Role.Label(),
	})
}

// Root sends visitors to the dashboard.
func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
