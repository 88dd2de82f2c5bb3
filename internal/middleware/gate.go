package middleware

import (
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stemsi/absensi-backend/internal/response"
	"github.com/stemsi/absensi-backend/internal/service"
)

const (
	// ContextKeyUserID and ContextKeyRole hold the identity verified by the gate.
	ContextKeyUserID = "gate_user_id"
	ContextKeyRole   = "gate_role"

	// HeaderUserID and HeaderUserRole forward the verified identity to
	// handlers. Client supplied values are always stripped.
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// GateConfig lists the routes the access gate treats specially.
type GateConfig struct {
	LoginPath     string
	DashboardPath string
	// PublicPaths are only for visitors without a session (login page and
	// login endpoint). Logged-in users are sent to DashboardPath.
	PublicPaths []string
	// OpenPaths pass through regardless of the session.
	OpenPaths []string
	// APIPrefix marks routes answered with 401 JSON instead of a redirect.
	APIPrefix string
	// SecureCookie sets the Secure flag when the gate clears a cookie.
	SecureCookie bool
}

// DefaultGateConfig returns the routes used by the router.
func DefaultGateConfig(secure bool) GateConfig {
	return GateConfig{
		LoginPath:     "/login",
		DashboardPath: "/dashboard",
		PublicPaths:   []string{"/login", "/api/auth/login"},
		OpenPaths:     []string{"/health", "/api/auth/logout"},
		APIPrefix:     "/api/",
		SecureCookie:  secure,
	}
}

type pathClass int

const (
	pathProtected pathClass = iota
	pathPublic
	pathOpen
)

func (g GateConfig) classify(p string) pathClass {
	if strings.HasPrefix(p, "/static/") || p == "/favicon.ico" || strings.Contains(path.Base(p), ".") {
		return pathOpen
	}
	for _, op := range g.OpenPaths {
		if p == op {
			return pathOpen
		}
	}
	for _, pp := range g.PublicPaths {
		if p == pp {
			return pathPublic
		}
	}
	return pathProtected
}

// AccessGate runs before every route. Protected routes need a valid
// session: pages redirect to the login page, API calls get 401, and a
// present but invalid cookie is cleared. Public routes redirect visitors
// whose session resolves to an existing user to the dashboard. On success the
// verified user id and role are forwarded; handlers still re-check them
// through RequireRole.
func AccessGate(authService *service.AuthService, cfg GateConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Header.Del(HeaderUserID)
		c.Request.Header.Del(HeaderUserRole)

		p := c.Request.URL.Path
		token := SessionToken(c)

		switch cfg.classify(p) {
		case pathOpen:
			c.Next()
			return
		case pathPublic:
			if token == "" {
				c.Next()
				return
			}
			// Only a session that still resolves to a user counts; a
			// stale cookie would otherwise bounce between login and
			// dashboard.
			user, err := authService.CurrentUser(c.Request.Context(), token)
			switch {
			case err != nil:
				_ = c.Error(err)
			case user != nil:
				c.Redirect(http.StatusSeeOther, cfg.DashboardPath)
				c.Abort()
				return
			default:
				ClearSessionCookie(c, cfg.SecureCookie)
			}
			c.Next()
			return
		}

		if token == "" {
			deny(c, cfg, p)
			return
		}

		claims := authService.Session(c.Request.Context(), token)
		if claims == nil {
			ClearSessionCookie(c, cfg.SecureCookie)
			deny(c, cfg, p)
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Request.Header.Set(HeaderUserID, strconv.Itoa(claims.UserID))
		c.Request.Header.Set(HeaderUserRole, string(claims.Role))
		c.Next()
	}
}

func deny(c *gin.Context, cfg GateConfig, p string) {
	if strings.HasPrefix(p, cfg.APIPrefix) {
		response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}
	c.Redirect(http.StatusSeeOther, cfg.LoginPath)
	c.Abort()
}

// GateIdentity returns the identity the gate verified for this request.
func GateIdentity(c *gin.Context) (int, model.Role, bool) {
	id, ok := c.Get(ContextKeyUserID)
	if !ok {
		return 0, "", false
	}
	role, _ := c.Get(ContextKeyRole)
	userID, _ := id.(int)
	r, _ := role.(model.Role)
	return userID, r, userID > 0
}
