package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/absensi-backend/internal/config"
	"github.com/stemsi/absensi-backend/internal/handler"
	"github.com/stemsi/absensi-backend/internal/logger"
	"github.com/stemsi/absensi-backend/internal/middleware"
	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stemsi/absensi-backend/internal/response"
	"github.com/stemsi/absensi-backend/internal/service"
	"github.com/stemsi/absensi-backend/internal/web"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Teacher   *handler.TeacherHandler
	Student   *handler.StudentHandler
	Page      *handler.PageHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// ─── CORS ──────────────────────────────────────────────────────────
	// The session rides in a cookie, so credentials are allowed and the
	// origin list must be explicit; without one only same-origin works.
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
		corsConfig.ExposeHeaders = []string{"X-Request-ID"}
		corsConfig.MaxAge = 12 * time.Hour
		router.Use(cors.New(corsConfig))
	}

	router.Use(response.RequestIDMiddleware())
	router.Use(logger.Middleware(log))
	router.Use(middleware.Brotli())
	router.Use(middleware.AccessGate(authService, middleware.DefaultGateConfig(cfg.IsProduction())))

	static := router.Group("/static")
	static.Use(middleware.CacheControl(86400))
	{
		static.StaticFS("/", http.FS(web.Static()))
	}

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Pages ─────────────────────────────────────────────────────────
	router.GET("/", handlers.Page.Root)
	router.GET("/login", handlers.Page.Login)
	router.GET("/dashboard", handlers.Page.Dashboard)

	api := router.Group("/api")
	api.Use(middleware.NoStore())

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		login := []gin.HandlerFunc{handlers.Auth.Login}
		if cfg.LoginRatePerMinute > 0 {
			limiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute)
			login = append([]gin.HandlerFunc{limiter.Middleware()}, login...)
		}
		auth.POST("/login", login...)
		auth.POST("/logout", handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireRole(authService), handlers.Auth.Me)
	}

	// ─── 2. Admin Group ────────────────────────────────────────────────
	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.RequireRole(authService, model.RoleAdmin))
	{
		adminAPI.GET("/stats", handlers.Dashboard.GetAdminStats)
	}

	// ─── 3. Teacher Group ──────────────────────────────────────────────
	teacherAPI := api.Group("/teacher")
	teacherAPI.Use(middleware.RequireRole(authService, model.RoleTeacher))
	{
		teacherAPI.GET("/classes", handlers.Teacher.ListClasses)
		teacherAPI.GET("/stats", handlers.Teacher.GetStats)
	}

	// ─── 4. Student Group ──────────────────────────────────────────────
	studentAPI := api.Group("/student")
	studentAPI.Use(middleware.RequireRole(authService, model.RoleStudent))
	{
		studentAPI.GET("/attendance", handlers.Student.GetAttendance)
		studentAPI.GET("/stats", handlers.Student.GetStats)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router, nil
}
