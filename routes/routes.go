package routes

import (
	"church_admin/handlers"
	"church_admin/metrics"
	"church_admin/middleware"
	"church_admin/models"
	"church_admin/storage"
	"church_admin/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps are the shared services the console routes are built on.
type Deps struct {
	Store   *store.Store
	Storage storage.Storage
	Counter handlers.MemberCounter
	Kiosk   handlers.KioskClient
	Metrics *metrics.Recorder

	// AllowedOrigins are the foreign origins trusted for CORS and form
	// posts. Empty means same-origin only.
	AllowedOrigins []string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, d Deps) {
	handlers.RegisterValidators()

	if len(d.AllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = d.AllowedOrigins
		corsConfig.AllowHeaders = []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Sec-CH-Prefers-Color-Scheme",
		}
		corsConfig.AllowMethods = []string{"GET", "POST"}
		r.Use(cors.New(corsConfig))
	}

	authHandler := handlers.NewAuthHandler(d.Store)
	dashboardHandler := handlers.NewDashboardHandler(d.Store, d.Counter)
	memberHandler := handlers.NewMemberHandler(d.Store)
	userHandler := handlers.NewUserHandler(d.Store)
	attendanceHandler := handlers.NewAttendanceHandler(d.Store)
	checkInHandler := handlers.NewCheckInHandler(d.Kiosk, d.Storage)
	themeHandler := handlers.NewThemeHandler(d.Store)
	healthHandler := handlers.NewHealthHandler(d.Storage)

	// Ops
	r.GET("/healthz", healthHandler.HealthCheck)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	views := r.Group("/")
	views.Use(
		middleware.SameOrigin(d.AllowedOrigins),
		middleware.TrackView(),
		themeHandler.SystemScheme(),
	)

	// Theme applies with or without a session
	views.GET("/theme", themeHandler.GetTheme)
	views.POST("/theme", themeHandler.SetTheme)

	// Public kiosk routes
	views.GET("/checkin", checkInHandler.CheckInPage)
	views.POST("/checkin", checkInHandler.Lookup)
	views.POST("/checkin/confirm", checkInHandler.Confirm)
	views.GET("/register", checkInHandler.RegisterPage)
	views.POST("/register", checkInHandler.Register)

	login := views.Group("/login")
	login.Use(middleware.RedirectIfAuthenticated(d.Store))
	{
		login.GET("", authHandler.LoginPage)
		login.POST("", authHandler.Login)
	}

	// Protected routes
	protected := views.Group("/")
	protected.Use(middleware.RequireSession(d.Store))
	{
		protected.GET("/", authHandler.Root)
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/dashboard", dashboardHandler.Dashboard)

		// Member routes
		protected.GET("/members", memberHandler.ListMembers)
		protected.POST("/members", memberHandler.CreateMember)
		protected.GET("/members/new", memberHandler.NewMember)
		protected.GET("/members/:id", memberHandler.GetMember)
		protected.POST("/members/:id", memberHandler.UpdateMember)
		protected.POST("/members/:id/delete", memberHandler.DeleteMember)

		// Attendance routes
		protected.GET("/attendance", attendanceHandler.GetAttendances)

		// Profile routes
		protected.GET("/profile", authHandler.Profile)
		protected.POST("/profile/password", authHandler.ChangePassword)

		// User routes
		users := protected.Group("/users")
		users.Use(middleware.RequireRole(d.Store, models.RoleSuperAdmin))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.POST("/:id", userHandler.UpdateUser)
			users.POST("/:id/delete", userHandler.DeleteUser)
			users.POST("/:id/reset-password", userHandler.ResetPassword)
		}
	}
}
