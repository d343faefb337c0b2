package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Sumit-51/FITCORE/internal/auth"
	"github.com/Sumit-51/FITCORE/internal/config"
	"github.com/Sumit-51/FITCORE/internal/email"
	"github.com/Sumit-51/FITCORE/internal/enrollment"
	"github.com/Sumit-51/FITCORE/internal/gym"
	"github.com/Sumit-51/FITCORE/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	gymRepo := gym.NewRepository(db)
	enrollmentRepo := enrollment.NewRepository(db)

	resolver := user.NewResolver(userRepo)

	userService := user.NewService(userRepo, gymRepo, cfg.JWTSecret)
	gymService := gym.NewService(gymRepo)
	enrollmentService := enrollment.NewService(enrollmentRepo, gymRepo, resolver, emailService)

	userHandler := user.NewHandler(userService)
	gymHandler := gym.NewHandler(gymService, resolver)
	enrollmentHandler := enrollment.NewHandler(enrollmentService, resolver)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/me/navigation", userHandler.Navigation)
		protected.GET("/gyms", gymHandler.ListGyms)
		protected.POST("/enrollments", enrollmentHandler.Enroll)
		protected.GET("/enrollments/me", enrollmentHandler.MyEnrollments)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(string(user.RoleGymAdmin), string(user.RoleSuperAdmin)))
	{
		admin.GET("/dashboard", enrollmentHandler.Dashboard)
		admin.GET("/members", enrollmentHandler.ListMembers)
		admin.POST("/enrollments/:enrollmentID/approve", enrollmentHandler.Approve)
		admin.POST("/enrollments/:enrollmentID/reject", enrollmentHandler.Reject)
		admin.GET("/gym", gymHandler.GetOwnGym)
		admin.PUT("/gym", gymHandler.UpdateSettings)
	}

	super := router.Group("/superadmin")
	super.Use(authMiddleware, auth.RequireRole(string(user.RoleSuperAdmin)))
	{
		super.GET("/overview", enrollmentHandler.Overview)
		super.GET("/gyms", gymHandler.ListGyms)
		super.POST("/gyms/:gymID/toggle", gymHandler.ToggleActive)
		super.GET("/admins", userHandler.ListAdmins)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
