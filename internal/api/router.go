package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mentorconnect/mentorship-api/internal/api/handler"
	"github.com/mentorconnect/mentorship-api/internal/api/middleware"
	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
	"github.com/mentorconnect/mentorship-api/internal/core/service"
	mongodb "github.com/mentorconnect/mentorship-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mentorconnect/mentorship-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, blobs ports.BlobStore, jwtSecret string, tokenTTL time.Duration, uploadDir string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	assignmentRepo := mongodb.NewAssignmentRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)
	resourceRepo := mongodb.NewResourceRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, jwtSecret, tokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, log)
	sessionService := service.NewSessionService(sessionRepo, userRepo, assignmentService, log)
	todoService := service.NewTodoService(todoRepo, userRepo, assignmentService, log)
	resourceService := service.NewResourceService(resourceRepo, blobs, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService, assignmentService, sessionService, resourceService)
	mentorHandler := handler.NewMentorHandler(userService, assignmentService, sessionService, todoService)
	menteeHandler := handler.NewMenteeHandler(assignmentService, todoService, resourceService)

	authMiddleware := middleware.Auth(jwtSecret, userRepo)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)

	// --- Admin ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/mentors", adminHandler.ListMentors)
	admin.GET("/mentees", adminHandler.ListMentees)
	admin.POST("/map-mentor", adminHandler.MapMentor)
	admin.GET("/mappings", adminHandler.ListMappings)
	admin.POST("/resources", adminHandler.UploadResource)
	admin.GET("/sessions", adminHandler.ListSessions)

	// --- Mentor ---
	mentor := e.Group("/mentor", authMiddleware, middleware.RBAC(domain.RoleMentor))
	mentor.GET("/:id/mentees", mentorHandler.Mentees)
	mentor.PUT("/:id/meet-link", mentorHandler.SetMeetLink)
	mentor.GET("/:id/meet-link", mentorHandler.GetMeetLink)
	mentor.POST("/sessions", mentorHandler.LogSession)
	mentor.POST("/todos", mentorHandler.AssignTodo)

	// --- Mentee ---
	mentee := e.Group("/mentee", authMiddleware, middleware.RBAC(domain.RoleMentee))
	mentee.GET("/:id/mentor", menteeHandler.Mentor)
	mentee.GET("/:id/todos", menteeHandler.Todos)
	mentee.PATCH("/todos/:id/toggle", menteeHandler.ToggleTodo)
	mentee.GET("/resources", menteeHandler.Resources)

	// --- Uploaded files (relative paths returned by the API resolve here) ---
	e.Static("/uploads", uploadDir)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness
	e.GET("/health/ready", readinessHandler.Readiness) // readiness
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
