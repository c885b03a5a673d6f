package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accountsvc/user-service/internal/api/handler"
	"github.com/accountsvc/user-service/internal/api/middleware"
	"github.com/accountsvc/user-service/internal/core/domain"
	"github.com/accountsvc/user-service/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client,
	authService ports.AuthService, userService ports.UserService,
	openRegistration bool, log zerolog.Logger) *echo.Echo {

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("user_service"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, openRegistration)
	requireAuth := middleware.Auth(authService)
	optionalAuth := middleware.OptionalAuth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login/access-token", authHandler.Login)
	e.POST("/password-recovery/:email", authHandler.RecoverPassword)
	e.POST("/reset-password/", authHandler.ResetPassword)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/", userHandler.Create, optionalAuth)
	users.GET("/me", userHandler.Me, requireAuth)
	users.GET("/", userHandler.List, requireAuth, adminOnly)
	users.GET("/:id", userHandler.Get, requireAuth)
	users.PUT("/:id", userHandler.Update, requireAuth)
	users.DELETE("/delete/:id", userHandler.Delete, requireAuth, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
