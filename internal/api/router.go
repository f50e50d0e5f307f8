package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/d-compost/donation-api/internal/api/handler"
	"github.com/d-compost/donation-api/internal/api/middleware"
	"github.com/d-compost/donation-api/internal/core/service"
	"github.com/d-compost/donation-api/internal/infrastructure/config"
	mongodb "github.com/d-compost/donation-api/internal/infrastructure/db/mongo"
	redisdb "github.com/d-compost/donation-api/internal/infrastructure/db/redis"
	"github.com/d-compost/donation-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dcompost"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginWindow, cfg.LoginMaxAttempts)
	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.AccessTokenTTL)
	profileService := service.NewProfileService(userRepo)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	authGuard := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/create-session", authHandler.CreateSession)

	// --- Protected routes ---
	e.GET("/profile", profileHandler.Profile, authGuard)
	e.POST("/update-profile", profileHandler.UpdateProfile, authGuard)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
