package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkboard/linkboard-api/internal/api/handler"
	"github.com/linkboard/linkboard-api/internal/api/middleware"
	"github.com/linkboard/linkboard-api/internal/core/auth"
	"github.com/linkboard/linkboard-api/internal/core/service"
	"github.com/linkboard/linkboard-api/internal/infrastructure/config"
	mongodb "github.com/linkboard/linkboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/linkboard/linkboard-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, activities service.ActivityRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("linkboard"))

	// --- Credential layer ---
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	resolver := auth.NewResolver(tokens)
	authMiddleware := middleware.Auth(resolver)

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	linkRepo := mongodb.NewLinkRepository(db)
	voteRepo := mongodb.NewVoteRepository(db)
	scores := redisdb.NewScoreCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokens, cfg.BcryptCost, activities)
	linkService := service.NewLinkService(linkRepo, voteRepo, scores, activities, log)
	voteService := service.NewVoteService(voteRepo, linkRepo, scores, activities, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	linkHandler := handler.NewLinkHandler(linkService)
	voteHandler := handler.NewVoteHandler(voteService)

	// --- Auth routes (no token required: they produce one) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Link and vote routes ---
	e.GET("/links", linkHandler.Feed)
	e.POST("/links", linkHandler.Post, authMiddleware)
	e.POST("/links/:id/votes", voteHandler.Cast, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
