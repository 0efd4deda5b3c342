package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorhub/userform-api/internal/api/handler"
	"github.com/creatorhub/userform-api/internal/api/middleware"
	"github.com/creatorhub/userform-api/internal/core/ports"
	"github.com/creatorhub/userform-api/internal/core/service"
	"github.com/creatorhub/userform-api/internal/infrastructure/config"
	mongodb "github.com/creatorhub/userform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/creatorhub/userform-api/internal/infrastructure/db/redis"
	"github.com/creatorhub/userform-api/internal/infrastructure/http/handlers"
	"github.com/creatorhub/userform-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the listing cache is simply disabled then.
func NewRouter(db *mongo.Database, rdb *redis.Client, files *storage.DiskStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("userform"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.RefreshSecret, cfg.AdminUsername)
	authHandler := handler.NewAuthHandler(authService)

	var cache ports.ListingCache
	if rdb != nil {
		cache = redisdb.NewListingCache(rdb)
	}
	formRepo := mongodb.NewFormRepository(db)
	formService := service.NewFormService(formRepo, cache, log)
	formHandler := handler.NewFormHandler(formService, files, log)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/refresh-token", authHandler.RefreshToken)

	// --- Protected routes (any valid token; roles exist but are not
	// enforced per endpoint) ---
	e.GET("/get-user", authHandler.GetUser, authMiddleware)
	e.POST("/user-form", formHandler.Submit, authMiddleware)
	e.GET("/details", formHandler.Details, authMiddleware)
	e.DELETE("/delete/:id", formHandler.Delete, authMiddleware)

	// --- Static assets: uploaded images are served read-only ---
	e.Static("/uploads", files.Dir())

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
