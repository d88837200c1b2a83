package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campusboard/result-api/docs"
	"github.com/campusboard/result-api/internal/api/handler"
	"github.com/campusboard/result-api/internal/api/middleware"
	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/service"
	"github.com/campusboard/result-api/internal/infrastructure/config"
	"github.com/campusboard/result-api/internal/infrastructure/crypto"
	mongodb "github.com/campusboard/result-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campusboard/result-api/internal/infrastructure/db/redis"
	"github.com/campusboard/result-api/internal/infrastructure/queue"
	"github.com/campusboard/result-api/internal/infrastructure/token"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the ingest dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("resultapi"))

	// --- Dependencies ---
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	codec := token.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)

	accountRepo := mongodb.NewAccountRepository(db)
	authService := service.NewAuthService(accountRepo, hasher, codec)
	authHandler := handler.NewAuthHandler(authService)

	resultRepo := mongodb.NewResultRepository(db)
	summaryCache := redisdb.NewSummaryCache(rdb)
	resultService := service.NewResultService(resultRepo, summaryCache, log)
	dispatcher := queue.NewDispatcher(cfg.IngestWorkers, resultService, log)
	resultHandler := handler.NewResultHandler(dispatcher, resultService)

	guard := middleware.Auth(codec)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/role", handler.NewRoleHandler().GetRole, guard)

	// --- Result routes ---
	results := e.Group("/results", guard)
	teacherOnly := middleware.RequireRole(domain.RoleTeacher, domain.RoleAdmin)
	results.POST("/:class", resultHandler.Upload, teacherOnly)
	results.GET("/:class/summary", resultHandler.Summary, teacherOnly)
	results.GET("/:class/top", resultHandler.Top, teacherOnly)
	results.GET("/:class/student/:name", resultHandler.StudentResults)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e, dispatcher
}
