package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffhub/agency-api/internal/api/handler"
	"github.com/staffhub/agency-api/internal/api/middleware"
	"github.com/staffhub/agency-api/internal/core/service"
	"github.com/staffhub/agency-api/internal/infrastructure/billing"
	mongodb "github.com/staffhub/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/staffhub/agency-api/internal/infrastructure/db/redis"
	"github.com/staffhub/agency-api/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("agency"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	workerRepo := mongodb.NewWorkerRepository(db)
	planRepo := mongodb.NewPlanRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	checkout := billing.NewCheckoutClient(cfg.Checkout.URL, cfg.Checkout.APIKey)

	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), sessions, cfg.JWTSecret, cfg.TokenTTL, log)
	companyService := service.NewCompanyService(companyRepo, log)
	workerService := service.NewWorkerService(workerRepo, log)
	billingService := service.NewBillingService(planRepo, userRepo, checkout, log)

	authHandler := handler.NewAuthHandler(authService, sessions)
	companyHandler := handler.NewCompanyHandler(companyService)
	workerHandler := handler.NewWorkerHandler(workerService)
	billingHandler := handler.NewBillingHandler(billingService)
	formHandler := handler.NewFormHandler()

	authenticated := middleware.Authenticate(cfg.JWTSecret, sessions)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/check-username", authHandler.CheckUsername)
	auth.GET("/me", authHandler.Me)
	auth.GET("/session", authHandler.Session)

	// --- Owner-scoped resources ---
	companies := e.Group("/api/companies", authenticated)
	companies.POST("/add", companyHandler.Add)
	companies.GET("/list", companyHandler.List)
	companies.PUT("/:id", companyHandler.Update)
	companies.DELETE("/:id", companyHandler.Delete)

	workers := e.Group("/api/workers", authenticated)
	workers.POST("/add", workerHandler.Add)
	workers.GET("/list", workerHandler.List)
	workers.PUT("/:id", workerHandler.Update)
	workers.DELETE("/:id", workerHandler.Delete)

	// --- Packages ---
	e.GET("/api/packages/list", billingHandler.ListPlans)
	e.POST("/api/packages/checkout", billingHandler.Checkout, authenticated)

	// --- Form descriptors (public; the client renders forms from these) ---
	e.GET("/api/forms/:kind", formHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
