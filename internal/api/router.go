package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercury-msp/helpdesk/internal/api/handler"
	"github.com/mercury-msp/helpdesk/internal/api/middleware"
	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/service"
	"github.com/mercury-msp/helpdesk/internal/infrastructure/config"
	mongodb "github.com/mercury-msp/helpdesk/internal/infrastructure/db/mongo"
	redisdb "github.com/mercury-msp/helpdesk/internal/infrastructure/db/redis"
	"github.com/mercury-msp/helpdesk/internal/infrastructure/queue"
)

// Services bundles the use-case layer so main can reuse it (admin seeding).
type Services struct {
	Users *service.UserService
}

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the notification dispatcher (whose workers the caller must
// Start) and the constructed services.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher, *Services) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("helpdesk"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	deviceRepo := mongodb.NewDeviceRepository(db)
	ticketRepo := mongodb.NewTicketRepository(db)
	assetRepo := mongodb.NewAssetRepository(db)
	assetRequestRepo := mongodb.NewAssetRequestRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	statsRepo := mongodb.NewStatsRepository(db)

	denylist := redisdb.NewTokenDenylist(rdb)
	statsCache := redisdb.NewStatsCache(rdb)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, tokenService, denylist, log)
	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	deviceService := service.NewDeviceService(deviceRepo, clientRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)

	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, notificationService, log)

	ticketService := service.NewTicketService(ticketRepo, clientRepo, dispatcher, log)
	assetService := service.NewAssetService(assetRepo, assetRequestRepo, dispatcher, log)
	dashboardService := service.NewDashboardService(statsRepo, statsCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	assetHandler := handler.NewAssetHandler(assetService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authGate := middleware.Auth(tokenService, userRepo, denylist)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	staffOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleTechnician)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	auth := e.Group("", authGate)

	auth.GET("/auth/me", authHandler.Me)
	auth.POST("/auth/logout", authHandler.Logout)

	auth.GET("/dashboard/stats", dashboardHandler.Stats)
	auth.GET("/dashboard/detailed-stats", dashboardHandler.DetailedStats)

	users := auth.Group("/users", adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	auth.GET("/technicians", userHandler.ListTechnicians, staffOnly)

	clients := auth.Group("/clients")
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.POST("", clientHandler.Create, staffOnly)
	clients.PUT("/:id", clientHandler.Update, staffOnly)
	clients.DELETE("/:id", clientHandler.Delete, adminOnly)

	devices := auth.Group("/devices")
	devices.GET("", deviceHandler.List)
	devices.GET("/:id", deviceHandler.Get)
	devices.POST("", deviceHandler.Create, staffOnly)
	devices.PUT("/:id", deviceHandler.Update, staffOnly)
	devices.DELETE("/:id", deviceHandler.Delete, adminOnly)

	tickets := auth.Group("/service-requests")
	tickets.GET("", ticketHandler.List)
	tickets.GET("/:id", ticketHandler.Get)
	tickets.GET("/number/:number", ticketHandler.GetByNumber)
	tickets.POST("", ticketHandler.Create)
	tickets.PUT("/:id", ticketHandler.Update, staffOnly)
	tickets.POST("/:id/assign", ticketHandler.Assign, staffOnly)
	tickets.DELETE("/:id", ticketHandler.Delete, adminOnly)

	assets := auth.Group("/company-assets")
	assets.GET("", assetHandler.List)
	assets.GET("/:id", assetHandler.Get)
	assets.POST("", assetHandler.Create, staffOnly)
	assets.PUT("/:id", assetHandler.Update, staffOnly)
	assets.DELETE("/:id", assetHandler.Delete, adminOnly)

	assetRequests := auth.Group("/asset-requests")
	assetRequests.GET("", assetHandler.ListRequests)
	assetRequests.POST("", assetHandler.CreateRequest)
	assetRequests.POST("/:id/review", assetHandler.ReviewRequest, adminOnly)
	assetRequests.DELETE("/:id", assetHandler.DeleteRequest, adminOnly)

	notifications := auth.Group("/notifications")
	notifications.GET("", notificationHandler.List)
	notifications.POST("", notificationHandler.Create, adminOnly)
	notifications.POST("/read-all", notificationHandler.MarkAllRead)
	notifications.POST("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.Delete)

	return e, dispatcher, &Services{Users: userService}
}
