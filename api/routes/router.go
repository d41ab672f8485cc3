// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"venuely/internal/analytics"
	"venuely/internal/auth"
	"venuely/internal/notifications"
	"venuely/internal/reservations"
	"venuely/internal/search"
	"venuely/internal/settings"
	"venuely/internal/settlements"
	"venuely/internal/shared/config"
	"venuely/internal/shared/database"
	"venuely/internal/sitevisits"
	"venuely/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service
	notifier     notifications.Notifier
	producer     notifications.Producer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetCacheService injects the cache service used by the admin aggregates
func (r *Router) SetCacheService(cacheService cache.Service) {
	r.cacheService = cacheService
}

// SetProducer injects the Kafka producer used for submission notifications
func (r *Router) SetProducer(producer notifications.Producer) {
	r.producer = producer
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Settings first: the notification toggles gate the submission
		// publishers wired below.
		settingsService := r.setupSettingsRoutes(api)

		r.notifier = notifications.NewService(r.producer, settingsService)

		r.setupAuthRoutes(api)
		r.setupReservationRoutes(api)
		r.setupSiteVisitRoutes(api)
		r.setupSettlementRoutes(api)
		r.setupSearchRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "venuely-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "venuely-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupSettingsRoutes(rg *gin.RouterGroup) settings.Service {
	settingsRepo := settings.NewRepository(r.db.GetPostgreSQL())
	settingsService := settings.NewService(settingsRepo)
	settingsController := settings.NewController(settingsService)

	settings.SetupSettingsRoutes(rg, settingsController)
	return settingsService
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	repo := reservations.NewRepository(r.db.GetPostgreSQL())
	service := reservations.NewService(repo)
	service.SetNotifier(r.notifier)
	controller := reservations.NewController(service)

	reservations.SetupReservationRoutes(rg, controller)
}

func (r *Router) setupSiteVisitRoutes(rg *gin.RouterGroup) {
	repo := sitevisits.NewRepository(r.db.GetPostgreSQL())
	service := sitevisits.NewService(repo)
	service.SetNotifier(r.notifier)
	controller := sitevisits.NewController(service)

	sitevisits.SetupSiteVisitRoutes(rg, controller)
}

func (r *Router) setupSettlementRoutes(rg *gin.RouterGroup) {
	repo := settlements.NewRepository(r.db.GetPostgreSQL())
	service := settlements.NewService(repo)
	service.SetNotifier(r.notifier)
	controller := settlements.NewController(service)

	settlements.SetupSettlementRoutes(rg, controller)
}

func (r *Router) setupSearchRoutes(rg *gin.RouterGroup) {
	repo := search.NewRepository(r.db.GetPostgreSQL())
	service := search.NewService(repo)
	controller := search.NewController(service)

	search.SetupSearchRoutes(rg, controller)
}

func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	repo := analytics.NewRepository(r.db.GetPostgreSQL())
	service := analytics.NewService(repo)
	if r.cacheService != nil {
		service.SetCacheService(r.cacheService)
	}
	controller := analytics.NewController(service)

	analytics.SetupAnalyticsRoutes(rg, controller)
}
