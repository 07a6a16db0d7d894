package routes

import (
	"context"
	"net/http"
	"time"

	"facility-hub/internal/config"
	"facility-hub/internal/delivery/http/handler"
	domainDevice "facility-hub/internal/domain/device"
	"facility-hub/internal/infrastructure/database/postgres"
	"facility-hub/internal/llm"
	"facility-hub/internal/logger"
	"facility-hub/internal/middleware"
	"facility-hub/internal/usecase/device"
	"facility-hub/internal/usecase/location"
	"facility-hub/internal/usecase/support"
	"facility-hub/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

// tokenCleanupInterval is how often the refresh token cleanup job runs.
const tokenCleanupInterval = time.Hour

// SetupRoutes builds the full route graph and starts the background jobs
// tied to ctx.
func SetupRoutes(ctx context.Context, cfg *config.Config, db *postgres.DB, commander domainDevice.Commander, asker llm.Asker) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"ok":    false,
				"error": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	userRepository := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	locationRepository := postgres.NewLocationRepository(db)
	deviceRepository := postgres.NewDeviceRepository(db)

	userService := user.NewService(userRepository, refreshTokenRepo, locationRepository, cfg)
	locationService := location.NewService(locationRepository)
	deviceService := device.NewService(deviceRepository, locationRepository, commander)
	supportService := support.NewService(locationRepository, deviceRepository, asker)

	go userService.StartTokenCleanupJob(ctx, tokenCleanupInterval)

	userHandler := handler.NewUserHandler(userService)
	locationHandler := handler.NewLocationHandler(locationService, userService)
	deviceHandler := handler.NewDeviceHandler(deviceService, userService)
	supportHandler := handler.NewSupportHandler(supportService)
	webHandler := handler.NewWebHandler(cfg, userService, locationService, deviceService)

	webHandler.RegisterPageRoutes(router)

	api := router.Group("/api")
	{
		userHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProtectedRoutes(protected)
			locationHandler.RegisterRoutes(protected)
			deviceHandler.RegisterRoutes(protected)
			supportHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.SuperuserOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
				locationHandler.RegisterAdminRoutes(admin)
				deviceHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	ui := router.Group("/ui")
	ui.Use(middleware.AuthMiddleware(cfg))
	{
		webHandler.RegisterFragmentRoutes(ui)

		adminUI := ui.Group("")
		adminUI.Use(middleware.SuperuserOnly())
		{
			webHandler.RegisterAdminFragmentRoutes(adminUI)
		}
	}

	logger.Info("All routes initialized")
	return router
}
