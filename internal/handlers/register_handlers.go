package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/news_aggregator_app/cmd/docs"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/SscSPs/news_aggregator_app/internal/platform/config"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

const defaultLoginRateLimit = "5-M"

// Options carries the runtime collaborators the routes need besides the services.
type Options struct {
	Health    HealthReporter
	Analytics utils.EventSink
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts Options,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/", getHome)
	r.GET("/health", getHealth(opts.Health))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(r, cfg, services, opts)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts Options,
) {
	api := r.Group("/api", middleware.PosthogMiddleware(opts.Analytics))

	requireAuth := middleware.RequireAuth(services.Auth)
	optionalAuth := middleware.OptionalAuth(services.Auth)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	registerAuthRoutes(api,
		newAuthHandler(services.Auth, cfg.DevExposeResetToken, opts.Analytics),
		newUserHandler(services.User),
		requireAuth,
		middleware.RateLimit(loginLimiter(cfg.LoginRateLimit)),
	)
	registerOAuthRoutes(api, newOAuthHandler(services.OAuth, services.Auth, cfg.FrontendBaseURL, cfg.IsProduction, opts.Analytics))
	registerArticleRoutes(api, newArticleHandler(services.Article, services.SavedArticle), optionalAuth, requireAuth, adminOnly)
	registerPreferenceRoutes(api, services.Preference, requireAuth)
	registerSavedArticleRoutes(api, services.SavedArticle, requireAuth)
	registerCatalogRoutes(api, services.Catalog, requireAuth, adminOnly)
	registerAPILogRoutes(api, services.APILog, requireAuth, adminOnly)
}

func loginLimiter(formatted string) *limiter.Limiter {
	lim, err := middleware.NewMemoryLimiter(formatted)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using default",
			slog.String("value", formatted), slog.String("default", defaultLoginRateLimit))
		lim, _ = middleware.NewMemoryLimiter(defaultLoginRateLimit)
	}
	return lim
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
