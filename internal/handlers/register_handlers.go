package handlers

import (
	"github.com/SscSPs/bizdocs_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/middleware"
	"github.com/SscSPs/bizdocs_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Extra handlers run on the authenticated /api/v1 group after the auth check, e.g. rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	v1Middleware ...gin.HandlerFunc,
) {
	registerValidators(services.Currency)

	registerHealthRoutes(r, services.Health)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, v1Middleware)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	extra []gin.HandlerFunc,
) {
	auth := middleware.AuthMiddleware(middleware.AuthConfig{
		JWTSecret:         cfg.JWTSecret,
		JWTAudience:       cfg.JWTAudience,
		SessionCookieName: cfg.SessionCookieName,
	})
	v1 := r.Group("/api/v1", append([]gin.HandlerFunc{auth}, extra...)...)

	registerDashboardRoutes(v1, service.Reporting, service.Currency)
	registerCurrencyRoutes(v1, service.Currency)
	registerDocumentRoutes(v1, service.Document, service.Currency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
