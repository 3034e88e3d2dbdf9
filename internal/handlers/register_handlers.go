package handlers

import (
	"net/http"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/cmd/docs"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/middleware"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Edge bundles the cross-cutting pieces shared by both services' routers.
// Nil members are skipped.
type Edge struct {
	Metrics *metrics.Collector
	Limiter *limiter.Limiter
}

// RegisterAccountServiceRoutes sets up the routes of the account service.
func RegisterAccountServiceRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	edge Edge,
) {
	v1 := setupCommonRoutes(r, cfg, edge)

	registerAccountRoutes(v1, services.Account)
	registerMovementRoutes(v1, services.Movement)
	registerReportingRoutes(v1, services.Reporting)
}

// RegisterCustomerServiceRoutes sets up the routes of the customer service.
func RegisterCustomerServiceRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	edge Edge,
) {
	v1 := setupCommonRoutes(r, cfg, edge)

	registerCustomerRoutes(v1, services.Customer)
}

// setupCommonRoutes installs the engine-wide middleware, health, metrics and
// swagger routes, and returns the /api/v1 group.
func setupCommonRoutes(r *gin.Engine, cfg *config.Config, edge Edge) *gin.RouterGroup {
	RegisterValidators()

	r.Use(cors.New(corsConfig(cfg)))
	if edge.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(edge.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if cfg.MetricsEnabled && edge.Metrics != nil {
		r.GET("/metrics", gin.WrapH(edge.Metrics.GetHandler()))
	}

	setupSwaggerRoutes(r, cfg)

	v1 := r.Group("/api/v1")
	if edge.Limiter != nil {
		v1.Use(middleware.RateLimit(edge.Limiter))
	}
	return v1
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
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
