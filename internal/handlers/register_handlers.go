package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/printshop_pos/cmd/docs"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/metrics"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/SscSPs/printshop_pos/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// loginRate caps sign-in attempts per client IP.
const loginRate = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	public := r.Group("/api/v1")
	// Apply AuthMiddleware to everything except sign-in
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	var loginLimit gin.HandlerFunc
	if l, err := middleware.NewLimiter(loginRate); err == nil {
		loginLimit = limitergin.NewMiddleware(l)
	} else {
		slog.Warn("Login rate limiting disabled", slog.String("error", err.Error()))
	}

	registerSessionRoutes(public, v1, services.Session, loginLimit)
	registerOrderRoutes(v1, services.Order, services.Export, cfg.AutoExport)
	registerExpenseRoutes(v1, services.Expense)
	registerPresetRoutes(v1, services.Preset)
	registerReportingRoutes(v1, services.Reporting)
	registerAssistantRoutes(v1, services.Assistant)
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
