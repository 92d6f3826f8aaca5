// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fireplan/backend/internal/integration/entrypoint/controller"
	"github.com/fireplan/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	ledgerController   *controller.LedgerController
	goalController     *controller.GoalController
	insightController  *controller.InsightController
	insightRateLimiter *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	ledgerController *controller.LedgerController,
	goalController *controller.GoalController,
	insightController *controller.InsightController,
	insightRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		ledgerController:   ledgerController,
		goalController:     goalController,
		insightController:  insightController,
		insightRateLimiter: insightRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Ledger routes (require authentication)
		if r.ledgerController != nil && r.authMiddleware != nil {
			entries := v1.Group("/ledger/entries")
			entries.Use(r.authMiddleware.Authenticate())
			{
				entries.GET("", r.ledgerController.List)
				entries.POST("", r.ledgerController.Create)
				entries.PATCH("/:id", r.ledgerController.Update)
				entries.DELETE("/:id", r.ledgerController.Delete)
				entries.POST("/:id/change-rate", r.ledgerController.ChangeRate)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Insight routes (require authentication; generation is rate limited)
		if r.insightController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.GET("", r.insightController.Get)
				if r.insightRateLimiter != nil {
					insights.POST("", r.insightRateLimiter.Middleware(), r.insightController.Generate)
				} else {
					insights.POST("", r.insightController.Generate)
				}
			}
		}
	}
}
