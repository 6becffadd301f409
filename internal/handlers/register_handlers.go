package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ipt_portal_app/internal/core/ports/services"
	"github.com/SscSPs/ipt_portal_app/internal/middleware"
	"github.com/SscSPs/ipt_portal_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerBindingValidators()

	r.GET("/", GetHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Protected routes; every view behind /api/v1 requires a session
	setupAPIV1Routes(r, cfg, services)

	// Unknown paths get a 404 rather than the browser app's silent
	// fall-back to the home view.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, services.Account))

	registerProfileRoutes(v1)
	registerAccountRoutes(v1, services.Account)
	registerEmployeeRoutes(v1, services.Employee)
	registerDepartmentRoutes(v1, services.Department)
	registerRequestRoutes(v1, services.Request)
}
