package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/mamunbank/bank_trainer_app/internal/platform/config"
	"github.com/mamunbank/bank_trainer_app/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	registerHomeRoutes(r)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, posthogClient)
}

// registerCustomValidators adds the "currency" rule used by the operation
// request DTOs to gin's binding validator.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			return domain.IsSupportedCurrency(fl.Field().String())
		})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(posthogClient))

	// Delegate route registration to specific handlers, passing required services
	registerClientRoutes(v1, service.Client)
	registerOperationRoutes(v1, service.Operation, posthogClient)
	registerLoanRoutes(v1, service.Loan)
	registerJournalRoutes(v1, service.Ledger)
	registerScoreRoutes(v1, service.Scoring)
	registerAuditRoutes(v1, service.Audit, posthogClient)
	registerReferenceRoutes(v1, service.Reference)
	registerReportingRoutes(v1, service.Reporting)
}
