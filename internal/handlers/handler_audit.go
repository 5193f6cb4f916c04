package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/mamunbank/bank_trainer_app/internal/utils"
)

// auditHandler is the control-department surface: marking operations and the
// overview over the manager report. Instructor only.
type auditHandler struct {
	auditService  portssvc.AuditSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

func newAuditHandler(as portssvc.AuditSvcFacade, posthogClient *utils.PosthogClientWrapper) *auditHandler {
	return &auditHandler{auditService: as, posthogClient: posthogClient}
}

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newAuditHandler(auditService, posthogClient)

	audit := rg.Group("/audit-marks", middleware.RequireRoles(domain.RoleRahbar))
	{
		audit.GET("", h.listMarks)
		audit.POST("", h.setMark)
		audit.GET("/overview", h.overview)
	}
}

func (h *auditHandler) listMarks(c *gin.Context) {
	marks, err := h.auditService.ListMarks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list audit marks"})
		return
	}
	c.JSON(http.StatusOK, marks)
}

func (h *auditHandler) setMark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetAuditMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	markedBy, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	mark, err := h.auditService.SetMark(c.Request.Context(), req, markedBy)
	if err != nil {
		logger.Error("Failed to set audit mark", slog.String("operation_id", req.OperationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set audit mark"})
		return
	}

	if mark.AuditStatus == domain.AuditErrorFound {
		middleware.PosthogEvent(c, h.posthogClient, "mistake_recorded", map[string]any{
			"operation_id": mark.OperationID,
		})
	}
	c.JSON(http.StatusOK, mark)
}

func (h *auditHandler) overview(c *gin.Context) {
	overview, err := h.auditService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build audit overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}
