package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/mamunbank/bank_trainer_app/internal/utils"
)

// operationTypeFromPath maps the route segment to the domain operation type.
var operationTypeFromPath = map[string]domain.OperationType{
	"cash-in":           domain.OpCashIn,
	"cash-out":          domain.OpCashOut,
	"currency-exchange": domain.OpFX,
	"card-applications": domain.OpCard,
	"deposits":          domain.OpDeposit,
	"loans":             domain.OpLoan,
}

// operationHandler handles the five remote-backed operation flows plus the
// activity feed.
type operationHandler struct {
	operationService portssvc.OperationSvcFacade
	posthogClient    *utils.PosthogClientWrapper
}

func newOperationHandler(os portssvc.OperationSvcFacade, posthogClient *utils.PosthogClientWrapper) *operationHandler {
	return &operationHandler{operationService: os, posthogClient: posthogClient}
}

func registerOperationRoutes(rg *gin.RouterGroup, operationService portssvc.OperationSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newOperationHandler(operationService, posthogClient)

	cashIn := rg.Group("/cash-in")
	{
		cashIn.GET("", h.listCashIn)
		cashIn.POST("", h.createCashIn)
		cashIn.POST("/refresh", h.refreshCashIn)
	}
	cashOut := rg.Group("/cash-out")
	{
		cashOut.GET("", h.listCashOut)
		cashOut.POST("", h.createCashOut)
		cashOut.POST("/refresh", h.refreshCashOut)
	}
	fx := rg.Group("/currency-exchange")
	{
		fx.GET("", h.listFX)
		fx.POST("", h.createFX)
		fx.POST("/refresh", h.refreshFX)
	}
	cards := rg.Group("/card-applications")
	{
		cards.GET("", h.listCards)
		cards.POST("", h.createCard)
		cards.POST("/refresh", h.refreshCards)
	}
	deposits := rg.Group("/deposits")
	{
		deposits.GET("", h.listDeposits)
		deposits.POST("", h.createDeposit)
		deposits.POST("/refresh", h.refreshDeposits)
	}

	rg.PATCH("/operations/:type/:id/status", h.updateOperationStatus)
	rg.GET("/activity", h.listActivity)
}

// respondCreateError maps a failed create to the right HTTP status. Client
// resolution failures are the caller's fault; upstream rejections surface the
// training API message.
func (h *operationHandler) respondCreateError(c *gin.Context, what string, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Warn("Training API rejected operation", slog.String("operation", what), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to create operation", slog.String("operation", what), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create " + what})
	}
}

func (h *operationHandler) trackCreated(c *gin.Context, opType domain.OperationType, operID string) {
	middleware.PosthogEvent(c, h.posthogClient, "operation_created", map[string]any{
		"operation_type": string(opType),
		"oper_id":        operID,
	})
}

func (h *operationHandler) sessionUser(c *gin.Context) (domain.User, bool) {
	operator, ok := middleware.SessionUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return operator, ok
}

// --- cash-in ---

func (h *operationHandler) listCashIn(c *gin.Context) {
	ops, err := h.operationService.ListCashIn(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cash-in operations"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

func (h *operationHandler) createCashIn(c *gin.Context) {
	var req dto.CreateCashInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operator, ok := h.sessionUser(c)
	if !ok {
		return
	}

	op, err := h.operationService.CreateCashIn(c.Request.Context(), req, operator)
	if err != nil {
		h.respondCreateError(c, "cash-in operation", err)
		return
	}
	h.trackCreated(c, domain.OpCashIn, op.OperID)
	c.JSON(http.StatusCreated, op)
}

func (h *operationHandler) refreshCashIn(c *gin.Context) {
	if err := h.operationService.RefreshCashIn(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh cash-in operations"})
		return
	}
	ops, err := h.operationService.ListCashIn(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cash-in operations"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

// --- cash-out ---

func (h *operationHandler) listCashOut(c *gin.Context) {
	ops, err := h.operationService.ListCashOut(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cash-out operations"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

func (h *operationHandler) createCashOut(c *gin.Context) {
	var req dto.CreateCashOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operator, ok := h.sessionUser(c)
	if !ok {
		return
	}

	op, err := h.operationService.CreateCashOut(c.Request.Context(), req, operator)
	if err != nil {
		h.respondCreateError(c, "cash-out operation", err)
		return
	}
	h.trackCreated(c, domain.OpCashOut, op.OperID)
	c.JSON(http.StatusCreated, op)
}

func (h *operationHandler) refreshCashOut(c *gin.Context) {
	if err := h.operationService.RefreshCashOut(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh cash-out operations"})
		return
	}
	ops, err := h.operationService.ListCashOut(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cash-out operations"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

// --- currency exchange ---

func (h *operationHandler) listFX(c *gin.Context) {
	ops, err := h.operationService.ListFX(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list currency exchanges"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

func (h *operationHandler) createFX(c *gin.Context) {
	var req dto.CreateFXRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operator, ok := h.sessionUser(c)
	if !ok {
		return
	}

	op, err := h.operationService.CreateFX(c.Request.Context(), req, operator)
	if err != nil {
		h.respondCreateError(c, "currency exchange", err)
		return
	}
	h.trackCreated(c, domain.OpFX, op.OperID)
	c.JSON(http.StatusCreated, op)
}

func (h *operationHandler) refreshFX(c *gin.Context) {
	if err := h.operationService.RefreshFX(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh currency exchanges"})
		return
	}
	ops, err := h.operationService.ListFX(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list currency exchanges"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

// --- card applications ---

func (h *operationHandler) listCards(c *gin.Context) {
	ops, err := h.operationService.ListCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list card applications"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

func (h *operationHandler) createCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operator, ok := h.sessionUser(c)
	if !ok {
		return
	}

	op, err := h.operationService.CreateCard(c.Request.Context(), req, operator)
	if err != nil {
		h.respondCreateError(c, "card application", err)
		return
	}
	h.trackCreated(c, domain.OpCard, op.OperID)
	c.JSON(http.StatusCreated, op)
}

func (h *operationHandler) refreshCards(c *gin.Context) {
	if err := h.operationService.RefreshCards(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh card applications"})
		return
	}
	ops, err := h.operationService.ListCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list card applications"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

// --- deposits ---

func (h *operationHandler) listDeposits(c *gin.Context) {
	ops, err := h.operationService.ListDeposits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list deposits"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

func (h *operationHandler) createDeposit(c *gin.Context) {
	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operator, ok := h.sessionUser(c)
	if !ok {
		return
	}

	op, err := h.operationService.CreateDeposit(c.Request.Context(), req, operator)
	if err != nil {
		h.respondCreateError(c, "deposit", err)
		return
	}
	h.trackCreated(c, domain.OpDeposit, op.OperID)
	c.JSON(http.StatusCreated, op)
}

func (h *operationHandler) refreshDeposits(c *gin.Context) {
	if err := h.operationService.RefreshDeposits(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh deposits"})
		return
	}
	ops, err := h.operationService.ListDeposits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list deposits"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

// --- status + activity ---

func (h *operationHandler) updateOperationStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	opType, ok := operationTypeFromPath[c.Param("type")]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown operation type"})
		return
	}

	var req dto.UpdateOperationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operID := c.Param("id")
	err := h.operationService.UpdateOperationStatus(c.Request.Context(), opType, operID, domain.OperationStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operation not found"})
		} else {
			logger.Error("Failed to update operation status", slog.String("oper_id", operID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update operation status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"oper_id": operID, "status": req.Status})
}

func (h *operationHandler) listActivity(c *gin.Context) {
	entries, err := h.operationService.ListActivity(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list activity log"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
