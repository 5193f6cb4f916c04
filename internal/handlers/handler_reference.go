package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
)

// referenceHandler manages the operation code reference table.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(referenceService)

	codes := rg.Group("/operation-codes")
	{
		codes.GET("", h.listCodes)
		codes.POST("", h.createCode)
		codes.PUT("/:code", h.updateCode)
		codes.DELETE("/:code", h.deleteCode)
		codes.POST("/reset", h.resetCodes)
	}
}

func (h *referenceHandler) listCodes(c *gin.Context) {
	codes, err := h.referenceService.ListCodes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list operation codes"})
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (h *referenceHandler) createCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OperationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	code, err := h.referenceService.CreateCode(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create operation code", slog.String("code", req.Code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create operation code"})
		}
		return
	}
	c.JSON(http.StatusCreated, code)
}

func (h *referenceHandler) updateCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	codeValue := c.Param("code")

	var req dto.UpdateOperationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	code, err := h.referenceService.UpdateCode(c.Request.Context(), codeValue, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operation code not found"})
		} else {
			logger.Error("Failed to update operation code", slog.String("code", codeValue), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update operation code"})
		}
		return
	}
	c.JSON(http.StatusOK, code)
}

func (h *referenceHandler) deleteCode(c *gin.Context) {
	codeValue := c.Param("code")
	if err := h.referenceService.DeleteCode(c.Request.Context(), codeValue); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operation code not found"})
		} else {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete operation code"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Operation code deleted"})
}

func (h *referenceHandler) resetCodes(c *gin.Context) {
	codes, err := h.referenceService.ResetCodes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reset operation codes"})
		return
	}
	c.JSON(http.StatusOK, codes)
}
