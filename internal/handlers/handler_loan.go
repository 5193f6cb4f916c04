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

// loanHandler handles the purely local loan workflow.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.POST("", h.createLoan)
		loans.GET("/:id", h.getLoanByID)
		loans.PATCH("/:id/scoring", h.updateLoanScoring)
	}
}

func (h *loanHandler) listLoans(c *gin.Context) {
	loans, err := h.loanService.ListLoans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list loans"})
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := middleware.SessionUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req, operator)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
		default:
			logger.Error("Failed to create loan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create loan"})
		}
		return
	}
	c.JSON(http.StatusCreated, loan)
}

func (h *loanHandler) getLoanByID(c *gin.Context) {
	operID := c.Param("id")
	loan, err := h.loanService.GetLoanByID(c.Request.Context(), operID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Loan not found"})
		} else {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve loan"})
		}
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *loanHandler) updateLoanScoring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operID := c.Param("id")

	var req dto.UpdateLoanScoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.UpdateLoanScoring(c.Request.Context(), operID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Loan not found"})
		} else {
			logger.Error("Failed to update loan scoring", slog.String("oper_id", operID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update loan scoring"})
		}
		return
	}
	c.JSON(http.StatusOK, loan)
}
