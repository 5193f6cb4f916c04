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
)

// scoreHandler serves the automatic trainee score and the instructor's
// manual score book.
type scoreHandler struct {
	scoringService portssvc.ScoringSvcFacade
}

func newScoreHandler(ss portssvc.ScoringSvcFacade) *scoreHandler {
	return &scoreHandler{scoringService: ss}
}

func registerScoreRoutes(rg *gin.RouterGroup, scoringService portssvc.ScoringSvcFacade) {
	h := newScoreHandler(scoringService)

	rg.GET("/score", h.getScore)

	instructorOnly := middleware.RequireRoles(domain.RoleRahbar)
	manual := rg.Group("/manual-scores")
	{
		manual.GET("", h.listManualScores)
		manual.GET("/summary", h.studentSummaries)
		manual.POST("", instructorOnly, h.addManualScore)
		manual.PUT("/:id", instructorOnly, h.updateManualScore)
	}
}

func (h *scoreHandler) getScore(c *gin.Context) {
	score, err := h.scoringService.Score(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load student score", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load score"})
		return
	}
	c.JSON(http.StatusOK, score)
}

func (h *scoreHandler) listManualScores(c *gin.Context) {
	scores, err := h.scoringService.ListManualScores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list manual scores"})
		return
	}
	c.JSON(http.StatusOK, scores)
}

func (h *scoreHandler) studentSummaries(c *gin.Context) {
	summaries, err := h.scoringService.StudentSummaries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build student summaries"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *scoreHandler) addManualScore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateManualScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	assigner, ok := middleware.SessionUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	score, err := h.scoringService.AddManualScore(c.Request.Context(), req, assigner)
	if err != nil {
		logger.Error("Failed to add manual score", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add manual score"})
		return
	}
	c.JSON(http.StatusCreated, score)
}

func (h *scoreHandler) updateManualScore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.UpdateManualScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	score, err := h.scoringService.UpdateManualScore(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Manual score not found"})
		} else {
			logger.Error("Failed to update manual score", slog.String("id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update manual score"})
		}
		return
	}
	c.JSON(http.StatusOK, score)
}
