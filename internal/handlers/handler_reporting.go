package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
)

// reportingHandler serves the dashboard stats, the daily report, the cached
// manager report and the full resource sync.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/stats", h.stats)
	rg.GET("/reports/daily", h.dailyReport)
	rg.GET("/manager-report", h.managerReport)
	rg.POST("/manager-report/refresh", h.refreshManagerReport)
	rg.POST("/sync", h.syncAll)
}

func (h *reportingHandler) stats(c *gin.Context) {
	stats, err := h.reportingService.Stats(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *reportingHandler) dailyReport(c *gin.Context) {
	report, err := h.reportingService.DailyReport(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build daily report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build daily report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) managerReport(c *gin.Context) {
	items, err := h.reportingService.ManagerReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list manager report"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *reportingHandler) refreshManagerReport(c *gin.Context) {
	if err := h.reportingService.RefreshManagerReport(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to refresh manager report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh manager report"})
		return
	}

	items, err := h.reportingService.ManagerReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list manager report"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// syncAll refreshes every mirrored resource and reports per-resource
// outcomes. Partial failure is still a 200: the result map says what failed.
func (h *reportingHandler) syncAll(c *gin.Context) {
	result := h.reportingService.SyncAll(c.Request.Context())
	c.JSON(http.StatusOK, result)
}
