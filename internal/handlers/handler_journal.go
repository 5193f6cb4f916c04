package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
)

// journalHandler serves the derived accounting journal, read-only. Entries
// are created as a side effect of operations, never through this surface.
type journalHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newJournalHandler(ls portssvc.LedgerSvcFacade) *journalHandler {
	return &journalHandler{ledgerService: ls}
}

func registerJournalRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newJournalHandler(ledgerService)
	rg.GET("/journal", h.listEntries)
}

func (h *journalHandler) listEntries(c *gin.Context) {
	entries, err := h.ledgerService.ListEntries(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list journal entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
