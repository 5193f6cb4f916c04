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

// clientHandler handles HTTP requests for the mirrored client list.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.POST("", h.createClient)
		clients.POST("/refresh", h.refreshClients)
		clients.GET("/:id", h.getClientByID)
	}
}

func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creator, ok := middleware.SessionUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, creator)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstream) {
			logger.Warn("Training API rejected client creation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create client", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create client"})
		}
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *clientHandler) refreshClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.clientService.RefreshClients(c.Request.Context()); err != nil {
		logger.Error("Failed to refresh clients", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to refresh clients from training API"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *clientHandler) getClientByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("id")

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
		} else {
			logger.Error("Failed to get client", slog.String("client_id", clientID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve client"})
		}
		return
	}
	c.JSON(http.StatusOK, client)
}
