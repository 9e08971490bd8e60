package handlers

import (
	"net/http"

	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to a studio's clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// registerClientRoutes registers client routes nested under a studio.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := &clientHandler{clientService: clientService}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:client_id", h.getClient)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deactivateClient)
	}
}

// createClient godoc
// @Summary Create a client
// @Description Creates a new client in the studio.
// @Tags clients
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /studios/{studio_id}/clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), studioID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "create client")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Retrieves a paginated list of the studio's active clients.
// @Tags clients
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListClientsResponse
// @Failure 404 {object} map[string]string "Studio not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), studioID, requestingUserID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list clients")
		return
	}

	resp := dto.ListClientsResponse{Clients: make([]dto.ClientResponse, len(clients))}
	for i := range clients {
		resp.Clients[i] = dto.ToClientResponse(&clients[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getClient godoc
// @Summary Get a client by ID
// @Description Retrieves a single client, verifying studio ownership.
// @Tags clients
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/clients/{client_id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	clientID := c.Param("client_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), studioID, clientID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "get client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Description Updates an existing client's details.
// @Tags clients
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param client_id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/clients/{client_id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	clientID := c.Param("client_id")

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), studioID, clientID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "update client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deactivateClient godoc
// @Summary Deactivate a client
// @Description Marks a client as inactive. Budgets referencing the client keep their reference.
// @Tags clients
// @Param studio_id path string true "Studio ID"
// @Param client_id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/clients/{client_id} [delete]
func (h *clientHandler) deactivateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	clientID := c.Param("client_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.clientService.DeactivateClient(c.Request.Context(), studioID, clientID, requestingUserID); err != nil {
		respondServiceError(c, logger, err, "deactivate client")
		return
	}

	c.Status(http.StatusNoContent)
}
