package handlers

import (
	"net/http"

	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// studioHandler handles HTTP requests related to studios and their members.
type studioHandler struct {
	studioService portssvc.StudioSvcFacade
}

// newStudioHandler creates a new studioHandler.
func newStudioHandler(ss portssvc.StudioSvcFacade) *studioHandler {
	return &studioHandler{
		studioService: ss,
	}
}

// registerStudioRoutes registers routes related to studios and their members.
// It also registers CLIENT, EXPENSE, BUDGET, PROPOSAL and SUGGESTION routes
// nested under a specific studio.
func registerStudioRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newStudioHandler(services.Studio)

	studiosTopLevel := rg.Group("/studios")
	{
		studiosTopLevel.POST("", h.createStudio)
		studiosTopLevel.GET("", h.listUserStudios) // List studios the calling user belongs to
	}

	// Routes specific to a single studio (identified by studio_id)
	studioSpecific := rg.Group("/studios/:studio_id")
	{
		studioSpecific.GET("", h.getStudio)
		studioSpecific.PUT("", h.updateStudio)

		// Manage users within a studio
		studioUsers := studioSpecific.Group("/users")
		{
			studioUsers.POST("", h.addUserToStudio)
			studioUsers.GET("", h.listStudioMembers)
			studioUsers.DELETE("/:user_id", h.removeUserFromStudio)
			studioUsers.PUT("/:user_id/role", h.updateUserStudioRole)
		}

		registerClientRoutes(studioSpecific, services.Client)
		registerExpenseRoutes(studioSpecific, services.Expense)
		RegisterBudgetRoutes(studioSpecific, services.Budget, services.Proposal)
		registerProposalRoutes(studioSpecific, services.Proposal)
		registerSuggestionRoutes(studioSpecific, services.Suggestion)
	}
}

// createStudio godoc
// @Summary Create a new studio
// @Description Creates a new studio and assigns the creator as admin.
// @Tags studios
// @Accept json
// @Produce json
// @Param studio body dto.CreateStudioRequest true "Studio details"
// @Success 201 {object} dto.StudioResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create studio"
// @Security BearerAuth
// @Router /studios [post]
func (h *studioHandler) createStudio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	studio, err := h.studioService.CreateStudio(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "create studio")
		return
	}

	logger.Info("Studio created successfully", "studio_id", studio.StudioID)
	c.JSON(http.StatusCreated, dto.ToStudioResponse(studio))
}

// listUserStudios godoc
// @Summary List studios for current user
// @Description Retrieves the studios the authenticated user belongs to.
// @Tags studios
// @Produce json
// @Success 200 {object} dto.ListStudiosResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /studios [get]
func (h *studioHandler) listUserStudios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	studios, err := h.studioService.ListUserStudios(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "list studios")
		return
	}

	resp := dto.ListStudiosResponse{Studios: make([]dto.StudioResponse, len(studios))}
	for i := range studios {
		resp.Studios[i] = dto.ToStudioResponse(&studios[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getStudio godoc
// @Summary Get a studio by ID
// @Description Retrieves a single studio's details.
// @Tags studios
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Success 200 {object} dto.StudioResponse
// @Failure 404 {object} map[string]string "Studio not found"
// @Security BearerAuth
// @Router /studios/{studio_id} [get]
func (h *studioHandler) getStudio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	studio, err := h.studioService.FindStudioByID(c.Request.Context(), studioID)
	if err != nil {
		respondServiceError(c, logger, err, "get studio")
		return
	}

	c.JSON(http.StatusOK, dto.ToStudioResponse(studio))
}

// updateStudio godoc
// @Summary Update a studio
// @Description Updates a studio's name, description and default hourly rate (admin only).
// @Tags studios
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param studio body dto.UpdateStudioRequest true "Fields to update"
// @Success 200 {object} dto.StudioResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Studio not found"
// @Security BearerAuth
// @Router /studios/{studio_id} [put]
func (h *studioHandler) updateStudio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var req dto.UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	studio, err := h.studioService.UpdateStudio(c.Request.Context(), studioID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "update studio")
		return
	}

	c.JSON(http.StatusOK, dto.ToStudioResponse(studio))
}

// addUserToStudio godoc
// @Summary Add a user to a studio
// @Description Adds a specified user to a studio with a given role (requires admin permission).
// @Tags studios
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param member body dto.AddMemberRequest true "User ID and Role"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden (caller is not admin)"
// @Failure 404 {object} map[string]string "Studio or User not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/users [post]
func (h *studioHandler) addUserToStudio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	addingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.studioService.AddUserToStudio(c.Request.Context(), addingUserID, req.UserID, studioID, req.Role)
	if err != nil {
		respondServiceError(c, logger, err, "add user to studio")
		return
	}

	logger.Info("User added to studio", "studio_id", studioID, "target_user_id", req.UserID)
	c.Status(http.StatusNoContent)
}

// listStudioMembers godoc
// @Summary List studio members
// @Description Retrieves the users of a studio and their roles (members only).
// @Tags studios
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 404 {object} map[string]string "Studio not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/users [get]
func (h *studioHandler) listStudioMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	members, err := h.studioService.ListStudioMembers(c.Request.Context(), studioID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "list studio members")
		return
	}

	resp := dto.ListMembersResponse{Members: make([]dto.MemberResponse, len(members))}
	for i, m := range members {
		resp.Members[i] = dto.ToMemberResponse(m)
	}
	c.JSON(http.StatusOK, resp)
}

// removeUserFromStudio godoc
// @Summary Remove a user from a studio
// @Description Marks a membership as removed (requires admin permission, no self-removal).
// @Tags studios
// @Param studio_id path string true "Studio ID"
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Studio or User not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/users/{user_id} [delete]
func (h *studioHandler) removeUserFromStudio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	targetUserID := c.Param("user_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.studioService.RemoveUserFromStudio(c.Request.Context(), requestingUserID, targetUserID, studioID)
	if err != nil {
		respondServiceError(c, logger, err, "remove user from studio")
		return
	}

	c.Status(http.StatusNoContent)
}

// updateUserStudioRole godoc
// @Summary Change a member's role
// @Description Updates a user's role in a studio (requires admin permission).
// @Tags studios
// @Accept json
// @Param studio_id path string true "Studio ID"
// @Param user_id path string true "User ID"
// @Param role body dto.UpdateMemberRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Studio or User not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/users/{user_id}/role [put]
func (h *studioHandler) updateUserStudioRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	targetUserID := c.Param("user_id")

	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.studioService.UpdateUserStudioRole(c.Request.Context(), requestingUserID, targetUserID, studioID, req.Role)
	if err != nil {
		respondServiceError(c, logger, err, "update member role")
		return
	}

	c.Status(http.StatusNoContent)
}
