package handlers

import (
	"net/http"

	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to a studio's budgets.
type budgetHandler struct {
	budgetService   portssvc.BudgetSvcFacade
	proposalService portssvc.ProposalSvcFacade
}

// RegisterBudgetRoutes registers budget routes nested under a studio. The
// proposal generation routes live here because a proposal is addressed through
// its budget until it exists.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, proposalService portssvc.ProposalSvcFacade) {
	h := &budgetHandler{budgetService: budgetService, proposalService: proposalService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/:budget_id", h.getBudget)
		budgets.PUT("/:budget_id", h.updateBudget)
		budgets.DELETE("/:budget_id", h.deleteBudget)

		budgets.PUT("/:budget_id/additional", h.upsertAdditional)

		budgets.POST("/:budget_id/references", h.addReference)
		budgets.DELETE("/:budget_id/references/:reference_id", h.removeReference)

		budgets.POST("/:budget_id/proposal", h.generateProposal)
		budgets.GET("/:budget_id/proposal", h.getProposal)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a budget with its full line-item tree. The server validates the tree shape against the budget type and recomputes all totals.
// @Tags budgets
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input or tree shape mismatch"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), studioID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "create budget")
		return
	}

	logger.Info("Budget created successfully", "budget_id", budget.BudgetID)
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List budgets
// @Description Retrieves a page of the studio's budgets using token pagination, newest first.
// @Tags budgets
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param limit query int false "Max results" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budgets, nextToken, err := h.budgetService.ListBudgets(c.Request.Context(), studioID, requestingUserID, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "list budgets")
		return
	}

	resp := dto.ListBudgetsResponse{
		Budgets:   make([]dto.BudgetResponse, len(budgets)),
		NextToken: nextToken,
	}
	for i := range budgets {
		resp.Budgets[i] = dto.ToBudgetResponse(&budgets[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getBudget godoc
// @Summary Get a budget by ID
// @Description Retrieves a budget with its full line-item tree.
// @Tags budgets
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), studioID, budgetID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "get budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// updateBudget godoc
// @Summary Update a budget
// @Description Applies header and pricing changes, replaces the line-item tree when one is sent and recomputes all totals.
// @Tags budgets
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), studioID, budgetID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "update budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Marks a budget as inactive.
// @Tags budgets
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), studioID, budgetID, requestingUserID); err != nil {
		respondServiceError(c, logger, err, "delete budget")
		return
	}

	c.Status(http.StatusNoContent)
}

// upsertAdditional godoc
// @Summary Set a budget's additional charges
// @Description Replaces the budget's wet/dry area and delivery inputs and recomputes all totals.
// @Tags budgets
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Param additional body dto.BudgetAdditionalRequest true "Additional charge inputs"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id}/additional [put]
func (h *budgetHandler) upsertAdditional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")

	var req dto.BudgetAdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), studioID, budgetID, dto.UpdateBudgetRequest{Additional: &req}, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "update budget additional")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// addReference godoc
// @Summary Attach a reference project
// @Description Attaches a past-project reference to a budget.
// @Tags budgets
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Param reference body dto.AddReferenceRequest true "Reference details"
// @Success 201 {object} domain.BudgetReference
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id}/references [post]
func (h *budgetHandler) addReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")

	var req dto.AddReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reference, err := h.budgetService.AddReference(c.Request.Context(), studioID, budgetID, req.ProjectName, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "add reference")
		return
	}

	c.JSON(http.StatusCreated, reference)
}

// removeReference godoc
// @Summary Detach a reference project
// @Description Detaches a past-project reference from a budget.
// @Tags budgets
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Param reference_id path string true "Reference ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Budget or reference not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id}/references/{reference_id} [delete]
func (h *budgetHandler) removeReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")
	referenceID := c.Param("reference_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetService.RemoveReference(c.Request.Context(), studioID, budgetID, referenceID, requestingUserID); err != nil {
		respondServiceError(c, logger, err, "remove reference")
		return
	}

	c.Status(http.StatusNoContent)
}

// generateProposal godoc
// @Summary Generate the proposal page for a budget
// @Description Builds the landing-page sections from the budget's line items. Regenerating replaces the published sections and keeps the share slug.
// @Tags proposals
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Success 201 {object} dto.ProposalResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id}/proposal [post]
func (h *budgetHandler) generateProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.GenerateProposal(c.Request.Context(), studioID, budgetID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "generate proposal")
		return
	}

	logger.Info("Proposal generated", "proposal_id", proposal.ProposalID, "budget_id", budgetID)
	c.JSON(http.StatusCreated, dto.ToProposalResponse(proposal))
}

// getProposal godoc
// @Summary Get the proposal attached to a budget
// @Description Retrieves the proposal page for a budget, including any open draft.
// @Tags proposals
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param budget_id path string true "Budget ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/budgets/{budget_id}/proposal [get]
func (h *budgetHandler) getProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	budgetID := c.Param("budget_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.GetProposalByBudgetID(c.Request.Context(), studioID, budgetID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "get proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}
