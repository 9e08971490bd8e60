package handlers

import (
	"net/http"

	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// proposalHandler handles HTTP requests for proposal publishing and the
// draft edit session.
type proposalHandler struct {
	proposalService portssvc.ProposalSvcFacade
}

// registerProposalRoutes registers proposal routes nested under a studio.
func registerProposalRoutes(rg *gin.RouterGroup, proposalService portssvc.ProposalSvcFacade) {
	h := &proposalHandler{proposalService: proposalService}

	proposals := rg.Group("/proposals/:proposal_id")
	{
		proposals.POST("/publish", h.publishProposal)

		draft := proposals.Group("/draft")
		{
			draft.POST("", h.beginDraft)
			draft.PUT("/sections/:section_id", h.updateDraftSection)
			draft.POST("/sections/:section_id/reorder", h.reorderDraftItems)
			draft.POST("/commit", h.commitDraft)
			draft.POST("/discard", h.discardDraft)
		}
	}
}

// registerPublicProposalRoutes registers the unauthenticated landing page route.
func registerPublicProposalRoutes(r *gin.Engine, proposalService portssvc.ProposalSvcFacade) {
	h := &proposalHandler{proposalService: proposalService}
	r.GET("/p/:slug", h.getPublicProposal)
}

// publishProposal godoc
// @Summary Publish or unpublish a proposal
// @Description Toggles public visibility of the proposal landing page.
// @Tags proposals
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param proposal_id path string true "Proposal ID"
// @Param publish body dto.PublishProposalRequest true "Published flag"
// @Success 200 {object} dto.ProposalResponse
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/proposals/{proposal_id}/publish [post]
func (h *proposalHandler) publishProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	proposalID := c.Param("proposal_id")

	var req dto.PublishProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.PublishProposal(c.Request.Context(), studioID, proposalID, *req.Published, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "publish proposal")
		return
	}

	logger.Info("Proposal visibility changed", "proposal_id", proposalID, "published", *req.Published)
	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// beginDraft godoc
// @Summary Begin a draft edit session
// @Description Copies the published sections into a working draft. An existing draft is discarded.
// @Tags proposals
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/proposals/{proposal_id}/draft [post]
func (h *proposalHandler) beginDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	proposalID := c.Param("proposal_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.BeginDraft(c.Request.Context(), studioID, proposalID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "begin draft")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// updateDraftSection godoc
// @Summary Edit one draft section
// @Description Applies edits to one section of the draft. The published page stays untouched until commit.
// @Tags proposals
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param proposal_id path string true "Proposal ID"
// @Param section_id path string true "Section ID"
// @Param section body dto.UpdateDraftSectionRequest true "Section edits"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "No draft open or unknown section"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/proposals/{proposal_id}/draft/sections/{section_id} [put]
func (h *proposalHandler) updateDraftSection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	proposalID := c.Param("proposal_id")
	sectionID := c.Param("section_id")

	var req dto.UpdateDraftSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.UpdateDraftSection(c.Request.Context(), studioID, proposalID, sectionID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "update draft section")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// reorderDraftItems godoc
// @Summary Reorder one draft section's items
// @Description Rearranges the items of one draft section. The new order must be a permutation of the current item IDs.
// @Tags proposals
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param proposal_id path string true "Proposal ID"
// @Param section_id path string true "Section ID"
// @Param order body dto.ReorderItemsRequest true "New item order"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "Order is not a permutation of the section's items"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/proposals/{proposal_id}/draft/sections/{section_id}/reorder [post]
func (h *proposalHandler) reorderDraftItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	proposalID := c.Param("proposal_id")
	sectionID := c.Param("section_id")

	var req dto.ReorderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.ReorderDraftItems(c.Request.Context(), studioID, proposalID, sectionID, req.OrderedItemIDs, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "reorder draft items")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// commitDraft godoc
// @Summary Commit the draft
// @Description Publishes the draft sections atomically, replacing the live page.
// @Tags proposals
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "No draft open"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/proposals/{proposal_id}/draft/commit [post]
func (h *proposalHandler) commitDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	proposalID := c.Param("proposal_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.CommitDraft(c.Request.Context(), studioID, proposalID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "commit draft")
		return
	}

	logger.Info("Draft committed", "proposal_id", proposalID)
	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// discardDraft godoc
// @Summary Discard the draft
// @Description Drops the draft, reverting to the last published sections.
// @Tags proposals
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/proposals/{proposal_id}/draft/discard [post]
func (h *proposalHandler) discardDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	proposalID := c.Param("proposal_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposal, err := h.proposalService.DiscardDraft(c.Request.Context(), studioID, proposalID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "discard draft")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// getPublicProposal godoc
// @Summary Public proposal landing page
// @Description Serves a published proposal by its share slug. Hidden sections and drafts never leak. Unpublished or unknown slugs return 404.
// @Tags proposals
// @Produce json
// @Param slug path string true "Share slug"
// @Success 200 {object} dto.PublicProposalResponse
// @Failure 404 {object} map[string]string "Not found"
// @Router /p/{slug} [get]
func (h *proposalHandler) getPublicProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	proposal, err := h.proposalService.GetPublicProposal(c.Request.Context(), slug)
	if err != nil {
		respondServiceError(c, logger, err, "get public proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicProposalResponse(proposal))
}
