package handlers

import (
	"net/http"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// suggestionHandler handles HTTP requests for AI budget suggestions.
type suggestionHandler struct {
	suggestionService portssvc.SuggestionSvc
}

// registerSuggestionRoutes registers suggestion routes nested under a studio.
func registerSuggestionRoutes(rg *gin.RouterGroup, suggestionService portssvc.SuggestionSvc) {
	h := &suggestionHandler{suggestionService: suggestionService}
	rg.POST("/suggestions/budget", h.suggestBudget)
}

// suggestBudget godoc
// @Summary Suggest a budget value
// @Description Requests a value and margin suggestion from the external provider for the given project parameters.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param suggestion body dto.SuggestionRequest true "Project parameters"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Provider unavailable"
// @Security BearerAuth
// @Router /studios/{studio_id}/suggestions/budget [post]
func (h *suggestionHandler) suggestBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var req dto.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	suggestion, err := h.suggestionService.SuggestBudget(c.Request.Context(), studioID, requestingUserID, domain.SuggestionRequest{
		ProjectType:   req.ProjectType,
		AreaM2:        req.AreaM2,
		Complexity:    req.Complexity,
		DeliveryDays:  req.DeliveryDays,
		BudgetRange:   req.BudgetRange,
		ExtraServices: req.ExtraServices,
	})
	if err != nil {
		respondServiceError(c, logger, err, "suggest budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToSuggestionResponse(suggestion))
}
