package handlers

import (
	"net/http"

	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to a studio's expenses and
// expense categories.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// registerExpenseRoutes registers expense and category routes nested under a studio.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{expenseService: expenseService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/summary", h.getExpenseSummary)
		expenses.GET("/:expense_id", h.getExpense)
		expenses.PUT("/:expense_id", h.updateExpense)
		expenses.DELETE("/:expense_id", h.deleteExpense)
		expenses.POST("/:expense_id/archive", h.archiveExpense)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.PUT("/:category_id", h.updateCategory)
		categories.DELETE("/:category_id", h.deleteCategory)
	}
}

// createExpense godoc
// @Summary Create an expense
// @Description Creates a new expense in the studio.
// @Tags expenses
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /studios/{studio_id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), studioID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "create expense")
		return
	}

	resp, err := dto.ToExpenseResponse(expense)
	if err != nil {
		logger.Error("Stored expense has an unknown frequency", "expense_id", expense.ExpenseID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// listExpenses godoc
// @Summary List expenses
// @Description Retrieves a paginated list of the studio's expenses.
// @Tags expenses
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param includeArchived query bool false "Include archived expenses" default(false)
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 404 {object} map[string]string "Studio not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), studioID, requestingUserID, params)
	if err != nil {
		respondServiceError(c, logger, err, "list expenses")
		return
	}

	resp := dto.ListExpensesResponse{Expenses: make([]dto.ExpenseResponse, len(expenses))}
	for i := range expenses {
		expenseResp, err := dto.ToExpenseResponse(&expenses[i])
		if err != nil {
			logger.Error("Stored expense has an unknown frequency", "expense_id", expenses[i].ExpenseID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
			return
		}
		resp.Expenses[i] = expenseResp
	}
	c.JSON(http.StatusOK, resp)
}

// getExpenseSummary godoc
// @Summary Expense summary per category
// @Description Aggregates the studio's active expenses per category with monthly and annual equivalents.
// @Tags expenses
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Failure 404 {object} map[string]string "Studio not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/expenses/summary [get]
func (h *expenseHandler) getExpenseSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summaries, err := h.expenseService.GetExpenseSummary(c.Request.Context(), studioID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "get expense summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(summaries))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Description Retrieves a single expense, verifying studio ownership.
// @Tags expenses
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/expenses/{expense_id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	expenseID := c.Param("expense_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), studioID, expenseID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "get expense")
		return
	}

	resp, err := dto.ToExpenseResponse(expense)
	if err != nil {
		logger.Error("Stored expense has an unknown frequency", "expense_id", expense.ExpenseID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get expense"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateExpense godoc
// @Summary Update an expense
// @Description Updates an existing expense's details.
// @Tags expenses
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param expense_id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/expenses/{expense_id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	expenseID := c.Param("expense_id")

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), studioID, expenseID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "update expense")
		return
	}

	resp, err := dto.ToExpenseResponse(expense)
	if err != nil {
		logger.Error("Stored expense has an unknown frequency", "expense_id", expense.ExpenseID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Marks an expense as inactive.
// @Tags expenses
// @Param studio_id path string true "Studio ID"
// @Param expense_id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/expenses/{expense_id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	expenseID := c.Param("expense_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), studioID, expenseID, requestingUserID); err != nil {
		respondServiceError(c, logger, err, "delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}

// archiveExpense godoc
// @Summary Archive or unarchive an expense
// @Description Hides an expense from the summary without deleting it, or restores it.
// @Tags expenses
// @Accept json
// @Param studio_id path string true "Studio ID"
// @Param expense_id path string true "Expense ID"
// @Param archive body dto.ArchiveExpenseRequest true "Archived flag"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/expenses/{expense_id}/archive [post]
func (h *expenseHandler) archiveExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	expenseID := c.Param("expense_id")

	var req dto.ArchiveExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.expenseService.ArchiveExpense(c.Request.Context(), studioID, expenseID, *req.Archived, requestingUserID); err != nil {
		respondServiceError(c, logger, err, "archive expense")
		return
	}

	c.Status(http.StatusNoContent)
}

// createCategory godoc
// @Summary Create an expense category
// @Description Creates a new expense category in the studio. Names are unique per studio.
// @Tags expenses
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} map[string]string "Category name already exists"
// @Security BearerAuth
// @Router /studios/{studio_id}/categories [post]
func (h *expenseHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.expenseService.CreateCategory(c.Request.Context(), studioID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List expense categories
// @Description Retrieves all categories of the studio.
// @Tags expenses
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 404 {object} map[string]string "Studio not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/categories [get]
func (h *expenseHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	categories, err := h.expenseService.ListCategories(c.Request.Context(), studioID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "list categories")
		return
	}

	resp := dto.ListCategoriesResponse{Categories: make([]dto.CategoryResponse, len(categories))}
	for i := range categories {
		resp.Categories[i] = dto.ToCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateCategory godoc
// @Summary Update an expense category
// @Description Updates a category's name and color.
// @Tags expenses
// @Accept json
// @Produce json
// @Param studio_id path string true "Studio ID"
// @Param category_id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /studios/{studio_id}/categories/{category_id} [put]
func (h *expenseHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	categoryID := c.Param("category_id")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.expenseService.UpdateCategory(c.Request.Context(), studioID, categoryID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete an expense category
// @Description Removes a category. Fails while expenses still reference it.
// @Tags expenses
// @Param studio_id path string true "Studio ID"
// @Param category_id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Category still has expenses"
// @Security BearerAuth
// @Router /studios/{studio_id}/categories/{category_id} [delete]
func (h *expenseHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studioID := c.Param("studio_id")
	categoryID := c.Param("category_id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteCategory(c.Request.Context(), studioID, categoryID, requestingUserID); err != nil {
		respondServiceError(c, logger, err, "delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
