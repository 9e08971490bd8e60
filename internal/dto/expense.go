package dto

import (
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to create a new expense.
type CreateExpenseRequest struct {
	Name            string                  `json:"name" binding:"required"`
	Description     string                  `json:"description"`
	Value           decimal.Decimal         `json:"value" binding:"required,gt=0"`
	Frequency       domain.ExpenseFrequency `json:"frequency" binding:"required,oneof=ANNUAL MONTHLY WEEKLY DAILY ONE_TIME"`
	CompensationDay int                     `json:"compensationDay" binding:"omitempty,min=1,max=31"`
	CategoryID      string                  `json:"categoryID" binding:"required"`
	IsFixed         bool                    `json:"isFixed"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	Name            *string                  `json:"name"`
	Description     *string                  `json:"description"`
	Value           *decimal.Decimal         `json:"value"`
	Frequency       *domain.ExpenseFrequency `json:"frequency" binding:"omitempty,oneof=ANNUAL MONTHLY WEEKLY DAILY ONE_TIME"`
	CompensationDay *int                     `json:"compensationDay" binding:"omitempty,min=1,max=31"`
	CategoryID      *string                  `json:"categoryID"`
	IsFixed         *bool                    `json:"isFixed"`
}

// ExpenseResponse defines the data returned for an expense. MonthlyValue and
// AnnualValue are derived from Value and Frequency, never stored.
type ExpenseResponse struct {
	ExpenseID       string                  `json:"expenseID"`
	StudioID        string                  `json:"studioID"`
	CategoryID      string                  `json:"categoryID"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Value           decimal.Decimal         `json:"value"`
	Frequency       domain.ExpenseFrequency `json:"frequency"`
	CompensationDay int                     `json:"compensationDay"`
	IsFixed         bool                    `json:"isFixed"`
	IsArchived      bool                    `json:"isArchived"`
	MonthlyValue    decimal.Decimal         `json:"monthlyValue"`
	AnnualValue     decimal.Decimal         `json:"annualValue"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO, deriving
// the monthly and annual equivalents from the stored value and frequency. It
// errors when the stored frequency is not a known value.
func ToExpenseResponse(e *domain.Expense) (ExpenseResponse, error) {
	monthly, err := pricing.MonthlyValue(e.Value, e.Frequency)
	if err != nil {
		return ExpenseResponse{}, err
	}
	annual, err := pricing.AnnualValue(e.Value, e.Frequency)
	if err != nil {
		return ExpenseResponse{}, err
	}
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		StudioID:        e.StudioID,
		CategoryID:      e.CategoryID,
		Name:            e.Name,
		Description:     e.Description,
		Value:           e.Value,
		Frequency:       e.Frequency,
		CompensationDay: e.CompensationDay,
		IsFixed:         e.IsFixed,
		IsArchived:      e.IsArchived,
		MonthlyValue:    monthly,
		AnnualValue:     annual,
		CreatedAt:       e.CreatedAt,
	}, nil
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	IncludeArchived bool `form:"includeArchived,default=false"`
	Limit           int  `form:"limit,default=20"`
	Offset          int  `form:"offset,default=0"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ArchiveExpenseRequest toggles whether an expense is hidden from the summary.
type ArchiveExpenseRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}

// CreateCategoryRequest defines the data needed to create an expense category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// CategoryResponse defines the data returned for an expense category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Color      string `json:"color"`
}

// ToCategoryResponse converts a domain.ExpenseCategory to CategoryResponse DTO
func ToCategoryResponse(c *domain.ExpenseCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Color:      c.Color,
	}
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategorySummaryResponse is one row of the expense summary.
type CategorySummaryResponse struct {
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName"`
	Color           string          `json:"color"`
	ExpenseCount    int             `json:"expenseCount"`
	MonthlyTotal    decimal.Decimal `json:"monthlyTotal"`
	AnnualTotal     decimal.Decimal `json:"annualTotal"`
	FixedMonthly    decimal.Decimal `json:"fixedMonthly"`
	VariableMonthly decimal.Decimal `json:"variableMonthly"`
}

// ExpenseSummaryResponse aggregates a studio's expenses per category.
type ExpenseSummaryResponse struct {
	Categories   []CategorySummaryResponse `json:"categories"`
	MonthlyTotal decimal.Decimal           `json:"monthlyTotal"`
	AnnualTotal  decimal.Decimal           `json:"annualTotal"`
}

// ToExpenseSummaryResponse converts the per-category summaries to the response
// shape, accumulating the studio-wide monthly and annual totals.
func ToExpenseSummaryResponse(summaries []domain.CategorySummary) ExpenseSummaryResponse {
	resp := ExpenseSummaryResponse{
		Categories: make([]CategorySummaryResponse, len(summaries)),
	}
	for i, s := range summaries {
		resp.Categories[i] = CategorySummaryResponse{
			CategoryID:      s.CategoryID,
			CategoryName:    s.CategoryName,
			Color:           s.Color,
			ExpenseCount:    s.ExpenseCount,
			MonthlyTotal:    s.MonthlyTotal,
			AnnualTotal:     s.AnnualTotal,
			FixedMonthly:    s.FixedMonthly,
			VariableMonthly: s.VariableMonthly,
		}
		resp.MonthlyTotal = resp.MonthlyTotal.Add(s.MonthlyTotal)
		resp.AnnualTotal = resp.AnnualTotal.Add(s.AnnualTotal)
	}
	return resp
}
