package services

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves an expense, verifying it belongs to the studio.
	GetExpenseByID(ctx context.Context, studioID string, expenseID string, requestingUserID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of a studio's expenses.
	ListExpenses(ctx context.Context, studioID string, requestingUserID string, params dto.ListExpensesParams) ([]domain.Expense, error)

	// GetExpenseSummary aggregates the studio's active expenses per category,
	// with monthly and annual equivalents derived from each frequency.
	GetExpenseSummary(ctx context.Context, studioID string, requestingUserID string) ([]domain.CategorySummary, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense creates a new expense in the studio.
	CreateExpense(ctx context.Context, studioID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, studioID string, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// ArchiveExpense hides an expense from the summary without deleting it.
	ArchiveExpense(ctx context.Context, studioID string, expenseID string, archived bool, requestingUserID string) error

	// DeleteExpense marks an expense as inactive.
	DeleteExpense(ctx context.Context, studioID string, expenseID string, requestingUserID string) error
}

// ExpenseCategorySvc defines operations for expense categories
type ExpenseCategorySvc interface {
	// CreateCategory creates a new expense category in the studio.
	CreateCategory(ctx context.Context, studioID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.ExpenseCategory, error)

	// UpdateCategory updates a category's name and color.
	UpdateCategory(ctx context.Context, studioID string, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.ExpenseCategory, error)

	// ListCategories retrieves all categories of a studio.
	ListCategories(ctx context.Context, studioID string, requestingUserID string) ([]domain.ExpenseCategory, error)

	// DeleteCategory removes a category. Fails with ErrConflict while
	// expenses still reference it.
	DeleteCategory(ctx context.Context, studioID string, categoryID string, requestingUserID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	ExpenseCategorySvc
}
