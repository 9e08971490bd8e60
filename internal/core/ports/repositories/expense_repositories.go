package repositories

import (
	"context"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// ExpenseReader defines read operations for expense and category data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of a studio's expenses.
	// Archived expenses are included only when includeArchived is set.
	ListExpenses(ctx context.Context, studioID string, includeArchived bool, limit int, offset int) ([]domain.Expense, error)

	// ListExpensesByCategory retrieves all active, unarchived expenses of a
	// studio grouped by category ID.
	ListExpensesByCategory(ctx context.Context, studioID string) (map[string][]domain.Expense, error)

	// FindCategoryByID retrieves a category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)

	// ListCategories retrieves all categories of a studio.
	ListCategories(ctx context.Context, studioID string) ([]domain.ExpenseCategory, error)
}

// ExpenseWriter defines write operations for expense and category data
type ExpenseWriter interface {
	// SaveExpense inserts a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates mutable expense fields.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// ArchiveExpense marks an expense as archived (or unarchived).
	ArchiveExpense(ctx context.Context, expenseID string, archived bool, userID string, now time.Time) error

	// DeactivateExpense marks an expense as inactive.
	DeactivateExpense(ctx context.Context, expenseID string, userID string, now time.Time) error

	// SaveCategory inserts a new category.
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error

	// UpdateCategory updates mutable category fields.
	UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error

	// DeleteCategory removes a category; fails while expenses still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
