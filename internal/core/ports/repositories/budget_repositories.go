package repositories

import (
	"context"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a budget with its full child tree (phases,
	// segments, activities, items, additional, references) attached.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves a paginated list of a studio's budgets (headers
	// only) using token-based pagination. It returns the budgets and a token
	// for the next page.
	ListBudgets(ctx context.Context, studioID string, limit int, nextToken *string) ([]domain.Budget, *string, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget persists a budget and its entire child tree within a single
	// database transaction.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget replaces a budget's header fields, child tree and derived
	// totals within a single database transaction.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeactivateBudget marks a budget as inactive.
	DeactivateBudget(ctx context.Context, budgetID string, userID string, now time.Time) error

	// UpsertAdditional inserts or replaces the surcharge inputs of a budget.
	UpsertAdditional(ctx context.Context, additional domain.BudgetAdditional) error

	// SaveReference appends a reference project to a budget.
	SaveReference(ctx context.Context, reference domain.BudgetReference) error

	// DeleteReference removes a reference project from a budget.
	DeleteReference(ctx context.Context, referenceID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
