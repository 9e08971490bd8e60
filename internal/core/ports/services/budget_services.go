package services

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a budget with its full line-item tree,
	// verifying it belongs to the studio.
	GetBudgetByID(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Budget, error)

	// ListBudgets retrieves a page of the studio's budgets using token-based
	// pagination. It returns the budgets and a token for the next page.
	ListBudgets(ctx context.Context, studioID string, requestingUserID string, limit int, nextToken string) ([]domain.Budget, string, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// CreateBudget validates the line-item shape against the budget type,
	// recomputes all totals and persists the tree in one transaction.
	CreateBudget(ctx context.Context, studioID string, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error)

	// UpdateBudget applies header and pricing changes, replaces the tree when
	// one is sent, recomputes totals and persists in one transaction.
	UpdateBudget(ctx context.Context, studioID string, budgetID string, req dto.UpdateBudgetRequest, requestingUserID string) (*domain.Budget, error)

	// DeleteBudget marks a budget as inactive.
	DeleteBudget(ctx context.Context, studioID string, budgetID string, requestingUserID string) error

	// AddReference attaches a past-project reference to a budget.
	AddReference(ctx context.Context, studioID string, budgetID string, projectName string, requestingUserID string) (*domain.BudgetReference, error)

	// RemoveReference detaches a past-project reference from a budget.
	RemoveReference(ctx context.Context, studioID string, budgetID string, referenceID string, requestingUserID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
