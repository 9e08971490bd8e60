package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/pricing"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, authorizer portssvc.StudioAuthorizerSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{StudioAuthorizer: authorizer},
		expenseRepo: expenseRepo,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// GetExpenseByID retrieves an expense, verifying it belongs to the studio
func (s *expenseService) GetExpenseByID(ctx context.Context, studioID string, expenseID string, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.StudioID != studioID {
		return nil, apperrors.ErrNotFound
	}
	return expense, nil
}

// ListExpenses retrieves a paginated list of a studio's expenses
func (s *expenseService) ListExpenses(ctx context.Context, studioID string, requestingUserID string, params dto.ListExpensesParams) ([]domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, studioID, params.IncludeArchived, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("studio_id", studioID))
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// GetExpenseSummary aggregates the studio's active expenses per category.
// Archived expenses are excluded; one-time expenses count once, not amortized.
func (s *expenseService) GetExpenseSummary(ctx context.Context, studioID string, requestingUserID string) ([]domain.CategorySummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	categories, err := s.expenseRepo.ListCategories(ctx, studioID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories for summary", slog.String("studio_id", studioID))
		return nil, err
	}

	byCategory, err := s.expenseRepo.ListExpensesByCategory(ctx, studioID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for summary", slog.String("studio_id", studioID))
		return nil, err
	}

	summaries := make([]domain.CategorySummary, 0, len(categories))
	for _, cat := range categories {
		summary := domain.CategorySummary{
			CategoryID:   cat.CategoryID,
			CategoryName: cat.Name,
			Color:        cat.Color,
		}
		for _, exp := range byCategory[cat.CategoryID] {
			monthly, err := pricing.MonthlyValue(exp.Value, exp.Frequency)
			if err != nil {
				return nil, fmt.Errorf("expense %s: %w", exp.ExpenseID, err)
			}
			annual, err := pricing.AnnualValue(exp.Value, exp.Frequency)
			if err != nil {
				return nil, fmt.Errorf("expense %s: %w", exp.ExpenseID, err)
			}
			summary.ExpenseCount++
			summary.MonthlyTotal = summary.MonthlyTotal.Add(monthly)
			summary.AnnualTotal = summary.AnnualTotal.Add(annual)
			if exp.IsFixed {
				summary.FixedMonthly = summary.FixedMonthly.Add(monthly)
			} else {
				summary.VariableMonthly = summary.VariableMonthly.Add(monthly)
			}
		}
		summaries = append(summaries, summary)
	}

	// Stable output ordering regardless of map iteration
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CategoryName < summaries[j].CategoryName
	})
	return summaries, nil
}

// CreateExpense creates a new expense in the studio
func (s *expenseService) CreateExpense(ctx context.Context, studioID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	// The category must exist in the same studio
	category, err := s.expenseRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, req.CategoryID)
	}
	if category.StudioID != studioID {
		return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, req.CategoryID)
	}

	if req.Value.IsNegative() {
		return nil, fmt.Errorf("%w: expense value must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		StudioID:        studioID,
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Value:           req.Value,
		Frequency:       req.Frequency,
		CompensationDay: req.CompensationDay,
		IsFixed:         req.IsFixed,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("studio_id", studioID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("studio_id", studioID))
	return &expense, nil
}

// UpdateExpense updates an existing expense
func (s *expenseService) UpdateExpense(ctx context.Context, studioID string, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	expense, err := s.GetExpenseByID(ctx, studioID, expenseID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		category, err := s.expenseRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil || category.StudioID != studioID {
			return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, *req.CategoryID)
		}
		expense.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, fmt.Errorf("%w: expense value must not be negative", apperrors.ErrValidation)
		}
		expense.Value = *req.Value
	}
	if req.Frequency != nil {
		expense.Frequency = *req.Frequency
	}
	if req.CompensationDay != nil {
		expense.CompensationDay = *req.CompensationDay
	}
	if req.IsFixed != nil {
		expense.IsFixed = *req.IsFixed
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

// ArchiveExpense hides an expense from the summary without deleting it
func (s *expenseService) ArchiveExpense(ctx context.Context, studioID string, expenseID string, archived bool, requestingUserID string) error {
	if _, err := s.GetExpenseByID(ctx, studioID, expenseID, requestingUserID); err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.expenseRepo.ArchiveExpense(ctx, expenseID, archived, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to archive expense", slog.String("expense_id", expenseID))
		return err
	}
	return nil
}

// DeleteExpense marks an expense as inactive
func (s *expenseService) DeleteExpense(ctx context.Context, studioID string, expenseID string, requestingUserID string) error {
	if _, err := s.GetExpenseByID(ctx, studioID, expenseID, requestingUserID); err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.expenseRepo.DeactivateExpense(ctx, expenseID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// CreateCategory creates a new expense category in the studio
func (s *expenseService) CreateCategory(ctx context.Context, studioID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.ExpenseCategory, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.ExpenseCategory{
		CategoryID: uuid.NewString(),
		StudioID:   studioID,
		Name:       req.Name,
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("studio_id", studioID))
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates a category's name and color
func (s *expenseService) UpdateCategory(ctx context.Context, studioID string, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.ExpenseCategory, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	category, err := s.expenseRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.StudioID != studioID {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves all categories of a studio
func (s *expenseService) ListCategories(ctx context.Context, studioID string, requestingUserID string) ([]domain.ExpenseCategory, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	categories, err := s.expenseRepo.ListCategories(ctx, studioID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("studio_id", studioID))
		return nil, err
	}
	if categories == nil {
		return []domain.ExpenseCategory{}, nil
	}
	return categories, nil
}

// DeleteCategory removes a category. Fails with ErrConflict while expenses
// still reference it.
func (s *expenseService) DeleteCategory(ctx context.Context, studioID string, categoryID string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return err
	}

	category, err := s.expenseRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.StudioID != studioID {
		return apperrors.ErrNotFound
	}

	if err := s.expenseRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	return nil
}
