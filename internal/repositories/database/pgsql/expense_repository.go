package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, studio_id, category_id, name, description, value, frequency, compensation_day, is_fixed, is_active, is_archived, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.StudioID,
		&m.CategoryID,
		&m.Name,
		&m.Description,
		&m.Value,
		&m.Frequency,
		&m.CompensationDay,
		&m.IsFixed,
		&m.IsActive,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, studio_id, category_id, name, description, value, frequency, compensation_day, is_fixed, is_active, is_archived, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.StudioID,
		m.CategoryID,
		m.Name,
		m.Description,
		m.Value,
		m.Frequency,
		m.CompensationDay,
		m.IsFixed,
		m.IsActive,
		m.IsArchived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1 AND is_active = TRUE;`
	m, err := scanExpense(r.db.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, studioID string, includeArchived bool, limit int, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE studio_id = $1 AND is_active = TRUE AND (is_archived = FALSE OR $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, studioID, includeArchived, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for studio %s: %w", studioID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return expenses, nil
}

func (r *PgxExpenseRepository) ListExpensesByCategory(ctx context.Context, studioID string) (map[string][]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE studio_id = $1 AND is_active = TRUE AND is_archived = FALSE
		ORDER BY category_id, created_at;
	`
	rows, err := r.db.Query(ctx, query, studioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by category for studio %s: %w", studioID, err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.Expense)
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expense := mapping.ToDomainExpense(m)
		grouped[expense.CategoryID] = append(grouped[expense.CategoryID], expense)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return grouped, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET category_id = $1, name = $2, description = $3, value = $4, frequency = $5, compensation_day = $6, is_fixed = $7, last_updated_at = $8, last_updated_by = $9
		WHERE expense_id = $10 AND is_active = TRUE;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Description,
		m.Value,
		m.Frequency,
		m.CompensationDay,
		m.IsFixed,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s not found: %w", m.ExpenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) ArchiveExpense(ctx context.Context, expenseID string, archived bool, userID string, now time.Time) error {
	query := `
		UPDATE expenses
		SET is_archived = $1, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = $4 AND is_active = TRUE;
	`
	cmdTag, err := r.db.Exec(ctx, query, archived, now, userID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to archive expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s not found: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeactivateExpense(ctx context.Context, expenseID string, userID string, now time.Time) error {
	query := `
		UPDATE expenses
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE expense_id = $3 AND is_active = TRUE;
	`
	cmdTag, err := r.db.Exec(ctx, query, now, userID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to deactivate expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s not found: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)
	query := `
		INSERT INTO expense_categories (category_id, studio_id, name, color, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.CategoryID,
		m.StudioID,
		m.Name,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("category %s already exists in studio: %w", m.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	query := `
		SELECT category_id, studio_id, name, color, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories
		WHERE category_id = $1;
	`
	var m models.ExpenseCategory
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.StudioID,
		&m.Name,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	category := mapping.ToDomainExpenseCategory(m)
	return &category, nil
}

func (r *PgxExpenseRepository) ListCategories(ctx context.Context, studioID string) ([]domain.ExpenseCategory, error) {
	query := `
		SELECT category_id, studio_id, name, color, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories
		WHERE studio_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, studioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for studio %s: %w", studioID, err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var m models.ExpenseCategory
		err := rows.Scan(
			&m.CategoryID,
			&m.StudioID,
			&m.Name,
			&m.Color,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainExpenseCategory(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, nil
}

func (r *PgxExpenseRepository) UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)
	query := `
		UPDATE expense_categories
		SET name = $1, color = $2, last_updated_at = $3, last_updated_by = $4
		WHERE category_id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, m.Name, m.Color, m.LastUpdatedAt, m.LastUpdatedBy, m.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found: %w", m.CategoryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM expense_categories WHERE category_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("category %s still has expenses: %w", categoryID, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found: %w", categoryID, apperrors.ErrNotFound)
	}
	return nil
}
