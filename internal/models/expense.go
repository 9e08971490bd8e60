package models

import "github.com/shopspring/decimal"

// ExpenseCategory is the database representation of an expense category row.
type ExpenseCategory struct {
	CategoryID string `db:"category_id"`
	StudioID   string `db:"studio_id"`
	Name       string `db:"name"`
	Color      string `db:"color"`
	AuditFields
}

// Expense is the database representation of an expense row.
type Expense struct {
	ExpenseID       string          `db:"expense_id"`
	StudioID        string          `db:"studio_id"`
	CategoryID      string          `db:"category_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Value           decimal.Decimal `db:"value"`
	Frequency       string          `db:"frequency"`
	CompensationDay int             `db:"compensation_day"`
	IsFixed         bool            `db:"is_fixed"`
	IsActive        bool            `db:"is_active"`
	IsArchived      bool            `db:"is_archived"`
	AuditFields
}
