package domain

import "github.com/shopspring/decimal"

// ExpenseFrequency defines how often an expense recurs.
type ExpenseFrequency string

const (
	FrequencyAnnual  ExpenseFrequency = "ANNUAL"
	FrequencyMonthly ExpenseFrequency = "MONTHLY"
	FrequencyWeekly  ExpenseFrequency = "WEEKLY"
	FrequencyDaily   ExpenseFrequency = "DAILY"
	FrequencyOneTime ExpenseFrequency = "ONE_TIME"
)

// ExpenseCategory groups expenses for reporting (e.g., "Software", "Office").
type ExpenseCategory struct {
	CategoryID string `json:"categoryID"` // Primary Key (e.g., UUID)
	StudioID   string `json:"studioID"`   // FK -> studios.studio_id (NON-NULL)
	Name       string `json:"name"`
	Color      string `json:"color"` // Hex color used by the UI
	AuditFields
}

// Expense represents a studio cost, recurring or one-off. Monthly and annual
// equivalents are derived from Value and Frequency, never stored.
type Expense struct {
	ExpenseID       string           `json:"expenseID"` // Primary Key (e.g., UUID)
	StudioID        string           `json:"studioID"`  // FK -> studios.studio_id (NON-NULL)
	CategoryID      string           `json:"categoryID"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Value           decimal.Decimal  `json:"value"`
	Frequency       ExpenseFrequency `json:"frequency"`
	CompensationDay int              `json:"compensationDay"` // Day of month the expense is paid
	IsFixed         bool             `json:"isFixed"`
	IsActive        bool             `json:"isActive"`
	IsArchived      bool             `json:"isArchived"`
	AuditFields
}

// CategorySummary aggregates the monthly and annual equivalents of all active
// expenses in one category.
type CategorySummary struct {
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName"`
	Color           string          `json:"color"`
	ExpenseCount    int             `json:"expenseCount"`
	MonthlyTotal    decimal.Decimal `json:"monthlyTotal"`
	AnnualTotal     decimal.Decimal `json:"annualTotal"`
	FixedMonthly    decimal.Decimal `json:"fixedMonthly"` // Portion coming from fixed expenses
	VariableMonthly decimal.Decimal `json:"variableMonthly"`
}
