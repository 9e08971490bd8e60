package models

import "github.com/shopspring/decimal"

// Budget is the database representation of a budget row.
type Budget struct {
	BudgetID           string          `db:"budget_id"`
	StudioID           string          `db:"studio_id"`
	ClientID           string          `db:"client_id"` // Nullable in DB
	Name               string          `db:"name"`
	Description        string          `db:"description"`
	BudgetType         string          `db:"budget_type"`
	Model              string          `db:"model"`
	BaseValue          decimal.Decimal `db:"base_value"`
	ProfitMarginPct    decimal.Decimal `db:"profit_margin_pct"`
	AdditionalValue    decimal.Decimal `db:"additional_value"`
	Discount           decimal.Decimal `db:"discount"`
	DiscountType       string          `db:"discount_type"`
	ComplexityPct      decimal.Decimal `db:"complexity_pct"`
	DeliveryUrgencyPct decimal.Decimal `db:"delivery_urgency_pct"`
	DeliveryTimeDays   int             `db:"delivery_time_days"`
	Total              decimal.Decimal `db:"total"`
	TotalWithAdditions decimal.Decimal `db:"total_with_additions"`
	AveragePricePerM2  decimal.Decimal `db:"average_price_per_m2"`
	IsActive           bool            `db:"is_active"`
	AuditFields
}

// BudgetPhase is a phase row of a complete budget.
type BudgetPhase struct {
	PhaseID     string          `db:"phase_id"`
	BudgetID    string          `db:"budget_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	BaseValue   decimal.Decimal `db:"base_value"`
	AuditFields
}

// BudgetSegment is a segment row belonging to a phase.
type BudgetSegment struct {
	SegmentID   string `db:"segment_id"`
	PhaseID     string `db:"phase_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// BudgetActivity is an activity row belonging to a phase or segment.
type BudgetActivity struct {
	ActivityID  string          `db:"activity_id"`
	PhaseID     string          `db:"phase_id"`
	SegmentID   string          `db:"segment_id"` // Nullable in DB
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Hours       decimal.Decimal `db:"hours"`
	CostPerHour decimal.Decimal `db:"cost_per_hour"`
	TotalCost   decimal.Decimal `db:"total_cost"`
	Complexity  int             `db:"complexity"`
	AuditFields
}

// BudgetItem is a flat line-item row for m²/render budgets.
type BudgetItem struct {
	ItemID          string          `db:"item_id"`
	BudgetID        string          `db:"budget_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	PricePerM2      decimal.Decimal `db:"price_per_m2"`
	SquareMeters    decimal.Decimal `db:"square_meters"`
	DevelopmentTime decimal.Decimal `db:"development_time"`
	ImagesQuantity  int             `db:"images_quantity"`
	Complexity      int             `db:"complexity_level"`
	Total           decimal.Decimal `db:"total"`
	AuditFields
}

// BudgetAdditional is the surcharge-input row for a budget.
type BudgetAdditional struct {
	AdditionalID          string          `db:"additional_id"`
	BudgetID              string          `db:"budget_id"`
	WetAreaQuantity       int             `db:"wet_area_quantity"`
	DryAreaQuantity       int             `db:"dry_area_quantity"`
	WetAreaPercentage     decimal.Decimal `db:"wet_area_percentage"`
	DeliveryTimeDays      int             `db:"delivery_time"`
	DisableDeliveryCharge bool            `db:"disable_delivery_charge"`
	AuditFields
}

// BudgetReference is a reference-project row for a budget.
type BudgetReference struct {
	ReferenceID string `db:"reference_id"`
	BudgetID    string `db:"budget_id"`
	ProjectName string `db:"project_name"`
	AuditFields
}
