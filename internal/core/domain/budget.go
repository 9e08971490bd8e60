package domain

import "github.com/shopspring/decimal"

// BudgetType selects which shape of line items a budget owns. COMPLETE budgets
// carry a phase -> segment -> activity tree; SQUARE_METER and RENDER budgets
// carry a flat item list. The two shapes are mutually exclusive.
type BudgetType string

const (
	BudgetTypeComplete    BudgetType = "COMPLETE"
	BudgetTypeSquareMeter BudgetType = "SQUARE_METER"
	BudgetTypeRender      BudgetType = "RENDER"
)

// BudgetModel distinguishes interior from exterior projects.
type BudgetModel string

const (
	ModelInterior BudgetModel = "INTERIOR"
	ModelExterior BudgetModel = "EXTERIOR"
)

// DiscountType selects how Discount is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
)

// ComplexityLevel is the ordinal render-item complexity (maps to a price multiplier).
type ComplexityLevel int

const (
	ComplexityNone ComplexityLevel = iota
	ComplexityLow
	ComplexityMedium
	ComplexityHigh
)

// Budget is the root of a priced proposal for a client project.
//
// The Phases tree is populated only when Type == COMPLETE; Items only for
// SQUARE_METER and RENDER budgets. Total is always recomputed server-side from
// the line items plus additionals and discount.
type Budget struct {
	BudgetID    string      `json:"budgetID"` // Primary Key (e.g., UUID)
	StudioID    string      `json:"studioID"` // FK -> studios.studio_id (NON-NULL)
	ClientID    string      `json:"clientID"` // Nullable FK -> clients.client_id
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        BudgetType  `json:"type"`
	Model       BudgetModel `json:"model"`

	// Pricing inputs.
	BaseValue          decimal.Decimal `json:"baseValue"`          // Base hourly rate for render/wet-area math
	ProfitMarginPct    decimal.Decimal `json:"profitMarginPct"`    // Additive margin on the complete-budget base
	AdditionalValue    decimal.Decimal `json:"additionalValue"`    // Optional flat increase (exclusive with Discount)
	Discount           decimal.Decimal `json:"discount"`           // Optional discount amount or percentage
	DiscountType       DiscountType    `json:"discountType"`       // How Discount is interpreted
	ComplexityPct      decimal.Decimal `json:"complexityPct"`      // Render surcharge, percentage of base total
	DeliveryUrgencyPct decimal.Decimal `json:"deliveryUrgencyPct"` // Urgency surcharge, percentage of base total
	DeliveryTimeDays   int             `json:"deliveryTimeDays"`

	// Derived totals, persisted for listing but always recomputable.
	Total              decimal.Decimal `json:"total"`
	TotalWithAdditions decimal.Decimal `json:"totalWithAdditions"`
	AveragePricePerM2  decimal.Decimal `json:"averagePricePerM2"`

	Phases     []BudgetPhase     `json:"phases,omitempty"`
	Items      []BudgetItem      `json:"items,omitempty"`
	Additional *BudgetAdditional `json:"additional,omitempty"`
	References []BudgetReference `json:"references,omitempty"`

	IsActive bool `json:"isActive"`
	AuditFields
}

// BudgetPhase is a stage of a COMPLETE budget (e.g., "Executive project").
type BudgetPhase struct {
	PhaseID     string           `json:"phaseID"`
	BudgetID    string           `json:"budgetID"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	BaseValue   decimal.Decimal  `json:"baseValue"` // Hourly rate used by this phase's activities
	Segments    []BudgetSegment  `json:"segments,omitempty"`
	Activities  []BudgetActivity `json:"activities,omitempty"` // Activities attached directly to the phase
	AuditFields
}

// BudgetSegment is an optional subdivision of a phase (e.g., "room 1").
type BudgetSegment struct {
	SegmentID   string           `json:"segmentID"`
	PhaseID     string           `json:"phaseID"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Activities  []BudgetActivity `json:"activities,omitempty"`
	AuditFields
}

// BudgetActivity is a unit of work priced as hours times an hourly rate.
// TotalCost is recomputed from Hours and CostPerHour on every mutation.
type BudgetActivity struct {
	ActivityID  string          `json:"activityID"`
	PhaseID     string          `json:"phaseID"`
	SegmentID   string          `json:"segmentID,omitempty"` // Empty when attached directly to a phase
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	CostPerHour decimal.Decimal `json:"costPerHour"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	Complexity  int             `json:"complexity"` // 0-4 ordinal
	AuditFields
}

// BudgetItem is a flat line item for SQUARE_METER and RENDER budgets.
type BudgetItem struct {
	ItemID          string          `json:"itemID"`
	BudgetID        string          `json:"budgetID"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	PricePerM2      decimal.Decimal `json:"pricePerM2"`
	SquareMeters    decimal.Decimal `json:"squareMeters"`
	DevelopmentTime decimal.Decimal `json:"developmentTime"` // Hours (render items)
	ImagesQuantity  int             `json:"imagesQuantity"`  // Render image count
	Complexity      ComplexityLevel `json:"complexity"`
	Total           decimal.Decimal `json:"total"`
	AuditFields
}

// BudgetAdditional carries the wet/dry area and delivery inputs for surcharges.
type BudgetAdditional struct {
	AdditionalID          string          `json:"additionalID"`
	BudgetID              string          `json:"budgetID"`
	WetAreaQuantity       int             `json:"wetAreaQuantity"`
	DryAreaQuantity       int             `json:"dryAreaQuantity"`
	WetAreaPercentage     decimal.Decimal `json:"wetAreaPercentage"`
	DeliveryTimeDays      int             `json:"deliveryTimeDays"`
	DisableDeliveryCharge bool            `json:"disableDeliveryCharge"`
	AuditFields
}

// BudgetReference links a budget to a past project shown as reference material.
type BudgetReference struct {
	ReferenceID string `json:"referenceID"`
	BudgetID    string `json:"budgetID"`
	ProjectName string `json:"projectName"`
	AuditFields
}
