package dto

import (
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget, including
// its full line-item tree. COMPLETE budgets must send Phases and no Items;
// SQUARE_METER and RENDER budgets the opposite.
type CreateBudgetRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	ClientID    string             `json:"clientID"`
	Type        domain.BudgetType  `json:"type" binding:"required,oneof=COMPLETE SQUARE_METER RENDER"`
	Model       domain.BudgetModel `json:"model" binding:"omitempty,oneof=INTERIOR EXTERIOR"`

	BaseValue       decimal.Decimal     `json:"baseValue" binding:"omitempty,gte=0"`
	ProfitMarginPct decimal.Decimal     `json:"profitMarginPct" binding:"omitempty,gte=0"`
	AdditionalValue decimal.Decimal     `json:"additionalValue" binding:"omitempty,gte=0"`
	Discount        decimal.Decimal     `json:"discount" binding:"omitempty,gte=0"`
	DiscountType    domain.DiscountType `json:"discountType" binding:"omitempty,oneof=PERCENTAGE FLAT"`
	// Complexity and DeliveryUrgency are ordinal levels (0-3) mapped
	// server-side to surcharge percentages from a fixed table.
	Complexity       int `json:"complexity" binding:"omitempty,min=0,max=3"`
	DeliveryUrgency  int `json:"deliveryUrgency" binding:"omitempty,min=0,max=3"`
	DeliveryTimeDays int `json:"deliveryTimeDays" binding:"omitempty,min=0"`

	Phases     []CreateBudgetPhaseRequest `json:"phases" binding:"omitempty,dive"`
	Items      []CreateBudgetItemRequest  `json:"items" binding:"omitempty,dive"`
	Additional *BudgetAdditionalRequest   `json:"additional"`
	References []string                   `json:"references"` // Project names
}

// CreateBudgetPhaseRequest is one phase of a COMPLETE budget.
type CreateBudgetPhaseRequest struct {
	Name        string                        `json:"name" binding:"required"`
	Description string                        `json:"description"`
	BaseValue   decimal.Decimal               `json:"baseValue"`
	Segments    []CreateBudgetSegmentRequest  `json:"segments" binding:"omitempty,dive"`
	Activities  []CreateBudgetActivityRequest `json:"activities" binding:"omitempty,dive"`
}

// CreateBudgetSegmentRequest is one segment inside a phase.
type CreateBudgetSegmentRequest struct {
	Name        string                        `json:"name" binding:"required"`
	Description string                        `json:"description"`
	Activities  []CreateBudgetActivityRequest `json:"activities" binding:"omitempty,dive"`
}

// CreateBudgetActivityRequest is one unit of work priced as hours times rate.
type CreateBudgetActivityRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours" binding:"omitempty,gte=0"`
	CostPerHour decimal.Decimal `json:"costPerHour" binding:"omitempty,gte=0"`
	Complexity  int             `json:"complexity" binding:"omitempty,min=0,max=4"`
}

// CreateBudgetItemRequest is one flat line item of a SQUARE_METER or RENDER budget.
type CreateBudgetItemRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Description     string                 `json:"description"`
	PricePerM2      decimal.Decimal        `json:"pricePerM2" binding:"omitempty,gte=0"`
	SquareMeters    decimal.Decimal        `json:"squareMeters" binding:"omitempty,gte=0"`
	DevelopmentTime decimal.Decimal        `json:"developmentTime" binding:"omitempty,gte=0"`
	ImagesQuantity  int                    `json:"imagesQuantity" binding:"omitempty,min=0"`
	Complexity      domain.ComplexityLevel `json:"complexity" binding:"omitempty,min=0,max=3"`
}

// BudgetAdditionalRequest carries the wet/dry area and delivery inputs.
type BudgetAdditionalRequest struct {
	WetAreaQuantity       int             `json:"wetAreaQuantity" binding:"omitempty,min=0"`
	DryAreaQuantity       int             `json:"dryAreaQuantity" binding:"omitempty,min=0"`
	WetAreaPercentage     decimal.Decimal `json:"wetAreaPercentage" binding:"omitempty,gte=0,lte=100"`
	DeliveryTimeDays      int             `json:"deliveryTimeDays" binding:"omitempty,min=0"`
	DisableDeliveryCharge bool            `json:"disableDeliveryCharge"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget's header
// and pricing inputs. The line-item tree, when present, replaces the stored
// tree wholesale. Use pointers to distinguish zero values from omitted fields.
type UpdateBudgetRequest struct {
	Name             *string              `json:"name"`
	Description      *string              `json:"description"`
	ClientID         *string              `json:"clientID"`
	Model            *domain.BudgetModel  `json:"model" binding:"omitempty,oneof=INTERIOR EXTERIOR"`
	BaseValue        *decimal.Decimal     `json:"baseValue"`
	ProfitMarginPct  *decimal.Decimal     `json:"profitMarginPct"`
	AdditionalValue  *decimal.Decimal     `json:"additionalValue"`
	Discount         *decimal.Decimal     `json:"discount"`
	DiscountType     *domain.DiscountType `json:"discountType" binding:"omitempty,oneof=PERCENTAGE FLAT"`
	Complexity       *int                 `json:"complexity" binding:"omitempty,min=0,max=3"`
	DeliveryUrgency  *int                 `json:"deliveryUrgency" binding:"omitempty,min=0,max=3"`
	DeliveryTimeDays *int                 `json:"deliveryTimeDays" binding:"omitempty,min=0"`

	Phases     []CreateBudgetPhaseRequest `json:"phases" binding:"omitempty,dive"`
	Items      []CreateBudgetItemRequest  `json:"items" binding:"omitempty,dive"`
	Additional *BudgetAdditionalRequest   `json:"additional"`
}

// BudgetResponse defines the data returned for a budget, including the full
// line-item tree and server-computed totals.
type BudgetResponse struct {
	BudgetID    string             `json:"budgetID"`
	StudioID    string             `json:"studioID"`
	ClientID    string             `json:"clientID,omitempty"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        domain.BudgetType  `json:"type"`
	Model       domain.BudgetModel `json:"model"`

	BaseValue          decimal.Decimal     `json:"baseValue"`
	ProfitMarginPct    decimal.Decimal     `json:"profitMarginPct"`
	AdditionalValue    decimal.Decimal     `json:"additionalValue"`
	Discount           decimal.Decimal     `json:"discount"`
	DiscountType       domain.DiscountType `json:"discountType"`
	ComplexityPct      decimal.Decimal     `json:"complexityPct"`
	DeliveryUrgencyPct decimal.Decimal     `json:"deliveryUrgencyPct"`
	DeliveryTimeDays   int                 `json:"deliveryTimeDays"`

	Total              decimal.Decimal `json:"total"`
	TotalWithAdditions decimal.Decimal `json:"totalWithAdditions"`
	AveragePricePerM2  decimal.Decimal `json:"averagePricePerM2"`

	Phases     []domain.BudgetPhase     `json:"phases,omitempty"`
	Items      []domain.BudgetItem      `json:"items,omitempty"`
	Additional *domain.BudgetAdditional `json:"additional,omitempty"`
	References []domain.BudgetReference `json:"references,omitempty"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:           b.BudgetID,
		StudioID:           b.StudioID,
		ClientID:           b.ClientID,
		Name:               b.Name,
		Description:        b.Description,
		Type:               b.Type,
		Model:              b.Model,
		BaseValue:          b.BaseValue,
		ProfitMarginPct:    b.ProfitMarginPct,
		AdditionalValue:    b.AdditionalValue,
		Discount:           b.Discount,
		DiscountType:       b.DiscountType,
		ComplexityPct:      b.ComplexityPct,
		DeliveryUrgencyPct: b.DeliveryUrgencyPct,
		DeliveryTimeDays:   b.DeliveryTimeDays,
		Total:              b.Total,
		TotalWithAdditions: b.TotalWithAdditions,
		AveragePricePerM2:  b.AveragePricePerM2,
		Phases:             b.Phases,
		Items:              b.Items,
		Additional:         b.Additional,
		References:         b.References,
		IsActive:           b.IsActive,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.LastUpdatedAt,
	}
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListBudgetsResponse wraps a page of budgets plus the pagination token.
type ListBudgetsResponse struct {
	Budgets   []BudgetResponse `json:"budgets"`
	NextToken string           `json:"nextToken,omitempty"`
}

// AddReferenceRequest attaches a past-project reference to a budget.
type AddReferenceRequest struct {
	ProjectName string `json:"projectName" binding:"required"`
}
