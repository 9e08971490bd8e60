package domain

import "github.com/shopspring/decimal"

// SuggestionRequest is the flat payload sent to the external budget-suggestion
// provider.
type SuggestionRequest struct {
	ProjectType   string          `json:"projectType"`
	AreaM2        decimal.Decimal `json:"areaM2"`
	Complexity    string          `json:"complexity"`
	DeliveryDays  int             `json:"deliveryDays"`
	BudgetRange   string          `json:"budgetRange"`
	ExtraServices []string        `json:"extraServices,omitempty"`
}

// Suggestion is the typed result of a budget-suggestion call. SuggestedValue
// and ProfitMarginPct come from the provider's structured fields when present,
// otherwise they are extracted from the free-text Summary.
type Suggestion struct {
	SuggestedValue  decimal.Decimal `json:"suggestedValue"`
	ProfitMarginPct decimal.Decimal `json:"profitMarginPct"`
	Summary         string          `json:"summary"`
	// FromFreeText marks values recovered by text extraction rather than the
	// structured contract.
	FromFreeText bool `json:"fromFreeText"`
}
