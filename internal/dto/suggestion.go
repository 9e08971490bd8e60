package dto

import (
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SuggestionRequest defines the inputs forwarded to the budget-suggestion provider.
type SuggestionRequest struct {
	ProjectType   string          `json:"projectType" binding:"required"`
	AreaM2        decimal.Decimal `json:"areaM2" binding:"required"`
	Complexity    string          `json:"complexity" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DeliveryDays  int             `json:"deliveryDays" binding:"omitempty,min=0"`
	BudgetRange   string          `json:"budgetRange"`
	ExtraServices []string        `json:"extraServices"`
}

// SuggestionResponse defines the typed suggestion returned to the client.
type SuggestionResponse struct {
	SuggestedValue  decimal.Decimal `json:"suggestedValue"`
	ProfitMarginPct decimal.Decimal `json:"profitMarginPct"`
	Summary         string          `json:"summary"`
	FromFreeText    bool            `json:"fromFreeText"`
}

// ToSuggestionResponse converts a domain.Suggestion to SuggestionResponse DTO
func ToSuggestionResponse(s *domain.Suggestion) SuggestionResponse {
	return SuggestionResponse{
		SuggestedValue:  s.SuggestedValue,
		ProfitMarginPct: s.ProfitMarginPct,
		Summary:         s.Summary,
		FromFreeText:    s.FromFreeText,
	}
}
