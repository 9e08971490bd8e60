package services

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// SuggestionSvc defines the interface for budget suggestions backed by an
// external provider.
type SuggestionSvc interface {
	// SuggestBudget requests a value and margin suggestion for the given
	// project parameters. Values come from the provider's structured fields
	// when present; otherwise they are extracted from the free-text summary
	// and flagged as such.
	SuggestBudget(ctx context.Context, studioID string, requestingUserID string, req domain.SuggestionRequest) (*domain.Suggestion, error)
}
