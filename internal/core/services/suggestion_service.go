package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/platform/config"
	"github.com/shopspring/decimal"
)

// suggestionProviderResponse mirrors the provider's wire format. Structured
// fields are preferred; older provider versions only fill Text.
type suggestionProviderResponse struct {
	SuggestedValue  *decimal.Decimal `json:"suggestedValue"`
	ProfitMarginPct *decimal.Decimal `json:"profitMarginPct"`
	Summary         string           `json:"summary"`
	Text            string           `json:"text"`
}

var (
	valuePattern  = regexp.MustCompile(`R\$\s*([\d.]+(?:,\d+)?)`)
	marginPattern = regexp.MustCompile(`margem de\s*([\d]+(?:,\d+)?)\s*%`)
)

// suggestionService implements the SuggestionSvc interface by calling an
// external budget-suggestion provider over HTTP.
type suggestionService struct {
	BaseService
	cfg        *config.Config
	httpClient *http.Client
}

// NewSuggestionService creates a new suggestion service with the provided dependencies
func NewSuggestionService(cfg *config.Config, authorizer portssvc.StudioAuthorizerSvc) portssvc.SuggestionSvc {
	return &suggestionService{
		BaseService: BaseService{StudioAuthorizer: authorizer},
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Ensure suggestionService implements the SuggestionSvc interface
var _ portssvc.SuggestionSvc = (*suggestionService)(nil)

// SuggestBudget requests a value and margin suggestion for the given project
// parameters. Structured fields win; free-text extraction is the fallback and
// is flagged on the result.
func (s *suggestionService) SuggestBudget(ctx context.Context, studioID string, requestingUserID string, req domain.SuggestionRequest) (*domain.Suggestion, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	if s.cfg.SuggestionAPIURL == "" {
		return nil, fmt.Errorf("%w: suggestion provider is not configured", apperrors.ErrValidation)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SuggestionAPIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build suggestion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.cfg.SuggestionAPIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.cfg.SuggestionAPIKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.LogError(ctx, err, "Suggestion provider call failed")
		return nil, fmt.Errorf("suggestion provider call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion provider returned status %s", resp.Status)
	}

	var providerResp suggestionProviderResponse
	if err := json.NewDecoder(resp.Body).Decode(&providerResp); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion response: %w", err)
	}

	return parseSuggestion(providerResp)
}

// parseSuggestion turns the provider payload into a typed suggestion. When the
// structured fields are absent, the values are extracted from the free text.
func parseSuggestion(resp suggestionProviderResponse) (*domain.Suggestion, error) {
	summary := resp.Summary
	if summary == "" {
		summary = resp.Text
	}

	if resp.SuggestedValue != nil && resp.ProfitMarginPct != nil {
		return &domain.Suggestion{
			SuggestedValue:  *resp.SuggestedValue,
			ProfitMarginPct: *resp.ProfitMarginPct,
			Summary:         summary,
		}, nil
	}

	suggestion := &domain.Suggestion{
		Summary:      summary,
		FromFreeText: true,
	}
	if resp.SuggestedValue != nil {
		suggestion.SuggestedValue = *resp.SuggestedValue
	} else {
		value, err := extractDecimal(valuePattern, summary)
		if err != nil {
			return nil, fmt.Errorf("suggestion provider sent no value and none could be extracted: %w", err)
		}
		suggestion.SuggestedValue = value
	}
	if resp.ProfitMarginPct != nil {
		suggestion.ProfitMarginPct = *resp.ProfitMarginPct
	} else if margin, err := extractDecimal(marginPattern, summary); err == nil {
		// A missing margin is not fatal, the wizard has its own default
		suggestion.ProfitMarginPct = margin
	}

	return suggestion, nil
}

// extractDecimal pulls the first Brazilian-formatted number matched by the
// pattern, e.g. "R$ 12.500,00" -> 12500.00.
func extractDecimal(pattern *regexp.Regexp, text string) (decimal.Decimal, error) {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return decimal.Zero, fmt.Errorf("no match in provider text")
	}
	normalized := strings.ReplaceAll(match[1], ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("matched value %q is not a number: %w", match[1], err)
	}
	return value, nil
}
