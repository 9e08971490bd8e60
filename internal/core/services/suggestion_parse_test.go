package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestion_StructuredFieldsWin(t *testing.T) {
	value := decimal.NewFromInt(12500)
	margin := decimal.NewFromInt(20)
	resp := suggestionProviderResponse{
		SuggestedValue:  &value,
		ProfitMarginPct: &margin,
		Summary:         "Sugerimos R$ 99.999,99 com margem de 99%.",
	}

	suggestion, err := parseSuggestion(resp)

	require.NoError(t, err)
	assert.False(t, suggestion.FromFreeText)
	// The structured fields win over whatever the text says.
	assert.True(t, decimal.NewFromInt(12500).Equal(suggestion.SuggestedValue))
	assert.True(t, decimal.NewFromInt(20).Equal(suggestion.ProfitMarginPct))
}

func TestParseSuggestion_FreeTextFallback(t *testing.T) {
	resp := suggestionProviderResponse{
		Text: "Para este projeto sugerimos R$ 12.500,00 com margem de 25% sobre o custo.",
	}

	suggestion, err := parseSuggestion(resp)

	require.NoError(t, err)
	assert.True(t, suggestion.FromFreeText)
	assert.True(t, decimal.NewFromInt(12500).Equal(suggestion.SuggestedValue), "got %s", suggestion.SuggestedValue)
	assert.True(t, decimal.NewFromInt(25).Equal(suggestion.ProfitMarginPct))
}

func TestParseSuggestion_MissingMarginNotFatal(t *testing.T) {
	resp := suggestionProviderResponse{
		Summary: "Valor sugerido: R$ 8.000,00.",
	}

	suggestion, err := parseSuggestion(resp)

	require.NoError(t, err)
	assert.True(t, suggestion.FromFreeText)
	assert.True(t, decimal.NewFromInt(8000).Equal(suggestion.SuggestedValue))
	assert.True(t, suggestion.ProfitMarginPct.IsZero())
}

func TestParseSuggestion_NoValueAnywhereFails(t *testing.T) {
	resp := suggestionProviderResponse{
		Text: "Não foi possível estimar este projeto.",
	}

	_, err := parseSuggestion(resp)

	require.Error(t, err)
}

func TestExtractDecimal_BrazilianFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want decimal.Decimal
	}{
		{"thousands and cents", "custa R$ 12.500,00 no total", decimal.NewFromFloat(12500.00)},
		{"no cents", "custa R$ 900 no total", decimal.NewFromInt(900)},
		{"cents only", "custa R$ 49,90 no total", decimal.NewFromFloat(49.90)},
		{"millions", "custa R$ 1.250.000,00 no total", decimal.NewFromInt(1250000)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractDecimal(valuePattern, tc.text)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestExtractDecimal_NoMatch(t *testing.T) {
	_, err := extractDecimal(marginPattern, "sem percentual aqui")
	require.Error(t, err)
}
