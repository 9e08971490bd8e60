package dto_test

import (
	"testing"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToExpenseResponse_DerivesEquivalents(t *testing.T) {
	expense := &domain.Expense{
		ExpenseID: "exp-1",
		Value:     decimal.NewFromInt(1200),
		Frequency: domain.FrequencyAnnual,
	}

	resp, err := dto.ToExpenseResponse(expense)

	require.NoError(t, err)
	assert.True(t, resp.MonthlyValue.Equal(decimal.NewFromInt(100)), "got %s", resp.MonthlyValue)
	assert.True(t, resp.AnnualValue.Equal(decimal.NewFromInt(1200)), "got %s", resp.AnnualValue)
}

func TestToExpenseResponse_UnknownFrequencyErrors(t *testing.T) {
	expense := &domain.Expense{
		ExpenseID: "exp-2",
		Value:     decimal.NewFromInt(50),
		Frequency: domain.ExpenseFrequency("FORTNIGHTLY"),
	}

	_, err := dto.ToExpenseResponse(expense)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "frequency")
}
