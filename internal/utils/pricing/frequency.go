package pricing

import (
	"fmt"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Frequency conversion factors. Weekly and daily use the conventional
// approximations (4 weeks and 30 days per month; 52 weeks and 365 days per
// year), so monthly and annual equivalents are internally consistent only up
// to those approximations.
var (
	twelve       = decimal.NewFromInt(12)
	four         = decimal.NewFromInt(4)
	thirty       = decimal.NewFromInt(30)
	fiftyTwo     = decimal.NewFromInt(52)
	threeSixFive = decimal.NewFromInt(365)
)

// MonthlyValue converts an expense value to its monthly equivalent.
// One-off expenses are counted once, at face value, in the month they occur;
// they are not amortized.
func MonthlyValue(value decimal.Decimal, freq domain.ExpenseFrequency) (decimal.Decimal, error) {
	switch freq {
	case domain.FrequencyMonthly:
		return value, nil
	case domain.FrequencyAnnual:
		return value.Div(twelve), nil
	case domain.FrequencyWeekly:
		return value.Mul(four), nil
	case domain.FrequencyDaily:
		return value.Mul(thirty), nil
	case domain.FrequencyOneTime:
		return value, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown expense frequency %q", freq)
	}
}

// AnnualValue converts an expense value to its annual equivalent.
func AnnualValue(value decimal.Decimal, freq domain.ExpenseFrequency) (decimal.Decimal, error) {
	switch freq {
	case domain.FrequencyMonthly:
		return value.Mul(twelve), nil
	case domain.FrequencyAnnual:
		return value, nil
	case domain.FrequencyWeekly:
		return value.Mul(fiftyTwo), nil
	case domain.FrequencyDaily:
		return value.Mul(threeSixFive), nil
	case domain.FrequencyOneTime:
		return value, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown expense frequency %q", freq)
	}
}
