package pricing

import (
	"fmt"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultHourlyRate is the application-wide fallback rate for render items
// when neither the budget nor the studio sets one.
var DefaultHourlyRate = decimal.NewFromInt(150)

var oneHundred = decimal.NewFromInt(100)

// ActivityCost computes the cost of a single activity as hours times the
// hourly rate. Callers must use this on every mutation of hours or rate; the
// stored TotalCost is never trusted.
func ActivityCost(hours, costPerHour decimal.Decimal) decimal.Decimal {
	return hours.Mul(costPerHour)
}

// PhaseTotal sums the phase's direct activities and all of its segments'
// activities. The result is independent of segment and activity order.
func PhaseTotal(phase domain.BudgetPhase) decimal.Decimal {
	total := decimal.Zero
	for _, a := range phase.Activities {
		total = total.Add(ActivityCost(a.Hours, a.CostPerHour))
	}
	for _, seg := range phase.Segments {
		for _, a := range seg.Activities {
			total = total.Add(ActivityCost(a.Hours, a.CostPerHour))
		}
	}
	return total
}

// PhasesBaseTotal sums all phase totals of a complete budget.
func PhasesBaseTotal(phases []domain.BudgetPhase) decimal.Decimal {
	total := decimal.Zero
	for _, p := range phases {
		total = total.Add(PhaseTotal(p))
	}
	return total
}

// SquareMeterItemTotal computes a m² line item: squareMeters × pricePerM2.
func SquareMeterItemTotal(squareMeters, pricePerM2 decimal.Decimal) decimal.Decimal {
	return squareMeters.Mul(pricePerM2)
}

// ComplexityMultiplier returns the render price multiplier for an ordinal
// complexity level: {none: 1, low: 1.2, medium: 1.5, high: 2}.
func ComplexityMultiplier(level domain.ComplexityLevel) (decimal.Decimal, error) {
	switch level {
	case domain.ComplexityNone:
		return decimal.NewFromInt(1), nil
	case domain.ComplexityLow:
		return decimal.NewFromFloat(1.2), nil
	case domain.ComplexityMedium:
		return decimal.NewFromFloat(1.5), nil
	case domain.ComplexityHigh:
		return decimal.NewFromInt(2), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown complexity level %d", level)
	}
}

// RenderItemTotal computes a render line item:
// time × hourlyRate × complexityMultiplier × imageCount.
func RenderItemTotal(hours, hourlyRate decimal.Decimal, level domain.ComplexityLevel, imageCount int) (decimal.Decimal, error) {
	if hourlyRate.IsZero() {
		hourlyRate = DefaultHourlyRate
	}
	mult, err := ComplexityMultiplier(level)
	if err != nil {
		return decimal.Zero, err
	}
	return hours.Mul(hourlyRate).Mul(mult).Mul(decimal.NewFromInt(int64(imageCount))), nil
}

// ItemsBaseTotal recomputes and sums all item totals for a flat-item budget.
func ItemsBaseTotal(budgetType domain.BudgetType, items []domain.BudgetItem, hourlyRate decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range items {
		var line decimal.Decimal
		var err error
		switch budgetType {
		case domain.BudgetTypeSquareMeter:
			line = SquareMeterItemTotal(it.SquareMeters, it.PricePerM2)
		case domain.BudgetTypeRender:
			line, err = RenderItemTotal(it.DevelopmentTime, hourlyRate, it.Complexity, it.ImagesQuantity)
			if err != nil {
				return decimal.Zero, fmt.Errorf("item %s: %w", it.ItemID, err)
			}
		default:
			return decimal.Zero, fmt.Errorf("budget type %s does not carry flat items", budgetType)
		}
		total = total.Add(line)
	}
	return total, nil
}

// AveragePricePerM2 returns total divided by the summed area of all items, or
// zero when no area was entered.
func AveragePricePerM2(total decimal.Decimal, items []domain.BudgetItem) decimal.Decimal {
	area := decimal.Zero
	for _, it := range items {
		area = area.Add(it.SquareMeters)
	}
	if area.IsZero() {
		return decimal.Zero
	}
	return total.Div(area)
}
