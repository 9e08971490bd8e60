package pricing

import (
	"fmt"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Adjustment is the single optional price change applied after the base total:
// either a flat increase OR a discount, never both.
type Adjustment struct {
	AdditionalValue decimal.Decimal
	Discount        decimal.Decimal
	DiscountType    domain.DiscountType
}

// Validate rejects adjustments that combine an increase with a discount, and
// percentage discounts outside [0, 100].
func (a Adjustment) Validate() error {
	hasIncrease := a.AdditionalValue.IsPositive()
	hasDiscount := a.Discount.IsPositive()
	if hasIncrease && hasDiscount {
		return fmt.Errorf("additional value and discount are mutually exclusive")
	}
	if hasDiscount && a.DiscountType == domain.DiscountPercentage && a.Discount.GreaterThan(oneHundred) {
		return fmt.Errorf("percentage discount cannot exceed 100, got %s", a.Discount)
	}
	if a.AdditionalValue.IsNegative() || a.Discount.IsNegative() {
		return fmt.Errorf("adjustment values must not be negative")
	}
	return nil
}

// Apply applies the adjustment to a base total, exactly once.
func (a Adjustment) Apply(base decimal.Decimal) (decimal.Decimal, error) {
	if err := a.Validate(); err != nil {
		return decimal.Zero, err
	}
	if a.AdditionalValue.IsPositive() {
		return base.Add(a.AdditionalValue), nil
	}
	if a.Discount.IsPositive() {
		switch a.DiscountType {
		case domain.DiscountPercentage:
			return base.Sub(base.Mul(a.Discount).Div(oneHundred)), nil
		case domain.DiscountFlat:
			return base.Sub(a.Discount), nil
		default:
			return decimal.Zero, fmt.Errorf("unknown discount type %q", a.DiscountType)
		}
	}
	return base, nil
}

// ApplyProfitMargin adds an additive percentage margin to a base total.
func ApplyProfitMargin(base, marginPct decimal.Decimal) decimal.Decimal {
	return base.Add(base.Mul(marginPct).Div(oneHundred))
}

// WetAreaSurcharge computes the wet-area addition. It is intentionally NOT a
// percentage of the budget total: the charge is the base hourly rate times the
// number of wet rooms times the configured percentage.
func WetAreaSurcharge(baseHourlyRate decimal.Decimal, wetRoomCount int, wetAreaPct decimal.Decimal) decimal.Decimal {
	if wetRoomCount <= 0 || wetAreaPct.IsZero() {
		return decimal.Zero
	}
	return baseHourlyRate.Mul(decimal.NewFromInt(int64(wetRoomCount))).Mul(wetAreaPct.Div(oneHundred))
}

// SurchargePct maps an ordinal urgency/complexity level (0-3) to its
// percentage from the fixed lookup table {0, 10, 20, 30}.
func SurchargePct(level int) (decimal.Decimal, error) {
	switch level {
	case 0:
		return decimal.Zero, nil
	case 1:
		return decimal.NewFromInt(10), nil
	case 2:
		return decimal.NewFromInt(20), nil
	case 3:
		return decimal.NewFromInt(30), nil
	default:
		return decimal.Zero, fmt.Errorf("surcharge level must be 0-3, got %d", level)
	}
}

// Additions is the set of optional surcharges applied on top of a base total.
type Additions struct {
	WetAreaSurcharge   decimal.Decimal
	ComplexityPct      decimal.Decimal
	DeliveryUrgencyPct decimal.Decimal
	DisableDelivery    bool
}

// TotalWithAdditions returns the base total plus all surcharges. The caller
// keeps both values: neither the plain nor the surcharged total is
// authoritative, the user picks which one to send to the client.
func TotalWithAdditions(base decimal.Decimal, add Additions) decimal.Decimal {
	total := base.Add(add.WetAreaSurcharge)
	total = total.Add(base.Mul(add.ComplexityPct).Div(oneHundred))
	if !add.DisableDelivery {
		total = total.Add(base.Mul(add.DeliveryUrgencyPct).Div(oneHundred))
	}
	return total
}
