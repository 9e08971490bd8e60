package pricing_test

import (
	"testing"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMonthlyValue_AnnualExpense(t *testing.T) {
	monthly, err := pricing.MonthlyValue(dec("1200"), domain.FrequencyAnnual)
	require.NoError(t, err)
	assert.True(t, monthly.Equal(dec("100")), "got %s", monthly)

	annual, err := pricing.AnnualValue(dec("1200"), domain.FrequencyAnnual)
	require.NoError(t, err)
	assert.True(t, annual.Equal(dec("1200")), "got %s", annual)
}

func TestFrequencyConversion_MonthlyAnnualConsistency(t *testing.T) {
	// For each frequency, monthly×12 should track the annual equivalent up to
	// the documented approximations (weekly: 4×13=52, exact; daily: 30×12=360
	// vs 365, off by the approximation itself). Comparisons round to currency
	// precision because division (annual/12) is not exact in decimal.
	cases := []struct {
		freq          domain.ExpenseFrequency
		monthsPerYear string
	}{
		{domain.FrequencyMonthly, "12"},
		{domain.FrequencyAnnual, "12"},
		{domain.FrequencyWeekly, "13"}, // 4 weeks/month × 13 = 52 weeks/year
	}
	value := dec("100")
	for _, tc := range cases {
		monthly, err := pricing.MonthlyValue(value, tc.freq)
		require.NoError(t, err, tc.freq)
		annual, err := pricing.AnnualValue(value, tc.freq)
		require.NoError(t, err, tc.freq)
		yearFromMonthly := monthly.Mul(dec(tc.monthsPerYear)).Round(2)
		assert.True(t, yearFromMonthly.Equal(annual.Round(2)),
			"%s: monthly %s × %s = %s != annual %s", tc.freq, monthly, tc.monthsPerYear, yearFromMonthly, annual)
	}
}

func TestFrequencyConversion_OneTimeCountedOnce(t *testing.T) {
	monthly, err := pricing.MonthlyValue(dec("500"), domain.FrequencyOneTime)
	require.NoError(t, err)
	assert.True(t, monthly.Equal(dec("500")))

	annual, err := pricing.AnnualValue(dec("500"), domain.FrequencyOneTime)
	require.NoError(t, err)
	assert.True(t, annual.Equal(dec("500")))
}

func TestFrequencyConversion_UnknownFrequencyErrors(t *testing.T) {
	_, err := pricing.MonthlyValue(dec("10"), domain.ExpenseFrequency("FORTNIGHTLY"))
	assert.Error(t, err)
	_, err = pricing.AnnualValue(dec("10"), domain.ExpenseFrequency(""))
	assert.Error(t, err)
}

func TestPhaseTotal_DirectAndSegmentActivities(t *testing.T) {
	phase := domain.BudgetPhase{
		Activities: []domain.BudgetActivity{
			{Hours: dec("2"), CostPerHour: dec("100")}, // 200
		},
		Segments: []domain.BudgetSegment{
			{Activities: []domain.BudgetActivity{
				{Hours: dec("3"), CostPerHour: dec("50")}, // 150
				{Hours: dec("1"), CostPerHour: dec("80")}, // 80
			}},
			{Activities: []domain.BudgetActivity{
				{Hours: dec("0.5"), CostPerHour: dec("200")}, // 100
			}},
		},
	}
	assert.True(t, pricing.PhaseTotal(phase).Equal(dec("530")))
}

func TestPhasesBaseTotal_OrderIndependent(t *testing.T) {
	p1 := domain.BudgetPhase{Activities: []domain.BudgetActivity{{Hours: dec("2"), CostPerHour: dec("100")}}}
	p2 := domain.BudgetPhase{Activities: []domain.BudgetActivity{{Hours: dec("4"), CostPerHour: dec("75")}}}
	p3 := domain.BudgetPhase{Segments: []domain.BudgetSegment{{Activities: []domain.BudgetActivity{{Hours: dec("1"), CostPerHour: dec("90")}}}}}

	forward := pricing.PhasesBaseTotal([]domain.BudgetPhase{p1, p2, p3})
	backward := pricing.PhasesBaseTotal([]domain.BudgetPhase{p3, p2, p1})
	assert.True(t, forward.Equal(backward))
	assert.True(t, forward.Equal(dec("590")))
}

func TestSquareMeterItemTotal_Exact(t *testing.T) {
	assert.True(t, pricing.SquareMeterItemTotal(dec("10"), dec("150")).Equal(dec("1500")))
	// No rounding drift for currency-scale inputs.
	assert.True(t, pricing.SquareMeterItemTotal(dec("12.5"), dec("99.99")).Equal(dec("1249.875")))
}

func TestItemsBaseTotal_SquareMeterScenario(t *testing.T) {
	items := []domain.BudgetItem{
		{SquareMeters: dec("10"), PricePerM2: dec("150")}, // 1500
		{SquareMeters: dec("2"), PricePerM2: dec("150")},  // 300
		{SquareMeters: dec("4"), PricePerM2: dec("200")},  // 800
	}
	total, err := pricing.ItemsBaseTotal(domain.BudgetTypeSquareMeter, items, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("2600")))

	// 10% percentage discount applied exactly once.
	adj := pricing.Adjustment{Discount: dec("10"), DiscountType: domain.DiscountPercentage}
	final, err := adj.Apply(total)
	require.NoError(t, err)
	assert.True(t, final.Equal(dec("2340")))
}

func TestRenderItemTotal_MultiplierTable(t *testing.T) {
	// time=2h, complexity=media, images=2 -> 2 × 150 × 1.5 × 2 = 900
	total, err := pricing.RenderItemTotal(dec("2"), decimal.Zero, domain.ComplexityMedium, 2)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("900")), "got %s", total)

	cases := []struct {
		level domain.ComplexityLevel
		want  string
	}{
		{domain.ComplexityNone, "300"},   // 1 × 150 × 1 × 2
		{domain.ComplexityLow, "360"},    // 1 × 150 × 1.2 × 2
		{domain.ComplexityMedium, "450"}, // 1 × 150 × 1.5 × 2
		{domain.ComplexityHigh, "600"},   // 1 × 150 × 2 × 2
	}
	for _, tc := range cases {
		got, err := pricing.RenderItemTotal(dec("1"), decimal.Zero, tc.level, 2)
		require.NoError(t, err)
		assert.True(t, got.Equal(dec(tc.want)), "level %d: got %s want %s", tc.level, got, tc.want)
	}

	_, err = pricing.ComplexityMultiplier(domain.ComplexityLevel(9))
	assert.Error(t, err)
}

func TestAdjustment_MutuallyExclusive(t *testing.T) {
	adj := pricing.Adjustment{AdditionalValue: dec("100"), Discount: dec("10"), DiscountType: domain.DiscountFlat}
	_, err := adj.Apply(dec("1000"))
	assert.Error(t, err)
}

func TestAdjustment_FlatIncreaseAndFlatDiscount(t *testing.T) {
	inc := pricing.Adjustment{AdditionalValue: dec("250")}
	got, err := inc.Apply(dec("1000"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1250")))

	disc := pricing.Adjustment{Discount: dec("250"), DiscountType: domain.DiscountFlat}
	got, err = disc.Apply(dec("1000"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("750")))
}

func TestApplyProfitMargin(t *testing.T) {
	got := pricing.ApplyProfitMargin(dec("2000"), dec("25"))
	assert.True(t, got.Equal(dec("2500")))
	assert.True(t, pricing.ApplyProfitMargin(dec("2000"), decimal.Zero).Equal(dec("2000")))
}

func TestWetAreaSurcharge_IndependentOfItemTotals(t *testing.T) {
	// base rate 150, 3 wet rooms, 20% -> 150 × 3 × 0.2 = 90
	got := pricing.WetAreaSurcharge(dec("150"), 3, dec("20"))
	assert.True(t, got.Equal(dec("90")), "got %s", got)

	assert.True(t, pricing.WetAreaSurcharge(dec("150"), 0, dec("20")).IsZero())
	assert.True(t, pricing.WetAreaSurcharge(dec("150"), 3, decimal.Zero).IsZero())
}

func TestSurchargePct_LookupTable(t *testing.T) {
	for level, want := range map[int]string{0: "0", 1: "10", 2: "20", 3: "30"} {
		got, err := pricing.SurchargePct(level)
		require.NoError(t, err)
		assert.True(t, got.Equal(dec(want)))
	}
	_, err := pricing.SurchargePct(4)
	assert.Error(t, err)
}

func TestTotalWithAdditions_SideBySideTotals(t *testing.T) {
	base := dec("2000")
	add := pricing.Additions{
		WetAreaSurcharge:   dec("90"),
		ComplexityPct:      dec("10"), // +200
		DeliveryUrgencyPct: dec("20"), // +400
	}
	assert.True(t, pricing.TotalWithAdditions(base, add).Equal(dec("2690")))

	add.DisableDelivery = true
	assert.True(t, pricing.TotalWithAdditions(base, add).Equal(dec("2290")))

	// The base total stays available unchanged next to the surcharged one.
	assert.True(t, base.Equal(dec("2000")))
}
