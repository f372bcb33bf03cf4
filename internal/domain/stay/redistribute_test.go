package stay

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/internal/domain/rates"
	"innkeep/internal/domain/shared/daterange"
)

func sumTotals(records []NightlyPriceRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.TotalPriceWithCommission)
	}
	return sum
}

func TestInheritFirstNight(t *testing.T) {
	p := standardProfile(t)
	p.SetOverride(rates.RateOverride{Date: date(2026, 7, 1), Price: decPtr("300"), RootPrice: decPtr("150")})

	line := NewLine(p, threeNights(), decimal.Zero, 1)
	// first night: 300 + 150 × 0.1 = 315; the others 212
	first := line.PricingByDay[0].TotalPriceWithCommission
	requireDecEqual(t, "315", first)

	line.InheritFirstNight()

	for _, r := range line.PricingByDay {
		assert.True(t, r.TotalPriceWithCommission.Equal(first))
	}
	requireDecEqual(t, "315", line.ChosenPrice)
}

func TestInheritFirstNightIdempotent(t *testing.T) {
	line := standardLine(t)
	require.NoError(t, line.EditNight(0, dec("275.40")))

	line.InheritFirstNight()
	once := append([]NightlyPriceRecord(nil), line.PricingByDay...)

	line.InheritFirstNight()

	require.Len(t, line.PricingByDay, len(once))
	for i, r := range line.PricingByDay {
		assert.True(t, r.Price.Equal(once[i].Price))
		assert.True(t, r.RootPrice.Equal(once[i].RootPrice))
		assert.True(t, r.TotalPriceWithCommission.Equal(once[i].TotalPriceWithCommission))
	}
}

func TestInheritFirstNightEmptyLine(t *testing.T) {
	line := PickedRoomLine{}
	line.InheritFirstNight() // must not panic
	assert.Empty(t, line.PricingByDay)
}

func TestDistributeTotalCentExact(t *testing.T) {
	line := standardLine(t)

	line.DistributeTotal(dec("1000"))

	require.Len(t, line.PricingByDay, 3)
	requireDecEqual(t, "333.33", line.PricingByDay[0].TotalPriceWithCommission)
	requireDecEqual(t, "333.33", line.PricingByDay[1].TotalPriceWithCommission)
	// the last night absorbs the remainder so the parts sum exactly
	requireDecEqual(t, "333.34", line.PricingByDay[2].TotalPriceWithCommission)
	requireDecEqual(t, "1000", sumTotals(line.PricingByDay))
	requireDecEqual(t, "333.33", line.ChosenPrice)
}

func TestDistributeTotalExactSumProperty(t *testing.T) {
	p := standardProfile(t)

	cases := []struct {
		total  string
		nights int
	}{
		{"1000", 3},
		{"999.99", 7},
		{"0.05", 4},
		{"123.45", 1},
		{"500", 6},
	}
	for _, tc := range cases {
		dr := daterange.DateRange{CheckIn: date(2026, 7, 1), CheckOut: date(2026, 7, 1+tc.nights)}
		line := NewLine(p, dr, decimal.Zero, 1)

		line.DistributeTotal(dec(tc.total))

		assert.Truef(t, sumTotals(line.PricingByDay).Equal(dec(tc.total)),
			"total %s over %d nights: got %s", tc.total, tc.nights, sumTotals(line.PricingByDay))
	}
}

func TestDistributeTotalBackSolvesEachNight(t *testing.T) {
	line := standardLine(t)
	ratio := line.RootToTotalRatio

	line.DistributeTotal(dec("1000"))

	for _, r := range line.PricingByDay {
		want := SolveNight(r.TotalPriceWithCommission, ratio, line.CommissionRate)
		assert.True(t, r.RootPrice.Equal(want.RootPrice))
		assert.True(t, r.Price.Equal(want.Price))
	}
}

func TestDistributeTotalEmptyLine(t *testing.T) {
	line := PickedRoomLine{}
	line.DistributeTotal(dec("500")) // must not panic
	assert.Empty(t, line.PricingByDay)
}
