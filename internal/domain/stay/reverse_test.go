package stay

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSolveNightDecomposition(t *testing.T) {
	split := SolveNight(dec("212"), dec("120").Div(dec("212")), dec("0.1"))

	requireDecEqual(t, "120", split.RootPrice)
	requireDecEqual(t, "200", split.Price)
	requireDecEqual(t, "212", split.TotalPriceWithCommission)
	requireDecEqual(t, "200", split.TotalPriceWithoutCommission)
}

func TestSolveNightClampsRatio(t *testing.T) {
	// a ratio above 1 would allocate more than the final amount to the owner
	split := SolveNight(dec("100"), dec("1.8"), dec("0.1"))
	requireDecEqual(t, "100", split.RootPrice)
	requireDecEqual(t, "90", split.Price)

	split = SolveNight(dec("100"), dec("-0.3"), dec("0.1"))
	requireDecEqual(t, "0", split.RootPrice)
	requireDecEqual(t, "100", split.Price)
}

func TestSolveNightNormalizesPercentCommission(t *testing.T) {
	frac := SolveNight(dec("100"), dec("0.5"), dec("0.1"))
	pct := SolveNight(dec("100"), dec("0.5"), dec("10"))
	assert.True(t, frac.Price.Equal(pct.Price))
	assert.True(t, frac.RootPrice.Equal(pct.RootPrice))
}

func TestSolveNightFixedPoint(t *testing.T) {
	// re-solving the solver's own output reproduces it exactly
	ratio := dec("120").Div(dec("212"))
	commission := dec("0.1")

	for _, amount := range []string{"250", "333.34", "0.01", "199.995", "0"} {
		first := SolveNight(decimal.RequireFromString(amount), ratio, commission)
		second := SolveNight(first.TotalPriceWithCommission, ratio, commission)
		assert.Truef(t, first.RootPrice.Equal(second.RootPrice), "amount %s root: %s vs %s", amount, first.RootPrice, second.RootPrice)
		assert.Truef(t, first.Price.Equal(second.Price), "amount %s price: %s vs %s", amount, first.Price, second.Price)
		assert.True(t, first.TotalPriceWithCommission.Equal(second.TotalPriceWithCommission))
	}
}

func TestSolveNightRoundsToCents(t *testing.T) {
	split := SolveNight(dec("333.335"), dec("0.5660377358490566"), dec("0.1"))
	assert.Equal(t, "333.34", split.TotalPriceWithCommission.StringFixed(2))
	assert.True(t, split.RootPrice.Equal(split.RootPrice.Round(2)))
	assert.True(t, split.Price.Equal(split.Price.Round(2)))
}
