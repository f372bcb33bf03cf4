package stay

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNightlyAverage(t *testing.T) {
	records := []NightlyPriceRecord{
		{TotalPriceWithCommission: dec("212")},
		{TotalPriceWithCommission: dec("250")},
		{TotalPriceWithCommission: dec("212")},
	}
	requireDecEqual(t, "224.67", NightlyAverage(records))
	requireDecEqual(t, "0", NightlyAverage(nil))
}

func TestAverageRootToTotalRatioSkipsZeroTotals(t *testing.T) {
	records := []NightlyPriceRecord{
		{RootPrice: dec("120"), TotalPriceWithCommission: dec("212")},
		{RootPrice: dec("50"), TotalPriceWithCommission: dec("0")}, // excluded
		{RootPrice: dec("60"), TotalPriceWithCommission: dec("212")},
	}
	want := dec("120").Div(dec("212")).Add(dec("60").Div(dec("212"))).Div(dec("2"))
	assert.True(t, AverageRootToTotalRatio(records).Equal(want))
}

func TestAverageRootToTotalRatioAllZero(t *testing.T) {
	records := []NightlyPriceRecord{
		{RootPrice: dec("50"), TotalPriceWithCommission: decimal.Zero},
	}
	assert.True(t, AverageRootToTotalRatio(records).IsZero())
	assert.True(t, AverageRootToTotalRatio(nil).IsZero())
}

func TestLineTotalsMultiplyByCount(t *testing.T) {
	line := standardLine(t)
	line.Count = 2

	requireDecEqual(t, "1272", line.GrandTotal())
	requireDecEqual(t, "720", line.OwnerTotal())
}

func TestStayTotalsAcrossLines(t *testing.T) {
	double := standardLine(t)

	suite := NewLine(standardProfile(t), threeNights(), decimal.Zero, 1)
	suite.RoomType = "STE"
	suite.Count = 2

	lines := []PickedRoomLine{double, suite}
	requireDecEqual(t, "1908", StayGrandTotal(lines)) // 636 + 1272
	requireDecEqual(t, "1080", StayOwnerTotal(lines)) // 360 + 720
}
