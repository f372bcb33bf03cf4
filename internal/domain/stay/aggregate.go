package stay

import (
	"github.com/shopspring/decimal"
)

// NightlyAverage is the mean commission-inclusive total across the
// breakdown, rounded to two decimal places. An empty breakdown averages to
// zero.
func NightlyAverage(records []NightlyPriceRecord) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.TotalPriceWithCommission)
	}
	return sum.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
}

// AverageRootToTotalRatio is the mean of rootPrice/total across nights.
// Zero-total nights are excluded from the mean instead of poisoning it with
// a division by zero; if every night is zero the ratio is zero.
func AverageRootToTotalRatio(records []NightlyPriceRecord) decimal.Decimal {
	sum := decimal.Zero
	counted := 0
	for _, r := range records {
		if !r.TotalPriceWithCommission.IsPositive() {
			continue
		}
		sum = sum.Add(r.RootPrice.Div(r.TotalPriceWithCommission))
		counted++
	}
	if counted == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(counted)))
}

// GrandTotal is the guest-facing stay total for the line: the sum of
// commission-inclusive nightly totals multiplied by the room count.
func (l *PickedRoomLine) GrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range l.PricingByDay {
		sum = sum.Add(r.TotalPriceWithCommission)
	}
	return sum.Mul(decimal.NewFromInt(int64(l.Count)))
}

// OwnerTotal is the amount owed to the property for the line.
func (l *PickedRoomLine) OwnerTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range l.PricingByDay {
		sum = sum.Add(r.RootPrice)
	}
	return sum.Mul(decimal.NewFromInt(int64(l.Count)))
}

// StayGrandTotal sums line grand totals across the whole reservation.
func StayGrandTotal(lines []PickedRoomLine) decimal.Decimal {
	sum := decimal.Zero
	for i := range lines {
		sum = sum.Add(lines[i].GrandTotal())
	}
	return sum
}

// StayOwnerTotal sums line owner totals across the whole reservation.
func StayOwnerTotal(lines []PickedRoomLine) decimal.Decimal {
	sum := decimal.Zero
	for i := range lines {
		sum = sum.Add(lines[i].OwnerTotal())
	}
	return sum
}
