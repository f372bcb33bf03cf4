package stay

import (
	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// InheritFirstNight propagates the first night's final amount to every
// night of the line through the reverse solver (a no-op for the first night
// itself) and recomputes the nightly average.
func (l *PickedRoomLine) InheritFirstNight() {
	if len(l.PricingByDay) == 0 {
		return
	}
	finalValue := l.PricingByDay[0].TotalPriceWithCommission
	for i := range l.PricingByDay {
		l.applySolved(i, SolveNight(finalValue, l.RootToTotalRatio, l.CommissionRate))
	}
	l.RefreshChosenPrice()
}

// DistributeTotal splits a lump stay total evenly across the line's nights,
// cent-exact. The total is converted to integer cents, the first n−1 nights
// each receive round(cents/n) and the last night takes the exact remainder,
// so the shares always sum back to the target despite rounding. Each share
// then runs through the reverse solver.
func (l *PickedRoomLine) DistributeTotal(total decimal.Decimal) {
	n := len(l.PricingByDay)
	if n == 0 {
		return
	}
	cents := total.Mul(centsPerUnit).Round(0)
	share := cents.DivRound(decimal.NewFromInt(int64(n)), 0)
	assigned := decimal.Zero
	for i := range l.PricingByDay {
		nightCents := share
		if i == n-1 {
			nightCents = cents.Sub(assigned)
		}
		assigned = assigned.Add(nightCents)
		l.applySolved(i, SolveNight(nightCents.Div(centsPerUnit), l.RootToTotalRatio, l.CommissionRate))
	}
	l.RefreshChosenPrice()
}
