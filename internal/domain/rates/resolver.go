package rates

import (
	"time"

	"github.com/shopspring/decimal"

	"innkeep/internal/domain/shared/numeric"
)

// DefaultCommissionPercent is the last step of the commission fallback
// chain: room-specific rate, then the hotel-wide rate, then 10 percent.
var DefaultCommissionPercent = decimal.NewFromInt(10)

// Resolved is the effective pricing triple for one calendar date.
type Resolved struct {
	Price          decimal.Decimal
	RootPrice      decimal.Decimal
	CommissionRate decimal.Decimal // normalized fraction
}

// FallbackCommission resolves the commission a line falls back to when a
// night has no override of its own. A zero hotelDefault means the hotel has
// no configured rate.
func FallbackCommission(profile *RoomRateProfile, hotelDefault decimal.Decimal) decimal.Decimal {
	if profile != nil && profile.CommissionRate != nil {
		return *profile.CommissionRate
	}
	if !hotelDefault.IsZero() {
		return hotelDefault
	}
	return DefaultCommissionPercent
}

// Resolve returns the effective (price, rootPrice, commissionRate) for a
// date. Each field resolves independently: an override may supply only the
// price while root price and commission still come from the defaults.
// Commission values are accepted as either fractions or percentages.
func Resolve(profile *RoomRateProfile, date time.Time, fallbackCommission decimal.Decimal) Resolved {
	res := Resolved{
		Price:          profile.BasePrice,
		RootPrice:      profile.RootCost,
		CommissionRate: numeric.NormalizePercent(fallbackCommission),
	}
	override, ok := profile.OverrideFor(date)
	if !ok {
		return res
	}
	if override.Price != nil {
		res.Price = *override.Price
	}
	if override.RootPrice != nil {
		res.RootPrice = *override.RootPrice
	}
	if override.CommissionRate != nil {
		res.CommissionRate = numeric.NormalizePercent(*override.CommissionRate)
	}
	return res
}
