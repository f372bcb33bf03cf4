package stay

import (
	"github.com/shopspring/decimal"

	"innkeep/internal/domain/shared/numeric"
)

// NightlySplit is the result of back-solving an edited final amount into
// consistent per-component values.
type NightlySplit struct {
	Price                       decimal.Decimal
	RootPrice                   decimal.Decimal
	TotalPriceWithCommission    decimal.Decimal
	TotalPriceWithoutCommission decimal.Decimal
}

// SolveNight decomposes finalValue (the new commission-inclusive total for
// one night) into (rootPrice, price) using the line's frozen root-to-total
// ratio and its commission rate:
//
//	rootPrice = finalValue × clamp(ratio, 0, 1)
//	price     = finalValue − rootPrice × commission
//
// This inverts final = price + rootPrice × commission only under the
// assumption that the root price stays proportional to the final amount.
// That is intentional: edits redistribute the guest-facing amount while the
// owner's share stays structurally proportional to the original schedule,
// rather than restoring per-night override values. All monetary outputs are
// rounded to two decimal places.
func SolveNight(finalValue, ratio, commission decimal.Decimal) NightlySplit {
	finalValue = finalValue.Round(2)
	commission = numeric.NormalizePercent(commission)
	rootPrice := finalValue.Mul(numeric.Clamp01(ratio)).Round(2)
	price := finalValue.Sub(rootPrice.Mul(commission)).Round(2)
	return NightlySplit{
		Price:                       price,
		RootPrice:                   rootPrice,
		TotalPriceWithCommission:    finalValue,
		TotalPriceWithoutCommission: price,
	}
}
