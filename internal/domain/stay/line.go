package stay

import (
	"errors"

	"github.com/shopspring/decimal"

	"innkeep/internal/domain/rates"
	"innkeep/internal/domain/shared/daterange"
	"innkeep/internal/domain/shared/numeric"
)

var ErrNightIndex = errors.New("stay: night index out of range")

// PickedRoomLine is one selected room type within a reservation being
// edited: its per-night breakdown, the recomputed nightly average and the
// ratio snapshot the reverse solver works from.
//
// RootToTotalRatio is frozen when the line is built and deliberately never
// refreshed after edits: recomputing it from already-edited nights would
// compound rounding drift and change the outcome of later edits.
type PickedRoomLine struct {
	RoomType         rates.RoomTypeID
	DisplayName      string
	Count            int
	PricingByDay     []NightlyPriceRecord
	ChosenPrice      decimal.Decimal
	RootToTotalRatio decimal.Decimal
	CommissionRate   decimal.Decimal // line fallback commission, normalized fraction
}

// NewLine prices a room selection for a date range. Count is clamped to a
// minimum of one room.
func NewLine(profile *rates.RoomRateProfile, dr daterange.DateRange, hotelCommission decimal.Decimal, count int) PickedRoomLine {
	if count < 1 {
		count = 1
	}
	fallback := rates.FallbackCommission(profile, hotelCommission)
	records := BuildNights(profile, dr, fallback)
	return PickedRoomLine{
		RoomType:         profile.RoomType,
		DisplayName:      profile.DisplayName,
		Count:            count,
		PricingByDay:     records,
		ChosenPrice:      NightlyAverage(records),
		RootToTotalRatio: AverageRootToTotalRatio(records),
		CommissionRate:   numeric.NormalizePercent(fallback),
	}
}

// EditNight replaces one night's final amount, back-solving price and root
// price from the frozen ratio, then recomputes the nightly average.
func (l *PickedRoomLine) EditNight(index int, finalValue decimal.Decimal) error {
	if index < 0 || index >= len(l.PricingByDay) {
		return ErrNightIndex
	}
	l.applySolved(index, SolveNight(finalValue, l.RootToTotalRatio, l.CommissionRate))
	l.RefreshChosenPrice()
	return nil
}

// RefreshChosenPrice recomputes the per-night average; it must run after
// every mutation of the breakdown.
func (l *PickedRoomLine) RefreshChosenPrice() {
	l.ChosenPrice = NightlyAverage(l.PricingByDay)
}

func (l *PickedRoomLine) applySolved(index int, s NightlySplit) {
	rec := &l.PricingByDay[index]
	rec.Price = s.Price
	rec.RootPrice = s.RootPrice
	rec.CommissionRate = l.CommissionRate
	rec.TotalPriceWithCommission = s.TotalPriceWithCommission
	rec.TotalPriceWithoutCommission = s.TotalPriceWithoutCommission
}
