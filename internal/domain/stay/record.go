package stay

import (
	"time"

	"github.com/shopspring/decimal"

	"innkeep/internal/domain/rates"
	"innkeep/internal/domain/shared/daterange"
)

// NightlyPriceRecord is one resolved night of a stay. The commission is
// never persisted on its own: the commission-inclusive total is always
// price + rootPrice × commissionRate, recomputed whenever a night changes.
type NightlyPriceRecord struct {
	Date                        time.Time
	Price                       decimal.Decimal
	RootPrice                   decimal.Decimal
	CommissionRate              decimal.Decimal
	TotalPriceWithCommission    decimal.Decimal
	TotalPriceWithoutCommission decimal.Decimal
}

// BuildNights resolves every night of [checkIn, checkOut) against the
// profile. A checkout on or before the checkin yields an empty breakdown;
// rejecting such stays is the caller's concern.
func BuildNights(profile *rates.RoomRateProfile, dr daterange.DateRange, fallbackCommission decimal.Decimal) []NightlyPriceRecord {
	dates := dr.Dates()
	if len(dates) == 0 {
		return nil
	}
	records := make([]NightlyPriceRecord, 0, len(dates))
	for _, date := range dates {
		resolved := rates.Resolve(profile, date, fallbackCommission)
		records = append(records, newNightRecord(date, resolved))
	}
	return records
}

func newNightRecord(date time.Time, r rates.Resolved) NightlyPriceRecord {
	total := r.Price.Add(r.RootPrice.Mul(r.CommissionRate)).Round(2)
	return NightlyPriceRecord{
		Date:                        date,
		Price:                       r.Price,
		RootPrice:                   r.RootPrice,
		CommissionRate:              r.CommissionRate,
		TotalPriceWithCommission:    total,
		TotalPriceWithoutCommission: r.Price,
	}
}
