package stay

import (
	"github.com/shopspring/decimal"

	"innkeep/internal/domain/rates"
)

// RoomAllocation is one physical room of a finalized line. Invoicing and
// reporting consume one row per room, not a count-compressed line, so a
// line with count N flattens into N allocations each carrying its own copy
// of the breakdown and single-room totals.
type RoomAllocation struct {
	RoomType     rates.RoomTypeID
	DisplayName  string
	PricingByDay []NightlyPriceRecord
	ChosenPrice  decimal.Decimal
	GuestTotal   decimal.Decimal
	OwnerTotal   decimal.Decimal
}

// Flatten expands the line into one allocation per unit of count.
func (l *PickedRoomLine) Flatten() []RoomAllocation {
	guestTotal := decimal.Zero
	ownerTotal := decimal.Zero
	for _, r := range l.PricingByDay {
		guestTotal = guestTotal.Add(r.TotalPriceWithCommission)
		ownerTotal = ownerTotal.Add(r.RootPrice)
	}
	out := make([]RoomAllocation, 0, l.Count)
	for i := 0; i < l.Count; i++ {
		nights := make([]NightlyPriceRecord, len(l.PricingByDay))
		copy(nights, l.PricingByDay)
		out = append(out, RoomAllocation{
			RoomType:     l.RoomType,
			DisplayName:  l.DisplayName,
			PricingByDay: nights,
			ChosenPrice:  l.ChosenPrice,
			GuestTotal:   guestTotal,
			OwnerTotal:   ownerTotal,
		})
	}
	return out
}
