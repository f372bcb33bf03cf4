package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"innkeep/internal/app/dto"
	"innkeep/internal/app/queries"
	"innkeep/internal/domain/rates"
	"innkeep/internal/domain/shared/daterange"
	"innkeep/internal/domain/stay"
)

const priceStayKey = "quote.price_stay"

type RoomSelection struct {
	RoomType string
	Count    int
}

// PriceStayQuery prices a room selection for a date range without creating
// a reservation; the booking screen asks it on every selection change.
type PriceStayQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    []RoomSelection
}

func (q PriceStayQuery) Key() string { return priceStayKey }

type PriceStayHandler struct {
	Rates           rates.Repository
	HotelCommission decimal.Decimal
}

func (h *PriceStayHandler) Handle(ctx context.Context, q PriceStayQuery) (dto.Quote, error) {
	dr := daterange.DateRange{CheckIn: daterange.Day(q.CheckIn), CheckOut: daterange.Day(q.CheckOut)}

	lines := make([]stay.PickedRoomLine, 0, len(q.Rooms))
	for _, sel := range q.Rooms {
		profile, err := h.Rates.ByRoomType(ctx, rates.RoomTypeID(sel.RoomType))
		if err != nil {
			return dto.Quote{}, fmt.Errorf("quote %q: %w", sel.RoomType, err)
		}
		lines = append(lines, stay.NewLine(profile, dr, h.HotelCommission, sel.Count))
	}

	return dto.Quote{
		CheckIn:    daterange.DayKey(dr.CheckIn),
		CheckOut:   daterange.DayKey(dr.CheckOut),
		Nights:     dr.Nights(),
		Lines:      dto.MapRoomLines(lines),
		GrandTotal: stay.StayGrandTotal(lines),
		OwnerTotal: stay.StayOwnerTotal(lines),
	}, nil
}

var _ queries.Handler[PriceStayQuery, dto.Quote] = (*PriceStayHandler)(nil)
