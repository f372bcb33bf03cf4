package dto

import (
	"github.com/shopspring/decimal"

	"innkeep/internal/domain/shared/daterange"
	"innkeep/internal/domain/stay"
)

type NightlyPrice struct {
	Date                   string          `json:"date"`
	Price                  decimal.Decimal `json:"price"`
	RootPrice              decimal.Decimal `json:"root_price"`
	CommissionRate         decimal.Decimal `json:"commission_rate"`
	TotalWithCommission    decimal.Decimal `json:"total_with_commission"`
	TotalWithoutCommission decimal.Decimal `json:"total_without_commission"`
}

type RoomLine struct {
	RoomType       string          `json:"room_type"`
	DisplayName    string          `json:"display_name"`
	Count          int             `json:"count"`
	ChosenPrice    decimal.Decimal `json:"chosen_price"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	OwnerTotal     decimal.Decimal `json:"owner_total"`
	Nights         []NightlyPrice  `json:"nights"`
}

type RoomAllocation struct {
	RoomType    string          `json:"room_type"`
	DisplayName string          `json:"display_name"`
	ChosenPrice decimal.Decimal `json:"chosen_price"`
	GuestTotal  decimal.Decimal `json:"guest_total"`
	OwnerTotal  decimal.Decimal `json:"owner_total"`
	Nights      []NightlyPrice  `json:"nights"`
}

func MapNight(r stay.NightlyPriceRecord) NightlyPrice {
	return NightlyPrice{
		Date:                   daterange.DayKey(r.Date),
		Price:                  r.Price,
		RootPrice:              r.RootPrice,
		CommissionRate:         r.CommissionRate,
		TotalWithCommission:    r.TotalPriceWithCommission,
		TotalWithoutCommission: r.TotalPriceWithoutCommission,
	}
}

func MapNights(records []stay.NightlyPriceRecord) []NightlyPrice {
	out := make([]NightlyPrice, 0, len(records))
	for _, r := range records {
		out = append(out, MapNight(r))
	}
	return out
}

func MapRoomLine(l stay.PickedRoomLine) RoomLine {
	return RoomLine{
		RoomType:       string(l.RoomType),
		DisplayName:    l.DisplayName,
		Count:          l.Count,
		ChosenPrice:    l.ChosenPrice,
		CommissionRate: l.CommissionRate,
		GrandTotal:     l.GrandTotal(),
		OwnerTotal:     l.OwnerTotal(),
		Nights:         MapNights(l.PricingByDay),
	}
}

func MapRoomLines(lines []stay.PickedRoomLine) []RoomLine {
	out := make([]RoomLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, MapRoomLine(l))
	}
	return out
}

func MapAllocation(a stay.RoomAllocation) RoomAllocation {
	return RoomAllocation{
		RoomType:    string(a.RoomType),
		DisplayName: a.DisplayName,
		ChosenPrice: a.ChosenPrice,
		GuestTotal:  a.GuestTotal,
		OwnerTotal:  a.OwnerTotal,
		Nights:      MapNights(a.PricingByDay),
	}
}
