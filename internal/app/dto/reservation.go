package dto

import (
	"github.com/shopspring/decimal"

	"innkeep/internal/domain/reservation"
	"innkeep/internal/domain/shared/daterange"
)

type Reservation struct {
	ID            string           `json:"id"`
	GuestName     string           `json:"guest_name"`
	CheckIn       string           `json:"check_in"`
	CheckOut      string           `json:"check_out"`
	Nights        int              `json:"nights"`
	State         string           `json:"state"`
	Lines         []RoomLine       `json:"lines"`
	GrandTotal    decimal.Decimal  `json:"grand_total"`
	OwnerTotal    decimal.Decimal  `json:"owner_total"`
	PaymentStatus string           `json:"payment_status"`
	Allocations   []RoomAllocation `json:"allocations,omitempty"`
	Version       int64            `json:"version"`
}

func MapReservation(r *reservation.Reservation) Reservation {
	out := Reservation{
		ID:            string(r.ID),
		GuestName:     r.GuestName,
		CheckIn:       daterange.DayKey(r.Range.CheckIn),
		CheckOut:      daterange.DayKey(r.Range.CheckOut),
		Nights:        r.Range.Nights(),
		State:         string(r.State),
		Lines:         MapRoomLines(r.Lines),
		GrandTotal:    r.GrandTotal(),
		OwnerTotal:    r.OwnerTotal(),
		PaymentStatus: string(r.PaymentStatus()),
		Version:       r.Version,
	}
	for _, a := range r.Allocations {
		out.Allocations = append(out.Allocations, MapAllocation(a))
	}
	return out
}
