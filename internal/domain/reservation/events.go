package reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"innkeep/internal/domain/billing"
	"innkeep/internal/domain/rates"
	"innkeep/internal/domain/shared/daterange"
)

type ReservationCreated struct {
	ReservationID ReservationID
	Range         daterange.DateRange
	At            time.Time
}

func (e ReservationCreated) EventName() string     { return "reservation.created" }
func (e ReservationCreated) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationCreated) OccurredAt() time.Time { return e.At }

type RoomLinePriced struct {
	ReservationID ReservationID
	RoomType      rates.RoomTypeID
	Count         int
	ChosenPrice   decimal.Decimal
	At            time.Time
}

func (e RoomLinePriced) EventName() string     { return "reservation.room_priced" }
func (e RoomLinePriced) AggregateID() string   { return string(e.ReservationID) }
func (e RoomLinePriced) OccurredAt() time.Time { return e.At }

type StayDatesChanged struct {
	ReservationID ReservationID
	Range         daterange.DateRange
	At            time.Time
}

func (e StayDatesChanged) EventName() string     { return "reservation.dates_changed" }
func (e StayDatesChanged) AggregateID() string   { return string(e.ReservationID) }
func (e StayDatesChanged) OccurredAt() time.Time { return e.At }

type NightAmountEdited struct {
	ReservationID ReservationID
	RoomType      rates.RoomTypeID
	NightIndex    int
	Amount        decimal.Decimal
	At            time.Time
}

func (e NightAmountEdited) EventName() string     { return "reservation.night_edited" }
func (e NightAmountEdited) AggregateID() string   { return string(e.ReservationID) }
func (e NightAmountEdited) OccurredAt() time.Time { return e.At }

type TotalRedistributed struct {
	ReservationID ReservationID
	RoomType      rates.RoomTypeID
	Operation     string
	Amount        decimal.Decimal
	At            time.Time
}

func (e TotalRedistributed) EventName() string     { return "reservation.total_redistributed" }
func (e TotalRedistributed) AggregateID() string   { return string(e.ReservationID) }
func (e TotalRedistributed) OccurredAt() time.Time { return e.At }

type ReservationFinalized struct {
	ReservationID ReservationID
	Rooms         int
	GrandTotal    decimal.Decimal
	OwnerTotal    decimal.Decimal
	Status        billing.Status
	At            time.Time
}

func (e ReservationFinalized) EventName() string     { return "reservation.finalized" }
func (e ReservationFinalized) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationFinalized) OccurredAt() time.Time { return e.At }

type ReservationCancelled struct {
	ReservationID ReservationID
	Reason        string
	At            time.Time
}

func (e ReservationCancelled) EventName() string     { return "reservation.cancelled" }
func (e ReservationCancelled) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationCancelled) OccurredAt() time.Time { return e.At }
