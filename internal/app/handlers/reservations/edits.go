package reservations

import (
	"context"

	"github.com/shopspring/decimal"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
	"innkeep/internal/domain/shared/numeric"
)

const (
	editNightKey       = "reservation.edit_night"
	inheritFirstKey    = "reservation.inherit_first_night"
	distributeTotalKey = "reservation.distribute_total"
)

// EditNightCommand rewrites one night's final amount. The amount arrives as
// the raw edited field value; anything that fails to parse counts as zero.
type EditNightCommand struct {
	ReservationID string
	RoomType      string
	NightIndex    int
	Amount        string
}

func (c EditNightCommand) Key() string { return editNightKey }

type EditNightHandler struct {
	Deps
}

func (h *EditNightHandler) Handle(ctx context.Context, cmd EditNightCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	amount := numeric.SafeParse(cmd.Amount, decimal.Zero)
	if err := r.EditNight(rates.RoomTypeID(cmd.RoomType), cmd.NightIndex, amount, h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

type InheritFirstNightCommand struct {
	ReservationID string
	RoomType      string
}

func (c InheritFirstNightCommand) Key() string { return inheritFirstKey }

type InheritFirstNightHandler struct {
	Deps
}

func (h *InheritFirstNightHandler) Handle(ctx context.Context, cmd InheritFirstNightCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	if err := r.InheritFirstNight(rates.RoomTypeID(cmd.RoomType), h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

type DistributeTotalCommand struct {
	ReservationID string
	RoomType      string
	Total         string
}

func (c DistributeTotalCommand) Key() string { return distributeTotalKey }

type DistributeTotalHandler struct {
	Deps
}

func (h *DistributeTotalHandler) Handle(ctx context.Context, cmd DistributeTotalCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	total := numeric.SafeParse(cmd.Total, decimal.Zero)
	if err := r.DistributeTotal(rates.RoomTypeID(cmd.RoomType), total, h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

var (
	_ commands.Handler[EditNightCommand, dto.Reservation]         = (*EditNightHandler)(nil)
	_ commands.Handler[InheritFirstNightCommand, dto.Reservation] = (*InheritFirstNightHandler)(nil)
	_ commands.Handler[DistributeTotalCommand, dto.Reservation]   = (*DistributeTotalHandler)(nil)
)
