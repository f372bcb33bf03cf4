package reservations

import (
	"context"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	domainreservation "innkeep/internal/domain/reservation"
)

const cancelKey = "reservation.cancel"

type CancelReservationCommand struct {
	ReservationID string
	Reason        string
}

func (c CancelReservationCommand) Key() string { return cancelKey }

type CancelReservationHandler struct {
	Deps
}

func (h *CancelReservationHandler) Handle(ctx context.Context, cmd CancelReservationCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	if err := r.Cancel(cmd.Reason, h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

var _ commands.Handler[CancelReservationCommand, dto.Reservation] = (*CancelReservationHandler)(nil)
