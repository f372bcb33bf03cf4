package reservations

import (
	"context"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	"innkeep/internal/app/middleware"
	domainreservation "innkeep/internal/domain/reservation"
)

const finalizeKey = "reservation.finalize"

// FinalizeReservationCommand seals a draft and flattens it into one
// allocation per physical room for invoicing and reporting.
type FinalizeReservationCommand struct {
	ReservationID   string
	IdempotencyKeyV string
}

func (c FinalizeReservationCommand) Key() string { return finalizeKey }

func (c FinalizeReservationCommand) IdempotencyKey() string { return c.IdempotencyKeyV }

func (c FinalizeReservationCommand) ResultPrototype() any { return &FinalizeResult{} }

type FinalizeResult struct {
	Reservation dto.Reservation      `json:"reservation"`
	Allocations []dto.RoomAllocation `json:"allocations"`
}

type FinalizeHandler struct {
	Deps
}

func (h *FinalizeHandler) Handle(ctx context.Context, cmd FinalizeReservationCommand) (*FinalizeResult, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return nil, err
	}
	allocations, err := r.Finalize(h.now())
	if err != nil {
		return nil, err
	}
	if err := h.persist(ctx, r); err != nil {
		return nil, err
	}
	result := &FinalizeResult{Reservation: dto.MapReservation(r)}
	for _, a := range allocations {
		result.Allocations = append(result.Allocations, dto.MapAllocation(a))
	}
	return result, nil
}

var (
	_ commands.Handler[FinalizeReservationCommand, *FinalizeResult] = (*FinalizeHandler)(nil)
	_ middleware.IdempotentCommand                                  = (*FinalizeReservationCommand)(nil)
)
