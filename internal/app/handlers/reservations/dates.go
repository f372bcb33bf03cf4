package reservations

import (
	"context"
	"time"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	domainreservation "innkeep/internal/domain/reservation"
)

const changeDatesKey = "reservation.change_dates"

// ChangeDatesCommand moves a stay to new dates. The whole pricing schedule
// is rebuilt from the current rate configuration; unsaved manual edits do
// not survive, by policy.
type ChangeDatesCommand struct {
	ReservationID string
	CheckIn       time.Time
	CheckOut      time.Time
}

func (c ChangeDatesCommand) Key() string { return changeDatesKey }

type ChangeDatesHandler struct {
	Deps
}

func (h *ChangeDatesHandler) Handle(ctx context.Context, cmd ChangeDatesCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	profiles, err := h.profilesFor(ctx, r)
	if err != nil {
		return dto.Reservation{}, err
	}
	if err := r.SetRange(cmd.CheckIn, cmd.CheckOut, profiles, h.HotelCommission, h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

var _ commands.Handler[ChangeDatesCommand, dto.Reservation] = (*ChangeDatesHandler)(nil)
