package reservations

import (
	"context"
	"fmt"
	"time"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
)

const createKey = "reservation.create"

type RoomPick struct {
	RoomType string
	Count    int
}

type CreateReservationCommand struct {
	CommandID string
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
	Rooms     []RoomPick
}

func (c CreateReservationCommand) Key() string { return createKey }

type CreateReservationHandler struct {
	Deps
}

func (h *CreateReservationHandler) Handle(ctx context.Context, cmd CreateReservationCommand) (dto.Reservation, error) {
	r, err := domainreservation.NewReservation(domainreservation.CreateParams{
		ID:        domainreservation.ReservationID(cmd.CommandID),
		GuestName: cmd.GuestName,
		CheckIn:   cmd.CheckIn,
		CheckOut:  cmd.CheckOut,
		CreatedAt: h.now(),
	})
	if err != nil {
		return dto.Reservation{}, err
	}
	for _, pick := range cmd.Rooms {
		profile, err := h.Rates.ByRoomType(ctx, rates.RoomTypeID(pick.RoomType))
		if err != nil {
			return dto.Reservation{}, fmt.Errorf("pick %q: %w", pick.RoomType, err)
		}
		if err := r.AddRoom(profile, h.HotelCommission, pick.Count, h.now()); err != nil {
			return dto.Reservation{}, err
		}
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

var _ commands.Handler[CreateReservationCommand, dto.Reservation] = (*CreateReservationHandler)(nil)
