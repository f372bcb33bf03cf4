package reservations

import (
	"context"
	"fmt"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
)

const (
	addRoomKey      = "reservation.add_room"
	removeRoomKey   = "reservation.remove_room"
	setRoomCountKey = "reservation.set_room_count"
)

type AddRoomCommand struct {
	ReservationID string
	RoomType      string
	Count         int
}

func (c AddRoomCommand) Key() string { return addRoomKey }

type AddRoomHandler struct {
	Deps
}

func (h *AddRoomHandler) Handle(ctx context.Context, cmd AddRoomCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	profile, err := h.Rates.ByRoomType(ctx, rates.RoomTypeID(cmd.RoomType))
	if err != nil {
		return dto.Reservation{}, fmt.Errorf("pick %q: %w", cmd.RoomType, err)
	}
	if err := r.AddRoom(profile, h.HotelCommission, cmd.Count, h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

type RemoveRoomCommand struct {
	ReservationID string
	RoomType      string
}

func (c RemoveRoomCommand) Key() string { return removeRoomKey }

type RemoveRoomHandler struct {
	Deps
}

func (h *RemoveRoomHandler) Handle(ctx context.Context, cmd RemoveRoomCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	if err := r.RemoveRoom(rates.RoomTypeID(cmd.RoomType), h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

type SetRoomCountCommand struct {
	ReservationID string
	RoomType      string
	Count         int
}

func (c SetRoomCountCommand) Key() string { return setRoomCountKey }

type SetRoomCountHandler struct {
	Deps
}

func (h *SetRoomCountHandler) Handle(ctx context.Context, cmd SetRoomCountCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	if err := r.SetRoomCount(rates.RoomTypeID(cmd.RoomType), cmd.Count, h.now()); err != nil {
		return dto.Reservation{}, err
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

var (
	_ commands.Handler[AddRoomCommand, dto.Reservation]      = (*AddRoomHandler)(nil)
	_ commands.Handler[RemoveRoomCommand, dto.Reservation]   = (*RemoveRoomHandler)(nil)
	_ commands.Handler[SetRoomCountCommand, dto.Reservation] = (*SetRoomCountHandler)(nil)
)
