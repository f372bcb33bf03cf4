package reservations

import (
	"context"

	"innkeep/internal/app/dto"
	"innkeep/internal/app/queries"
	domainreservation "innkeep/internal/domain/reservation"
)

const getKey = "reservation.get"

type GetReservationQuery struct {
	ReservationID string
}

func (q GetReservationQuery) Key() string { return getKey }

type GetReservationHandler struct {
	Reservations domainreservation.Repository
}

func (h *GetReservationHandler) Handle(ctx context.Context, q GetReservationQuery) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(q.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

var _ queries.Handler[GetReservationQuery, dto.Reservation] = (*GetReservationHandler)(nil)
