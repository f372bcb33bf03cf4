package reservations

import (
	"context"

	"github.com/shopspring/decimal"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	domainreservation "innkeep/internal/domain/reservation"
	"innkeep/internal/domain/shared/numeric"
)

const updatePaymentKey = "reservation.update_payment"

// UpdatePaymentCommand records payment signals on the reservation. Only
// fields present in the request are applied; amounts arrive as raw strings
// from historically messy sources and parse defensively.
type UpdatePaymentCommand struct {
	ReservationID  string
	PaymentMode    *string
	CardNumber     *string
	LegacyCaptured *bool
	PaidOnline     *string
	PaidOffline    *string
}

func (c UpdatePaymentCommand) Key() string { return updatePaymentKey }

type UpdatePaymentHandler struct {
	Deps
}

func (h *UpdatePaymentHandler) Handle(ctx context.Context, cmd UpdatePaymentCommand) (dto.Reservation, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(cmd.ReservationID))
	if err != nil {
		return dto.Reservation{}, err
	}
	if cmd.PaymentMode != nil {
		r.PaymentMode = *cmd.PaymentMode
	}
	if cmd.CardNumber != nil {
		r.CardNumber = *cmd.CardNumber
	}
	if cmd.LegacyCaptured != nil {
		r.LegacyCaptured = *cmd.LegacyCaptured
	}
	if cmd.PaidOnline != nil {
		r.PaidOnline = numeric.SafeParse(*cmd.PaidOnline, decimal.Zero)
	}
	if cmd.PaidOffline != nil {
		r.PaidOffline = numeric.SafeParse(*cmd.PaidOffline, decimal.Zero)
	}
	if err := h.persist(ctx, r); err != nil {
		return dto.Reservation{}, err
	}
	return dto.MapReservation(r), nil
}

var _ commands.Handler[UpdatePaymentCommand, dto.Reservation] = (*UpdatePaymentHandler)(nil)
