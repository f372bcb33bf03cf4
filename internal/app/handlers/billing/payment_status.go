package billing

import (
	"context"

	"innkeep/internal/app/dto"
	"innkeep/internal/app/queries"
	domainreservation "innkeep/internal/domain/reservation"
)

const paymentStatusKey = "billing.payment_status"

// PaymentStatusQuery classifies a reservation's accumulated payment signals
// into one authoritative status and computes the deposit/balance figures
// the checkout screen shows.
type PaymentStatusQuery struct {
	ReservationID string
}

func (q PaymentStatusQuery) Key() string { return paymentStatusKey }

type PaymentStatusHandler struct {
	Reservations domainreservation.Repository
}

func (h *PaymentStatusHandler) Handle(ctx context.Context, q PaymentStatusQuery) (dto.PaymentReport, error) {
	r, err := h.Reservations.ByID(ctx, domainreservation.ReservationID(q.ReservationID))
	if err != nil {
		return dto.PaymentReport{}, err
	}
	balance := r.Balance()
	return dto.PaymentReport{
		ReservationID: string(r.ID),
		Status:        string(r.PaymentStatus()),
		Deposit:       balance.Deposit,
		TotalPaid:     balance.TotalPaid,
		AmountDue:     balance.AmountDue,
		PaidInFull:    balance.PaidInFull,
	}, nil
}

var _ queries.Handler[PaymentStatusQuery, dto.PaymentReport] = (*PaymentStatusHandler)(nil)
