package dto

import "github.com/shopspring/decimal"

type PaymentReport struct {
	ReservationID string          `json:"reservation_id"`
	Status        string          `json:"status"`
	Deposit       decimal.Decimal `json:"deposit"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	PaidInFull    bool            `json:"paid_in_full"`
}
