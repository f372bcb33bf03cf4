package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CaptureCompleted is the status code of a successfully captured amount.
const CaptureCompleted = "completed"

// Capture is a single card capture attempt carried on a reservation.
type Capture struct {
	Amount decimal.Decimal
	Status string
	At     time.Time
}

func (c Capture) Completed() bool {
	return strings.EqualFold(strings.TrimSpace(c.Status), CaptureCompleted)
}

// CapturedPayment is the captured-payment record accumulated on legacy
// reservations: one initial capture plus zero or more follow-up captures,
// each carrying its own status code.
type CapturedPayment struct {
	Initial   Capture
	Followups []Capture
}

// CompletedTotal sums the amounts of all completed captures.
func (p CapturedPayment) CompletedTotal() decimal.Decimal {
	total := decimal.Zero
	if p.Initial.Completed() {
		total = total.Add(p.Initial.Amount)
	}
	for _, c := range p.Followups {
		if c.Completed() {
			total = total.Add(c.Amount)
		}
	}
	return total
}

func (p CapturedPayment) InitialCompleted() bool {
	return p.Initial.Completed()
}

func (p CapturedPayment) AnyFollowupCompleted() bool {
	for _, c := range p.Followups {
		if c.Completed() {
			return true
		}
	}
	return false
}

// PaymentSignals flattens a reservation's historically-accumulated payment
// fields into the inputs the classifier works from.
type PaymentSignals struct {
	PaymentMode              string
	LegacyCaptured           bool
	CapturedTotal            decimal.Decimal
	InitialCaptureCompleted  bool
	FollowupCaptureCompleted bool
	OfflinePaidAmount        decimal.Decimal
}

// SignalsFrom assembles PaymentSignals from the raw reservation fields.
func SignalsFrom(paymentMode string, legacyCaptured bool, payment *CapturedPayment, offlinePaid decimal.Decimal) PaymentSignals {
	s := PaymentSignals{
		PaymentMode:       paymentMode,
		LegacyCaptured:    legacyCaptured,
		CapturedTotal:     decimal.Zero,
		OfflinePaidAmount: offlinePaid,
	}
	if payment != nil {
		s.CapturedTotal = payment.CompletedTotal()
		s.InitialCaptureCompleted = payment.InitialCompleted()
		s.FollowupCaptureCompleted = payment.AnyFollowupCompleted()
	}
	return s
}
