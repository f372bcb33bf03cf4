package billing

import "strings"

// Status is the single authoritative payment status derived from a
// reservation's heterogeneous payment fields.
type Status string

const (
	StatusCaptured    Status = "CAPTURED"
	StatusPaidOffline Status = "PAID_OFFLINE"
	StatusNotPaid     Status = "NOT_PAID"
	StatusNotCaptured Status = "NOT_CAPTURED"
)

// Payment-mode strings observed in historical data. The field is free text,
// so matching is case-insensitive after trimming.
const (
	ModeNotPaid     = "not paid"
	ModePaidOffline = "paid offline"
	ModePaidOnline  = "paid online"
	ModeCaptured    = "captured"
	ModeCreditDebit = "credit/debit"
)

func normalizeMode(mode string) string {
	return strings.ToLower(strings.TrimSpace(mode))
}

// IsCaptured reports whether any capture signal is present: the legacy
// flag, a positive captured total, a completed capture, or a payment mode
// that implies an online settlement.
func (s PaymentSignals) IsCaptured() bool {
	if s.LegacyCaptured || s.CapturedTotal.IsPositive() {
		return true
	}
	if s.InitialCaptureCompleted || s.FollowupCaptureCompleted {
		return true
	}
	switch normalizeMode(s.PaymentMode) {
	case ModePaidOnline, ModeCaptured, ModeCreditDebit:
		return true
	}
	return false
}

// IsPaidOffline reports a recorded offline payment.
func (s PaymentSignals) IsPaidOffline() bool {
	return s.OfflinePaidAmount.IsPositive() || normalizeMode(s.PaymentMode) == ModePaidOffline
}

// Classify resolves the payment status with fixed precedence: capture
// signals outrank offline payments, which outrank a stale "not paid" text
// field; everything else is NotCaptured.
func Classify(s PaymentSignals) Status {
	captured := s.IsCaptured()
	paidOffline := s.IsPaidOffline()
	switch {
	case captured:
		return StatusCaptured
	case paidOffline:
		return StatusPaidOffline
	case normalizeMode(s.PaymentMode) == ModeNotPaid:
		return StatusNotPaid
	default:
		return StatusNotCaptured
	}
}
