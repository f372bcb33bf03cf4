package billing

import "github.com/shopspring/decimal"

// BalanceInput carries the figures the deposit/remaining-balance
// calculation needs. The deposit applies to the card-on-file flow only.
type BalanceInput struct {
	CardOnFile          bool
	FirstNightRootPrice decimal.Decimal
	RoomCount           int
	StayGrandTotal      decimal.Decimal
	PaidOnline          decimal.Decimal
	PaidOffline         decimal.Decimal
	PaymentMode         string
	Captured            bool
}

type Balance struct {
	Deposit    decimal.Decimal
	TotalPaid  decimal.Decimal
	AmountDue  decimal.Decimal
	PaidInFull bool
}

// ComputeBalance derives the deposit and the remaining amount due. The
// deposit is the first night's root price per room unless an offline
// payment was already recorded.
func ComputeBalance(in BalanceInput) Balance {
	totalPaid := in.PaidOnline.Add(in.PaidOffline)

	due := in.StayGrandTotal.Sub(totalPaid)
	if due.IsNegative() {
		due = decimal.Zero
	}

	paidInFull := normalizeMode(in.PaymentMode) == ModeCreditDebit ||
		legacyPaidInFullFallback(in.Captured, totalPaid)
	if paidInFull {
		due = decimal.Zero
	}

	deposit := decimal.Zero
	if in.CardOnFile && !in.PaidOffline.IsPositive() {
		deposit = in.FirstNightRootPrice.Mul(decimal.NewFromInt(int64(in.RoomCount)))
	}

	return Balance{
		Deposit:    deposit,
		TotalPaid:  totalPaid,
		AmountDue:  due,
		PaidInFull: paidInFull,
	}
}

// legacyPaidInFullFallback treats a captured reservation with no recorded
// paid amount as settled. Historical records predate paid-amount tracking;
// this shim goes away once they are backfilled.
func legacyPaidInFullFallback(captured bool, totalPaid decimal.Decimal) bool {
	return captured && totalPaid.IsZero()
}
