package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		signals PaymentSignals
		want    Status
	}{
		{
			name:    "no signals at all",
			signals: PaymentSignals{},
			want:    StatusNotCaptured,
		},
		{
			name:    "explicit not paid",
			signals: PaymentSignals{PaymentMode: "Not Paid"},
			want:    StatusNotPaid,
		},
		{
			name:    "legacy captured flag outranks stale not paid text",
			signals: PaymentSignals{PaymentMode: "not paid", LegacyCaptured: true},
			want:    StatusCaptured,
		},
		{
			name:    "captured total",
			signals: PaymentSignals{CapturedTotal: dec("150")},
			want:    StatusCaptured,
		},
		{
			name:    "initial capture completed",
			signals: PaymentSignals{InitialCaptureCompleted: true},
			want:    StatusCaptured,
		},
		{
			name:    "followup capture completed",
			signals: PaymentSignals{FollowupCaptureCompleted: true},
			want:    StatusCaptured,
		},
		{
			name:    "paid online mode",
			signals: PaymentSignals{PaymentMode: "Paid Online"},
			want:    StatusCaptured,
		},
		{
			name:    "credit/debit mode",
			signals: PaymentSignals{PaymentMode: "credit/debit"},
			want:    StatusCaptured,
		},
		{
			name:    "offline amount",
			signals: PaymentSignals{OfflinePaidAmount: dec("200")},
			want:    StatusPaidOffline,
		},
		{
			name:    "paid offline mode",
			signals: PaymentSignals{PaymentMode: "  PAID OFFLINE "},
			want:    StatusPaidOffline,
		},
		{
			name:    "capture outranks offline",
			signals: PaymentSignals{OfflinePaidAmount: dec("200"), LegacyCaptured: true},
			want:    StatusCaptured,
		},
		{
			name:    "unknown mode defaults to not captured",
			signals: PaymentSignals{PaymentMode: "pending transfer"},
			want:    StatusNotCaptured,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.signals))
		})
	}
}

func TestSignalsFromCapturedPayment(t *testing.T) {
	payment := &CapturedPayment{
		Initial: Capture{Amount: dec("100"), Status: "Completed"},
		Followups: []Capture{
			{Amount: dec("50"), Status: "completed"},
			{Amount: dec("75"), Status: "failed"},
		},
	}

	s := SignalsFrom("not paid", false, payment, decimal.Zero)

	assert.True(t, s.CapturedTotal.Equal(dec("150"))) // failed capture excluded
	assert.True(t, s.InitialCaptureCompleted)
	assert.True(t, s.FollowupCaptureCompleted)
	assert.Equal(t, StatusCaptured, Classify(s))
}

func TestSignalsFromNilPayment(t *testing.T) {
	s := SignalsFrom("not paid", false, nil, decimal.Zero)
	assert.True(t, s.CapturedTotal.IsZero())
	assert.Equal(t, StatusNotPaid, Classify(s))
}
