package stay

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"innkeep/internal/domain/rates"
	"innkeep/internal/domain/shared/daterange"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// standardProfile: 200 base price, 120 root cost, commission resolved
// through the fallback chain (10 percent unless overridden per test).
func standardProfile(t *testing.T) *rates.RoomRateProfile {
	t.Helper()
	p, err := rates.NewProfile("DBL", "Double Room", dec("200"), dec("120"))
	require.NoError(t, err)
	return p
}

func threeNights() daterange.DateRange {
	return daterange.DateRange{CheckIn: date(2026, 7, 1), CheckOut: date(2026, 7, 4)}
}

func standardLine(t *testing.T) PickedRoomLine {
	t.Helper()
	return NewLine(standardProfile(t), threeNights(), decimal.Zero, 1)
}

func requireDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, got.Equal(dec(want)), "want %s, got %s", want, got)
}
