package rates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func testProfile(t *testing.T) *RoomRateProfile {
	t.Helper()
	p, err := NewProfile("DBL", "Double Room", dec("200"), dec("120"))
	require.NoError(t, err)
	return p
}

func TestResolveWithoutOverrideUsesDefaults(t *testing.T) {
	p := testProfile(t)

	got := Resolve(p, date(2026, 7, 1), decimal.NewFromInt(10))

	assert.True(t, got.Price.Equal(dec("200")))
	assert.True(t, got.RootPrice.Equal(dec("120")))
	assert.True(t, got.CommissionRate.Equal(dec("0.1")))
}

func TestResolveFullOverrideWinsOverDefaults(t *testing.T) {
	p := testProfile(t)
	p.SetOverride(RateOverride{
		Date:           date(2026, 7, 4),
		Price:          decPtr("100"),
		RootPrice:      decPtr("40"),
		CommissionRate: decPtr("0.2"),
	})

	got := Resolve(p, date(2026, 7, 4), decimal.NewFromInt(10))

	assert.True(t, got.Price.Equal(dec("100")))
	assert.True(t, got.RootPrice.Equal(dec("40")))
	assert.True(t, got.CommissionRate.Equal(dec("0.2")))
}

func TestResolvePartialOverrideFallsBackPerField(t *testing.T) {
	p := testProfile(t)
	p.SetOverride(RateOverride{Date: date(2026, 7, 4), Price: decPtr("250")})

	got := Resolve(p, date(2026, 7, 4), decimal.NewFromInt(10))

	assert.True(t, got.Price.Equal(dec("250")))
	assert.True(t, got.RootPrice.Equal(dec("120")))
	assert.True(t, got.CommissionRate.Equal(dec("0.1")))
}

func TestResolveNormalizesPercentCommission(t *testing.T) {
	p := testProfile(t)
	p.SetOverride(RateOverride{Date: date(2026, 7, 4), CommissionRate: decPtr("15")})

	got := Resolve(p, date(2026, 7, 4), decimal.NewFromInt(10))
	assert.True(t, got.CommissionRate.Equal(dec("0.15")))
}

func TestResolveMatchesByExactDateOnly(t *testing.T) {
	p := testProfile(t)
	p.SetOverride(RateOverride{Date: date(2026, 7, 4), Price: decPtr("999")})

	got := Resolve(p, date(2026, 7, 5), decimal.NewFromInt(10))
	assert.True(t, got.Price.Equal(dec("200")))
}

func TestSetOverrideReplacesSameDate(t *testing.T) {
	p := testProfile(t)
	p.SetOverride(RateOverride{Date: date(2026, 7, 4), Price: decPtr("180")})
	p.SetOverride(RateOverride{Date: date(2026, 7, 4), Price: decPtr("210")})

	require.Len(t, p.Overrides, 1)
	got := Resolve(p, date(2026, 7, 4), decimal.NewFromInt(10))
	assert.True(t, got.Price.Equal(dec("210")))
}

func TestFallbackCommissionChain(t *testing.T) {
	p := testProfile(t)

	// hotel-wide default when the room has none
	assert.True(t, FallbackCommission(p, dec("12")).Equal(dec("12")))

	// room-specific rate wins
	p.CommissionRate = decPtr("8")
	assert.True(t, FallbackCommission(p, dec("12")).Equal(dec("8")))

	// platform default when nothing is configured
	p.CommissionRate = nil
	assert.True(t, FallbackCommission(p, decimal.Zero).Equal(dec("10")))
}
