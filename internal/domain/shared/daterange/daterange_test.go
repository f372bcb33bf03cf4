package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRejectsInvertedRange(t *testing.T) {
	_, err := New(date(2026, 3, 10), date(2026, 3, 10))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(date(2026, 3, 10), date(2026, 3, 8))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNights(t *testing.T) {
	dr, err := New(date(2026, 3, 10), date(2026, 3, 13))
	require.NoError(t, err)
	assert.Equal(t, 3, dr.Nights())

	// zero-night ranges clamp rather than going negative
	inverted := DateRange{CheckIn: date(2026, 3, 13), CheckOut: date(2026, 3, 10)}
	assert.Equal(t, 0, inverted.Nights())
	assert.Empty(t, inverted.Dates())
}

func TestDatesIteratesCheckoutExclusive(t *testing.T) {
	dr, err := New(date(2026, 2, 27), date(2026, 3, 2))
	require.NoError(t, err)

	got := dr.Dates()
	require.Len(t, got, 3)
	assert.Equal(t, date(2026, 2, 27), got[0])
	assert.Equal(t, date(2026, 2, 28), got[1])
	assert.Equal(t, date(2026, 3, 1), got[2])
}

func TestDayNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2026, 5, 4, 1, 30, 0, 0, loc) // 2026-05-03 22:30 UTC
	assert.Equal(t, date(2026, 5, 3), Day(ts))
	assert.Equal(t, "2026-05-03", DayKey(ts))
}
