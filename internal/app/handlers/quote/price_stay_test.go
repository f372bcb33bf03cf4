package quote

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/internal/domain/rates"
	"innkeep/internal/infra/storage/memory"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newHandler(t *testing.T) *PriceStayHandler {
	t.Helper()
	repo := memory.NewRateProfileRepository()

	deluxe, err := rates.NewProfile("deluxe", "Deluxe King", dec("200"), dec("120"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), deluxe))

	double, err := rates.NewProfile("double", "Standard Double", dec("150"), dec("90"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), double))

	return &PriceStayHandler{Rates: repo, HotelCommission: dec("10")}
}

func TestPriceStayQuotesSelection(t *testing.T) {
	h := newHandler(t)

	quote, err := h.Handle(context.Background(), PriceStayQuery{
		CheckIn:  time.Date(2026, 7, 1, 15, 30, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 7, 4, 11, 0, 0, 0, time.UTC),
		Rooms: []RoomSelection{
			{RoomType: "deluxe", Count: 1},
			{RoomType: "double", Count: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-07-01", quote.CheckIn)
	assert.Equal(t, "2026-07-04", quote.CheckOut)
	assert.Equal(t, 3, quote.Nights)
	require.Len(t, quote.Lines, 2)

	// deluxe: 200 + 120*10% = 212 a night
	assert.True(t, quote.Lines[0].ChosenPrice.Equal(dec("212")))
	// double: 150 + 90*10% = 159 a night, two rooms
	assert.True(t, quote.Lines[1].ChosenPrice.Equal(dec("159")))
	assert.True(t, quote.Lines[1].GrandTotal.Equal(dec("954")))

	assert.True(t, quote.GrandTotal.Equal(dec("1590")), "grand total %s", quote.GrandTotal)
	assert.True(t, quote.OwnerTotal.Equal(dec("900")), "owner total %s", quote.OwnerTotal)
}

func TestPriceStayZeroNights(t *testing.T) {
	h := newHandler(t)

	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	quote, err := h.Handle(context.Background(), PriceStayQuery{
		CheckIn:  day,
		CheckOut: day,
		Rooms:    []RoomSelection{{RoomType: "deluxe", Count: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, quote.Nights)
	require.Len(t, quote.Lines, 1)
	assert.Empty(t, quote.Lines[0].Nights)
	assert.True(t, quote.GrandTotal.IsZero())
}

func TestPriceStayUnknownRoomType(t *testing.T) {
	h := newHandler(t)

	_, err := h.Handle(context.Background(), PriceStayQuery{
		CheckIn:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
		Rooms:    []RoomSelection{{RoomType: "suite", Count: 1}},
	})
	assert.ErrorIs(t, err, rates.ErrProfileNotFound)
}

func TestPriceStayHonorsOverrides(t *testing.T) {
	h := newHandler(t)

	deluxe, err := h.Rates.ByRoomType(context.Background(), "deluxe")
	require.NoError(t, err)
	price := dec("300")
	deluxe.SetOverride(rates.RateOverride{
		Date:  time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
		Price: &price,
	})

	quote, err := h.Handle(context.Background(), PriceStayQuery{
		CheckIn:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		Rooms:    []RoomSelection{{RoomType: "deluxe", Count: 1}},
	})
	require.NoError(t, err)

	nights := quote.Lines[0].Nights
	require.Len(t, nights, 2)
	assert.True(t, nights[0].TotalWithCommission.Equal(dec("212")))
	// overridden price keeps the profile root and commission
	assert.True(t, nights[1].TotalWithCommission.Equal(dec("312")))
}
