package reservation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/internal/domain/billing"
	"innkeep/internal/domain/rates"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func doubleProfile(t *testing.T) *rates.RoomRateProfile {
	t.Helper()
	p, err := rates.NewProfile("DBL", "Double Room", dec("200"), dec("120"))
	require.NoError(t, err)
	return p
}

func draftWithRoom(t *testing.T) *Reservation {
	t.Helper()
	r, err := NewReservation(CreateParams{
		ID:        "res-1",
		GuestName: "Ada Lovelace",
		CheckIn:   date(2026, 7, 1),
		CheckOut:  date(2026, 7, 4),
		CreatedAt: testNow,
	})
	require.NoError(t, err)
	require.NoError(t, r.AddRoom(doubleProfile(t), decimal.Zero, 1, testNow))
	return r
}

func TestNewReservationValidation(t *testing.T) {
	_, err := NewReservation(CreateParams{GuestName: "  ", CheckIn: date(2026, 7, 1), CheckOut: date(2026, 7, 4)})
	assert.ErrorIs(t, err, ErrGuestRequired)

	_, err = NewReservation(CreateParams{GuestName: "Ada", CheckIn: date(2026, 7, 4), CheckOut: date(2026, 7, 4)})
	assert.Error(t, err)
}

func TestAddRoomPricesLine(t *testing.T) {
	r := draftWithRoom(t)

	require.Len(t, r.Lines, 1)
	assert.True(t, r.Lines[0].ChosenPrice.Equal(dec("212")))
	assert.True(t, r.GrandTotal().Equal(dec("636")))
	assert.True(t, r.OwnerTotal().Equal(dec("360")))

	assert.ErrorIs(t, r.AddRoom(doubleProfile(t), decimal.Zero, 1, testNow), ErrRoomAlreadyPicked)
}

func TestSetRangeRebuildsAndDiscardsEdits(t *testing.T) {
	r := draftWithRoom(t)
	require.NoError(t, r.EditNight("DBL", 0, dec("500"), testNow))
	require.NoError(t, r.SetRoomCount("DBL", 2, testNow))

	profiles := map[rates.RoomTypeID]*rates.RoomRateProfile{"DBL": doubleProfile(t)}
	require.NoError(t, r.SetRange(date(2026, 7, 1), date(2026, 7, 3), profiles, decimal.Zero, testNow))

	// two nights now, the manual edit is gone, the count survives
	require.Len(t, r.Lines[0].PricingByDay, 2)
	assert.True(t, r.Lines[0].PricingByDay[0].TotalPriceWithCommission.Equal(dec("212")))
	assert.Equal(t, 2, r.Lines[0].Count)
}

func TestSetRangeMissingProfile(t *testing.T) {
	r := draftWithRoom(t)
	err := r.SetRange(date(2026, 7, 1), date(2026, 7, 3), nil, decimal.Zero, testNow)
	assert.ErrorIs(t, err, rates.ErrProfileNotFound)
}

func TestEditNightUnknownLine(t *testing.T) {
	r := draftWithRoom(t)
	assert.ErrorIs(t, r.EditNight("STE", 0, dec("100"), testNow), ErrLineNotFound)
}

func TestFinalizeFlattens(t *testing.T) {
	r := draftWithRoom(t)
	require.NoError(t, r.SetRoomCount("DBL", 2, testNow))

	allocations, err := r.Finalize(testNow)
	require.NoError(t, err)

	require.Len(t, allocations, 2)
	assert.True(t, allocations[0].GuestTotal.Equal(dec("636")))
	assert.True(t, allocations[0].OwnerTotal.Equal(dec("360")))
	assert.Equal(t, StateFinalized, r.State)

	// no further mutations once sealed
	assert.ErrorIs(t, r.EditNight("DBL", 0, dec("100"), testNow), ErrInvalidState)
	_, err = r.Finalize(testNow)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestFinalizeRequiresRooms(t *testing.T) {
	r, err := NewReservation(CreateParams{
		ID:        "res-2",
		GuestName: "Ada",
		CheckIn:   date(2026, 7, 1),
		CheckOut:  date(2026, 7, 4),
		CreatedAt: testNow,
	})
	require.NoError(t, err)

	_, err = r.Finalize(testNow)
	assert.ErrorIs(t, err, ErrEmptyStay)
}

func TestFinalizeRecordsEvent(t *testing.T) {
	r := draftWithRoom(t)
	_, err := r.Finalize(testNow)
	require.NoError(t, err)

	pending := r.PendingEvents()
	last := pending[len(pending)-1]
	finalized, ok := last.(ReservationFinalized)
	require.True(t, ok)
	assert.Equal(t, "reservation.finalized", finalized.EventName())
	assert.Equal(t, 1, finalized.Rooms)
	assert.True(t, finalized.GrandTotal.Equal(dec("636")))
}

func TestPaymentStatusFromSignals(t *testing.T) {
	r := draftWithRoom(t)
	assert.Equal(t, billing.StatusNotCaptured, r.PaymentStatus())

	r.PaymentMode = "not paid"
	assert.Equal(t, billing.StatusNotPaid, r.PaymentStatus())

	r.LegacyCaptured = true
	assert.Equal(t, billing.StatusCaptured, r.PaymentStatus())
}

func TestBalanceUsesFirstLineDeposit(t *testing.T) {
	r := draftWithRoom(t)
	r.CardNumber = "4242"
	require.NoError(t, r.SetRoomCount("DBL", 2, testNow))

	b := r.Balance()
	assert.True(t, b.Deposit.Equal(dec("240"))) // 120 × 2 rooms
	assert.True(t, b.AmountDue.Equal(dec("1272")))
}

func TestCancel(t *testing.T) {
	r := draftWithRoom(t)
	require.NoError(t, r.Cancel("guest no-show", testNow))
	assert.Equal(t, StateCancelled, r.State)
	assert.ErrorIs(t, r.Cancel("again", testNow), ErrInvalidState)
}
