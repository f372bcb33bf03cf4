package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"innkeep/internal/domain/billing"
	"innkeep/internal/domain/rates"
	"innkeep/internal/domain/shared/daterange"
	"innkeep/internal/domain/shared/events"
	"innkeep/internal/domain/stay"
)

var (
	ErrGuestRequired       = errors.New("reservation: guest name required")
	ErrInvalidState        = errors.New("reservation: invalid state transition")
	ErrLineNotFound        = errors.New("reservation: room line not found")
	ErrRoomAlreadyPicked   = errors.New("reservation: room type already picked")
	ErrEmptyStay           = errors.New("reservation: stay has no nights")
	ErrReservationNotFound = errors.New("reservation: not found")
)

type ReservationID string

type State string

const (
	StateDraft     State = "DRAFT"
	StateFinalized State = "FINALIZED"
	StateCancelled State = "CANCELLED"
)

// Reservation is an in-progress stay being priced and edited. Exactly one
// editing session owns it at a time; edits are last-write-wins in memory
// and the repository enforces optimistic versioning on save.
type Reservation struct {
	ID        ReservationID
	GuestName string
	Range     daterange.DateRange
	Lines     []stay.PickedRoomLine

	// payment signal fields accumulated over the reservation's life
	CardNumber      string
	PaymentMode     string
	LegacyCaptured  bool
	CapturedPayment *billing.CapturedPayment
	PaidOnline      decimal.Decimal
	PaidOffline     decimal.Decimal

	// Allocations holds the flattened per-room records once finalized.
	Allocations []stay.RoomAllocation

	State     State
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
	events.EventRecorder
}

type Repository interface {
	ByID(ctx context.Context, id ReservationID) (*Reservation, error)
	Save(ctx context.Context, r *Reservation) error
}

type CreateParams struct {
	ID        ReservationID
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
	CreatedAt time.Time
}

func NewReservation(params CreateParams) (*Reservation, error) {
	if strings.TrimSpace(params.GuestName) == "" {
		return nil, ErrGuestRequired
	}
	dr, err := daterange.New(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}
	now := params.CreatedAt.UTC()
	r := &Reservation{
		ID:          params.ID,
		GuestName:   params.GuestName,
		Range:       dr,
		State:       StateDraft,
		PaidOnline:  decimal.Zero,
		PaidOffline: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.Record(ReservationCreated{ReservationID: r.ID, Range: dr, At: now})
	return r, nil
}

func (r *Reservation) lineIndex(roomType rates.RoomTypeID) int {
	for i := range r.Lines {
		if r.Lines[i].RoomType == roomType {
			return i
		}
	}
	return -1
}

func (r *Reservation) requireDraft() error {
	if r.State != StateDraft {
		return ErrInvalidState
	}
	return nil
}

// AddRoom prices a room selection against the current range and appends it
// as a new line.
func (r *Reservation) AddRoom(profile *rates.RoomRateProfile, hotelCommission decimal.Decimal, count int, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	if r.lineIndex(profile.RoomType) >= 0 {
		return ErrRoomAlreadyPicked
	}
	line := stay.NewLine(profile, r.Range, hotelCommission, count)
	r.Lines = append(r.Lines, line)
	r.touch(now)
	r.Record(RoomLinePriced{ReservationID: r.ID, RoomType: profile.RoomType, Count: line.Count, ChosenPrice: line.ChosenPrice, At: r.UpdatedAt})
	return nil
}

// RemoveRoom discards the line for a room type.
func (r *Reservation) RemoveRoom(roomType rates.RoomTypeID, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	idx := r.lineIndex(roomType)
	if idx < 0 {
		return ErrLineNotFound
	}
	r.Lines = append(r.Lines[:idx], r.Lines[idx+1:]...)
	r.touch(now)
	return nil
}

// SetRoomCount changes how many physical rooms a line covers. Counts clamp
// to a minimum of one; the nightly breakdown is untouched.
func (r *Reservation) SetRoomCount(roomType rates.RoomTypeID, count int, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	idx := r.lineIndex(roomType)
	if idx < 0 {
		return ErrLineNotFound
	}
	if count < 1 {
		count = 1
	}
	r.Lines[idx].Count = count
	r.touch(now)
	return nil
}

// SetRange moves the stay and rebuilds every line from scratch against the
// new dates: last range wins, and any unsaved manual night edits are
// discarded because a brand-new line replaces the old one.
func (r *Reservation) SetRange(checkIn, checkOut time.Time, profiles map[rates.RoomTypeID]*rates.RoomRateProfile, hotelCommission decimal.Decimal, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	dr, err := daterange.New(checkIn, checkOut)
	if err != nil {
		return err
	}
	rebuilt := make([]stay.PickedRoomLine, 0, len(r.Lines))
	for i := range r.Lines {
		profile, ok := profiles[r.Lines[i].RoomType]
		if !ok {
			return fmt.Errorf("%w: %s", rates.ErrProfileNotFound, r.Lines[i].RoomType)
		}
		rebuilt = append(rebuilt, stay.NewLine(profile, dr, hotelCommission, r.Lines[i].Count))
	}
	r.Range = dr
	r.Lines = rebuilt
	r.touch(now)
	r.Record(StayDatesChanged{ReservationID: r.ID, Range: dr, At: r.UpdatedAt})
	return nil
}

// EditNight rewrites one night's final amount on a line.
func (r *Reservation) EditNight(roomType rates.RoomTypeID, index int, amount decimal.Decimal, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	idx := r.lineIndex(roomType)
	if idx < 0 {
		return ErrLineNotFound
	}
	if err := r.Lines[idx].EditNight(index, amount); err != nil {
		return err
	}
	r.touch(now)
	r.Record(NightAmountEdited{ReservationID: r.ID, RoomType: roomType, NightIndex: index, Amount: amount.Round(2), At: r.UpdatedAt})
	return nil
}

// InheritFirstNight propagates a line's first-night amount to every night.
func (r *Reservation) InheritFirstNight(roomType rates.RoomTypeID, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	idx := r.lineIndex(roomType)
	if idx < 0 {
		return ErrLineNotFound
	}
	r.Lines[idx].InheritFirstNight()
	r.touch(now)
	r.Record(TotalRedistributed{ReservationID: r.ID, RoomType: roomType, Operation: "inherit_first_night", At: r.UpdatedAt})
	return nil
}

// DistributeTotal splits a lump sum across a line's nights, cent-exact.
func (r *Reservation) DistributeTotal(roomType rates.RoomTypeID, total decimal.Decimal, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	idx := r.lineIndex(roomType)
	if idx < 0 {
		return ErrLineNotFound
	}
	r.Lines[idx].DistributeTotal(total)
	r.touch(now)
	r.Record(TotalRedistributed{ReservationID: r.ID, RoomType: roomType, Operation: "distribute_total", Amount: total.Round(2), At: r.UpdatedAt})
	return nil
}

// GrandTotal is the guest-facing total across all lines.
func (r *Reservation) GrandTotal() decimal.Decimal {
	return stay.StayGrandTotal(r.Lines)
}

// OwnerTotal is the property's total across all lines.
func (r *Reservation) OwnerTotal() decimal.Decimal {
	return stay.StayOwnerTotal(r.Lines)
}

// Signals flattens the reservation's payment fields for the classifier.
func (r *Reservation) Signals() billing.PaymentSignals {
	return billing.SignalsFrom(r.PaymentMode, r.LegacyCaptured, r.CapturedPayment, r.PaidOffline)
}

// PaymentStatus derives the authoritative payment status, evaluated fresh
// each time with no stored transition history.
func (r *Reservation) PaymentStatus() billing.Status {
	return billing.Classify(r.Signals())
}

// Balance computes the card-on-file deposit and remaining amount due. The
// deposit is quoted from the first picked line.
func (r *Reservation) Balance() billing.Balance {
	in := billing.BalanceInput{
		CardOnFile:     strings.TrimSpace(r.CardNumber) != "",
		StayGrandTotal: r.GrandTotal(),
		PaidOnline:     r.PaidOnline,
		PaidOffline:    r.PaidOffline,
		PaymentMode:    r.PaymentMode,
		Captured:       r.Signals().IsCaptured(),
	}
	if len(r.Lines) > 0 && len(r.Lines[0].PricingByDay) > 0 {
		in.FirstNightRootPrice = r.Lines[0].PricingByDay[0].RootPrice
		in.RoomCount = r.Lines[0].Count
	}
	return billing.ComputeBalance(in)
}

// Finalize flattens every line into one allocation per physical room and
// seals the reservation.
func (r *Reservation) Finalize(now time.Time) ([]stay.RoomAllocation, error) {
	if err := r.requireDraft(); err != nil {
		return nil, err
	}
	if len(r.Lines) == 0 || r.Range.Nights() == 0 {
		return nil, ErrEmptyStay
	}
	var allocations []stay.RoomAllocation
	for i := range r.Lines {
		allocations = append(allocations, r.Lines[i].Flatten()...)
	}
	r.Allocations = allocations
	r.State = StateFinalized
	r.touch(now)
	r.Record(ReservationFinalized{
		ReservationID: r.ID,
		Rooms:         len(allocations),
		GrandTotal:    r.GrandTotal(),
		OwnerTotal:    r.OwnerTotal(),
		Status:        r.PaymentStatus(),
		At:            r.UpdatedAt,
	})
	return allocations, nil
}

// Cancel discards a draft or releases a finalized reservation.
func (r *Reservation) Cancel(reason string, now time.Time) error {
	switch r.State {
	case StateDraft, StateFinalized:
	default:
		return ErrInvalidState
	}
	r.State = StateCancelled
	r.touch(now)
	r.Record(ReservationCancelled{ReservationID: r.ID, Reason: reason, At: r.UpdatedAt})
	return nil
}

func (r *Reservation) touch(now time.Time) {
	r.UpdatedAt = now.UTC()
}
