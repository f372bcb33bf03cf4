package daterange

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("daterange: checkout must be after checkin")

// DayFormat is the calendar-date key used for override lookups.
const DayFormat = "2006-01-02"

// DateRange represents a half-open stay interval [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func New(checkIn, checkOut time.Time) (DateRange, error) {
	dr := DateRange{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.CheckIn.IsZero() || dr.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

// Nights returns the number of nights in the range. A checkout on or before
// the checkin counts as zero nights, never a negative value.
func (dr DateRange) Nights() int {
	n := int(Day(dr.CheckOut).Sub(Day(dr.CheckIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Dates lists every night of the stay in order, checkout date exclusive.
func (dr DateRange) Dates() []time.Time {
	n := dr.Nights()
	if n == 0 {
		return nil
	}
	out := make([]time.Time, 0, n)
	for d := Day(dr.CheckIn); d.Before(Day(dr.CheckOut)); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Day truncates a timestamp to UTC midnight.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey renders the calendar date used as an override map key.
func DayKey(t time.Time) string {
	return Day(t).Format(DayFormat)
}
