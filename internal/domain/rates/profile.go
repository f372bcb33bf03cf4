package rates

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"innkeep/internal/domain/shared/daterange"
)

var (
	ErrProfileNotFound = errors.New("rates: rate profile not found")
	ErrRoomTypeEmpty   = errors.New("rates: room type is required")
)

type RoomTypeID string

// RateOverride replaces one or more of a room's default pricing values for a
// single calendar date. Absent fields fall back to the profile defaults.
type RateOverride struct {
	Date           time.Time
	Price          *decimal.Decimal
	RootPrice      *decimal.Decimal
	CommissionRate *decimal.Decimal
}

// RoomRateProfile is a room type's pricing configuration: the default
// guest-facing price, the default owner (root) cost, an optional
// room-specific commission and sparse per-date overrides.
type RoomRateProfile struct {
	RoomType       RoomTypeID
	DisplayName    string
	BasePrice      decimal.Decimal
	RootCost       decimal.Decimal
	CommissionRate *decimal.Decimal
	Overrides      []RateOverride
	UpdatedAt      time.Time
	Version        int64
}

func NewProfile(roomType RoomTypeID, displayName string, basePrice, rootCost decimal.Decimal) (*RoomRateProfile, error) {
	if roomType == "" {
		return nil, ErrRoomTypeEmpty
	}
	return &RoomRateProfile{
		RoomType:    roomType,
		DisplayName: displayName,
		BasePrice:   basePrice,
		RootCost:    rootCost,
	}, nil
}

// SetOverride upserts the override for its calendar date; dates are unique
// within a profile.
func (p *RoomRateProfile) SetOverride(o RateOverride) {
	key := daterange.DayKey(o.Date)
	o.Date = daterange.Day(o.Date)
	for i, existing := range p.Overrides {
		if daterange.DayKey(existing.Date) == key {
			p.Overrides[i] = o
			return
		}
	}
	p.Overrides = append(p.Overrides, o)
}

// OverrideFor looks up the override by exact calendar-date match.
func (p *RoomRateProfile) OverrideFor(date time.Time) (RateOverride, bool) {
	key := daterange.DayKey(date)
	for _, o := range p.Overrides {
		if daterange.DayKey(o.Date) == key {
			return o, true
		}
	}
	return RateOverride{}, false
}

type Repository interface {
	ByRoomType(ctx context.Context, id RoomTypeID) (*RoomRateProfile, error)
	Save(ctx context.Context, profile *RoomRateProfile) error
	List(ctx context.Context) ([]*RoomRateProfile, error)
}
