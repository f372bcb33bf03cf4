package reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	appoutbox "innkeep/internal/app/outbox"
	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
)

// Deps is the shared wiring for every reservation command handler.
type Deps struct {
	Reservations    domainreservation.Repository
	Rates           rates.Repository
	HotelCommission decimal.Decimal
	Outbox          appoutbox.Outbox
	Encoder         appoutbox.EventEncoder
	Clock           func() time.Time
}

func (d Deps) now() time.Time {
	if d.Clock != nil {
		return d.Clock().UTC()
	}
	return time.Now().UTC()
}

// persist saves the aggregate and drains its pending events to the outbox.
func (d Deps) persist(ctx context.Context, r *domainreservation.Reservation) error {
	if err := d.Reservations.Save(ctx, r); err != nil {
		return err
	}
	pending := r.PendingEvents()
	r.ClearEvents()
	return appoutbox.RecordDomainEvents(ctx, d.Outbox, d.Encoder, pending)
}

// profilesFor loads the rate profile of every picked line, as required for
// a full rebuild of the reservation's pricing.
func (d Deps) profilesFor(ctx context.Context, r *domainreservation.Reservation) (map[rates.RoomTypeID]*rates.RoomRateProfile, error) {
	profiles := make(map[rates.RoomTypeID]*rates.RoomRateProfile, len(r.Lines))
	for i := range r.Lines {
		id := r.Lines[i].RoomType
		profile, err := d.Rates.ByRoomType(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", id, err)
		}
		profiles[id] = profile
	}
	return profiles, nil
}
