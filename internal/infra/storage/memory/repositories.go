package memory

import (
	"context"
	"sort"
	"sync"

	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
)

// RateProfileRepository is an in-memory rate store, used for demo mode and tests.
type RateProfileRepository struct {
	mu    sync.RWMutex
	items map[rates.RoomTypeID]*rates.RoomRateProfile
}

// NewRateProfileRepository builds an empty repository.
func NewRateProfileRepository() *RateProfileRepository {
	return &RateProfileRepository{
		items: make(map[rates.RoomTypeID]*rates.RoomRateProfile),
	}
}

// ByRoomType returns a profile or rates.ErrProfileNotFound.
func (r *RateProfileRepository) ByRoomType(ctx context.Context, id rates.RoomTypeID) (*rates.RoomRateProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.items[id]
	if !ok {
		return nil, rates.ErrProfileNotFound
	}
	return profile, nil
}

// Save stores/updates a rate profile.
func (r *RateProfileRepository) Save(ctx context.Context, profile *rates.RoomRateProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile.Version++
	r.items[profile.RoomType] = profile
	return nil
}

// List returns every stored profile ordered by room type.
func (r *RateProfileRepository) List(ctx context.Context) ([]*rates.RoomRateProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*rates.RoomRateProfile, 0, len(r.items))
	for _, profile := range r.items {
		out = append(out, profile)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RoomType < out[j].RoomType
	})
	return out, nil
}

// ReservationRepository stores reservations in memory.
type ReservationRepository struct {
	mu    sync.RWMutex
	items map[domainreservation.ReservationID]*domainreservation.Reservation
}

// NewReservationRepository builds an empty reservation repo.
func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		items: make(map[domainreservation.ReservationID]*domainreservation.Reservation),
	}
}

// ByID fetches a reservation.
func (r *ReservationRepository) ByID(ctx context.Context, id domainreservation.ReservationID) (*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[id]
	if !ok {
		return nil, domainreservation.ErrReservationNotFound
	}
	return res, nil
}

// Save stores the current reservation state.
func (r *ReservationRepository) Save(ctx context.Context, res *domainreservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.Version++
	r.items[res.ID] = res
	return nil
}
