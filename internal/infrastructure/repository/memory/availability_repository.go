package memory

import (
	"context"
	"sync"

	"github.com/ukpkickball/roster/internal/domain/availability"
)

type AvailabilityRepository struct {
	mu    sync.RWMutex
	items map[int64]map[string]availability.Status
}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{items: make(map[int64]map[string]availability.Status)}
}

func (r *AvailabilityRepository) ListByGame(_ context.Context, gameID int64) ([]availability.Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Status, 0, len(r.items[gameID]))
	for _, st := range r.items[gameID] {
		out = append(out, cloneStatus(st))
	}
	return out, nil
}

func (r *AvailabilityRepository) Get(_ context.Context, gameID int64, playerName string) (availability.Status, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.items[gameID][playerName]
	if !ok {
		return availability.Status{}, false, nil
	}
	return cloneStatus(st), true, nil
}

func (r *AvailabilityRepository) MaxKickingOrder(_ context.Context, gameID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	maxOrder := 0
	for _, st := range r.items[gameID] {
		if st.KickingOrder != nil && *st.KickingOrder > maxOrder {
			maxOrder = *st.KickingOrder
		}
	}
	return maxOrder, nil
}

func (r *AvailabilityRepository) Upsert(_ context.Context, item availability.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.items[item.GameID] == nil {
		r.items[item.GameID] = make(map[string]availability.Status)
	}
	r.items[item.GameID][item.PlayerName] = cloneStatus(item)
	return nil
}

func (r *AvailabilityRepository) SetKickingOrder(_ context.Context, gameID int64, playerName string, order int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.items[gameID][playerName]
	if !ok {
		return nil
	}
	st.KickingOrder = &order
	r.items[gameID][playerName] = st
	return nil
}

func cloneStatus(st availability.Status) availability.Status {
	copied := st
	if st.KickingOrder != nil {
		order := *st.KickingOrder
		copied.KickingOrder = &order
	}
	return copied
}
