package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ukpkickball/roster/internal/domain/roster"
)

type RosterRepository struct {
	mu    sync.RWMutex
	pools map[roster.Pool]map[string]roster.Player
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{
		pools: map[roster.Pool]map[string]roster.Player{
			roster.PoolMain:        {},
			roster.PoolSubstitutes: {},
		},
	}
}

func (r *RosterRepository) List(_ context.Context, pool roster.Pool) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Player, 0, len(r.pools[pool]))
	for _, p := range r.pools[pool] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *RosterRepository) Get(_ context.Context, pool roster.Pool, name string) (roster.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pools[pool][name]
	return p, ok, nil
}

func (r *RosterRepository) Add(_ context.Context, pool roster.Pool, player roster.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pools[pool][player.Name]; exists {
		return roster.ErrDuplicate
	}
	r.pools[pool][player.Name] = player
	return nil
}

func (r *RosterRepository) Delete(_ context.Context, pool roster.Pool, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pools[pool], name)
	return nil
}

func (r *RosterRepository) ToggleGender(_ context.Context, pool roster.Pool, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pools[pool][name]
	if !ok {
		return nil
	}
	p.IsFemale = !p.IsFemale
	r.pools[pool][name] = p
	return nil
}
