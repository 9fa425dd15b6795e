package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ukpkickball/roster/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]game.Game
}

func NewGameRepository() *GameRepository {
	return &GameRepository{nextID: 1, items: make(map[int64]game.Game)}
}

func (r *GameRepository) GetByID(_ context.Context, id int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *GameRepository) GetByDate(_ context.Context, date time.Time) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := date.Format(game.DateLayout)
	for _, item := range r.items {
		if item.Date.Format(game.DateLayout) == want {
			return item, true, nil
		}
	}
	return game.Game{}, false, nil
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *GameRepository) Create(_ context.Context, item game.Game) (game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	item.ID = r.nextID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.nextID++
	r.items[item.ID] = item
	return item, nil
}

func (r *GameRepository) Update(_ context.Context, id int64, date time.Time, teamName, opponentName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.Date = date
	item.TeamName = teamName
	item.OpponentName = opponentName
	item.UpdatedAt = time.Now()
	r.items[id] = item
	return nil
}

func (r *GameRepository) SetLogo(_ context.Context, id int64, logoFile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.LogoFile = logoFile
	r.items[id] = item
	return nil
}

func (r *GameRepository) ClearLogo(_ context.Context, id int64) error {
	return r.SetLogo(context.Background(), id, "")
}

func (r *GameRepository) SetPublished(_ context.Context, id int64, publishedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.IsPublished = publishedAt != nil
	item.PublishedAt = publishedAt
	r.items[id] = item
	return nil
}
