package memory

import (
	"context"
	"sync"

	"github.com/ukpkickball/roster/internal/domain/lineup"
)

type LineupRepository struct {
	mu    sync.RWMutex
	items []lineup.Assignment
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{}
}

func (r *LineupRepository) ListByGame(_ context.Context, gameID int64) ([]lineup.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Assignment, 0)
	for _, a := range r.items {
		if a.GameID == gameID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *LineupRepository) ListByGameAndInning(_ context.Context, gameID int64, inning int) ([]lineup.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Assignment, 0)
	for _, a := range r.items {
		if a.GameID == gameID && a.Inning == inning {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *LineupRepository) DeleteCell(_ context.Context, gameID int64, inning int, playerName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = filterAssignments(r.items, func(a lineup.Assignment) bool {
		return a.GameID == gameID && a.Inning == inning && a.PlayerName == playerName
	})
	return nil
}

func (r *LineupRepository) DeleteInning(_ context.Context, gameID int64, inning int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = filterAssignments(r.items, func(a lineup.Assignment) bool {
		return a.GameID == gameID && a.Inning == inning
	})
	return nil
}

func (r *LineupRepository) DeleteByGame(_ context.Context, gameID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = filterAssignments(r.items, func(a lineup.Assignment) bool {
		return a.GameID == gameID
	})
	return nil
}

func (r *LineupRepository) Insert(_ context.Context, item lineup.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

func filterAssignments(items []lineup.Assignment, drop func(lineup.Assignment) bool) []lineup.Assignment {
	kept := items[:0:0]
	for _, a := range items {
		if !drop(a) {
			kept = append(kept, a)
		}
	}
	return kept
}
