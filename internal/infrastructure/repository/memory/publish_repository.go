package memory

import (
	"context"
	"sync"

	"github.com/ukpkickball/roster/internal/domain/lineup"
	"github.com/ukpkickball/roster/internal/domain/publish"
)

type PublishRepository struct {
	mu          sync.RWMutex
	assignments map[int64][]lineup.Assignment
	order       map[int64][]publish.OrderEntry
}

func NewPublishRepository() *PublishRepository {
	return &PublishRepository{
		assignments: make(map[int64][]lineup.Assignment),
		order:       make(map[int64][]publish.OrderEntry),
	}
}

func (r *PublishRepository) Replace(_ context.Context, snapshot publish.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments := make([]lineup.Assignment, len(snapshot.Assignments))
	copy(assignments, snapshot.Assignments)
	r.assignments[snapshot.GameID] = assignments

	order := make([]publish.OrderEntry, 0, len(snapshot.Order))
	for _, e := range snapshot.Order {
		copied := e
		if e.KickingOrder != nil {
			o := *e.KickingOrder
			copied.KickingOrder = &o
		}
		order = append(order, copied)
	}
	r.order[snapshot.GameID] = order
	return nil
}

func (r *PublishRepository) Delete(_ context.Context, gameID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.assignments, gameID)
	delete(r.order, gameID)
	return nil
}

func (r *PublishRepository) ListAssignments(_ context.Context, gameID int64) ([]lineup.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Assignment, len(r.assignments[gameID]))
	copy(out, r.assignments[gameID])
	return out, nil
}

func (r *PublishRepository) ListOrder(_ context.Context, gameID int64) ([]publish.OrderEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]publish.OrderEntry, 0, len(r.order[gameID]))
	for _, e := range r.order[gameID] {
		copied := e
		if e.KickingOrder != nil {
			o := *e.KickingOrder
			copied.KickingOrder = &o
		}
		out = append(out, copied)
	}
	return out, nil
}
