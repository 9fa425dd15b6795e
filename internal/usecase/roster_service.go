package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ukpkickball/roster/internal/domain/roster"
)

// RosterService manages the two player pools. Deleting a player leaves any
// historical availability or lineup rows referencing the name untouched.
type RosterService struct {
	rosterRepo roster.Repository
}

func NewRosterService(rosterRepo roster.Repository) *RosterService {
	return &RosterService{rosterRepo: rosterRepo}
}

func (s *RosterService) ListPlayers(ctx context.Context, pool roster.Pool) ([]roster.Player, error) {
	players, err := s.rosterRepo.List(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("list %s players: %w", pool, err)
	}

	return players, nil
}

func (s *RosterService) AddPlayer(ctx context.Context, pool roster.Pool, name string, isFemale bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	err := s.rosterRepo.Add(ctx, pool, roster.Player{Name: name, IsFemale: isFemale})
	if errors.Is(err, roster.ErrDuplicate) {
		return fmt.Errorf("%w: player %s already in %s pool", ErrDuplicateName, name, pool)
	}
	if err != nil {
		return fmt.Errorf("add player to %s pool: %w", pool, err)
	}

	return nil
}

// DeletePlayer is idempotent: removing an absent name succeeds.
func (s *RosterService) DeletePlayer(ctx context.Context, pool roster.Pool, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	if err := s.rosterRepo.Delete(ctx, pool, name); err != nil {
		return fmt.Errorf("delete player from %s pool: %w", pool, err)
	}

	return nil
}

func (s *RosterService) ToggleGender(ctx context.Context, pool roster.Pool, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	if err := s.rosterRepo.ToggleGender(ctx, pool, name); err != nil {
		return fmt.Errorf("toggle gender in %s pool: %w", pool, err)
	}

	return nil
}
