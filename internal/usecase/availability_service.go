package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ukpkickball/roster/internal/domain/availability"
	"github.com/ukpkickball/roster/internal/domain/game"
	"github.com/ukpkickball/roster/internal/domain/roster"
)

// GameStatuses is the availability view for one game: both pools plus the
// per-player status map. Substitutes without a persisted row appear as
// virtual OUT entries.
type GameStatuses struct {
	MainRoster  []roster.Player
	Substitutes []roster.Player
	Statuses    map[string]availability.Status
}

// AvailabilityService tracks who is IN or OUT per game and keeps the kicking
// order. Initialization is an explicit step so reads stay side-effect free.
type AvailabilityService struct {
	gameRepo         game.Repository
	rosterRepo       roster.Repository
	availabilityRepo availability.Repository
}

func NewAvailabilityService(
	gameRepo game.Repository,
	rosterRepo roster.Repository,
	availabilityRepo availability.Repository,
) *AvailabilityService {
	return &AvailabilityService{
		gameRepo:         gameRepo,
		rosterRepo:       rosterRepo,
		availabilityRepo: availabilityRepo,
	}
}

// EnsureInitialized inserts an IN row at the end of the kicking order for
// every main-roster player that has none yet. Substitutes are never
// materialized here. Idempotent.
func (s *AvailabilityService) EnsureInitialized(ctx context.Context, gameID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.EnsureInitialized")
	defer span.End()

	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return err
	}

	mainRoster, err := s.rosterRepo.List(ctx, roster.PoolMain)
	if err != nil {
		return fmt.Errorf("list main roster: %w", err)
	}

	existing, err := s.availabilityRepo.ListByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("list statuses: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, st := range existing {
		seen[st.PlayerName] = struct{}{}
	}

	maxOrder, err := s.availabilityRepo.MaxKickingOrder(ctx, gameID)
	if err != nil {
		return fmt.Errorf("max kicking order: %w", err)
	}

	for _, p := range mainRoster {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		maxOrder++
		order := maxOrder
		err := s.availabilityRepo.Upsert(ctx, availability.Status{
			GameID:       gameID,
			PlayerName:   p.Name,
			Status:       availability.StatusIn,
			IsSubstitute: false,
			KickingOrder: &order,
		})
		if err != nil {
			return fmt.Errorf("initialize status for %s: %w", p.Name, err)
		}
	}

	return nil
}

// GetStatuses is a pure read; callers wanting the main roster auto-filled run
// EnsureInitialized first.
func (s *AvailabilityService) GetStatuses(ctx context.Context, gameID int64) (GameStatuses, error) {
	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return GameStatuses{}, err
	}

	mainRoster, err := s.rosterRepo.List(ctx, roster.PoolMain)
	if err != nil {
		return GameStatuses{}, fmt.Errorf("list main roster: %w", err)
	}
	substitutes, err := s.rosterRepo.List(ctx, roster.PoolSubstitutes)
	if err != nil {
		return GameStatuses{}, fmt.Errorf("list substitutes: %w", err)
	}

	rows, err := s.availabilityRepo.ListByGame(ctx, gameID)
	if err != nil {
		return GameStatuses{}, fmt.Errorf("list statuses: %w", err)
	}
	statuses := make(map[string]availability.Status, len(rows))
	for _, st := range rows {
		statuses[st.PlayerName] = st
	}

	for _, sub := range substitutes {
		if _, ok := statuses[sub.Name]; ok {
			continue
		}
		statuses[sub.Name] = availability.Status{
			GameID:       gameID,
			PlayerName:   sub.Name,
			Status:       availability.StatusOut,
			IsSubstitute: true,
		}
	}

	return GameStatuses{
		MainRoster:  mainRoster,
		Substitutes: substitutes,
		Statuses:    statuses,
	}, nil
}

// Toggle flips a player between IN and OUT. Moving to IN always appends to
// the end of the kicking order; a round trip does not restore the old slot.
func (s *AvailabilityService) Toggle(ctx context.Context, gameID int64, playerName string) (availability.PlayerStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.Toggle")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return "", fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return "", err
	}

	row, found, err := s.availabilityRepo.Get(ctx, gameID, playerName)
	if err != nil {
		return "", fmt.Errorf("get status: %w", err)
	}

	if !found {
		// First toggle for this player: fix the substitute flag from pool
		// membership now, never re-derive it later.
		isSub, err := s.isSubstitute(ctx, playerName)
		if err != nil {
			return "", err
		}
		row = availability.Status{
			GameID:       gameID,
			PlayerName:   playerName,
			IsSubstitute: isSub,
		}
		if isSub {
			row.Status = availability.StatusOut
		} else {
			row.Status = availability.StatusIn
		}
	}

	if row.In() {
		row.Status = availability.StatusOut
		row.KickingOrder = nil
	} else {
		maxOrder, err := s.availabilityRepo.MaxKickingOrder(ctx, gameID)
		if err != nil {
			return "", fmt.Errorf("max kicking order: %w", err)
		}
		order := maxOrder + 1
		row.Status = availability.StatusIn
		row.KickingOrder = &order
	}

	if err := s.availabilityRepo.Upsert(ctx, row); err != nil {
		return "", fmt.Errorf("save status: %w", err)
	}

	return row.Status, nil
}

// Reorder swaps kicking-order values with the nearest IN neighbor in the
// given direction. Already at an end means nothing changes.
func (s *AvailabilityService) Reorder(ctx context.Context, gameID int64, playerName, direction string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.Reorder")
	defer span.End()

	dir, err := availability.ParseDirection(strings.TrimSpace(direction))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return err
	}

	row, found, err := s.availabilityRepo.Get(ctx, gameID, playerName)
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: no status for player %s", ErrNotFound, playerName)
	}
	if !row.In() || row.KickingOrder == nil {
		return fmt.Errorf("%w: player %s is not in the kicking order", ErrInvalidInput, playerName)
	}

	rows, err := s.availabilityRepo.ListByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("list statuses: %w", err)
	}

	neighbor, found := nearestNeighbor(rows, *row.KickingOrder, dir)
	if !found {
		return nil
	}

	if err := s.availabilityRepo.SetKickingOrder(ctx, gameID, row.PlayerName, *neighbor.KickingOrder); err != nil {
		return fmt.Errorf("set kicking order: %w", err)
	}
	if err := s.availabilityRepo.SetKickingOrder(ctx, gameID, neighbor.PlayerName, *row.KickingOrder); err != nil {
		return fmt.Errorf("set neighbor kicking order: %w", err)
	}

	return nil
}

func nearestNeighbor(rows []availability.Status, order int, dir availability.Direction) (availability.Status, bool) {
	var best availability.Status
	found := false
	for _, candidate := range rows {
		if !candidate.In() || candidate.KickingOrder == nil {
			continue
		}
		co := *candidate.KickingOrder
		switch dir {
		case availability.DirectionUp:
			if co < order && (!found || co > *best.KickingOrder) {
				best = candidate
				found = true
			}
		case availability.DirectionDown:
			if co > order && (!found || co < *best.KickingOrder) {
				best = candidate
				found = true
			}
		}
	}
	return best, found
}

func (s *AvailabilityService) isSubstitute(ctx context.Context, playerName string) (bool, error) {
	_, inSubs, err := s.rosterRepo.Get(ctx, roster.PoolSubstitutes, playerName)
	if err != nil {
		return false, fmt.Errorf("check substitute pool: %w", err)
	}
	if inSubs {
		return true, nil
	}

	_, inMain, err := s.rosterRepo.Get(ctx, roster.PoolMain, playerName)
	if err != nil {
		return false, fmt.Errorf("check main pool: %w", err)
	}
	if !inMain {
		return false, fmt.Errorf("%w: player %s is in neither pool", ErrNotFound, playerName)
	}

	return false, nil
}
