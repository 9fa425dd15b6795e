package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ukpkickball/roster/internal/domain/availability"
	"github.com/ukpkickball/roster/internal/domain/game"
	"github.com/ukpkickball/roster/internal/domain/lineup"
	"github.com/ukpkickball/roster/internal/domain/publish"
	"github.com/ukpkickball/roster/internal/domain/roster"
	"github.com/ukpkickball/roster/internal/platform/logging"
)

// PublishedLineup is the public view: the same sheet shape as the live grid,
// sourced from the frozen tables, plus the publish flag itself.
type PublishedLineup struct {
	Published bool
	LineupSheet
}

// PublishService freezes and serves point-in-time lineup snapshots. A publish
// always replaces the whole snapshot; there is no merging with live edits.
type PublishService struct {
	gameRepo         game.Repository
	rosterRepo       roster.Repository
	availabilityRepo availability.Repository
	lineupRepo       lineup.Repository
	publishRepo      publish.Repository
	logger           *logging.Logger
	now              func() time.Time
}

func NewPublishService(
	gameRepo game.Repository,
	rosterRepo roster.Repository,
	availabilityRepo availability.Repository,
	lineupRepo lineup.Repository,
	publishRepo publish.Repository,
	logger *logging.Logger,
) *PublishService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PublishService{
		gameRepo:         gameRepo,
		rosterRepo:       rosterRepo,
		availabilityRepo: availabilityRepo,
		lineupRepo:       lineupRepo,
		publishRepo:      publishRepo,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *PublishService) Publish(ctx context.Context, gameID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PublishService.Publish")
	defer span.End()

	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return err
	}

	assignments, err := s.lineupRepo.ListByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("list assignments: %w", err)
	}

	statuses, err := s.availabilityRepo.ListByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("list statuses: %w", err)
	}
	order := make([]publish.OrderEntry, 0, len(statuses))
	for _, st := range statuses {
		if !st.In() {
			continue
		}
		order = append(order, publish.OrderEntry{
			GameID:       gameID,
			PlayerName:   st.PlayerName,
			KickingOrder: st.KickingOrder,
		})
	}

	err = s.publishRepo.Replace(ctx, publish.Snapshot{
		GameID:      gameID,
		Assignments: assignments,
		Order:       order,
	})
	if err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	publishedAt := s.now().UTC()
	if err := s.gameRepo.SetPublished(ctx, gameID, &publishedAt); err != nil {
		return fmt.Errorf("mark game published: %w", err)
	}

	s.logger.InfoContext(ctx, "lineup published", "game_id", gameID, "assignments", len(assignments), "players", len(order))
	return nil
}

func (s *PublishService) Unpublish(ctx context.Context, gameID int64) error {
	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return err
	}

	if err := s.publishRepo.Delete(ctx, gameID); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if err := s.gameRepo.SetPublished(ctx, gameID, nil); err != nil {
		return fmt.Errorf("mark game unpublished: %w", err)
	}

	return nil
}

// GetPublished never falls back to the live grid or a stale snapshot: an
// unpublished game always yields the empty view.
func (s *PublishService) GetPublished(ctx context.Context, gameID int64) (PublishedLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PublishService.GetPublished")
	defer span.End()

	item, found, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return PublishedLineup{}, fmt.Errorf("get game by id: %w", err)
	}
	if !found {
		return PublishedLineup{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	if !item.IsPublished {
		return PublishedLineup{
			Published:   false,
			LineupSheet: buildLineupSheet([]string{}, map[string]bool{}, nil),
		}, nil
	}

	order, err := s.publishRepo.ListOrder(ctx, gameID)
	if err != nil {
		return PublishedLineup{}, fmt.Errorf("list published order: %w", err)
	}
	sort.SliceStable(order, func(i, j int) bool {
		oi, oj := publishedOrderOrLast(order[i]), publishedOrderOrLast(order[j])
		if oi != oj {
			return oi < oj
		}
		return order[i].PlayerName < order[j].PlayerName
	})
	availablePlayers := make([]string, 0, len(order))
	for _, entry := range order {
		availablePlayers = append(availablePlayers, entry.PlayerName)
	}

	genders, err := collectGenders(ctx, s.rosterRepo)
	if err != nil {
		return PublishedLineup{}, err
	}

	assignments, err := s.publishRepo.ListAssignments(ctx, gameID)
	if err != nil {
		return PublishedLineup{}, fmt.Errorf("list published assignments: %w", err)
	}

	return PublishedLineup{
		Published:   true,
		LineupSheet: buildLineupSheet(availablePlayers, genders, assignments),
	}, nil
}

func publishedOrderOrLast(entry publish.OrderEntry) int {
	if entry.KickingOrder == nil {
		return int(^uint(0) >> 1)
	}
	return *entry.KickingOrder
}
