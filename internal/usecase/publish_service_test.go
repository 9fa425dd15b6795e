package usecase

import (
	"testing"
	"time"

	"github.com/ukpkickball/roster/internal/domain/game"
	"github.com/ukpkickball/roster/internal/domain/lineup"
	"github.com/ukpkickball/roster/internal/domain/roster"
	"github.com/ukpkickball/roster/internal/infrastructure/repository/memory"
	"github.com/ukpkickball/roster/internal/platform/logging"
)

type publishFixture struct {
	service      *PublishService
	lineup       *LineupService
	availability *AvailabilityService
	gameRepo     *memory.GameRepository
	gameID       int64
}

func newPublishFixture(t *testing.T) publishFixture {
	t.Helper()

	gameRepo := memory.NewGameRepository()
	rosterRepo := memory.NewRosterRepository()
	availabilityRepo := memory.NewAvailabilityRepository()
	lineupRepo := memory.NewLineupRepository()
	publishRepo := memory.NewPublishRepository()

	created, err := gameRepo.Create(t.Context(), game.Game{
		Date:     time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		TeamName: "Unsolicited Kick Pics",
	})
	if err != nil {
		t.Fatalf("seed game failed: %v", err)
	}

	for _, p := range []roster.Player{{Name: "Alex", IsFemale: true}, {Name: "Blair"}, {Name: "Casey"}} {
		if err := rosterRepo.Add(t.Context(), roster.PoolMain, p); err != nil {
			t.Fatalf("seed roster failed: %v", err)
		}
	}

	availabilityService := NewAvailabilityService(gameRepo, rosterRepo, availabilityRepo)
	if err := availabilityService.EnsureInitialized(t.Context(), created.ID); err != nil {
		t.Fatalf("initialize statuses failed: %v", err)
	}

	return publishFixture{
		service: NewPublishService(
			gameRepo,
			rosterRepo,
			availabilityRepo,
			lineupRepo,
			publishRepo,
			logging.NewNop(),
		),
		lineup:       NewLineupService(gameRepo, rosterRepo, availabilityRepo, lineupRepo),
		availability: availabilityService,
		gameRepo:     gameRepo,
		gameID:       created.ID,
	}
}

func TestPublishService_GetPublished_UnpublishedIsEmpty(t *testing.T) {
	fx := newPublishFixture(t)

	if err := fx.lineup.SetCell(t.Context(), fx.gameID, 1, "Alex", "Pitcher"); err != nil {
		t.Fatalf("set cell failed: %v", err)
	}

	view, err := fx.service.GetPublished(t.Context(), fx.gameID)
	if err != nil {
		t.Fatalf("get published failed: %v", err)
	}
	if view.Published {
		t.Fatalf("expected unpublished game")
	}
	if len(view.AvailablePlayers) != 0 || len(view.Lineup) != 0 {
		t.Fatalf("expected empty public view, got players=%v lineup=%v", view.AvailablePlayers, view.Lineup)
	}
	// The grid metadata still renders.
	if len(view.Positions) != len(lineup.Positions) || len(view.Innings) != lineup.InningCount {
		t.Fatalf("expected full grid metadata on empty view")
	}
}

func TestPublishService_Publish_FreezesSnapshot(t *testing.T) {
	fx := newPublishFixture(t)

	if err := fx.lineup.SetCell(t.Context(), fx.gameID, 1, "Alex", "Pitcher"); err != nil {
		t.Fatalf("set cell failed: %v", err)
	}
	if err := fx.lineup.SetCell(t.Context(), fx.gameID, 1, "Blair", "Catcher"); err != nil {
		t.Fatalf("set cell failed: %v", err)
	}

	if err := fx.service.Publish(t.Context(), fx.gameID); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	item, found, err := fx.gameRepo.GetByID(t.Context(), fx.gameID)
	if err != nil || !found {
		t.Fatalf("get game failed: found=%v err=%v", found, err)
	}
	if !item.IsPublished || item.PublishedAt == nil {
		t.Fatalf("expected game marked published, got %+v", item)
	}

	// Later edits to the working grid and order do not leak into the snapshot.
	if err := fx.lineup.SetCell(t.Context(), fx.gameID, 1, "Alex", "Right Field"); err != nil {
		t.Fatalf("edit after publish failed: %v", err)
	}
	if _, err := fx.availability.Toggle(t.Context(), fx.gameID, "Casey"); err != nil {
		t.Fatalf("toggle after publish failed: %v", err)
	}

	view, err := fx.service.GetPublished(t.Context(), fx.gameID)
	if err != nil {
		t.Fatalf("get published failed: %v", err)
	}
	if !view.Published {
		t.Fatalf("expected published view")
	}
	if got := view.Lineup[1]["Alex"]; got != lineup.PositionPitcher {
		t.Fatalf("expected snapshot to keep Alex on Pitcher, got %q", got)
	}
	want := []string{"Alex", "Blair", "Casey"}
	if len(view.AvailablePlayers) != len(want) {
		t.Fatalf("expected snapshot players %v, got %v", want, view.AvailablePlayers)
	}
	for i, name := range want {
		if view.AvailablePlayers[i] != name {
			t.Fatalf("expected snapshot order %v, got %v", want, view.AvailablePlayers)
		}
	}
	if !view.Genders["Alex"] {
		t.Fatalf("expected gender flags carried into the public view")
	}

	// Republishing replaces the snapshot with the current grid.
	if err := fx.service.Publish(t.Context(), fx.gameID); err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	view, err = fx.service.GetPublished(t.Context(), fx.gameID)
	if err != nil {
		t.Fatalf("get published failed: %v", err)
	}
	if got := view.Lineup[1]["Alex"]; got != lineup.PositionRightField {
		t.Fatalf("expected republish to pick up the edit, got %q", got)
	}
}

func TestPublishService_Unpublish(t *testing.T) {
	fx := newPublishFixture(t)

	if err := fx.lineup.SetCell(t.Context(), fx.gameID, 1, "Alex", "Pitcher"); err != nil {
		t.Fatalf("set cell failed: %v", err)
	}
	if err := fx.service.Publish(t.Context(), fx.gameID); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := fx.service.Unpublish(t.Context(), fx.gameID); err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}

	item, found, err := fx.gameRepo.GetByID(t.Context(), fx.gameID)
	if err != nil || !found {
		t.Fatalf("get game failed: found=%v err=%v", found, err)
	}
	if item.IsPublished || item.PublishedAt != nil {
		t.Fatalf("expected game marked unpublished, got %+v", item)
	}

	view, err := fx.service.GetPublished(t.Context(), fx.gameID)
	if err != nil {
		t.Fatalf("get published failed: %v", err)
	}
	if view.Published || len(view.Lineup) != 0 {
		t.Fatalf("expected empty view after unpublish, got %+v", view)
	}
}
