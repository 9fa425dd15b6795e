package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ukpkickball/roster/internal/domain/game"
	"github.com/ukpkickball/roster/internal/infrastructure/repository/memory"
	"github.com/ukpkickball/roster/internal/platform/logging"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type fakeLogoStore struct {
	saved   map[string][]byte
	deleted []string
}

func newFakeLogoStore() *fakeLogoStore {
	return &fakeLogoStore{saved: make(map[string][]byte)}
}

func (s *fakeLogoStore) Save(_ context.Context, filename string, content []byte) error {
	s.saved[filename] = content
	return nil
}

func (s *fakeLogoStore) Delete(_ context.Context, filename string) error {
	s.deleted = append(s.deleted, filename)
	return nil
}

func newGameService(repo game.Repository) *GameService {
	return NewGameService(
		repo,
		newFakeLogoStore(),
		staticIDGenerator{id: "abcdef0123456789"},
		time.Thursday,
		"Unsolicited Kick Pics",
		logging.NewNop(),
	)
}

func TestGameService_GetOrCreateCurrent_Idempotent(t *testing.T) {
	repo := memory.NewGameRepository()
	service := newGameService(repo)

	// Monday, so the coming Thursday is the 12th.
	service.now = func() time.Time { return time.Date(2026, 2, 9, 10, 30, 0, 0, time.UTC) }

	first, err := service.GetOrCreateCurrent(t.Context())
	if err != nil {
		t.Fatalf("get or create current failed: %v", err)
	}
	if got := first.Date.Format(game.DateLayout); got != "2026-02-12" {
		t.Fatalf("expected game on 2026-02-12, got %s", got)
	}
	if first.TeamName != "Unsolicited Kick Pics" {
		t.Fatalf("expected default team name, got %q", first.TeamName)
	}

	second, err := service.GetOrCreateCurrent(t.Context())
	if err != nil {
		t.Fatalf("second get or create failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same game on repeat call, got %d vs %d", second.ID, first.ID)
	}

	games, err := service.List(t.Context())
	if err != nil {
		t.Fatalf("list games failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected a single provisioned game, got %d", len(games))
	}
}

func TestGameService_GetOrCreateCurrent_MatchDayRollsFullWeek(t *testing.T) {
	repo := memory.NewGameRepository()
	service := newGameService(repo)

	// Already Thursday: the current game is next week's, not today's.
	service.now = func() time.Time { return time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC) }

	item, err := service.GetOrCreateCurrent(t.Context())
	if err != nil {
		t.Fatalf("get or create current failed: %v", err)
	}
	if got := item.Date.Format(game.DateLayout); got != "2026-02-19" {
		t.Fatalf("expected game on 2026-02-19, got %s", got)
	}
}

func TestGameService_Update_Validation(t *testing.T) {
	repo := memory.NewGameRepository()
	service := newGameService(repo)
	service.now = func() time.Time { return time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC) }

	item, err := service.GetOrCreateCurrent(t.Context())
	if err != nil {
		t.Fatalf("get or create current failed: %v", err)
	}

	err = service.Update(t.Context(), item.ID, time.Time{}, "Team", "Opp")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
	err = service.Update(t.Context(), item.ID, item.Date, "  ", "Opp")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank team name, got %v", err)
	}
	err = service.Update(t.Context(), 999, item.Date, "Team", "Opp")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown game, got %v", err)
	}

	if err := service.Update(t.Context(), item.ID, item.Date, "The Kickers", "Rivals"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	updated, err := service.Get(t.Context(), item.ID)
	if err != nil {
		t.Fatalf("get game failed: %v", err)
	}
	if updated.TeamName != "The Kickers" || updated.OpponentName != "Rivals" {
		t.Fatalf("expected updated names, got %q vs %q", updated.TeamName, updated.OpponentName)
	}
}

func TestGameService_SetLogo_ReplacesPrevious(t *testing.T) {
	repo := memory.NewGameRepository()
	store := newFakeLogoStore()
	service := NewGameService(
		repo,
		store,
		staticIDGenerator{id: "abcdef0123456789"},
		time.Thursday,
		"Unsolicited Kick Pics",
		logging.NewNop(),
	)
	service.now = func() time.Time { return time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC) }

	item, err := service.GetOrCreateCurrent(t.Context())
	if err != nil {
		t.Fatalf("get or create current failed: %v", err)
	}

	first, err := service.SetLogo(t.Context(), item.ID, []byte("png-bytes"), ".PNG")
	if err != nil {
		t.Fatalf("set logo failed: %v", err)
	}
	if !strings.HasPrefix(first, "game_1_abcdef") || !strings.HasSuffix(first, ".png") {
		t.Fatalf("unexpected logo filename %q", first)
	}
	if _, ok := store.saved[first]; !ok {
		t.Fatalf("expected blob %q saved", first)
	}

	second, err := service.SetLogo(t.Context(), item.ID, []byte("jpg-bytes"), "jpg")
	if err != nil {
		t.Fatalf("replace logo failed: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != first {
		t.Fatalf("expected previous blob %q deleted, got %v", first, store.deleted)
	}

	updated, err := service.Get(t.Context(), item.ID)
	if err != nil {
		t.Fatalf("get game failed: %v", err)
	}
	if updated.LogoFile != second {
		t.Fatalf("expected logo reference %q, got %q", second, updated.LogoFile)
	}

	if err := service.ClearLogo(t.Context(), item.ID); err != nil {
		t.Fatalf("clear logo failed: %v", err)
	}
	cleared, err := service.Get(t.Context(), item.ID)
	if err != nil {
		t.Fatalf("get game failed: %v", err)
	}
	if cleared.LogoFile != "" {
		t.Fatalf("expected logo reference cleared, got %q", cleared.LogoFile)
	}
}

func TestGameService_SetLogo_RejectsUnknownExtension(t *testing.T) {
	repo := memory.NewGameRepository()
	service := newGameService(repo)
	service.now = func() time.Time { return time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC) }

	item, err := service.GetOrCreateCurrent(t.Context())
	if err != nil {
		t.Fatalf("get or create current failed: %v", err)
	}

	_, err = service.SetLogo(t.Context(), item.ID, []byte("x"), "svg")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for svg, got %v", err)
	}
	_, err = service.SetLogo(t.Context(), item.ID, nil, "png")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty content, got %v", err)
	}
}
