package usecase

import (
	"errors"
	"testing"

	"github.com/ukpkickball/roster/internal/domain/roster"
	"github.com/ukpkickball/roster/internal/infrastructure/repository/memory"
)

func TestRosterService_AddListDelete(t *testing.T) {
	service := NewRosterService(memory.NewRosterRepository())

	if err := service.AddPlayer(t.Context(), roster.PoolMain, "  Dana  ", true); err != nil {
		t.Fatalf("add player failed: %v", err)
	}
	if err := service.AddPlayer(t.Context(), roster.PoolMain, "Alex", false); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	players, err := service.ListPlayers(t.Context(), roster.PoolMain)
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].Name != "Alex" || players[1].Name != "Dana" {
		t.Fatalf("expected players sorted by name, got %v", players)
	}
	if !players[1].IsFemale {
		t.Fatalf("expected Dana flagged female")
	}

	if err := service.DeletePlayer(t.Context(), roster.PoolMain, "Alex"); err != nil {
		t.Fatalf("delete player failed: %v", err)
	}
	// Deleting an absent name is a no-op, not an error.
	if err := service.DeletePlayer(t.Context(), roster.PoolMain, "Alex"); err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}

	players, err = service.ListPlayers(t.Context(), roster.PoolMain)
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 1 || players[0].Name != "Dana" {
		t.Fatalf("expected only Dana left, got %v", players)
	}
}

func TestRosterService_AddPlayer_DuplicateName(t *testing.T) {
	service := NewRosterService(memory.NewRosterRepository())

	if err := service.AddPlayer(t.Context(), roster.PoolSubstitutes, "Sam", false); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	err := service.AddPlayer(t.Context(), roster.PoolSubstitutes, "Sam", true)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// The same name may live in the other pool.
	if err := service.AddPlayer(t.Context(), roster.PoolMain, "Sam", false); err != nil {
		t.Fatalf("add to other pool failed: %v", err)
	}
}

func TestRosterService_AddPlayer_EmptyName(t *testing.T) {
	service := NewRosterService(memory.NewRosterRepository())

	err := service.AddPlayer(t.Context(), roster.PoolMain, "   ", false)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRosterService_ToggleGender(t *testing.T) {
	service := NewRosterService(memory.NewRosterRepository())

	if err := service.AddPlayer(t.Context(), roster.PoolMain, "Riley", false); err != nil {
		t.Fatalf("add player failed: %v", err)
	}
	if err := service.ToggleGender(t.Context(), roster.PoolMain, "Riley"); err != nil {
		t.Fatalf("toggle gender failed: %v", err)
	}

	players, err := service.ListPlayers(t.Context(), roster.PoolMain)
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 1 || !players[0].IsFemale {
		t.Fatalf("expected Riley flagged female after toggle, got %v", players)
	}
}
