package blob

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFilesystemStore(filepath.Join(dir, "logos"))
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	if err := store.Save(t.Context(), "game_1_abcd1234.png", []byte("png-bytes")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "logos", "game_1_abcd1234.png"))
	if err != nil {
		t.Fatalf("read blob failed: %v", err)
	}
	if string(content) != "png-bytes" {
		t.Fatalf("unexpected blob content %q", content)
	}

	if err := store.Delete(t.Context(), "game_1_abcd1234.png"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "logos", "game_1_abcd1234.png")); !os.IsNotExist(err) {
		t.Fatalf("expected blob removed, stat err=%v", err)
	}

	// Deleting an absent blob is fine.
	if err := store.Delete(t.Context(), "game_1_abcd1234.png"); err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
}

func TestFilesystemStore_RejectsPathEscape(t *testing.T) {
	store, err := NewFilesystemStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	if err := store.Save(t.Context(), "../escape.png", []byte("x")); err == nil {
		t.Fatalf("expected error for path traversal")
	}
	if err := store.Delete(t.Context(), ""); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
