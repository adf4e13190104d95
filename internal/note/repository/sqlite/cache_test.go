package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
	"notes-client/internal/note/repository/sqlite"
	pkgLog "notes-client/pkg/log"
)

func newCache(t *testing.T, path, key string) *sqlite.Cache {
	t.Helper()
	c, err := sqlite.New(path, key, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSQLiteCache(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")
	c := newCache(t, path, "notes")

	t.Run("Empty", func(t *testing.T) {
		notes, found, err := c.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if found || notes != nil {
			t.Errorf("expected nothing, got found=%v notes=%v", found, notes)
		}
	})

	t.Run("Save overwrites", func(t *testing.T) {
		first := []model.Note{{ID: 1, Title: "a", Content: "x"}, {ID: 2, Title: "b", Content: "y"}}
		second := []model.Note{{ID: 7, Title: "c", Content: "z"}}

		if err := c.Save(ctx, first); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := c.Save(ctx, second); err != nil {
			t.Fatalf("save: %v", err)
		}

		notes, found, err := c.Load(ctx)
		if err != nil || !found {
			t.Fatalf("load: found=%v err=%v", found, err)
		}
		if len(notes) != 1 || notes[0].ID != 7 {
			t.Errorf("expected last save to win, got %+v", notes)
		}
	})

	t.Run("Empty page is still found", func(t *testing.T) {
		if err := c.Save(ctx, nil); err != nil {
			t.Fatalf("save: %v", err)
		}
		notes, found, err := c.Load(ctx)
		if err != nil || !found {
			t.Fatalf("load: found=%v err=%v", found, err)
		}
		if len(notes) != 0 {
			t.Errorf("expected empty page, got %+v", notes)
		}
	})

	t.Run("Survives reopen", func(t *testing.T) {
		if err := c.Save(ctx, []model.Note{{ID: 9, Title: "kept", Content: "k"}}); err != nil {
			t.Fatalf("save: %v", err)
		}
		reopened := newCache(t, path, "notes")
		notes, found, err := reopened.Load(ctx)
		if err != nil || !found || notes[0].Title != "kept" {
			t.Errorf("unexpected reload: %+v found=%v err=%v", notes, found, err)
		}
	})

	t.Run("Keys are isolated", func(t *testing.T) {
		other := newCache(t, path, "other")
		_, found, err := other.Load(ctx)
		if err != nil || found {
			t.Errorf("expected separate key to be empty, found=%v err=%v", found, err)
		}
	})
}

func TestSQLiteCacheCorrupt(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")
	c := newCache(t, path, "notes")

	if err := c.Save(ctx, []model.Note{{ID: 1, Title: "a", Content: "b"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := sqlite.CorruptForTest(c, `{"not":"an array"}`); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	_, found, err := c.Load(ctx)
	if found || !errors.Is(err, repository.ErrCorruptFallback) {
		t.Errorf("expected corrupt error, got found=%v err=%v", found, err)
	}
}
