package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/berroteran/promptstash/pkg/adapters/fs"
	"github.com/berroteran/promptstash/pkg/core"
)

// setupBackend helps create a backend for testing. It returns the
// backend and the path of the store file.
func setupBackend(t *testing.T) (*fs.Backend, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prompts.json")
	backend := fs.NewBackend(fs.Config{Path: path})

	if err := backend.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return backend, path
}

func TestLoad(t *testing.T) {
	t.Run("Missing File Is Empty Collection", func(t *testing.T) {
		backend, _ := setupBackend(t)

		raws, err := backend.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(raws) != 0 {
			t.Errorf("expected empty collection, got %d records", len(raws))
		}
	})

	t.Run("Blank File Is Empty Collection", func(t *testing.T) {
		backend, path := setupBackend(t)
		if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
			t.Fatal(err)
		}

		raws, err := backend.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(raws) != 0 {
			t.Errorf("expected empty collection, got %d records", len(raws))
		}
	})

	t.Run("Corrupt File Is An Error", func(t *testing.T) {
		backend, path := setupBackend(t)
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := backend.Load(context.Background()); err == nil {
			t.Error("expected error for corrupt store file")
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("Roundtrip", func(t *testing.T) {
		backend, _ := setupBackend(t)
		ctx := context.Background()

		records := []core.Record{
			{ID: "a", Text: "hello", Tags: []string{"t1"}, FolderID: "f1", CreatedAt: 100, UpdatedAt: 100, UsageCount: 2},
			{ID: "b", Text: "world", Tags: []string{}, FolderID: "f2", CreatedAt: 200, UpdatedAt: 300},
		}

		if err := backend.Save(ctx, records); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		raws, err := backend.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(raws) != 2 {
			t.Fatalf("expected 2 raw records, got %d", len(raws))
		}
		if raws[0]["id"] != "a" || raws[1]["id"] != "b" {
			t.Errorf("collection order not preserved: %v", raws)
		}
		if raws[0]["text"] != "hello" {
			t.Errorf("expected text 'hello', got %v", raws[0]["text"])
		}
		// JSON numbers decode as float64; normalization owns the coercion.
		if raws[0]["usageCount"] != float64(2) {
			t.Errorf("expected usageCount 2, got %v", raws[0]["usageCount"])
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		backend, path := setupBackend(t)

		if err := backend.Save(context.Background(), []core.Record{{ID: "a"}}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), fs.TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("Overwrites Previous Collection", func(t *testing.T) {
		backend, _ := setupBackend(t)
		ctx := context.Background()

		if err := backend.Save(ctx, []core.Record{{ID: "a"}, {ID: "b"}}); err != nil {
			t.Fatal(err)
		}
		if err := backend.Save(ctx, []core.Record{{ID: "a"}}); err != nil {
			t.Fatal(err)
		}

		raws, err := backend.Load(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(raws) != 1 {
			t.Errorf("expected 1 record after overwrite, got %d", len(raws))
		}
	})
}

func TestWatch(t *testing.T) {
	backend, path := setupBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := backend.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// External write to the store file.
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changes:
		// Signal received.
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}
