package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berroteran/promptstash/pkg/adapters/sqlite"
	"github.com/berroteran/promptstash/pkg/core"
)

func openBackend(t *testing.T) *sqlite.Backend {
	t.Helper()

	backend, err := sqlite.Open(filepath.Join(t.TempDir(), "prompts.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	backend := openBackend(t)
	ctx := context.Background()

	records := []core.Record{
		{ID: "a", Text: "hello", Tags: []string{"t1", "t2"}, Favorite: true, FolderID: "f1", CreatedAt: 100, UpdatedAt: 150, UsageCount: 3},
		{ID: "b", Text: "world", Tags: []string{}, CreatedAt: 200, UpdatedAt: 200},
	}
	require.NoError(t, backend.Save(ctx, records))

	raws, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "a", raws[0]["id"])
	assert.Equal(t, "hello", raws[0]["text"])
	assert.Equal(t, []string{"t1", "t2"}, raws[0]["tags"])
	assert.Equal(t, true, raws[0]["favorite"])
	assert.Equal(t, "f1", raws[0]["folderId"])
	assert.Equal(t, int64(100), raws[0]["createdAt"])
	assert.Equal(t, int64(3), raws[0]["usageCount"])

	// Absent folder is stored as NULL and omitted from the raw value.
	_, hasFolder := raws[1]["folderId"]
	assert.False(t, hasFolder)
}

func TestSave_ReplacesCollection(t *testing.T) {
	backend := openBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, []core.Record{{ID: "a", Text: "x"}, {ID: "b", Text: "y"}}))
	require.NoError(t, backend.Save(ctx, []core.Record{{ID: "b", Text: "y"}}))

	raws, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "b", raws[0]["id"])
}

func TestLoad_PreservesOrder(t *testing.T) {
	backend := openBackend(t)
	ctx := context.Background()

	records := []core.Record{{ID: "c"}, {ID: "a"}, {ID: "b"}}
	require.NoError(t, backend.Save(ctx, records))

	raws, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 3)
	assert.Equal(t, "c", raws[0]["id"])
	assert.Equal(t, "a", raws[1]["id"])
	assert.Equal(t, "b", raws[2]["id"])
}

func TestRoundtrip_ThroughStore(t *testing.T) {
	backend := openBackend(t)
	ctx := context.Background()

	store := core.NewStore(core.Collaborators{Backend: backend})
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Create(ctx, core.Record{ID: "a", Text: "hello", FolderID: "f1"}))

	reloaded := core.NewStore(core.Collaborators{Backend: backend})
	require.NoError(t, reloaded.Init(ctx))

	rec, ok := reloaded.Get("a")
	require.True(t, ok)
	assert.Equal(t, "hello", rec.Text)
	assert.Equal(t, "f1", rec.FolderID)
}
