package catalog_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/repository/catalog"
)

func testEvent(title string) domain.Event {
	return domain.Event{
		Title:     title,
		Date:      "2026-03-01",
		City:      "Tel Aviv",
		Latitude:  32.08,
		Longitude: 34.78,
		EventType: "yoga",
		IsFree:    true,
		Source:    "web_search",
	}
}

func TestFileRepository_LoadMissingFile(t *testing.T) {
	repo := catalog.NewFileRepository(
		filepath.Join(t.TempDir(), "events.json"), zap.NewNop())

	events, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFileRepository_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := catalog.NewFileRepository(path, zap.NewNop())
	events, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFileRepository_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	repo := catalog.NewFileRepository(path, zap.NewNop())
	ctx := context.Background()

	saved := []domain.Event{
		testEvent("יוגה חינם בפארק הירקון"),
		testEvent("Free Walking Tour"),
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileRepository_SaveDocumentFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	repo := catalog.NewFileRepository(path, zap.NewNop())

	require.NoError(t, repo.Save(context.Background(),
		[]domain.Event{testEvent("הרצאה חינם")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// Hebrew must be stored as-is, not \u-escaped.
	assert.Contains(t, text, "הרצאה חינם")
	// 2-space indentation and a trailing newline.
	assert.Contains(t, text, "\n  {")
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.False(t, strings.HasSuffix(text, "\n\n"))
}

func TestFileRepository_SaveEmptyCatalogIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	repo := catalog.NewFileRepository(path, zap.NewNop())

	require.NoError(t, repo.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Empty(t, doc)
}

func TestFileRepository_SaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	repo := catalog.NewFileRepository(path, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.Event{testEvent("first")}))
	require.NoError(t, repo.Save(ctx, []domain.Event{testEvent("second")}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "second", loaded[0].Title)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "events.json", entries[0].Name())
}
