package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/usecase"
)

func newCatalogUC() *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(30, 0.75, domain.EventTypes, zap.NewNop())
}

func yogaCandidate() domain.Event {
	return domain.Event{
		Title:     "Free Yoga Tel Aviv",
		Date:      "2026-03-01",
		City:      "Tel Aviv",
		Latitude:  32.08,
		Longitude: 34.78,
	}
}

func TestCatalogUseCase_Validate(t *testing.T) {
	uc := newCatalogUC()

	tests := []struct {
		name   string
		mutate func(*domain.Event)
		want   bool
	}{
		{"valid candidate", func(e *domain.Event) {}, true},
		{"missing title", func(e *domain.Event) { e.Title = "" }, false},
		{"missing city", func(e *domain.Event) { e.City = "" }, false},
		{"missing latitude", func(e *domain.Event) { e.Latitude = 0 }, false},
		{"missing longitude", func(e *domain.Event) { e.Longitude = 0 }, false},
		{"latitude outside israel", func(e *domain.Event) { e.Latitude = 40.0 }, false},
		{"longitude outside israel", func(e *domain.Event) { e.Longitude = 2.17 }, false},
		{"unsupported city", func(e *domain.Event) { e.City = "Barcelona" }, false},
		{"other is not persistable", func(e *domain.Event) { e.City = "Other" }, false},
		{"boundary latitude is inclusive", func(e *domain.Event) {
			e.City = "Eilat"
			e.Latitude = 29.0
			e.Longitude = 34.95
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := yogaCandidate()
			tt.mutate(&candidate)
			assert.Equal(t, tt.want, uc.Validate(candidate))
		})
	}
}

func TestCatalogUseCase_IsDuplicate(t *testing.T) {
	uc := newCatalogUC()
	existing := []domain.Event{
		{
			Title:    "Free Yoga Tel Aviv",
			City:     "Tel Aviv",
			Location: "Yarkon Park, Tel Aviv",
		},
	}

	t.Run("near identical title", func(t *testing.T) {
		candidate := domain.Event{Title: "Free Yoga Tel-Aviv", City: "Tel Aviv"}
		assert.True(t, uc.IsDuplicate(candidate, existing))
	})

	t.Run("same title different city", func(t *testing.T) {
		candidate := domain.Event{Title: "Free Yoga Tel Aviv", City: "Haifa"}
		assert.False(t, uc.IsDuplicate(candidate, existing))
	})

	t.Run("unrelated title same city", func(t *testing.T) {
		candidate := domain.Event{Title: "Jazz Night at the Port", City: "Tel Aviv"}
		assert.False(t, uc.IsDuplicate(candidate, existing))
	})

	t.Run("reworded title at same venue", func(t *testing.T) {
		catalog := []domain.Event{{
			Title:    "Free Yoga in the Park",
			City:     "Tel Aviv",
			Location: "Yarkon Park, Tel Aviv",
		}}
		// Title similarity lands between the 0.5 floor and the 0.75
		// threshold; the identical location corroborates the match.
		candidate := domain.Event{
			Title:    "Community Yoga in the Park",
			City:     "Tel Aviv",
			Location: "Yarkon Park, Tel Aviv",
		}
		assert.True(t, uc.IsDuplicate(candidate, catalog))
	})

	t.Run("same venue but unrelated title", func(t *testing.T) {
		catalog := []domain.Event{{
			Title:    "Free Yoga",
			City:     "Tel Aviv",
			Location: "Yarkon Park, Tel Aviv",
		}}
		candidate := domain.Event{
			Title:    "Tai Chi Session",
			City:     "Tel Aviv",
			Location: "Yarkon Park, Tel Aviv",
		}
		assert.False(t, uc.IsDuplicate(candidate, catalog))
	})

	t.Run("location rule needs both locations", func(t *testing.T) {
		catalog := []domain.Event{{
			Title: "Free Yoga in the Park",
			City:  "Tel Aviv",
		}}
		candidate := domain.Event{
			Title:    "Community Yoga in the Park",
			City:     "Tel Aviv",
			Location: "Yarkon Park, Tel Aviv",
		}
		assert.False(t, uc.IsDuplicate(candidate, catalog))
	})
}

func TestCatalogUseCase_Expire(t *testing.T) {
	uc := newCatalogUC()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	stale := now.AddDate(0, 0, -60).Format(domain.DateFormat)
	fresh := now.AddDate(0, 0, -10).Format(domain.DateFormat)
	atCutoff := now.AddDate(0, 0, -30).Format(domain.DateFormat)

	events := []domain.Event{
		{Title: "old one-time", Date: stale, DateDisplay: "15 March"},
		{Title: "old weekly english", Date: stale, DateDisplay: "Every Saturday"},
		{Title: "old weekly hebrew", Date: stale, DateDisplay: "כל שבת 10:00-14:00"},
		{Title: "recent", Date: fresh, DateDisplay: "10 April"},
		{Title: "exactly at cutoff", Date: atCutoff},
		{Title: "no date", Date: ""},
		{Title: "garbage date", Date: "sometime in spring"},
	}

	kept, removed := uc.Expire(events, now)

	assert.Equal(t, 1, removed)
	titles := make([]string, 0, len(kept))
	for _, ev := range kept {
		titles = append(titles, ev.Title)
	}
	assert.NotContains(t, titles, "old one-time")
	assert.Contains(t, titles, "old weekly english")
	assert.Contains(t, titles, "old weekly hebrew")
	assert.Contains(t, titles, "recent")
	assert.Contains(t, titles, "exactly at cutoff")
	assert.Contains(t, titles, "no date")
	assert.Contains(t, titles, "garbage date")
}

func TestCatalogUseCase_MergeAddsValidCandidate(t *testing.T) {
	uc := newCatalogUC()
	now := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	catalog, stats := uc.Merge(nil, []domain.Event{yogaCandidate()}, now)

	assert.Equal(t, 1, stats.Added)
	assert.Equal(t, 0, stats.SkippedInvalid)
	assert.Equal(t, 0, stats.SkippedDuplicate)
	require.Len(t, catalog, 1)
	assert.True(t, catalog[0].IsFree)
}

func TestCatalogUseCase_MergeSkipsNearDuplicate(t *testing.T) {
	uc := newCatalogUC()
	now := time.Now()

	second := yogaCandidate()
	second.Title = "Free Yoga Tel-Aviv"
	second.Date = ""

	catalog, stats := uc.Merge(nil, []domain.Event{yogaCandidate(), second}, now)

	assert.Equal(t, 1, stats.Added)
	assert.Equal(t, 1, stats.SkippedDuplicate)
	assert.Len(t, catalog, 1)
}

func TestCatalogUseCase_MergeSkipsInvalid(t *testing.T) {
	uc := newCatalogUC()

	outOfBounds := yogaCandidate()
	outOfBounds.Latitude = 40.0

	catalog, stats := uc.Merge(nil, []domain.Event{outOfBounds}, time.Now())

	assert.Equal(t, 0, stats.Added)
	assert.Equal(t, 1, stats.SkippedInvalid)
	assert.Empty(t, catalog)
}

func TestCatalogUseCase_MergeDedupWithinBatch(t *testing.T) {
	uc := newCatalogUC()

	// Two identical candidates with empty locations: the second must be
	// caught against the first, which was appended moments earlier.
	catalog, stats := uc.Merge(nil,
		[]domain.Event{yogaCandidate(), yogaCandidate()}, time.Now())

	assert.Equal(t, 1, stats.Added)
	assert.Equal(t, 1, stats.SkippedDuplicate)
	assert.Len(t, catalog, 1)
}

func TestCatalogUseCase_MergeIsIdempotent(t *testing.T) {
	uc := newCatalogUC()
	now := time.Now()

	batch := []domain.Event{yogaCandidate()}
	lecture := yogaCandidate()
	lecture.Title = "הרצאה חינם: היסטוריה של ירושלים"
	lecture.City = "Jerusalem"
	lecture.Latitude = 31.77
	lecture.Longitude = 35.22
	batch = append(batch, lecture)

	catalog, first := uc.Merge(nil, batch, now)
	require.Equal(t, 2, first.Added)

	catalog, second := uc.Merge(catalog, batch, now)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 2, second.SkippedDuplicate)
	assert.Len(t, catalog, 2)
}

func TestCatalogUseCase_MergeFillsDefaults(t *testing.T) {
	uc := newCatalogUC()
	now := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	candidate := yogaCandidate()
	candidate.Date = ""
	candidate.EventType = "street-party" // not in the closed enum
	candidate.IsFree = false

	catalog, stats := uc.Merge(nil, []domain.Event{candidate}, now)
	require.Equal(t, 1, stats.Added)

	got := catalog[0]
	assert.Equal(t, "2026-02-20", got.Date)
	assert.Equal(t, domain.DefaultSource, got.Source)
	assert.Equal(t, domain.DefaultEventType, got.EventType)
	assert.Equal(t, "", got.DateDisplay)
	assert.Equal(t, "", got.Description)
	assert.True(t, got.IsFree)
}

func TestCatalogUseCase_MergeInvariants(t *testing.T) {
	uc := newCatalogUC()

	batch := []domain.Event{
		yogaCandidate(),
		{Title: "Bad coords", City: "Haifa", Latitude: 52.5, Longitude: 13.4},
		{Title: "סיור חינם בעכו", City: "Akko", Latitude: 32.92, Longitude: 35.07, IsFree: false},
		{Title: "No city", Latitude: 32.08, Longitude: 34.78},
	}

	catalog, _ := uc.Merge(nil, batch, time.Now())

	cities := make(map[string]struct{}, len(domain.SupportedCities))
	for _, c := range domain.SupportedCities {
		cities[c.Name] = struct{}{}
	}
	for _, ev := range catalog {
		assert.True(t, ev.IsFree, "catalog event must be free: %s", ev.Title)
		assert.True(t, domain.IsraelBounds.Contains(ev.Latitude, ev.Longitude),
			"catalog event must be inside the bounding box: %s", ev.Title)
		_, ok := cities[ev.City]
		assert.True(t, ok, "catalog event city must be supported: %s", ev.Title)
	}
}
