package feeds_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/infrastructure/feeds"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>אירועי העירייה</title>
    <item>
      <title>הופעה חינם בכיכר</title>
      <link>https://example.com/events/plaza-concert</link>
      <description>הופעה בכניסה חופשית לכל המשפחה</description>
      <pubDate>Fri, 20 Feb 2026 18:00:00 +0200</pubDate>
    </item>
    <item>
      <title>מופע מחול</title>
      <link>https://example.com/events/dance</link>
      <description>כרטיסים במכירה מוקדמת</description>
    </item>
    <item>
      <title></title>
      <link>https://example.com/untitled</link>
    </item>
  </channel>
</rss>`

func TestSource_FetchRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte(rssFixture))
	}))
	defer server.Close()

	source := feeds.New([]string{server.URL}, zap.NewNop())
	events, err := source.FetchRaw(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	concert := events[0]
	assert.Equal(t, "הופעה חינם בכיכר", concert.Title)
	assert.Equal(t, "https://example.com/events/plaza-concert", concert.URL)
	assert.Equal(t, "אירועי העירייה", concert.Source)
	assert.NotEmpty(t, concert.DateRaw)
	assert.True(t, concert.LikelyFree)

	assert.False(t, events[1].LikelyFree)
}

func TestSource_FetchRawBadFeedIsSkipped(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not xml at all"))
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssFixture))
	}))
	defer good.Close()

	source := feeds.New([]string{bad.URL, good.URL}, zap.NewNop())
	events, err := source.FetchRaw(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestSource_FetchRawNoFeeds(t *testing.T) {
	source := feeds.New(nil, zap.NewNop())
	events, err := source.FetchRaw(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}
