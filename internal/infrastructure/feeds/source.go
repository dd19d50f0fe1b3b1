// Package feeds reads RSS/Atom feeds of municipal and community event
// calendars and exposes their items as raw listings for extraction.
package feeds

import (
	"context"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
)

// Source fetches raw listings from a set of feed URLs.
type Source struct {
	urls   []string
	parser *gofeed.Parser
	logger *zap.Logger
}

// New creates the feed raw source.
func New(urls []string, logger *zap.Logger) repository.RawSource {
	return &Source{
		urls:   urls,
		parser: gofeed.NewParser(),
		logger: logger,
	}
}

func (s *Source) Name() string {
	return "rss_feeds"
}

// FetchRaw parses every configured feed. A feed that fails to parse is
// logged and skipped; the remaining feeds still contribute.
func (s *Source) FetchRaw(ctx context.Context) ([]domain.RawEvent, error) {
	var events []domain.RawEvent
	seen := make(map[string]struct{})

	for _, url := range s.urls {
		if err := ctx.Err(); err != nil {
			return events, err
		}

		feed, err := s.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			s.logger.Warn("Feed fetch failed",
				zap.String("url", url),
				zap.Error(err))
			continue
		}

		for _, item := range feed.Items {
			if item.Title == "" {
				continue
			}
			if _, ok := seen[item.Link]; ok && item.Link != "" {
				continue
			}
			if item.Link != "" {
				seen[item.Link] = struct{}{}
			}

			dateRaw := item.Published
			if dateRaw == "" {
				dateRaw = item.Updated
			}

			events = append(events, domain.RawEvent{
				Title:       item.Title,
				DateRaw:     dateRaw,
				URL:         item.Link,
				Description: item.Description,
				Source:      feed.Title,
				LikelyFree:  likelyFree(item),
			})
		}
	}

	s.logger.Info("Feed fetch finished",
		zap.Int("feeds", len(s.urls)),
		zap.Int("events", len(events)))
	return events, nil
}

func likelyFree(item *gofeed.Item) bool {
	return domain.ContainsFreeKeyword(item.Title + " " + item.Description)
}
