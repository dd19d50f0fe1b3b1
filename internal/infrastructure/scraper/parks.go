package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/config"
	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
)

const parksEventsURL = "https://www.parks.org.il/events/"

// ParksScraper scrapes the Israel Nature and Parks Authority events page.
// Park events are usually included with entry, which makes them good
// free-event candidates.
type ParksScraper struct {
	maxEvents int
	timeout   time.Duration
	logger    *zap.Logger
	url       string
}

// NewParksScraper creates the parks.org.il raw source.
func NewParksScraper(cfg *config.ScraperConfig, logger *zap.Logger) repository.RawSource {
	return &ParksScraper{
		maxEvents: cfg.MaxEventsPerSource,
		timeout:   cfg.RequestTimeout,
		logger:    logger,
		url:       parksEventsURL,
	}
}

func (s *ParksScraper) Name() string {
	return "parks.org.il"
}

func (s *ParksScraper) FetchRaw(ctx context.Context) ([]domain.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var events []domain.RawEvent
	seen := make(map[string]struct{})

	c := newCollector(s.timeout)
	c.OnHTML(
		"div.event-item, article.event, div.event-card, li.event, div.views-row",
		func(e *colly.HTMLElement) {
			if len(events) >= s.maxEvents {
				return
			}
			ev := listingFromElement(e, s.Name())
			if ev.Title == "" {
				return
			}
			if _, ok := seen[dedupKey(ev)]; ok {
				return
			}
			seen[dedupKey(ev)] = struct{}{}
			events = append(events, ev)
		})
	// Fallback for layouts without event cards: harvest event links.
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		if len(events) >= s.maxEvents {
			return
		}
		href := e.Attr("href")
		if !strings.Contains(href, "/event/") && !strings.Contains(href, "/events/") {
			return
		}
		title := strings.TrimSpace(e.Text)
		if len([]rune(title)) <= 5 {
			return
		}
		url := e.Request.AbsoluteURL(href)
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}
		events = append(events, domain.RawEvent{
			Title:  title,
			URL:    url,
			Source: s.Name(),
		})
	})
	c.OnError(func(r *colly.Response, err error) {
		s.logger.Warn("parks.org.il fetch failed",
			zap.String("url", r.Request.URL.String()),
			zap.Error(err))
	})

	_ = c.Visit(s.url)

	s.logger.Info("parks.org.il scrape finished", zap.Int("events", len(events)))
	return events, nil
}
