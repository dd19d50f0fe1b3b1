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

// gooutURLs are the listing pages worth scanning; the city pages surface
// events the front page rotates out.
var gooutURLs = []string{
	"https://goout.co.il/",
	"https://goout.co.il/tel-aviv/",
	"https://goout.co.il/jerusalem/",
}

// GoOutScraper scrapes event cards from GoOut.co.il.
type GoOutScraper struct {
	maxEvents int
	timeout   time.Duration
	logger    *zap.Logger
	urls      []string
}

// NewGoOutScraper creates the GoOut raw source.
func NewGoOutScraper(cfg *config.ScraperConfig, logger *zap.Logger) repository.RawSource {
	return &GoOutScraper{
		maxEvents: cfg.MaxEventsPerSource,
		timeout:   cfg.RequestTimeout,
		logger:    logger,
		urls:      gooutURLs,
	}
}

func (s *GoOutScraper) Name() string {
	return "GoOut.co.il"
}

func (s *GoOutScraper) FetchRaw(ctx context.Context) ([]domain.RawEvent, error) {
	var events []domain.RawEvent
	seen := make(map[string]struct{})

	c := newCollector(s.timeout)
	c.OnHTML(
		"div.event-card, article.event, div.event-item, li.event, div[class*='event'], article[class*='event']",
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
	c.OnError(func(r *colly.Response, err error) {
		s.logger.Warn("GoOut fetch failed",
			zap.String("url", r.Request.URL.String()),
			zap.Error(err))
	})

	for _, url := range s.urls {
		if err := ctx.Err(); err != nil {
			return events, err
		}
		_ = c.Visit(url) // per-URL failures already logged in OnError
	}

	s.logger.Info("GoOut scrape finished", zap.Int("events", len(events)))
	return events, nil
}

// listingFromElement pulls the usual card fields out of a listing node.
// Shared by the site scrapers since Israeli event sites use very similar
// card markup.
func listingFromElement(e *colly.HTMLElement, source string) domain.RawEvent {
	item := e.DOM

	title := strings.TrimSpace(item.Find("h2, h3, h4, .title, .event-title").First().Text())
	if title == "" {
		title = truncate(strings.TrimSpace(item.Text()), 200)
	}

	href := e.ChildAttr("a[href]", "href")
	if href == "" && e.Name == "a" {
		href = e.Attr("href")
	}
	if href != "" {
		href = e.Request.AbsoluteURL(href)
	}

	fullText := strings.TrimSpace(item.Text())

	return domain.RawEvent{
		Title:       title,
		DateRaw:     strings.TrimSpace(item.Find(".date, .event-date, time, [class*='date']").First().Text()),
		LocationRaw: strings.TrimSpace(item.Find(".location, .venue, .place, [class*='location'], [class*='venue']").First().Text()),
		URL:         href,
		Description: strings.TrimSpace(item.Find("p, .description, .summary, [class*='desc']").First().Text()),
		Source:      source,
		LikelyFree:  isLikelyFree(fullText),
	}
}

func dedupKey(ev domain.RawEvent) string {
	if ev.URL != "" {
		return ev.URL
	}
	return ev.Title
}
