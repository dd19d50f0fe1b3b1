package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/config"
	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
)

const googleSearchURL = "https://www.google.com/search"

// GoogleScraper collects free-event leads from Google search results for
// the Hebrew and English query set.
type GoogleScraper struct {
	cities     []domain.City
	maxResults int
	timeout    time.Duration
	logger     *zap.Logger
	baseURL    string
}

// NewGoogleScraper creates the Google search raw source.
func NewGoogleScraper(
	cfg *config.ScraperConfig,
	cities []domain.City,
	logger *zap.Logger,
) repository.RawSource {
	return &GoogleScraper{
		cities:     cities,
		maxResults: cfg.GoogleMaxResults,
		timeout:    cfg.RequestTimeout,
		logger:     logger,
		baseURL:    googleSearchURL,
	}
}

func (s *GoogleScraper) Name() string {
	return "google_search"
}

func (s *GoogleScraper) FetchRaw(ctx context.Context) ([]domain.RawEvent, error) {
	queries := buildSearchQueries(s.cities)

	var events []domain.RawEvent
	seen := make(map[string]struct{})

	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return events, err
		}
		results := s.search(query)
		for _, r := range results {
			if _, ok := seen[r.URL]; ok {
				continue
			}
			seen[r.URL] = struct{}{}
			events = append(events, r)
		}
	}

	s.logger.Info("Google search finished",
		zap.Int("queries", len(queries)),
		zap.Int("events", len(events)))
	return events, nil
}

func (s *GoogleScraper) search(query string) []domain.RawEvent {
	var results []domain.RawEvent

	c := newCollector(s.timeout)
	c.OnHTML("div.g, div[data-sokoban-container]", func(e *colly.HTMLElement) {
		if len(results) >= s.maxResults {
			return
		}
		title := strings.TrimSpace(e.DOM.Find("h3").First().Text())
		href := e.ChildAttr("a[href]", "href")
		if title == "" || !strings.HasPrefix(href, "http") {
			return
		}
		snippet := strings.TrimSpace(
			e.DOM.Find("div[data-sncf], span.st, div.VwiC3b").First().Text())

		results = append(results, domain.RawEvent{
			Title:       title,
			URL:         href,
			Description: snippet,
			Source:      fmt.Sprintf("Google: %s", truncate(query, 40)),
			LikelyFree:  isLikelyFree(title + " " + snippet),
		})
	})
	c.OnError(func(r *colly.Response, err error) {
		s.logger.Warn("Google search failed",
			zap.String("query", query),
			zap.Error(err))
	})

	searchURL := fmt.Sprintf("%s?q=%s&hl=he&gl=il&num=%d",
		s.baseURL, url.QueryEscape(query), s.maxResults)
	_ = c.Visit(searchURL)

	return results
}
