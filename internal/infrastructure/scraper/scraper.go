// Package scraper collects raw free-event listings from Israeli event
// sites and search results. Scraping is best-effort: selectors chase the
// sites' current markup and a dead or redesigned site simply yields
// nothing for that run.
package scraper

import (
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/freeil-scanner/internal/domain"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newCollector(timeout time.Duration) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(timeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "he-IL,he;q=0.9,en-US;q=0.8,en;q=0.7")
	})
	return c
}

// isLikelyFree reports whether listing text mentions free admission in
// Hebrew or English. Only a hint for the extraction step, not a filter.
func isLikelyFree(text string) bool {
	return domain.ContainsFreeKeyword(text)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
