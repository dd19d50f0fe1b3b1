package anthropic

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/freeil-scanner/internal/domain"
)

// buildScanPrompt assembles the web-search discovery prompt for the
// configured cities and event types.
func buildScanPrompt(cities []domain.City, eventTypes []string, today time.Time) string {
	var citiesText strings.Builder
	for _, c := range cities {
		if c.Hebrew != "" {
			fmt.Fprintf(&citiesText, "- %s (%s)\n", c.Name, c.Hebrew)
		} else {
			fmt.Fprintf(&citiesText, "- %s\n", c.Name)
		}
	}

	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	citiesList, _ := json.Marshal(names)
	typesList, _ := json.Marshal(eventTypes)

	return fmt.Sprintf(`You are a free-event discovery assistant for Israel.

Search the web for FREE events and activities across Israeli cities. Focus on events that
are genuinely free (חינם / כניסה חופשית / free admission / no charge).

Search for each of these cities, using BOTH Hebrew and English queries:
%s
For each city, search for:
- Free museums and galleries (כניסה חינם למוזיאונים)
- Free lectures, talks, and academic events (הרצאות חינם)
- Free yoga, pilates, and fitness in parks (יוגה חינם בפארק)
- Free art events, street art tours, exhibitions (אירועי אמנות חינם)
- Free guided tours and walking tours (סיורים מודרכים חינם)
- Free festivals and community events (פסטיבלים וארועי קהילה חינם)
- Free concerts and performances (הופעות חינם)
- Free family activities (פעילויות משפחה חינם)
- Free food events and markets (שווקים ואירועי אוכל חינם)
- Free nature and parks activities (פעילויות טבע חינם)

Today's date is %s. Focus on upcoming and ongoing events.

IMPORTANT RULES:
1. ONLY include events that are GENUINELY FREE. Exclude "free with purchase", paid events,
   or events where "free" status is unclear.
2. Include both one-time events (with specific dates) and recurring/permanent events
   (museums always free, weekly yoga, etc.).
3. For recurring events, use the next upcoming occurrence date.
4. Use your knowledge of Israeli geography for accurate lat/lon coordinates.

Return a JSON array where each event has these exact fields:
- title: event title (Hebrew if available, keep original language)
- date: ISO date string YYYY-MM-DD (next upcoming date for recurring events)
- date_display: human-friendly display (e.g. "כל שבת 10:00-14:00" or "15 בפברואר 2026")
- location: location name with address details
- city: one of %s
- latitude: float
- longitude: float
- event_type: one of %s
- description: brief description in Hebrew (1-2 sentences)
- is_free: true
- source: website where you found the event

Return ONLY a valid JSON array. No markdown fences, no extra text.`,
		citiesText.String(),
		today.Format(domain.DateFormat),
		string(citiesList),
		string(typesList),
	)
}

// buildExtractSystemPrompt assembles the system prompt for structured
// extraction from raw scraped listings.
func buildExtractSystemPrompt(cities []domain.City, eventTypes []string) string {
	names := make([]string, 0, len(cities)+1)
	var pairs []string
	for _, c := range cities {
		names = append(names, c.Name)
		if c.Hebrew != "" {
			pairs = append(pairs, fmt.Sprintf("%s (%s)", c.Name, c.Hebrew))
		} else {
			pairs = append(pairs, c.Name)
		}
	}
	names = append(names, "Other")
	citiesList, _ := json.Marshal(names)
	typesList, _ := json.Marshal(eventTypes)

	return fmt.Sprintf(`You are a free-event extraction assistant for Israel.

You receive raw event data scraped from multiple sources (event sites, parks.org.il,
search results, RSS feeds). Your job is to extract ONLY genuinely free events and
return structured JSON.

IMPORTANT RULES:
1. ONLY include events that are clearly FREE (חינם / כניסה חופשית / free / no charge).
   If the event has a ticket price or is not clearly free, EXCLUDE it.
2. Focus on events in these cities: %s.
   Include events from other Israeli cities only if clearly free.
3. Deduplicate: if the same event appears from multiple sources, keep only one entry.

For each event, return a JSON object with these fields:
- title: event title (keep original Hebrew if present)
- date: ISO 8601 date string (YYYY-MM-DD). For recurring events use the next upcoming
  date. For date ranges use the start date.
- date_display: human-friendly date string (e.g. "February 15, 2026" or "Every Saturday")
- location: human-readable location name (include neighborhood/area)
- city: one of %s
- latitude: approximate latitude (float) - use your knowledge of Israeli geography
- longitude: approximate longitude (float)
- event_type: one of %s
- description: one-sentence summary of the event
- is_free: true (should always be true, exclude non-free events entirely)
- source: the source website or platform where the event was found

Return ONLY a valid JSON array, no markdown fences or other text.`,
		strings.Join(pairs, ", "),
		string(citiesList),
		string(typesList),
	)
}

// buildExtractUserContent lists the raw events for the extraction call.
func buildExtractUserContent(raw []domain.RawEvent) string {
	var b strings.Builder
	b.WriteString("Extract structured FREE event data from the following raw events.\n")
	b.WriteString("Remember: only include events that are genuinely free (חינם / כניסה חופשית / free).\n\n")

	for i, ev := range raw {
		fmt.Fprintf(&b, "Event %d:\n", i+1)
		writeField(&b, "title", ev.Title)
		writeField(&b, "date_raw", ev.DateRaw)
		writeField(&b, "location_raw", ev.LocationRaw)
		writeField(&b, "url", ev.URL)
		writeField(&b, "description", ev.Description)
		writeField(&b, "source", ev.Source)
		if ev.LikelyFree {
			writeField(&b, "is_likely_free", "true")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", key, value)
}
