package domain

import "strings"

// Event is a single catalog entry. The JSON field names are the contract
// with the map viewer and must not change.
type Event struct {
	Title       string  `json:"title" validate:"required"`
	Date        string  `json:"date"`
	DateDisplay string  `json:"date_display"`
	Location    string  `json:"location"`
	City        string  `json:"city" validate:"required,il_city"`
	Latitude    float64 `json:"latitude" validate:"required"`
	Longitude   float64 `json:"longitude" validate:"required"`
	EventType   string  `json:"event_type"`
	Description string  `json:"description"`
	IsFree      bool    `json:"is_free"`
	Source      string  `json:"source"`
}

// RawEvent is a scraped listing before LLM extraction. Fields mirror what
// the site scrapers can actually pull out of a page.
type RawEvent struct {
	Title       string `json:"title"`
	DateRaw     string `json:"date_raw"`
	LocationRaw string `json:"location_raw"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Source      string `json:"source"`
	LikelyFree  bool   `json:"is_likely_free,omitempty"`
}

// DateFormat is the ISO layout used for the date field.
const DateFormat = "2006-01-02"

// City is a supported city with its Hebrew name for search queries.
type City struct {
	Name   string
	Hebrew string
}

// SupportedCities are the cities the catalog accepts. "Other" is a valid
// extraction output but is never persisted.
var SupportedCities = []City{
	{Name: "Tel Aviv", Hebrew: "תל אביב"},
	{Name: "Jerusalem", Hebrew: "ירושלים"},
	{Name: "Rishon LeZion", Hebrew: "ראשון לציון"},
	{Name: "Haifa", Hebrew: "חיפה"},
	{Name: "Beer Sheva", Hebrew: "באר שבע"},
	{Name: "Eilat", Hebrew: "אילת"},
	{Name: "Tiberias", Hebrew: "טבריה"},
	{Name: "Nazareth", Hebrew: "נצרת"},
	{Name: "Safed", Hebrew: "צפת"},
	{Name: "Akko", Hebrew: "עכו"},
}

// CityNames returns the English names of the supported cities.
func CityNames() []string {
	names := make([]string, len(SupportedCities))
	for i, c := range SupportedCities {
		names[i] = c.Name
	}
	return names
}

// EventTypes are the allowed event_type values.
var EventTypes = []string{
	"concert", "festival", "market", "exhibition", "tour", "workshop",
	"sport", "community", "culture", "food", "nature", "nightlife",
	"family", "museum", "lecture", "yoga", "art", "other",
}

// DefaultEventType is used when extraction did not classify the event.
const DefaultEventType = "other"

// DefaultSource marks events found through the web-search scan.
const DefaultSource = "web_search"

// recurringKeywords mark an event as recurring or permanent. Matched
// case-insensitively as substrings of date_display.
var recurringKeywords = []string{
	"יומי", "כל יום", "כל שבת", "כל שישי", "every", "daily", "weekly",
	"פתוח", "קבוע", "שעות פתיחה", "כל ה", "recurring",
}

// IsRecurring reports whether the event's display date denotes a
// recurring or permanent event. Recurring events are exempt from expiry.
func (e Event) IsRecurring() bool {
	return IsRecurringDisplay(e.DateDisplay)
}

// freeKeywords mark listing text as likely describing free admission,
// in Hebrew and English.
var freeKeywords = []string{
	"חינם", "כניסה חופשית", "ללא תשלום", "בחינם", "כניסה חינם",
	"free", "no charge", "free admission", "free entry", "no cost",
}

// ContainsFreeKeyword reports whether text mentions free admission.
// Only a hint for the extraction step, never a filter on its own.
func ContainsFreeKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range freeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsRecurringDisplay classifies a free-form display date string.
func IsRecurringDisplay(dateDisplay string) bool {
	if dateDisplay == "" {
		return false
	}
	lower := strings.ToLower(dateDisplay)
	for _, kw := range recurringKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
