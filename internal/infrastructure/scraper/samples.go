package scraper

import (
	"context"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
)

// SampleSource returns canned raw listings for demo runs and offline
// testing of the extraction path.
type SampleSource struct{}

// NewSampleSource creates the demo raw source.
func NewSampleSource() repository.RawSource {
	return &SampleSource{}
}

func (s *SampleSource) Name() string {
	return "samples"
}

func (s *SampleSource) FetchRaw(ctx context.Context) ([]domain.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sampleEvents(), nil
}

func sampleEvents() []domain.RawEvent {
	return []domain.RawEvent{
		{
			Title:       "מוזיאון תל אביב לאמנות - יום כניסה חופשית",
			DateRaw:     "Every Tuesday",
			LocationRaw: "מוזיאון תל אביב, שדרות שאול המלך 27",
			Description: "כניסה חופשית למוזיאון תל אביב לאמנות בכל יום שלישי. תערוכות קבועות וזמניות.",
			URL:         "https://example.com/tamuseum-free",
			Source:      "GoOut.co.il",
			LikelyFree:  true,
		},
		{
			Title:       "מוזיאון ישראל - שעות כניסה חינם",
			DateRaw:     "Every Saturday 10:00-14:00",
			LocationRaw: "מוזיאון ישראל, ירושלים",
			Description: "כניסה חופשית למוזיאון ישראל בשבתות בבוקר. אוספי ארכיאולוגיה, אמנות ויודאיקה.",
			URL:         "https://example.com/israel-museum-free",
			Source:      "Google",
			LikelyFree:  true,
		},
		{
			Title:       "הרצאות חינם באוניברסיטת תל אביב",
			DateRaw:     "Every Wednesday 18:00",
			LocationRaw: "אוניברסיטת תל אביב, בניין גילמן",
			Description: "סדרת הרצאות פתוחות לקהל בנושאי מדע, טכנולוגיה וחברה. כניסה חופשית.",
			URL:         "https://example.com/tau-lectures",
			Source:      "Google",
			LikelyFree:  true,
		},
		{
			Title:       "TEDx Beer Sheva - Free Public Event",
			DateRaw:     "15/03/2026",
			LocationRaw: "אוניברסיטת בן גוריון, באר שבע",
			Description: "Free TEDx talks at Ben Gurion University. Innovation, technology, and social change.",
			URL:         "https://example.com/tedx-beersheva",
			Source:      "Facebook Events",
			LikelyFree:  true,
		},
		{
			Title:       "יוגה חינם בפארק הירקון",
			DateRaw:     "Every Saturday 08:00",
			LocationRaw: "פארק הירקון, גן יהושע, תל אביב",
			Description: "שיעור יוגה קהילתי חינם בפארק הירקון. מתאים לכל הרמות, ללא הרשמה.",
			URL:         "https://example.com/yarkon-yoga",
			Source:      "Facebook Events",
			LikelyFree:  true,
		},
		{
			Title:       "Free Sunrise Yoga - Haifa Beach",
			DateRaw:     "Every Friday 06:30",
			LocationRaw: "חוף דדו, חיפה",
			Description: "Free sunrise yoga session on Dado Beach. Bring your own mat. All levels welcome.",
			URL:         "https://example.com/haifa-beach-yoga",
			Source:      "Facebook Events",
			LikelyFree:  true,
		},
		{
			Title:       "סיור אמנות רחוב חינם בפלורנטין",
			DateRaw:     "15/02/2026",
			LocationRaw: "פלורנטין, תל אביב",
			Description: "סיור מודרך חינם באמנות רחוב וגרפיטי בשכונת פלורנטין. כניסה חופשית.",
			URL:         "https://example.com/florentin-art-tour",
			Source:      "GoOut.co.il",
			LikelyFree:  true,
		},
		{
			Title:       "Free Walking Tour - Haifa German Colony",
			DateRaw:     "Every Friday 10:00",
			LocationRaw: "המושבה הגרמנית, חיפה",
			Description: "Free guided walking tour of Haifa's historic German Colony. English and Hebrew.",
			URL:         "https://example.com/haifa-german-colony-tour",
			Source:      "Facebook Events",
			LikelyFree:  true,
		},
		{
			Title:       "שוק פשפשים קהילתי - ראשון לציון",
			DateRaw:     "14/03/2026",
			LocationRaw: "פארק הנחל, ראשון לציון",
			Description: "שוק פשפשים קהילתי וסדנאות גינון חינם בפארק הנחל. ללא תשלום.",
			URL:         "https://example.com/rishon-flea-market",
			Source:      "Facebook Events",
			LikelyFree:  true,
		},
		{
			Title:       "Free Friday Concert at the First Station",
			DateRaw:     "21/02/2026",
			LocationRaw: "התחנה הראשונה, ירושלים",
			Description: "Free live music concert every Friday at the First Station complex. No charge.",
			URL:         "https://example.com/first-station-concert",
			Source:      "GoOut.co.il",
			LikelyFree:  true,
		},
	}
}
