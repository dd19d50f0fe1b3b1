package scraper

import (
	"fmt"

	"github.com/freeil-scanner/internal/domain"
)

// generalQueries are the Hebrew searches that are not city-specific.
var generalQueries = []string{
	"אירועים חינם ישראל",
	"פעילויות ללא תשלום ישראל",
	"אירועים בכניסה חופשית",
	"מוזיאונים חינם ישראל",
	"מוזיאונים כניסה חופשית",
	"תערוכות אמנות חינם ישראל",
	"גלריות כניסה חופשית",
	"הרצאות חינם ישראל",
	"הרצאות פתוחות לקהל",
	"הרצאות אקדמיות חינם",
	"יוגה חינם בפארק",
	"שיעורי יוגה חינם",
	"פילאטיס חינם בפארק",
	"סיורים מודרכים חינם ישראל",
	"סיורי אמנות רחוב חינם",
	"אירועי אמנות חינם",
	"הופעות רחוב חינם",
	"פסטיבלי אמנות חינם",
}

// cityQueryTemplates generate the per-city Hebrew searches.
var cityQueryTemplates = []string{
	"אירועים חינם %s",
	"פעילויות בחינם %s",
	"כניסה חופשית %s",
	"מוזיאונים חינם %s",
	"תערוכות חינם %s",
	"הרצאות חינם %s",
	"יוגה חינם %s",
	"סיורים חינם %s",
	"סיורים מודרכים %s",
}

// cityQueryTemplatesEn generate the per-city English searches.
var cityQueryTemplatesEn = []string{
	"free events %s Israel this week",
	"free things to do %s Israel",
	"free museums %s Israel",
	"free yoga %s park",
	"free walking tour %s",
	"free lectures %s",
}

// buildSearchQueries builds the Hebrew and English free-event queries
// for the configured cities.
func buildSearchQueries(cities []domain.City) []string {
	queries := make([]string, 0,
		len(generalQueries)+len(cities)*(len(cityQueryTemplates)+len(cityQueryTemplatesEn)))
	queries = append(queries, generalQueries...)

	for _, city := range cities {
		hebrew := city.Hebrew
		if hebrew == "" {
			hebrew = city.Name
		}
		for _, tmpl := range cityQueryTemplates {
			queries = append(queries, fmt.Sprintf(tmpl, hebrew))
		}
		for _, tmpl := range cityQueryTemplatesEn {
			queries = append(queries, fmt.Sprintf(tmpl, city.Name))
		}
	}
	return queries
}
