package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/freeil-scanner/internal/domain"
)

type Config struct {
	Catalog   CatalogConfig
	Scan      ScanConfig
	Anthropic AnthropicConfig
	Scraper   ScraperConfig
	Feeds     FeedsConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type CatalogConfig struct {
	Path string
}

type ScanConfig struct {
	RetentionDays       int
	SimilarityThreshold float64
	Cities              []domain.City
	EventTypes          []string
}

type AnthropicConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxTokens      int
	MaxWebSearches int
	RequestTimeout time.Duration
}

type ScraperConfig struct {
	MaxEventsPerSource int
	GoogleMaxResults   int
	RequestTimeout     time.Duration
}

type FeedsConfig struct {
	URLs []string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled      bool
	ScanInterval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; environment variables alone are enough.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Scan: ScanConfig{
			RetentionDays:       viper.GetInt("SCAN_RETENTION_DAYS"),
			SimilarityThreshold: viper.GetFloat64("SCAN_SIMILARITY_THRESHOLD"),
			Cities:              parseCities(viper.GetString("SCAN_CITIES")),
			EventTypes:          parseList(viper.GetString("SCAN_EVENT_TYPES")),
		},
		Anthropic: AnthropicConfig{
			APIKey:         viper.GetString("ANTHROPIC_API_KEY"),
			BaseURL:        viper.GetString("ANTHROPIC_BASE_URL"),
			Model:          viper.GetString("ANTHROPIC_MODEL"),
			MaxTokens:      viper.GetInt("ANTHROPIC_MAX_TOKENS"),
			MaxWebSearches: viper.GetInt("ANTHROPIC_MAX_WEB_SEARCHES"),
			RequestTimeout: time.Duration(viper.GetInt("ANTHROPIC_REQUEST_TIMEOUT")) * time.Second,
		},
		Scraper: ScraperConfig{
			MaxEventsPerSource: viper.GetInt("SCRAPER_MAX_EVENTS_PER_SOURCE"),
			GoogleMaxResults:   viper.GetInt("SCRAPER_GOOGLE_MAX_RESULTS"),
			RequestTimeout:     time.Duration(viper.GetInt("SCRAPER_REQUEST_TIMEOUT")) * time.Second,
		},
		Feeds: FeedsConfig{
			URLs: parseList(viper.GetString("FEED_URLS")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:      viper.GetBool("WORKER_ENABLED"),
			ScanInterval: time.Duration(viper.GetInt("WORKER_SCAN_INTERVAL")) * time.Minute,
		},
	}

	// Set default values if not provided
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "events.json"
	}
	if cfg.Scan.RetentionDays == 0 {
		cfg.Scan.RetentionDays = 30
	}
	if cfg.Scan.SimilarityThreshold == 0 {
		cfg.Scan.SimilarityThreshold = 0.75
	}
	if len(cfg.Scan.Cities) == 0 {
		cfg.Scan.Cities = domain.SupportedCities
	}
	if len(cfg.Scan.EventTypes) == 0 {
		cfg.Scan.EventTypes = domain.EventTypes
	}
	if cfg.Anthropic.BaseURL == "" {
		cfg.Anthropic.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = "claude-sonnet-4-20250514"
	}
	if cfg.Anthropic.MaxTokens == 0 {
		cfg.Anthropic.MaxTokens = 16000
	}
	if cfg.Anthropic.MaxWebSearches == 0 {
		cfg.Anthropic.MaxWebSearches = 20
	}
	if cfg.Anthropic.RequestTimeout == 0 {
		cfg.Anthropic.RequestTimeout = 300 * time.Second
	}
	if cfg.Scraper.MaxEventsPerSource == 0 {
		cfg.Scraper.MaxEventsPerSource = 15
	}
	if cfg.Scraper.GoogleMaxResults == 0 {
		cfg.Scraper.GoogleMaxResults = 8
	}
	if cfg.Scraper.RequestTimeout == 0 {
		cfg.Scraper.RequestTimeout = 15 * time.Second
	}
	if cfg.Worker.ScanInterval == 0 {
		cfg.Worker.ScanInterval = 24 * time.Hour
	}

	return cfg, nil
}

// CityNames returns the English names of the configured cities.
func (c *ScanConfig) CityNames() []string {
	names := make([]string, len(c.Cities))
	for i, city := range c.Cities {
		names[i] = city.Name
	}
	return names
}

// parseCities resolves a comma-separated list of English city names
// against the known city set so Hebrew names are kept for search queries.
func parseCities(s string) []domain.City {
	names := parseList(s)
	if len(names) == 0 {
		return nil
	}
	known := make(map[string]domain.City, len(domain.SupportedCities))
	for _, c := range domain.SupportedCities {
		known[c.Name] = c
	}
	cities := make([]domain.City, 0, len(names))
	for _, name := range names {
		if c, ok := known[name]; ok {
			cities = append(cities, c)
			continue
		}
		cities = append(cities, domain.City{Name: name})
	}
	return cities
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
