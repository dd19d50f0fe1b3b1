package anthropic

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
	"github.com/freeil-scanner/internal/pkg/errors"
)

// ScanSource discovers candidate events through the Messages API
// web_search tool: one request covering every configured city.
type ScanSource struct {
	client     *Client
	cities     []domain.City
	eventTypes []string
	logger     *zap.Logger
}

// NewScanSource creates the web-search candidate source.
func NewScanSource(
	client *Client,
	cities []domain.City,
	eventTypes []string,
	logger *zap.Logger,
) repository.CandidateSource {
	return &ScanSource{
		client:     client,
		cities:     cities,
		eventTypes: eventTypes,
		logger:     logger,
	}
}

func (s *ScanSource) Name() string {
	return "web_search"
}

// Fetch runs the discovery scan. Without a credential it returns
// ErrMissingAPIKey so the orchestrator can proceed with zero candidates.
func (s *ScanSource) Fetch(ctx context.Context) ([]domain.Event, error) {
	if !s.client.Available() {
		return nil, errors.ErrMissingAPIKey
	}

	s.logger.Info("Scanning for free events with web search",
		zap.Int("cities", len(s.cities)))

	text, err := s.client.complete(ctx, messagesRequest{
		Model:     s.client.model,
		MaxTokens: s.client.maxTokens,
		Tools: []tool{{
			Type:    "web_search_20250305",
			Name:    "web_search",
			MaxUses: s.client.maxWebSearches,
		}},
		Messages: []message{{
			Role:    "user",
			Content: buildScanPrompt(s.cities, s.eventTypes, time.Now()),
		}},
	})
	if err != nil {
		return nil, err
	}

	events, err := decodeEvents(text, s.logger)
	if err != nil {
		s.logger.Warn("Could not parse events from scan response",
			zap.String("preview", preview(text, 500)))
		return nil, err
	}

	s.logger.Info("Scan found candidate events", zap.Int("events", len(events)))
	return events, nil
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
