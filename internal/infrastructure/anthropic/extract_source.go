package anthropic

import (
	"context"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
	"github.com/freeil-scanner/internal/pkg/errors"
)

// ExtractSource turns raw scraped listings into structured candidates
// through an extraction call. It chains the site scrapers and feed
// readers behind a single CandidateSource.
type ExtractSource struct {
	client     *Client
	rawSources []repository.RawSource
	cities     []domain.City
	eventTypes []string
	logger     *zap.Logger
}

// NewExtractSource creates the extraction candidate source.
func NewExtractSource(
	client *Client,
	rawSources []repository.RawSource,
	cities []domain.City,
	eventTypes []string,
	logger *zap.Logger,
) repository.CandidateSource {
	return &ExtractSource{
		client:     client,
		rawSources: rawSources,
		cities:     cities,
		eventTypes: eventTypes,
		logger:     logger,
	}
}

func (s *ExtractSource) Name() string {
	return "scrape_extract"
}

// Fetch gathers raw listings from every raw source and extracts the free
// events from them. Raw sources are fail-open like candidate sources: a
// dead site just contributes nothing.
func (s *ExtractSource) Fetch(ctx context.Context) ([]domain.Event, error) {
	if !s.client.Available() {
		return nil, errors.ErrMissingAPIKey
	}

	var raw []domain.RawEvent
	for _, src := range s.rawSources {
		batch, err := src.FetchRaw(ctx)
		if err != nil {
			s.logger.Warn("Raw source failed, continuing without it",
				zap.String("source", src.Name()),
				zap.Error(err))
			continue
		}
		s.logger.Info("Raw source returned listings",
			zap.String("source", src.Name()),
			zap.Int("listings", len(batch)))
		raw = append(raw, batch...)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	text, err := s.client.complete(ctx, messagesRequest{
		Model:     s.client.model,
		MaxTokens: s.client.maxTokens,
		System:    buildExtractSystemPrompt(s.cities, s.eventTypes),
		Messages: []message{{
			Role:    "user",
			Content: buildExtractUserContent(raw),
		}},
	})
	if err != nil {
		return nil, err
	}

	events, err := decodeEvents(text, s.logger)
	if err != nil {
		s.logger.Warn("Could not parse events from extraction response",
			zap.String("preview", preview(text, 500)))
		return nil, err
	}

	// The extraction prompt already excludes paid events; drop anything
	// the model still marked non-free.
	free := events[:0]
	for _, ev := range events {
		if ev.IsFree {
			free = append(free, ev)
		}
	}

	s.logger.Info("Extraction produced candidate events",
		zap.Int("extracted", len(events)),
		zap.Int("confirmed_free", len(free)))
	return free, nil
}
