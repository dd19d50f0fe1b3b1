package repository

import (
	"context"

	"github.com/freeil-scanner/internal/domain"
)

// CandidateSource produces structured candidate events for the pipeline.
// Sources are untrusted: candidates may be partial and are validated and
// deduplicated before entering the catalog.
type CandidateSource interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Event, error)
}

// RawSource produces raw scraped listings that still need LLM extraction.
type RawSource interface {
	Name() string
	FetchRaw(ctx context.Context) ([]domain.RawEvent, error)
}
