package usecase

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/pkg/similarity"
	"github.com/freeil-scanner/internal/pkg/validator"
	"github.com/freeil-scanner/internal/usecase/dto"
)

// titleFloor is the minimum title similarity required when a duplicate is
// corroborated by location similarity. A lower bar than the main threshold
// catches renamed events at the same venue without merging everything that
// happens to share a park.
const titleFloor = 0.5

// CatalogUseCase implements the catalog maintenance rules: candidate
// validation, fuzzy deduplication, expiry of stale one-time events, and
// the batch merge.
type CatalogUseCase struct {
	retentionDays int
	threshold     float64
	eventTypes    map[string]struct{}
	logger        *zap.Logger
}

// NewCatalogUseCase creates a CatalogUseCase.
func NewCatalogUseCase(
	retentionDays int,
	threshold float64,
	eventTypes []string,
	logger *zap.Logger,
) *CatalogUseCase {
	types := make(map[string]struct{}, len(eventTypes))
	for _, t := range eventTypes {
		types[t] = struct{}{}
	}
	return &CatalogUseCase{
		retentionDays: retentionDays,
		threshold:     threshold,
		eventTypes:    types,
		logger:        logger,
	}
}

// Validate reports whether a candidate is structurally and geographically
// acceptable: title, city, and both coordinates present, coordinates
// inside Israel's bounding box, city in the supported set. Missing
// coordinates decode as zero and fail the box check, which is the
// intended fail-closed behavior.
func (uc *CatalogUseCase) Validate(candidate domain.Event) bool {
	if err := validator.Validate(candidate); err != nil {
		return false
	}
	return domain.IsraelBounds.Contains(candidate.Latitude, candidate.Longitude)
}

// IsDuplicate reports whether the candidate matches an existing entry.
// Only same-city entries are compared: two cities cannot host the same
// physical venue, so cross-city text collisions are never merged.
func (uc *CatalogUseCase) IsDuplicate(candidate domain.Event, events []domain.Event) bool {
	title := strings.TrimSpace(candidate.Title)
	location := strings.TrimSpace(candidate.Location)

	for _, existing := range events {
		if existing.City != candidate.City {
			continue
		}

		titleRatio := similarity.Ratio(title, strings.TrimSpace(existing.Title))
		if titleRatio >= uc.threshold {
			return true
		}

		// Same venue with a reworded title.
		existingLocation := strings.TrimSpace(existing.Location)
		if location != "" && existingLocation != "" {
			locationRatio := similarity.Ratio(location, existingLocation)
			if locationRatio >= uc.threshold && titleRatio >= titleFloor {
				return true
			}
		}
	}
	return false
}

// Expire removes one-time events whose date is strictly older than the
// retention window. Recurring events and events with a missing or
// unparseable date are kept: ambiguous input never destroys data.
func (uc *CatalogUseCase) Expire(events []domain.Event, now time.Time) ([]domain.Event, int) {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -uc.retentionDays)

	kept := make([]domain.Event, 0, len(events))
	removed := 0
	for _, ev := range events {
		if ev.IsRecurring() {
			kept = append(kept, ev)
			continue
		}
		if ev.Date == "" {
			kept = append(kept, ev)
			continue
		}
		date, err := time.Parse(domain.DateFormat, ev.Date)
		if err != nil {
			kept = append(kept, ev)
			continue
		}
		if date.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, ev)
	}

	if removed > 0 {
		uc.logger.Info("Expired stale events", zap.Int("removed", removed))
	}
	return kept, removed
}

// Merge folds a candidate batch into the catalog. Every accepted
// candidate is forced free, validated, deduplicated against the growing
// catalog (so duplicates inside one batch are caught too), and defaulted.
func (uc *CatalogUseCase) Merge(
	events []domain.Event,
	candidates []domain.Event,
	now time.Time,
) ([]domain.Event, dto.MergeStats) {
	var stats dto.MergeStats

	for _, candidate := range candidates {
		// The catalog only ever holds free events.
		candidate.IsFree = true

		if !uc.Validate(candidate) {
			stats.SkippedInvalid++
			uc.logger.Debug("Skipped invalid candidate",
				zap.String("title", candidate.Title),
				zap.String("city", candidate.City))
			continue
		}

		if uc.IsDuplicate(candidate, events) {
			stats.SkippedDuplicate++
			uc.logger.Debug("Skipped duplicate candidate",
				zap.String("title", candidate.Title),
				zap.String("city", candidate.City))
			continue
		}

		if candidate.Date == "" {
			candidate.Date = now.Format(domain.DateFormat)
		}
		if candidate.Source == "" {
			candidate.Source = domain.DefaultSource
		}
		if _, ok := uc.eventTypes[candidate.EventType]; !ok {
			// Unknown types are coerced, not rejected: the viewer relies
			// on a closed event_type enum.
			candidate.EventType = domain.DefaultEventType
		}

		events = append(events, candidate)
		stats.Added++
	}

	return events, stats
}
