package usecase

import (
	"github.com/freeil-scanner/internal/domain"
)

// StatsUseCase computes derived catalog breakdowns for reporting. Nothing
// here is persisted; groupings are recomputed on every run.
type StatsUseCase struct{}

// NewStatsUseCase creates a StatsUseCase.
func NewStatsUseCase() *StatsUseCase {
	return &StatsUseCase{}
}

// CountByCity groups the catalog by city.
func (uc *StatsUseCase) CountByCity(events []domain.Event) map[string]int {
	counts := make(map[string]int)
	for _, ev := range events {
		city := ev.City
		if city == "" {
			city = "Other"
		}
		counts[city]++
	}
	return counts
}

// CountByType groups the catalog by event type.
func (uc *StatsUseCase) CountByType(events []domain.Event) map[string]int {
	counts := make(map[string]int)
	for _, ev := range events {
		eventType := ev.EventType
		if eventType == "" {
			eventType = domain.DefaultEventType
		}
		counts[eventType]++
	}
	return counts
}
