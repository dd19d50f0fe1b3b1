package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/usecase"
)

func TestStatsUseCase_Counts(t *testing.T) {
	uc := usecase.NewStatsUseCase()

	events := []domain.Event{
		{City: "Tel Aviv", EventType: "yoga"},
		{City: "Tel Aviv", EventType: "museum"},
		{City: "Jerusalem", EventType: "lecture"},
		{City: "", EventType: ""},
	}

	assert.Equal(t, map[string]int{
		"Tel Aviv":  2,
		"Jerusalem": 1,
		"Other":     1,
	}, uc.CountByCity(events))

	assert.Equal(t, map[string]int{
		"yoga":    1,
		"museum":  1,
		"lecture": 1,
		"other":   1,
	}, uc.CountByType(events))
}

func TestStatsUseCase_EmptyCatalog(t *testing.T) {
	uc := usecase.NewStatsUseCase()
	assert.Empty(t, uc.CountByCity(nil))
	assert.Empty(t, uc.CountByType(nil))
}
