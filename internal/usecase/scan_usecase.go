package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
	"github.com/freeil-scanner/internal/usecase/dto"
)

// ScanUseCase drives one pipeline run:
// load -> expire -> fetch candidates -> merge -> save -> report.
// Candidate sources are fail-open: an unreachable source contributes zero
// candidates and the existing catalog is still expired and saved. Only a
// failed save aborts the run.
type ScanUseCase struct {
	catalogRepo repository.CatalogRepository
	catalogUC   *CatalogUseCase
	statsUC     *StatsUseCase
	sources     []repository.CandidateSource
	logger      *zap.Logger
}

// NewScanUseCase creates a ScanUseCase.
func NewScanUseCase(
	catalogRepo repository.CatalogRepository,
	catalogUC *CatalogUseCase,
	statsUC *StatsUseCase,
	sources []repository.CandidateSource,
	logger *zap.Logger,
) *ScanUseCase {
	return &ScanUseCase{
		catalogRepo: catalogRepo,
		catalogUC:   catalogUC,
		statsUC:     statsUC,
		sources:     sources,
		logger:      logger,
	}
}

// Run executes one scan and returns its report.
func (uc *ScanUseCase) Run(ctx context.Context) (*dto.ScanReport, error) {
	scanID := uuid.NewString()
	log := uc.logger.With(zap.String("scan_id", scanID))
	now := time.Now()

	events, err := uc.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	loaded := len(events)
	log.Info("Catalog loaded", zap.Int("events", loaded))

	events, expired := uc.catalogUC.Expire(events, now)

	candidates := uc.fetchCandidates(ctx, log)

	events, stats := uc.catalogUC.Merge(events, candidates, now)

	if err := uc.catalogRepo.Save(ctx, events); err != nil {
		log.Error("Failed to save catalog", zap.Error(err))
		return nil, err
	}

	report := &dto.ScanReport{
		ScanID:     scanID,
		Loaded:     loaded,
		Expired:    expired,
		Candidates: len(candidates),
		Merge:      stats,
		Total:      len(events),
		ByCity:     uc.statsUC.CountByCity(events),
		ByType:     uc.statsUC.CountByType(events),
	}

	log.Info("Scan complete",
		zap.Int("loaded", report.Loaded),
		zap.Int("expired", report.Expired),
		zap.Int("candidates", report.Candidates),
		zap.Int("added", stats.Added),
		zap.Int("skipped_invalid", stats.SkippedInvalid),
		zap.Int("skipped_duplicate", stats.SkippedDuplicate),
		zap.Int("total", report.Total))

	return report, nil
}

// fetchCandidates collects candidates from every configured source. A
// failing source is logged and skipped; a scan with zero candidates is a
// valid no-op merge, not an error.
func (uc *ScanUseCase) fetchCandidates(ctx context.Context, log *zap.Logger) []domain.Event {
	var candidates []domain.Event
	for _, src := range uc.sources {
		batch, err := src.Fetch(ctx)
		if err != nil {
			log.Warn("Candidate source failed, continuing without it",
				zap.String("source", src.Name()),
				zap.Error(err))
			continue
		}
		log.Info("Candidate source returned events",
			zap.String("source", src.Name()),
			zap.Int("events", len(batch)))
		candidates = append(candidates, batch...)
	}
	return candidates
}
