// Package scan runs catalog scans on a fixed schedule.
package scan

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/usecase"
	"github.com/freeil-scanner/internal/worker"
)

// ScanWorker runs the scan pipeline once at startup and then on every tick
// of the configured interval.
type ScanWorker struct {
	*worker.BaseWorker
	scanUC   *usecase.ScanUseCase
	interval time.Duration
}

// NewScanWorker creates a new ScanWorker.
func NewScanWorker(scanUC *usecase.ScanUseCase, interval time.Duration, logger *zap.Logger) *ScanWorker {
	return &ScanWorker{
		BaseWorker: worker.NewBaseWorker("catalog-scan", logger),
		scanUC:     scanUC,
		interval:   interval,
	}
}

// Start runs the scan loop.
func (w *ScanWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ScanWorker",
		zap.Duration("interval", w.interval))

	// First scan right away, then tick.
	w.runScan(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.runScan(ctx)
		}
	}
}

// runScan executes one pipeline pass. A failed scan is logged and the loop
// keeps going; the next tick retries from the catalog on disk.
func (w *ScanWorker) runScan(ctx context.Context) {
	logger := w.Logger()

	report, err := w.scanUC.Run(ctx)
	if err != nil {
		logger.Error("Scheduled scan failed", zap.Error(err))
		return
	}

	logger.Info("Scheduled scan finished",
		zap.String("scan_id", report.ScanID),
		zap.Int("added", report.Merge.Added),
		zap.Int("expired", report.Expired),
		zap.Int("total", report.Total))
}
