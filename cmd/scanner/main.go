package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/config"
	"github.com/freeil-scanner/internal/domain/repository"
	"github.com/freeil-scanner/internal/infrastructure/anthropic"
	"github.com/freeil-scanner/internal/infrastructure/feeds"
	"github.com/freeil-scanner/internal/infrastructure/scraper"
	"github.com/freeil-scanner/internal/pkg/logger"
	"github.com/freeil-scanner/internal/pkg/validator"
	"github.com/freeil-scanner/internal/repository/catalog"
	"github.com/freeil-scanner/internal/usecase"
	"github.com/freeil-scanner/internal/worker"
	"github.com/freeil-scanner/internal/worker/scan"
)

func main() {
	demo := flag.Bool("demo", false, "use canned sample listings instead of live sources")
	daemon := flag.Bool("daemon", false, "keep running and scan on the configured interval")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting event scanner",
		zap.String("catalog", cfg.Catalog.Path),
		zap.Int("retention_days", cfg.Scan.RetentionDays),
		zap.Int("cities", len(cfg.Scan.Cities)),
		zap.Bool("demo", *demo))

	// 3. Configure struct validation for the city list in use
	validator.Configure(cfg.Scan.CityNames())

	// 4. Initialize repository and use cases
	catalogRepo := catalog.NewFileRepository(cfg.Catalog.Path, log)
	catalogUC := usecase.NewCatalogUseCase(
		cfg.Scan.RetentionDays,
		cfg.Scan.SimilarityThreshold,
		cfg.Scan.EventTypes,
		log,
	)
	statsUC := usecase.NewStatsUseCase()

	// 5. Build candidate sources
	sources := buildSources(cfg, *demo, log)

	scanUC := usecase.NewScanUseCase(catalogRepo, catalogUC, statsUC, sources, log)

	if *daemon || cfg.Worker.Enabled {
		runDaemon(scanUC, cfg, log)
		return
	}

	runOnce(scanUC, log)
}

// buildSources assembles the candidate sources for a run. In demo mode only
// the canned samples feed the extractor, so no network is touched besides
// the extraction call itself.
func buildSources(cfg *config.Config, demo bool, log *zap.Logger) []repository.CandidateSource {
	client := anthropic.NewClient(&cfg.Anthropic, log)

	if demo {
		return []repository.CandidateSource{
			anthropic.NewExtractSource(
				client,
				[]repository.RawSource{scraper.NewSampleSource()},
				cfg.Scan.Cities,
				cfg.Scan.EventTypes,
				log,
			),
		}
	}

	rawSources := []repository.RawSource{
		scraper.NewGoOutScraper(&cfg.Scraper, log),
		scraper.NewParksScraper(&cfg.Scraper, log),
		scraper.NewGoogleScraper(&cfg.Scraper, cfg.Scan.Cities, log),
	}
	if len(cfg.Feeds.URLs) > 0 {
		rawSources = append(rawSources, feeds.New(cfg.Feeds.URLs, log))
	}

	return []repository.CandidateSource{
		anthropic.NewScanSource(client, cfg.Scan.Cities, cfg.Scan.EventTypes, log),
		anthropic.NewExtractSource(client, rawSources, cfg.Scan.Cities, cfg.Scan.EventTypes, log),
	}
}

// runOnce executes a single pipeline pass and prints the report.
func runOnce(scanUC *usecase.ScanUseCase, log *zap.Logger) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := scanUC.Run(ctx)
	if err != nil {
		log.Fatal("Scan failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Error("Failed to print report", zap.Error(err))
	}
}

// runDaemon runs the scan worker until an interrupt arrives.
func runDaemon(scanUC *usecase.ScanUseCase, cfg *config.Config, log *zap.Logger) {
	log.Info("Running in daemon mode",
		zap.Duration("scan_interval", cfg.Worker.ScanInterval))

	scanWorker := scan.NewScanWorker(scanUC, cfg.Worker.ScanInterval, log)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(scanWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Scanner shutdown complete")
}
