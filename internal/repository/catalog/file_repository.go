// Package catalog persists the event catalog as a single JSON document.
// The document layout (field names, 2-space indent, unescaped UTF-8,
// trailing newline) is the contract with the map viewer.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/domain/repository"
	apperrors "github.com/freeil-scanner/internal/pkg/errors"
)

type fileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository creates a catalog repository backed by a JSON file.
func NewFileRepository(path string, logger *zap.Logger) repository.CatalogRepository {
	return &fileRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the catalog document. A missing or corrupt file is recovered
// as an empty catalog so a bad state never blocks a scan.
func (r *fileRepository) Load(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info("No existing catalog, starting empty",
				zap.String("path", r.path))
			return []domain.Event{}, nil
		}
		r.logger.Warn("Could not read catalog, starting empty",
			zap.String("path", r.path),
			zap.Error(err))
		return []domain.Event{}, nil
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		r.logger.Warn("Catalog file is corrupt, starting empty",
			zap.String("path", r.path),
			zap.Error(err))
		return []domain.Event{}, nil
	}

	return events, nil
}

// Save replaces the catalog document atomically: the new content is
// written to a temp file in the same directory and renamed over the old
// one, so a failed run never leaves a partial document behind.
func (r *fileRepository) Save(ctx context.Context, events []domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if events == nil {
		events = []domain.Event{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".events-*.json")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp catalog file: %w", apperrors.ErrCatalogWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write temp catalog file: %w", apperrors.ErrCatalogWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close temp catalog file: %w", apperrors.ErrCatalogWrite, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to set catalog file mode: %w", apperrors.ErrCatalogWrite, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace catalog file: %w", apperrors.ErrCatalogWrite, err)
	}

	r.logger.Debug("Catalog saved",
		zap.String("path", r.path),
		zap.Int("events", len(events)))
	return nil
}
