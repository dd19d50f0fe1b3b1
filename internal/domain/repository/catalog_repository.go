package repository

import (
	"context"

	"github.com/freeil-scanner/internal/domain"
)

// CatalogRepository owns the persisted event catalog. Callers never touch
// the underlying document directly.
type CatalogRepository interface {
	// Load reads the full catalog. A missing or corrupt document yields an
	// empty catalog, never an error.
	Load(ctx context.Context) ([]domain.Event, error)

	// Save replaces the persisted catalog atomically. A failed save must
	// leave the previous document intact.
	Save(ctx context.Context, events []domain.Event) error
}
