// internal/catalog/store.go
package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductFilter narrows a product listing. Empty fields mean "no filter".
// A gender of "men" or "women" also admits unisex products.
type ProductFilter struct {
	Gender  string
	FitType string
}

// Store is the read side of the catalog. Implementations must return sizes
// ordered ascending by chest_min and variants in a stable order; "available"
// always means stock quantity > 0.
type Store interface {
	Sizes(ctx context.Context) ([]SizeRange, error)
	Products(ctx context.Context, filter ProductFilter) ([]Product, error)
	AvailableVariants(ctx context.Context, productID uuid.UUID) ([]Variant, error)
}

// ColorAnalyzer maps a skin classification onto ranked color names, most
// recommended first.
type ColorAnalyzer interface {
	RecommendedColors(skinTone, undertone string) []string
}

// RecommendationSink persists recommendation records. The engine only
// constructs records; the caller drives persistence.
type RecommendationSink interface {
	SaveRecommendation(ctx context.Context, rec *Recommendation) error
}

// ScanSource feeds unprocessed body scans to the processing loop.
type ScanSource interface {
	PendingScans(ctx context.Context, limit int) ([]BodyScan, error)
	MarkScanProcessed(ctx context.Context, scanID uuid.UUID) error
}
