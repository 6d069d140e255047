// internal/catalog/postgres/store.go

// Package postgres implements the catalog interfaces over PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/common/errors"
	"fitting-engine/internal/common/logger"
)

// Store reads catalog data and persists recommendations. It implements
// catalog.Store, catalog.RecommendationSink and catalog.ScanSource.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-store"}),
	}
}

// Sizes returns the size chart ordered ascending by chest lower bound.
func (s *Store) Sizes(ctx context.Context) ([]catalog.SizeRange, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, chest_min, chest_max, waist_min, waist_max
		FROM sizes
		ORDER BY chest_min ASC`)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("sizes", err)
	}
	defer rows.Close()

	var sizes []catalog.SizeRange
	for rows.Next() {
		var sr catalog.SizeRange
		if err := rows.Scan(&sr.Name, &sr.ChestMin, &sr.ChestMax, &sr.WaistMin, &sr.WaistMax); err != nil {
			return nil, errors.NewQueryExecutionFailedError("sizes", err)
		}
		sizes = append(sizes, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("sizes", err)
	}
	return sizes, nil
}

// Products lists products matching the filter. A gender of "men" or "women"
// also admits unisex products; empty filter fields match everything.
// Ordered by name, then id for a stable tie-break.
func (s *Store) Products(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, gender, fit_type
		FROM products
		WHERE ($1 = '' OR gender = $1 OR gender = 'unisex')
		  AND ($2 = '' OR fit_type = $2)
		ORDER BY name ASC, id ASC`,
		filter.Gender, filter.FitType)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("products", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Gender, &p.FitType); err != nil {
			return nil, errors.NewQueryExecutionFailedError("products", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("products", err)
	}
	return products, nil
}

// AvailableVariants returns in-stock variants of a product in primary key
// order. The engine's first-match tiers rely on this order being stable.
func (s *Store) AvailableVariants(ctx context.Context, productID uuid.UUID) ([]catalog.Variant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.product_id, v.size, c.name, c.hex_code, i.quantity
		FROM product_variants v
		JOIN colors c ON c.id = v.color_id
		JOIN inventory i ON i.variant_id = v.id
		WHERE v.product_id = $1 AND i.quantity > 0
		ORDER BY v.id ASC`,
		productID)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("available_variants", err)
	}
	defer rows.Close()

	var variants []catalog.Variant
	for rows.Next() {
		var v catalog.Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Size, &v.Color.Name, &v.Color.Hex, &v.Quantity); err != nil {
			return nil, errors.NewQueryExecutionFailedError("available_variants", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("available_variants", err)
	}
	return variants, nil
}

// SaveRecommendation persists one recommendation record.
func (s *Store) SaveRecommendation(ctx context.Context, rec *catalog.Recommendation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recommendations
			(id, scan_id, product_id, recommended_size, recommended_fit, recommended_colors, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.ScanID, rec.ProductID, rec.Size, rec.Fit, rec.Colors, rec.Priority, rec.CreatedAt)
	if err != nil {
		return errors.NewRecommendationSaveError(err)
	}
	return nil
}

// PendingScans fetches up to limit unprocessed body scans, oldest first.
// Optional dimensions come back as zero when absent.
func (s *Store) PendingScans(ctx context.Context, limit int) ([]catalog.BodyScan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, height, chest, waist, shoulder_width,
		       hip, inseam, torso_length, arm_length,
		       skin_tone, undertone, body_shape, created_at
		FROM body_scans
		WHERE processed = FALSE
		ORDER BY created_at ASC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, errors.NewScanFetchFailedError(err)
	}
	defer rows.Close()

	var scans []catalog.BodyScan
	for rows.Next() {
		var scan catalog.BodyScan
		var hip, inseam, torso, arm sql.NullFloat64
		var undertone, bodyShape sql.NullString
		if err := rows.Scan(
			&scan.ID, &scan.Height, &scan.Chest, &scan.Waist, &scan.ShoulderWidth,
			&hip, &inseam, &torso, &arm,
			&scan.SkinTone, &undertone, &bodyShape, &scan.CreatedAt,
		); err != nil {
			return nil, errors.NewScanFetchFailedError(err)
		}
		scan.Hip = hip.Float64
		scan.Inseam = inseam.Float64
		scan.TorsoLength = torso.Float64
		scan.ArmLength = arm.Float64
		scan.Undertone = undertone.String
		scan.BodyShape = bodyShape.String
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewScanFetchFailedError(err)
	}
	return scans, nil
}

// MarkScanProcessed flags a scan so the poll loop does not pick it up again.
func (s *Store) MarkScanProcessed(ctx context.Context, scanID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE body_scans SET processed = TRUE, processed_at = NOW()
		WHERE id = $1`,
		scanID)
	if err != nil {
		return errors.NewQueryExecutionFailedError("mark_scan_processed", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NewQueryExecutionFailedError("mark_scan_processed", fmt.Errorf("scan %s not found", scanID))
	}
	return nil
}
