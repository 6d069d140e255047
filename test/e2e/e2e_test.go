// test/e2e/e2e_test.go

// End-to-end pipeline test: a body scan flows through the cached catalog
// store and the decision engine, and the resulting recommendations are
// persisted. Postgres is mocked with sqlmock; Redis runs as miniredis.
package e2e

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/catalog/cache"
	"fitting-engine/internal/catalog/postgres"
	"fitting-engine/internal/color"
	"fitting-engine/internal/common/config"
	"fitting-engine/internal/common/logger"
	"fitting-engine/internal/engine"
)

// ==========================
// Test Helper Functions
// ==========================

func setupPipeline(t *testing.T) (*engine.Engine, *postgres.Store, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	log := logger.NewNoOpLogger()
	pgStore := postgres.NewStore(db, log)
	catalogStore := cache.NewStore(pgStore, rdb, 5*time.Minute, log)
	analyzer := color.New(config.PaletteConfig{})
	eng := engine.New(engine.DefaultRules(), catalogStore, analyzer, log)

	return eng, pgStore, mock, db
}

func sizeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"name", "chest_min", "chest_max", "waist_min", "waist_max"}).
		AddRow("S", 80.0, 90.0, 65.0, 75.0).
		AddRow("M", 90.0, 100.0, 75.0, 85.0).
		AddRow("L", 100.0, 110.0, 85.0, 95.0)
}

func productRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "category", "gender", "fit_type"}).
		AddRow(id.String(), "Oxford Shirt", "shirt", "men", "regular")
}

func emptyProductRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "category", "gender", "fit_type"})
}

func variantRows(productID uuid.UUID, size, colorName, hex string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "product_id", "size", "name", "hex_code", "quantity"}).
		AddRow(uuid.New().String(), productID.String(), size, colorName, hex, 3)
}

// ==========================
// Full Pipeline Tests
// ==========================

func TestPipeline_ScanToPersistedRecommendation(t *testing.T) {
	eng, store, mock, _ := setupPipeline(t)

	productID := uuid.New()
	scanID := uuid.New()

	// First Sizes call misses the cache and hits the database.
	mock.ExpectQuery("SELECT name, chest_min").WillReturnRows(sizeRows())
	// Gender segments in order: men, women, unisex.
	mock.ExpectQuery("SELECT id, name, category, gender, fit_type").
		WithArgs("men", "").
		WillReturnRows(productRows(productID))
	mock.ExpectQuery("SELECT v.id, v.product_id").
		WithArgs(productID).
		WillReturnRows(variantRows(productID, "M", "Rose", "#FF007F"))
	mock.ExpectQuery("SELECT id, name, category, gender, fit_type").
		WithArgs("women", "").
		WillReturnRows(emptyProductRows())
	mock.ExpectQuery("SELECT id, name, category, gender, fit_type").
		WithArgs("unisex", "").
		WillReturnRows(emptyProductRows())

	scan := catalog.BodyScan{
		ID:            scanID,
		Height:        175,
		Chest:         47, // circumference 94 after normalization
		Waist:         40, // circumference 80
		ShoulderWidth: 22,
		SkinTone:      "light",
		Undertone:     "cool",
		BodyShape:     "rectangle",
	}

	recs, err := eng.GenerateRecommendations(context.Background(), scan)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, scanID, rec.ScanID)
	assert.Equal(t, productID, rec.ProductID)
	assert.Equal(t, "M", rec.Size)
	assert.Equal(t, "regular", rec.Fit)
	// regular fit match + size M in stock + Rose in the light/cool palette + base
	assert.Equal(t, 40, rec.Priority)
	assert.Contains(t, rec.Colors, "Rose")

	mock.ExpectExec("INSERT INTO recommendations").
		WithArgs(rec.ID, rec.ScanID, rec.ProductID, rec.Size, rec.Fit, rec.Colors, rec.Priority, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE body_scans").
		WithArgs(scanID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.SaveRecommendation(context.Background(), &rec))
	require.NoError(t, store.MarkScanProcessed(context.Background(), scanID))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPipeline_SizeChartServedFromCacheOnSecondScan(t *testing.T) {
	eng, _, mock, _ := setupPipeline(t)

	// The chart query runs exactly once; the second scan reads it from Redis.
	mock.ExpectQuery("SELECT name, chest_min").WillReturnRows(sizeRows())
	for i := 0; i < 2; i++ {
		for _, gender := range []string{"men", "women", "unisex"} {
			mock.ExpectQuery("SELECT id, name, category, gender, fit_type").
				WithArgs(gender, "").
				WillReturnRows(emptyProductRows())
		}
	}

	scan := catalog.BodyScan{
		ID:            uuid.New(),
		Height:        175,
		Chest:         47,
		Waist:         40,
		ShoulderWidth: 22,
		SkinTone:      "light",
		Undertone:     "cool",
		BodyShape:     "rectangle",
	}

	for i := 0; i < 2; i++ {
		recs, err := eng.GenerateRecommendations(context.Background(), scan)
		require.NoError(t, err)
		assert.Empty(t, recs)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPipeline_PendingScanRoundTrip(t *testing.T) {
	_, store, mock, _ := setupPipeline(t)

	scanID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "height", "chest", "waist", "shoulder_width",
		"hip", "inseam", "torso_length", "arm_length",
		"skin_tone", "undertone", "body_shape", "created_at",
	}).AddRow(
		scanID.String(), 175.0, 47.0, 40.0, 22.0,
		nil, nil, nil, nil,
		"light", "cool", "triangle", time.Now(),
	)
	mock.ExpectQuery("SELECT id, height, chest").
		WithArgs(20).
		WillReturnRows(rows)

	scans, err := store.PendingScans(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, scanID, scans[0].ID)
	assert.Equal(t, "triangle", scans[0].BodyShape)
	assert.NoError(t, mock.ExpectationsWereMet())
}
