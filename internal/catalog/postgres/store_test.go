// internal/catalog/postgres/store_test.go
package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/common/errors"
	"fitting-engine/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return NewStore(db, logger.NewNoOpLogger()), mock, db
}

// ==========================
// Size Chart Tests
// ==========================

func TestStore_Sizes(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "chest_min", "chest_max", "waist_min", "waist_max"}).
		AddRow("S", 80.0, 90.0, 65.0, 75.0).
		AddRow("M", 90.0, 100.0, 75.0, 85.0)
	mock.ExpectQuery("SELECT name, chest_min").WillReturnRows(rows)

	sizes, err := store.Sizes(context.Background())
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, "S", sizes[0].Name)
	assert.Equal(t, 90.0, sizes[1].ChestMin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Sizes_QueryError(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, chest_min").WillReturnError(sql.ErrConnDone)

	_, err := store.Sizes(context.Background())
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeQueryExecutionFailed, stdErr.Code)
}

// ==========================
// Product Listing Tests
// ==========================

func TestStore_Products_GenderFilterAdmitsUnisex(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	menID, uniID := uuid.New(), uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "category", "gender", "fit_type"}).
		AddRow(menID.String(), "Oxford Shirt", "shirt", "men", "regular").
		AddRow(uniID.String(), "Unisex Tee", "shirt", "unisex", "oversize")
	mock.ExpectQuery("SELECT id, name, category, gender, fit_type").
		WithArgs("men", "").
		WillReturnRows(rows)

	products, err := store.Products(context.Background(), catalog.ProductFilter{Gender: "men"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, menID, products[0].ID)
	assert.Equal(t, "unisex", products[1].Gender)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Variant Tests
// ==========================

func TestStore_AvailableVariants(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	productID := uuid.New()
	v1, v2 := uuid.New(), uuid.New()
	rows := sqlmock.NewRows([]string{"id", "product_id", "size", "name", "hex_code", "quantity"}).
		AddRow(v1.String(), productID.String(), "M", "Navy", "#000080", 4).
		AddRow(v2.String(), productID.String(), "L", "White", "#FFFFFF", 1)
	mock.ExpectQuery("SELECT v.id, v.product_id").
		WithArgs(productID).
		WillReturnRows(rows)

	variants, err := store.AvailableVariants(context.Background(), productID)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "Navy", variants[0].Color.Name)
	assert.Equal(t, "#000080", variants[0].Color.Hex)
	assert.Equal(t, 1, variants[1].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Recommendation Persistence Tests
// ==========================

func TestStore_SaveRecommendation(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	rec := &catalog.Recommendation{
		ID:        uuid.New(),
		ScanID:    uuid.New(),
		ProductID: uuid.New(),
		Size:      "M",
		Fit:       "regular",
		Colors:    "Navy, White",
		Priority:  40,
		CreatedAt: time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO recommendations").
		WithArgs(rec.ID, rec.ScanID, rec.ProductID, rec.Size, rec.Fit, rec.Colors, rec.Priority, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.SaveRecommendation(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Scan Source Tests
// ==========================

func TestStore_PendingScans_NullOptionalsBecomeZero(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	scanID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "height", "chest", "waist", "shoulder_width",
		"hip", "inseam", "torso_length", "arm_length",
		"skin_tone", "undertone", "body_shape", "created_at",
	}).AddRow(
		scanID.String(), 175.0, 47.0, 40.0, 22.0,
		nil, 78.0, nil, nil,
		"light", nil, "triangle", time.Now(),
	)
	mock.ExpectQuery("SELECT id, height, chest").
		WithArgs(20).
		WillReturnRows(rows)

	scans, err := store.PendingScans(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, scans, 1)

	scan := scans[0]
	assert.Equal(t, scanID, scan.ID)
	assert.Equal(t, 0.0, scan.Hip)
	assert.Equal(t, 78.0, scan.Inseam)
	assert.Equal(t, "", scan.Undertone)
	assert.Equal(t, "triangle", scan.BodyShape)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MarkScanProcessed_NotFound(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	scanID := uuid.New()
	mock.ExpectExec("UPDATE body_scans").
		WithArgs(scanID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.MarkScanProcessed(context.Background(), scanID)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
