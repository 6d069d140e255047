// Package errors provides standardized error handling for the fitting engine.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCatalogDataInvalid       ErrorCode = "CATALOG_DATA_INVALID"
	ErrCodeSizeChartInvalid         ErrorCode = "SIZE_CHART_INVALID"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"
	ErrCodeScanFetchFailed          ErrorCode = "SCAN_FETCH_FAILED"
	ErrCodeRecommendationSave       ErrorCode = "RECOMMENDATION_SAVE_FAILED"
	ErrCodeCacheUnavailable         ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewCatalogDataInvalidError flags malformed external catalog data. The engine
// never repairs such data; the caller owns the fix.
func NewCatalogDataInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogDataInvalid,
		Message:   "Catalog entry failed data-integrity validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSizeChartInvalidError flags a size-chart document failing schema validation.
func NewSizeChartInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSizeChartInvalid,
		Message:   "Size chart failed data-integrity validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(entity string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Catalog query execution error",
		Details:   fmt.Sprintf("entity: %s, error: %s", entity, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(entity string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Catalog query timeout",
		Details:   fmt.Sprintf("entity: %s", entity),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewScanFetchFailedError creates a retryable body-scan fetch error.
func NewScanFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeScanFetchFailed,
		Message:   "Failed to fetch pending body scans",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecommendationSaveError creates a retryable persistence error.
func NewRecommendationSaveError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecommendationSave,
		Message:   "Failed to persist recommendation record",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error. Callers fall
// through to the backing store on this error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Catalog cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// GetErrorCategory groups codes for logging and metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeCatalogDataInvalid, ErrCodeSizeChartInvalid:
		return "data_integrity"
	case ErrCodeDatabaseConnectionFailed, ErrCodeQueryExecutionFailed, ErrCodeQueryTimeout,
		ErrCodeScanFetchFailed, ErrCodeRecommendationSave:
		return "store"
	case ErrCodeCacheUnavailable:
		return "cache"
	default:
		return "internal"
	}
}

// GetRetryCount returns how many times an operation carrying this code should
// be retried before giving up.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed:
		return 5
	case ErrCodeQueryExecutionFailed, ErrCodeQueryTimeout, ErrCodeScanFetchFailed, ErrCodeRecommendationSave:
		return 3
	case ErrCodeCacheUnavailable:
		return 1
	default:
		return 0
	}
}

// IsRetryable reports whether err is a StandardError marked retryable.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
