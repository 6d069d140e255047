// internal/common/errors/handler.go
package errors

import (
	"time"
)

// ErrorHandler normalizes and logs engine/store errors in one place.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle normalizes err to a StandardError, logs it, and returns the
// normalized error so callers can decide on retry.
func (h *ErrorHandler) Handle(operation string, err error) *StandardError {
	stdErr := h.normalizeError(err)

	h.logger.Error("operation failed", map[string]interface{}{
		"operation": operation,
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
		"retries":   GetRetryCount(stdErr.Code),
		"category":  GetErrorCategory(stdErr.Code),
	})

	return stdErr
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
