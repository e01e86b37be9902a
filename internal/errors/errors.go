package errors

import "fmt"

// ErrorCode represents a Flux error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrStorageFailure ErrorCode = "STORAGE_FAILURE" // 507
	ErrCorruptData    ErrorCode = "CORRUPT_DATA"    // 500
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// FluxError represents a structured error with code, status, and details.
type FluxError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *FluxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *FluxError {
	return &FluxError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing entry.
func NewNotFound(identifier string) *FluxError {
	return &FluxError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewStorageFailure creates a 507 error for a failed write to the local store.
// The journal never retries these; the caller must tell the user the entry
// may not be saved.
func NewStorageFailure(collection string, err error) *FluxError {
	msg := "storage write failed"
	if err != nil {
		msg = err.Error()
	}
	return &FluxError{
		Code:    ErrStorageFailure,
		Status:  507,
		Message: msg,
		Details: map[string]any{"collection": collection},
	}
}

// NewCorruptData creates a 500 error for an unreadable persisted payload.
// Flux fails loudly here rather than treating corrupt data as absent, so a
// damaged journal is never silently replaced with an empty one.
func NewCorruptData(collection string, err error) *FluxError {
	msg := "persisted payload is not valid JSON"
	if err != nil {
		msg = err.Error()
	}
	return &FluxError{
		Code:    ErrCorruptData,
		Status:  500,
		Message: msg,
		Details: map[string]any{"collection": collection},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *FluxError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &FluxError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a FluxError with the given code.
func Is(err error, code ErrorCode) bool {
	if fErr, ok := err.(*FluxError); ok {
		return fErr.Code == code
	}
	return false
}
