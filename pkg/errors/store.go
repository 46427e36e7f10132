package errors

import "fmt"

/*
StoreError represents a failure talking to one of the external stores
(object storage, vector store, catalog).
*/
type StoreError struct {
	Store   string `json:"store"`
	Message string `json:"message"`
}

/*
Error implements the error interface for StoreError.
*/
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Store, e.Message)
}

// Convenience errors for the external dependencies. These are compared
// with errors.Is after being wrapped at call sites.
var (
	ErrNoCollection    = &StoreError{Store: "chroma", Message: "no matching collection"}
	ErrBadResponse     = &StoreError{Store: "chroma", Message: "malformed query response"}
	ErrCatalogNotFound = &StoreError{Store: "catalog", Message: "catalog object not found"}
	ErrEmptyCompletion = &StoreError{Store: "llm", Message: "empty completion"}
)

// WithMessagef creates a *copy* of a StoreError with a formatted message.
// It does not modify the original error variable.
func (e *StoreError) WithMessagef(format string, args ...any) *StoreError {
	newErr := *e
	newErr.Message = fmt.Sprintf(format, args...)
	return &newErr
}
