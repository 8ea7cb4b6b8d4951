package apperrors

import (
	"fmt"
	"net/http"
)

// NotFound reports a missing or inactive record of the given kind.
// Used both for a record's own lookup and for parent verification.
func NotFound(kind, id string) *AppError {
	return New(
		CodeNotFound,
		kind,
		fmt.Sprintf("No active %s found for id: %s", kind, id),
		http.StatusNotFound,
	)
}

// NotFoundWrap keeps the cause message as-is. Delete paths use it so every
// failure surfaces as a 404.
func NotFoundWrap(err error, kind string) *AppError {
	if appErr, ok := AsAppError(err); ok && appErr.HTTPCode == http.StatusNotFound {
		return appErr
	}
	return Wrap(err, CodeNotFound, kind, err.Error(), http.StatusNotFound)
}

// PersistenceRejected is returned when the store refuses a write
// (constraint violation, unavailable connection).
func PersistenceRejected(err error, action, kind string) *AppError {
	return Wrap(
		err,
		CodeDatabaseError,
		kind,
		fmt.Sprintf("Failed to %s %s. %v", action, kind, err),
		http.StatusBadRequest,
	)
}

// StorageWriteFailed is returned when an uploaded file cannot be written.
func StorageWriteFailed(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "Error: "+err.Error(), http.StatusBadRequest)
}
