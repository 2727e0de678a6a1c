package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-manager/internal/service"
	"github.com/MKhiriev/go-user-manager/internal/store"
	"github.com/MKhiriev/go-user-manager/internal/utils"
	"github.com/MKhiriev/go-user-manager/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrHashingFailed:           http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEmptyUpdate:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError maps a service or store sentinel wrapped anywhere in err's
// chain to an HTTP status. Unmatched errors fall through to 500.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// respondError writes the uniform JSON error body for err.
//
// The body carries only the matched sentinel's kind-level message. Server
// faults (5xx) and unmatched errors answer with the generic status text, so
// internal error detail never reaches the client.
func respondError(w http.ResponseWriter, err error) {
	status, matched := statusFromError(err)

	message := http.StatusText(status)
	if matched != nil && status < http.StatusInternalServerError {
		message = matched.Error()
	}

	respondMessage(w, message, status)
}

// respondMessage writes an [models.ErrorResponse] with the given message and
// status.
func respondMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
