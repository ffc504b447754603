package http

import (
	"errors"
	"net/http"

	"github.com/jiminoh-dev/linkup/internal/adapter"
	"github.com/jiminoh-dev/linkup/internal/service"
	"github.com/jiminoh-dev/linkup/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrNoSuchAccount:         http.StatusUnauthorized,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrTokenAudienceMismatch: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,

	adapter.ErrTokenExchangeFailed: http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUnknownUser:           http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// mapError resolves a service/store error chain to an HTTP status and the
// human-readable message of the matched sentinel. Unrecognized errors fall
// back to a generic 500 so internal details never leak to clients.
func mapError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
