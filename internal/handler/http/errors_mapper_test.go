package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jiminoh-dev/linkup/internal/adapter"
	"github.com/jiminoh-dev/linkup/internal/service"
	"github.com/jiminoh-dev/linkup/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError_KnownSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, service.ErrInvalidDataProvided.Error()},
		{"no such account", service.ErrNoSuchAccount, http.StatusUnauthorized, "no such account"},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, "wrong password"},
		{"audience mismatch", service.ErrTokenAudienceMismatch, http.StatusUnauthorized, service.ErrTokenAudienceMismatch.Error()},
		{"exchange failed", adapter.ErrTokenExchangeFailed, http.StatusInternalServerError, adapter.ErrTokenExchangeFailed.Error()},
		{"duplicate username", store.ErrUsernameAlreadyExists, http.StatusConflict, store.ErrUsernameAlreadyExists.Error()},
		{"unknown user", store.ErrUnknownUser, http.StatusBadRequest, store.ErrUnknownUser.Error()},
		{"query error", store.ErrExecutingQuery, http.StatusInternalServerError, store.ErrExecutingQuery.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists)

	status, msg := mapError(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, store.ErrUsernameAlreadyExists.Error(), msg)
}

func TestMapError_UnknownErrorStaysGeneric(t *testing.T) {
	status, msg := mapError(errors.New("pg: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, status)
	// internal details never leak
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), msg)
}
