package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jiminoh-dev/linkup/internal/service"
	"github.com/jiminoh-dev/linkup/internal/store"
	"github.com/jiminoh-dev/linkup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockContactService implements service.ContactService with per-test function fields.
type mockContactService struct {
	createContactFn func(ctx context.Context, req models.CreateContactRequest) (models.Contact, error)
	listContactsFn  func(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	deleteContactFn func(ctx context.Context, contactID int64) error
}

func (m *mockContactService) CreateContact(ctx context.Context, req models.CreateContactRequest) (models.Contact, error) {
	return m.createContactFn(ctx, req)
}

func (m *mockContactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	return m.listContactsFn(ctx, filter)
}

func (m *mockContactService) DeleteContact(ctx context.Context, contactID int64) error {
	return m.deleteContactFn(ctx, contactID)
}

// ─────────────────────────────────────────────
// GET /contacts
// ─────────────────────────────────────────────

func TestListContactsHandler_Success(t *testing.T) {
	contacts := &mockContactService{
		listContactsFn: func(_ context.Context, filter models.ContactFilter) ([]models.Contact, error) {
			assert.Empty(t, filter.Location)
			assert.Empty(t, filter.ExcludeGender)
			return []models.Contact{
				{ContactID: 1, UserID: 1, Intro: "first", ContactValue: "@a", Gender: "F", CreatedAt: time.Now()},
				{ContactID: 2, UserID: 2, Intro: "second", ContactValue: "@b", Gender: "M", CreatedAt: time.Now()},
			}, nil
		},
	}
	h := newTestHandler(nil, contacts)

	rec := httptest.NewRecorder()
	h.listContacts(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Contact
	decodeBody(t, rec, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(1), resp[0].ContactID)
	assert.Equal(t, int64(2), resp[1].ContactID)
}

func TestListContactsHandler_EmptyResultIsJSONArray(t *testing.T) {
	contacts := &mockContactService{
		listContactsFn: func(_ context.Context, _ models.ContactFilter) ([]models.Contact, error) {
			return []models.Contact{}, nil
		},
	}
	h := newTestHandler(nil, contacts)

	rec := httptest.NewRecorder()
	h.listContacts(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListContactsHandler_QueryFilters(t *testing.T) {
	var seen models.ContactFilter
	contacts := &mockContactService{
		listContactsFn: func(_ context.Context, filter models.ContactFilter) ([]models.Contact, error) {
			seen = filter
			return []models.Contact{}, nil
		},
	}
	h := newTestHandler(nil, contacts)

	rec := httptest.NewRecorder()
	h.listContacts(rec, httptest.NewRequest(http.MethodGet, "/contacts?location=Seoul&excludeGender=M", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Seoul", seen.Location)
	assert.Equal(t, "M", seen.ExcludeGender)
}

func TestListContactsHandler_StorageError(t *testing.T) {
	contacts := &mockContactService{
		listContactsFn: func(_ context.Context, _ models.ContactFilter) ([]models.Contact, error) {
			return nil, store.ErrExecutingQuery
		},
	}
	h := newTestHandler(nil, contacts)

	rec := httptest.NewRecorder()
	h.listContacts(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// POST /contacts
// ─────────────────────────────────────────────

func TestCreateContactHandler_Success(t *testing.T) {
	contacts := &mockContactService{
		createContactFn: func(_ context.Context, req models.CreateContactRequest) (models.Contact, error) {
			return models.Contact{
				ContactID:    7,
				UserID:       req.UserID,
				Intro:        req.Intro,
				ContactValue: req.ContactValue,
				Gender:       req.Gender,
			}, nil
		},
	}
	h := newTestHandler(nil, contacts)

	rec := httptest.NewRecorder()
	h.createContact(rec, jsonRequest(t, http.MethodPost, "/contacts",
		`{"user_id":1,"intro":"hi there","contact_value":"@alice","gender":"F"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestCreateContactHandler_InvalidJSON(t *testing.T) {
	h := newTestHandler(nil, &mockContactService{})

	rec := httptest.NewRecorder()
	h.createContact(rec, jsonRequest(t, http.MethodPost, "/contacts", `{broken`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateContactHandler_MissingFields(t *testing.T) {
	contacts := &mockContactService{
		createContactFn: func(_ context.Context, _ models.CreateContactRequest) (models.Contact, error) {
			return models.Contact{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(nil, contacts)

	rec := httptest.NewRecorder()
	h.createContact(rec, jsonRequest(t, http.MethodPost, "/contacts", `{"intro":"hi"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateContactHandler_UnknownUser(t *testing.T) {
	contacts := &mockContactService{
		createContactFn: func(_ context.Context, _ models.CreateContactRequest) (models.Contact, error) {
			return models.Contact{}, store.ErrUnknownUser
		},
	}
	h := newTestHandler(nil, contacts)

	rec := httptest.NewRecorder()
	h.createContact(rec, jsonRequest(t, http.MethodPost, "/contacts",
		`{"user_id":999,"intro":"hi","contact_value":"@x","gender":"M"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /contacts/{id}
// ─────────────────────────────────────────────

// delete tests go through the router so chi URL params resolve.

func TestDeleteContactHandler_Success(t *testing.T) {
	var deletedID int64
	contacts := &mockContactService{
		deleteContactFn: func(_ context.Context, contactID int64) error {
			deletedID = contactID
			return nil
		},
	}
	h := newTestHandler(&mockAuthService{}, contacts)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/contacts/42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, int64(42), deletedID)
}

func TestDeleteContactHandler_MissingRowStillSucceeds(t *testing.T) {
	contacts := &mockContactService{
		deleteContactFn: func(_ context.Context, _ int64) error {
			return nil
		},
	}
	h := newTestHandler(&mockAuthService{}, contacts)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/contacts/404404", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestDeleteContactHandler_NonNumericID(t *testing.T) {
	serviceCalled := false
	contacts := &mockContactService{
		deleteContactFn: func(_ context.Context, _ int64) error {
			serviceCalled = true
			return nil
		},
	}
	h := newTestHandler(&mockAuthService{}, contacts)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/contacts/not-a-number", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "contact id must be an integer", resp.Error)
	assert.False(t, serviceCalled)
}

func TestDeleteContactHandler_StorageError(t *testing.T) {
	contacts := &mockContactService{
		deleteContactFn: func(_ context.Context, _ int64) error {
			return store.ErrExecutingStatement
		},
	}
	h := newTestHandler(&mockAuthService{}, contacts)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/contacts/1", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
