package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockContactRepository implements store.ContactRepository for unit tests.
type mockContactRepository struct {
	createContactFn func(ctx context.Context, contact models.Contact) (models.Contact, error)
	listContactsFn  func(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	deleteContactFn func(ctx context.Context, contactID int64) error
}

func (m *mockContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.createContactFn(ctx, contact)
}

func (m *mockContactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	return m.listContactsFn(ctx, filter)
}

func (m *mockContactRepository) DeleteContact(ctx context.Context, contactID int64) error {
	return m.deleteContactFn(ctx, contactID)
}

func TestCreateContactService_MissingRequiredField(t *testing.T) {
	repoCalled := false
	repo := &mockContactRepository{
		createContactFn: func(_ context.Context, c models.Contact) (models.Contact, error) {
			repoCalled = true
			return c, nil
		},
	}
	svc := NewContactService(repo, logger.Nop())

	for _, req := range []models.CreateContactRequest{
		{Intro: "hi", ContactValue: "@a", Gender: "F"},
		{UserID: 1, ContactValue: "@a", Gender: "F"},
		{UserID: 1, Intro: "hi", Gender: "F"},
		{UserID: 1, Intro: "hi", ContactValue: "@a"},
	} {
		_, err := svc.CreateContact(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	}

	assert.False(t, repoCalled)
}

func TestCreateContactService_OptionalFieldsPassThrough(t *testing.T) {
	var stored models.Contact
	repo := &mockContactRepository{
		createContactFn: func(_ context.Context, c models.Contact) (models.Contact, error) {
			stored = c
			c.ContactID = 7
			return c, nil
		},
	}
	svc := NewContactService(repo, logger.Nop())

	created, err := svc.CreateContact(context.Background(), models.CreateContactRequest{
		UserID:       1,
		Intro:        "hi there",
		ContactValue: "@alice",
		Gender:       "F",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ContactID)
	assert.Empty(t, stored.Location)
	assert.Empty(t, stored.MBTI)
}

func TestCreateContactService_RepositoryError(t *testing.T) {
	repoErr := errors.New("db is down")
	repo := &mockContactRepository{
		createContactFn: func(_ context.Context, _ models.Contact) (models.Contact, error) {
			return models.Contact{}, repoErr
		},
	}
	svc := NewContactService(repo, logger.Nop())

	_, err := svc.CreateContact(context.Background(), models.CreateContactRequest{
		UserID: 1, Intro: "hi", ContactValue: "@a", Gender: "F",
	})
	require.ErrorIs(t, err, repoErr)
}

func TestListContactsService_FilterPassedThrough(t *testing.T) {
	var seen models.ContactFilter
	repo := &mockContactRepository{
		listContactsFn: func(_ context.Context, filter models.ContactFilter) ([]models.Contact, error) {
			seen = filter
			return []models.Contact{}, nil
		},
	}
	svc := NewContactService(repo, logger.Nop())

	filter := models.ContactFilter{Location: "Seoul", ExcludeGender: "M"}
	contacts, err := svc.ListContacts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, seen)
	assert.NotNil(t, contacts)
}

func TestListContactsService_RepositoryError(t *testing.T) {
	repoErr := errors.New("db is down")
	repo := &mockContactRepository{
		listContactsFn: func(_ context.Context, _ models.ContactFilter) ([]models.Contact, error) {
			return nil, repoErr
		},
	}
	svc := NewContactService(repo, logger.Nop())

	_, err := svc.ListContacts(context.Background(), models.ContactFilter{})
	require.ErrorIs(t, err, repoErr)
}

func TestDeleteContactService_Success(t *testing.T) {
	var deletedID int64
	repo := &mockContactRepository{
		deleteContactFn: func(_ context.Context, contactID int64) error {
			deletedID = contactID
			return nil
		},
	}
	svc := NewContactService(repo, logger.Nop())

	require.NoError(t, svc.DeleteContact(context.Background(), 42))
	assert.Equal(t, int64(42), deletedID)
}

func TestDeleteContactService_RepositoryError(t *testing.T) {
	repoErr := errors.New("db is down")
	repo := &mockContactRepository{
		deleteContactFn: func(_ context.Context, _ int64) error {
			return repoErr
		},
	}
	svc := NewContactService(repo, logger.Nop())

	err := svc.DeleteContact(context.Background(), 1)
	require.ErrorIs(t, err, repoErr)
}
