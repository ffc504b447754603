package service

import (
	"context"
	"fmt"

	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/internal/store"
	"github.com/jiminoh-dev/linkup/models"
)

// contactService is the concrete implementation of ContactService.
// Every operation is a single request-scoped repository call; the service
// adds boundary validation and nothing else.
type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

// NewContactService constructs a ContactService wired to the given repository.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// CreateContact publishes a new directory listing.
//
// UserID, Intro, ContactValue, and Gender are required; Location and MBTI
// are optional. Returns the persisted listing or:
//   - ErrInvalidDataProvided if any required field is missing.
//   - store.ErrUnknownUser if UserID references no existing account.
//   - A wrapped storage error if the insert fails.
func (c *contactService) CreateContact(ctx context.Context, req models.CreateContactRequest) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if req.UserID == 0 || req.Intro == "" || req.ContactValue == "" || req.Gender == "" {
		log.Error().Int64("user_id", req.UserID).Msg("invalid contact data provided")
		return models.Contact{}, ErrInvalidDataProvided
	}

	contact := models.Contact{
		UserID:       req.UserID,
		Intro:        req.Intro,
		ContactValue: req.ContactValue,
		Location:     req.Location,
		MBTI:         req.MBTI,
		Gender:       req.Gender,
	}

	createdContact, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return createdContact, nil
}

// ListContacts returns the directory listings matching the filter, ordered
// by creation time ascending. The filter fields are optional and combine
// with AND; an empty filter returns everything.
func (c *contactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	contacts, err := c.contactRepository.ListContacts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("contact listing ended with error")
		return nil, fmt.Errorf("contact listing ended with error: %w", err)
	}

	return contacts, nil
}

// DeleteContact removes the listing with the given id. A non-existent id is
// treated as success; the operation is idempotent.
func (c *contactService) DeleteContact(ctx context.Context, contactID int64) error {
	log := logger.FromContext(ctx)

	if err := c.contactRepository.DeleteContact(ctx, contactID); err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact deletion ended with error")
		return fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return nil
}
