package store

import (
	"context"

	"github.com/jiminoh-dev/linkup/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
}
