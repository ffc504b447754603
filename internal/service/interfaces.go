package service

import (
	"context"

	"github.com/jiminoh-dev/linkup/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GoogleLogin(ctx context.Context, idToken string) (GoogleLoginResult, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

type ContactService interface {
	CreateContact(ctx context.Context, req models.CreateContactRequest) (models.Contact, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
}

// GoogleLoginResult carries the outcome of an identity-token login.
// Exactly one of the two shapes is meaningful: when NeedsRegister is false
// User holds the existing account; when true, Identity holds the verified
// attributes the client needs to pre-fill the registration form.
type GoogleLoginResult struct {
	User          models.User
	Identity      models.GoogleTokenInfo
	NeedsRegister bool
}
