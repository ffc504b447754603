package adapter

import (
	"context"

	"github.com/jiminoh-dev/linkup/models"
)

// IdentityProvider exchanges an opaque third-party identity token for a
// verified set of user attributes. The provider is a trusted external
// collaborator; any failure of the exchange (network error, invalid or
// expired token) is surfaced as [ErrTokenExchangeFailed].
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (models.GoogleTokenInfo, error)
}
