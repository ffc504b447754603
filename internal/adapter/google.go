package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jiminoh-dev/linkup/internal/config"
	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/models"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com"

type googleIdentityAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewGoogleIdentityAdapter builds an [IdentityProvider] that verifies
// identity tokens against the Google tokeninfo endpoint.
//
// The base URL defaults to the public Google endpoint and the client
// timeout to 15 seconds when the configuration leaves them empty.
func NewGoogleIdentityAdapter(cfg config.Google, logger *logger.Logger) IdentityProvider {
	baseURL := cfg.TokenInfoURL
	if baseURL == "" {
		baseURL = defaultTokenInfoURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	logger.Info().Str("base_url", baseURL).Msg("google identity adapter created")

	return &googleIdentityAdapter{client: cli, logger: logger}
}

// VerifyIDToken calls GET /tokeninfo?id_token=... and decodes the verified
// identity attributes. The token is passed as a query parameter, matching
// the tokeninfo contract.
//
// Any transport error, non-200 status, or a response without an email claim
// is reported as [ErrTokenExchangeFailed].
func (g *googleIdentityAdapter) VerifyIDToken(ctx context.Context, idToken string) (models.GoogleTokenInfo, error) {
	log := logger.FromContext(ctx)

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("id_token", idToken).
		Get("/tokeninfo")
	if err != nil {
		log.Err(err).Msg("tokeninfo request failed")
		return models.GoogleTokenInfo{}, fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().Int("status", resp.StatusCode()).Msg("tokeninfo rejected token")
		return models.GoogleTokenInfo{}, fmt.Errorf("%w: tokeninfo returned status %d", ErrTokenExchangeFailed, resp.StatusCode())
	}

	var info models.GoogleTokenInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		log.Err(err).Msg("decoding tokeninfo response failed")
		return models.GoogleTokenInfo{}, fmt.Errorf("%w: decode response: %w", ErrTokenExchangeFailed, err)
	}

	if info.Email == "" {
		log.Error().Msg("tokeninfo response carries no email claim")
		return models.GoogleTokenInfo{}, fmt.Errorf("%w: response carries no email claim", ErrTokenExchangeFailed)
	}

	return info, nil
}
