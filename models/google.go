package models

// GoogleTokenInfo is the subset of the Google tokeninfo response the
// service consumes: the verified identity triple plus the audience
// claim used for client-ID validation.
type GoogleTokenInfo struct {
	// Email is the verified email address; it becomes the username key.
	Email string `json:"email"`

	// Name is the display name reported by Google.
	Name string `json:"name"`

	// Gender is the self-reported gender, when Google provides one.
	Gender string `json:"gender"`

	// Audience is the OAuth client ID the token was issued for ("aud").
	// Tokens minted for a different client must be rejected.
	Audience string `json:"aud"`
}
