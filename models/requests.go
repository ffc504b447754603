package models

// RegisterRequest is the JSON body accepted by POST /auth/register.
// Username, Name, Gender, Location, and MBTI are required;
// PhoneOrInsta is optional; Password is required only for
// credential-based accounts (the Google handoff flow omits it).
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	Name         string `json:"name"`
	PhoneOrInsta string `json:"phone_or_insta,omitempty"`
	Gender       string `json:"gender"`
	Location     string `json:"location"`
	MBTI         string `json:"mbti"`
}

// LoginRequest is the JSON body accepted by POST /auth/login.
// Both fields are required.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the JSON body accepted by POST /auth/google.
// IDToken is the opaque identity token issued by Google and is required.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// CreateContactRequest is the JSON body accepted by POST /contacts.
// UserID, Intro, ContactValue, and Gender are required;
// Location and MBTI are optional.
type CreateContactRequest struct {
	UserID       int64  `json:"user_id"`
	Intro        string `json:"intro"`
	ContactValue string `json:"contact_value"`
	Location     string `json:"location,omitempty"`
	MBTI         string `json:"mbti,omitempty"`
	Gender       string `json:"gender"`
}

// ContactFilter carries the optional query parameters of GET /contacts.
// Zero-valued fields are not applied. When both are set the predicates
// combine with logical AND.
type ContactFilter struct {
	// Location keeps only listings whose location matches exactly.
	Location string

	// ExcludeGender keeps only listings whose gender differs from
	// the given value.
	ExcludeGender string
}
