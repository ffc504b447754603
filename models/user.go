package models

import "time"

// User represents a registered account in the directory.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at registration time.
	UserID int64 `json:"id"`

	// Username is the unique account identifier, typically an email
	// address or handle. Used as the lookup key during every login.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Empty for accounts created through the Google handoff flow.
	// It is never serialized; plaintext passwords are never persisted.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PhoneOrInsta is an optional contact handle (phone number or
	// Instagram ID) the user may share with others.
	PhoneOrInsta string `json:"phone_or_insta,omitempty"`

	// Gender is the self-reported gender of the user.
	Gender string `json:"gender"`

	// Location is the user's home region, used for directory matching.
	Location string `json:"location"`

	// MBTI is the user's self-reported personality type.
	MBTI string `json:"mbti"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
