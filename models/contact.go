package models

import "time"

// Contact is a directory listing a registered user publishes about
// themselves so that others can discover and reach them.
// Entries are append-only: they are created and deleted, never updated.
type Contact struct {
	// ContactID is the internal unique identifier of the listing.
	ContactID int64 `json:"id"`

	// UserID references the user who published the listing.
	UserID int64 `json:"user_id"`

	// Intro is the free-text self introduction shown in the directory.
	Intro string `json:"intro"`

	// ContactValue is how to reach the publisher (phone, Instagram, etc.).
	ContactValue string `json:"contact_value"`

	// Location is the optional region tag used for exact-match filtering.
	Location string `json:"location,omitempty"`

	// MBTI is the optional personality type tag of the publisher.
	MBTI string `json:"mbti,omitempty"`

	// Gender is the publisher's gender, used for the exclude-gender filter.
	Gender string `json:"gender"`

	// CreatedAt orders listings for display, oldest first.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
