package models

// RegisterResponse is the body returned by a successful registration.
// The password hash is deliberately absent: only public identity
// attributes are echoed back.
type RegisterResponse struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// GoogleHandoffResponse signals the caller that the verified Google
// identity has no matching account yet. The client is expected to
// collect the remaining required fields and invoke registration.
// No row is written when this response is produced.
type GoogleHandoffResponse struct {
	NeedsRegister bool   `json:"needsRegister"`
	Username      string `json:"username"`
	Name          string `json:"name"`
	Gender        string `json:"gender,omitempty"`
}

// CreateContactResponse is the body returned by a successful
// contact creation.
type CreateContactResponse struct {
	ContactID int64 `json:"id"`
}

// DeleteContactResponse is the body returned by a contact deletion.
// Success is true regardless of whether a row was actually removed;
// deletion is idempotent.
type DeleteContactResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the uniform JSON error body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
