package models

import "time"

// User represents a registered account. Guests can use the service without
// one; in that case excuse and usage records simply carry no owner.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user. It is an opaque string
	// (uuid), assigned once at creation and never changed afterwards.
	ID string `json:"id"`

	// Username is the unique login identifier chosen at signup.
	Username string `json:"username"`

	// Email is the user's e-mail address. Optional; unique when present.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. Empty for
	// accounts created through an external identity provider.
	// Never serialized.
	PasswordHash string `json:"-"`

	// FirstName and LastName are optional display fields.
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	// ProfileImageURL optionally points at an avatar image.
	ProfileImageURL string `json:"profileImageUrl,omitempty"`

	// CreatedAt is set once when the account is created and preserved on
	// upsert. UpdatedAt is refreshed on every write.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
