package models

import "time"

// User represents a single account record in the "users" table.
// PasswordHash must only ever contain bcrypt output, never a plaintext
// password, and is excluded from every JSON projection.
type User struct {
	// ID is the surrogate key assigned by the database on insert.
	// Immutable for the lifetime of the record.
	ID int64 `json:"id"`

	// Name is the display name of the user. Required, non-empty.
	Name string `json:"name"`

	// Email is the globally unique lookup identity of the account.
	// Uniqueness is enforced by a database constraint, matching is
	// byte-wise exact as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never returned to API callers.
	PasswordHash string `json:"-"`

	// CreatedAt is set once by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is the partial-update input accepted by the service layer.
// Nil fields are left untouched; Password carries plaintext and is hashed
// before it ever reaches the store.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil
}

// UserPatch is the store-level counterpart of UserUpdate: by the time a
// patch reaches the repository the password has already been replaced by
// its bcrypt hash.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// Empty reports whether the patch carries no fields at all.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil
}
