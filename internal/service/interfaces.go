package service

import (
	"context"

	"github.com/MKhiriev/go-user-manager/models"
)

// UserService orchestrates registration and CRUD over user records.
// Plaintext passwords enter here and leave only as bcrypt hashes.
type UserService interface {
	// Register validates the input, rejects duplicate emails, hashes the
	// password, and persists the new account. Returns the created user with
	// its server-assigned ID.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// GetUser returns the user with the given id; the password hash is
	// stripped from the result.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all users without password hashes.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update. At least one field must be
	// supplied; a supplied password is hashed before storage. Returns the
	// number of affected rows.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (int64, error)

	// RemoveUser deletes the user with the given id.
	RemoveUser(ctx context.Context, id int64) error
}

// AuthService orchestrates login and the JWT token lifecycle.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// CreateToken issues a signed JWT bound to the given user's id.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PasswordHasher is the one-way hashing dependency of the services.
// Implementations are expected to bound their own concurrency, since a
// single computation is deliberately expensive.
type PasswordHasher interface {
	// Hash derives a salted hash of plaintext. Failure is a server fault,
	// never a verification result.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether plaintext matches hashed. False on any
	// mismatch or malformed hash; the error is non-nil only when ctx ends
	// before the comparison could run.
	Verify(ctx context.Context, plaintext, hashed string) (bool, error)
}
