package store

import (
	"context"

	"github.com/MKhiriev/go-user-manager/models"
)

// UserRepository is the data-access contract for the users table.
// All operations are single-row except ListUsers; the email uniqueness
// invariant is enforced by the database, not by callers.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned
	// ID and CreatedAt. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the exact stored email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all users with the password column excluded from the
	// projection.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil fields of patch to the given user and
	// returns the number of affected rows (0 when the id does not exist).
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (int64, error)

	// DeleteUser removes the user and returns the number of affected rows
	// (0 when the id does not exist).
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying by the caller.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
