package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-user-manager/models"
)

const (
	createUser = `INSERT INTO users (name, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password, created_at;`

	findUserByEmail = `SELECT id, name, email, password, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password, created_at
    FROM users
    WHERE id = $1;`

	// password deliberately excluded from the list projection
	listUsers = `SELECT id, name, email, created_at
    FROM users
    ORDER BY id;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)

// buildUpdateUserQuery builds the partial UPDATE statement for a user: only
// the non-nil fields of patch become SET clauses. Returns ErrEmptyUpdate when
// the patch carries nothing.
func buildUpdateUserQuery(userID int64, patch models.UserPatch) (string, []any, error) {
	if patch.Empty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		builder = builder.Set("password", *patch.PasswordHash)
	}

	query, args, err := builder.Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
