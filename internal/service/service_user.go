package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-manager/internal/logger"
	"github.com/MKhiriev/go-user-manager/internal/store"
	"github.com/MKhiriev/go-user-manager/models"
)

// userService is the concrete implementation of UserService.
// It validates input, enforces email uniqueness, and delegates hashing to
// the PasswordHasher and persistence to the UserRepository.
type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository and
// hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that name, email, and password are all non-empty, rejects an
// email that is already taken, hashes the password, and persists the record.
// The pre-insert lookup gives a fast failure for the common case; the
// database UNIQUE constraint remains the authority, so a registration that
// loses a concurrent race surfaces as the same [store.ErrEmailAlreadyExists].
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - ErrHashingFailed if the hashing mechanism fails.
//   - A wrapped storage error if the repository call fails.
func (s *userService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn().Str("email", email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", email).Msg("email lookup failed")
		return models.User{}, fmt.Errorf("email lookup failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			// lost the insert race to a concurrent registration
			return models.User{}, store.ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", createdUser.ID).Msg("user registered")

	return createdUser, nil
}

// GetUser returns the user with the given id with the password hash
// stripped, or store.ErrNoUserWasFound.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, store.ErrNoUserWasFound
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	foundUser.PasswordHash = ""
	return foundUser, nil
}

// ListUsers returns all users. The repository projection already excludes
// the password column.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial update to the user with the given id.
//
// At least one field must be supplied, and a supplied field must be
// non-empty. A supplied password is hashed before it reaches the store; the
// password column only ever holds bcrypt output.
//
// Returns the number of affected rows or:
//   - ErrInvalidDataProvided if the update carries no fields.
//   - ErrHashingFailed if the hashing mechanism fails.
//   - store.ErrNoUserWasFound if the id does not exist.
//   - store.ErrEmailAlreadyExists if the new email is taken.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Error().Int64("id", id).Msg("empty update provided")
		return 0, ErrInvalidDataProvided
	}

	// A supplied field must carry a value; blanking name or email would
	// break the non-empty column invariant.
	if update.Name != nil && *update.Name == "" {
		log.Error().Int64("id", id).Msg("empty name provided for update")
		return 0, ErrInvalidDataProvided
	}
	if update.Email != nil && *update.Email == "" {
		log.Error().Int64("id", id).Msg("empty email provided for update")
		return 0, ErrInvalidDataProvided
	}

	patch := models.UserPatch{
		Name:  update.Name,
		Email: update.Email,
	}

	if update.Password != nil {
		if *update.Password == "" {
			log.Error().Int64("id", id).Msg("empty password provided for update")
			return 0, ErrInvalidDataProvided
		}

		passwordHash, err := s.hasher.Hash(ctx, *update.Password)
		if err != nil {
			log.Err(err).Int64("id", id).Msg("password hashing failed")
			return 0, fmt.Errorf("%w: %w", ErrHashingFailed, err)
		}
		patch.PasswordHash = &passwordHash
	}

	affected, err := s.userRepository.UpdateUser(ctx, id, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return 0, store.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("user update failed: %w", err)
	}

	if affected == 0 {
		return 0, store.ErrNoUserWasFound
	}

	return affected, nil
}

// RemoveUser deletes the user with the given id. Deleting a nonexistent or
// already-deleted id returns store.ErrNoUserWasFound.
func (s *userService) RemoveUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	if affected == 0 {
		return store.ErrNoUserWasFound
	}

	log.Info().Int64("id", id).Msg("user deleted")

	return nil
}
