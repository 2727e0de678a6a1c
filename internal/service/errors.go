package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field is missing or
	// empty, or a partial update carries no fields at all.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login failure. Deliberately the
	// same value for "no such email" and "wrong password" so the caller
	// cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrHashingFailed is returned when the password hashing mechanism
	// itself fails. A server fault, distinct from a failed verification.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised result of any token
	// validation failure (expired, wrong issuer, malformed, bad signature).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
