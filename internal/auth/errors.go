package auth

import "errors"

// Domain errors for the auth package, checked with errors.Is().
var (
	// ErrUserNotFound is returned when a user ID or username does not exist.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrUsernameExists is returned when registering a username that is
	// already taken.
	ErrUsernameExists = errors.New("auth: username already exists")

	// ErrInvalidCredentials is returned on a failed login. It covers both
	// unknown usernames and wrong passwords so the two are indistinguishable
	// to the caller.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrTokenInvalid is returned when a JWT fails validation for any
	// reason (bad signature, expired, malformed).
	ErrTokenInvalid = errors.New("auth: invalid token")
)
