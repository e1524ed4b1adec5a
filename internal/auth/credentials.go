package auth

import (
	"context"
	"errors"
	"fmt"
)

// Authenticate resolves a username/password pair to a user account.
//
// Unknown usernames and wrong passwords both return
// ErrInvalidCredentials, so a caller (and therefore a client) cannot
// tell which usernames exist. Any other error is a repository or
// hashing failure.
func Authenticate(ctx context.Context, repo UserRepository, username, password string) (*User, error) {
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
