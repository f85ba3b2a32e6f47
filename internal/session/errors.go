package session

import "errors"

var (
	// ErrInvalidCredentials is returned on any login mismatch. It deliberately
	// does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserExists is returned when registering with a username or email that
	// is already taken. It deliberately does not say which field collided.
	ErrUserExists = errors.New("username or email already exists")
)
