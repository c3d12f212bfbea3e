package service

import "context"

// LoginThrottle counts failed logins per account key.
type LoginThrottle interface {
	// Blocked reports whether key exceeded the allowed failures in the current window.
	Blocked(ctx context.Context, key string) (bool, error)

	// RegisterFailure records one failed attempt for key.
	RegisterFailure(ctx context.Context, key string) error

	// Reset clears the failures of key after a successful login.
	Reset(ctx context.Context, key string) error
}
