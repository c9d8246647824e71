package accounts

import "errors"

var (
	// ErrProfileNotFound signals that no profile exists for the caller.
	ErrProfileNotFound = errors.New("user not found")
	// ErrPackageNotFound signals that the referenced package does not exist.
	ErrPackageNotFound = errors.New("subscription package not found")
)
