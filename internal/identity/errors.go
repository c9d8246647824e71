package identity

import "errors"

// ErrUnauthenticated represents missing or invalid bearer tokens.
var ErrUnauthenticated = errors.New("unauthenticated")
