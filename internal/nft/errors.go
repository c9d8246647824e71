package nft

import "errors"

var (
	// ErrUnauthorized is returned when the caller does not own the
	// collection or token it is mutating.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTokenNotFound signals that the token does not exist in its
	// collection.
	ErrTokenNotFound = errors.New("token not found")
	// ErrCollectionNotFound signals that the collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrInvalidTokenID signals a malformed composite token identifier.
	ErrInvalidTokenID = errors.New("invalid token id")
)

// ErrorCode maps ledger errors to their wire-level variant names.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrTokenNotFound):
		return "TOKEN_NOT_FOUND"
	case errors.Is(err, ErrCollectionNotFound):
		return "COLLECTION_NOT_FOUND"
	case errors.Is(err, ErrInvalidTokenID):
		return "INVALID_TOKEN_ID"
	default:
		return "INTERNAL"
	}
}
