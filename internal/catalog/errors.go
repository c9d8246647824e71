package catalog

import "errors"

var (
	// ErrUnauthorized is returned when the caller is not a registered client.
	ErrUnauthorized = errors.New("you are not authorized to perform this action")
	// ErrFolderNotFound signals that the referenced folder does not exist.
	ErrFolderNotFound = errors.New("folder not found")
)
