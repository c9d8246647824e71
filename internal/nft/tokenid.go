package nft

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTokenID splits a composite "{tokenID}x{collectionID}" identifier.
func ParseTokenID(compositeID string) (tokenID, collectionID uint64, err error) {
	tokenPart, collectionPart, found := strings.Cut(compositeID, "x")
	if !found {
		return 0, 0, ErrInvalidTokenID
	}

	tokenID, err = strconv.ParseUint(tokenPart, 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidTokenID
	}
	collectionID, err = strconv.ParseUint(collectionPart, 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidTokenID
	}
	return tokenID, collectionID, nil
}

// FormatTokenID builds the composite identifier for a token.
func FormatTokenID(tokenID, collectionID uint64) string {
	return fmt.Sprintf("%dx%d", tokenID, collectionID)
}
