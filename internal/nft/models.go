package nft

import "github.com/veecerts/veevault/internal/identity"

// Token is a single NFT. Token ids are unique only within their
// collection; global addressing uses the "{tokenID}x{collectionID}"
// composite form.
type Token struct {
	ID           uint64             `json:"id"`
	Owner        identity.Principal `json:"owner"`
	Metadata     string             `json:"metadata"`
	CollectionID uint64             `json:"collection_id"`
}

// Collection groups tokens under one owner. The owner is fixed at
// creation. NextTokenID survives burns so ids are never reissued.
type Collection struct {
	ID          uint64             `json:"id"`
	Name        string             `json:"name"`
	Symbol      string             `json:"symbol"`
	Owner       identity.Principal `json:"owner"`
	Description string             `json:"description"`
	Logo        *string            `json:"logo,omitempty"`
	Tokens      map[uint64]Token   `json:"tokens"`
	NextTokenID uint64             `json:"next_token_id"`
}

// CollectionMetadata is the external view of a collection, without its
// token map.
type CollectionMetadata struct {
	ID          uint64             `json:"id"`
	Name        string             `json:"name"`
	Symbol      string             `json:"symbol"`
	Owner       identity.Principal `json:"owner"`
	Description string             `json:"description"`
	Logo        *string            `json:"logo,omitempty"`
}

// CollectionInput carries collection creation fields.
type CollectionInput struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Description string  `json:"description"`
	Logo        *string `json:"logo,omitempty"`
}
