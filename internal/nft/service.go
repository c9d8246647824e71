package nft

import (
	"encoding/json"
	"sync"

	"github.com/veecerts/veevault/internal/identity"
)

// Service owns the ledger state: every collection, every token, and the
// global transaction counter. Unlike the catalog and accounts stores, the
// ledger mutates collections and the counter as one unit, so the whole
// state root sits behind a single mutex.
type Service struct {
	mu               sync.RWMutex
	collections      map[uint64]*Collection
	txID             uint64
	nextCollectionID uint64
}

// NewService constructs an empty ledger. The transaction counter starts
// at 1.
func NewService() *Service {
	return &Service{
		collections:      make(map[uint64]*Collection),
		txID:             1,
		nextCollectionID: 1,
	}
}

// nextTx returns the current transaction id and advances the counter.
// Called only with the write lock held, on success paths.
func (s *Service) nextTx() uint64 {
	tx := s.txID
	s.txID++
	return tx
}

// CreateCollection registers a new collection owned by the caller and
// returns the transaction id.
func (s *Service) CreateCollection(caller identity.Principal, input CollectionInput) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := &Collection{
		ID:          s.nextCollectionID,
		Name:        input.Name,
		Symbol:      input.Symbol,
		Owner:       caller,
		Description: input.Description,
		Logo:        input.Logo,
		Tokens:      make(map[uint64]Token),
		NextTokenID: 1,
	}
	s.collections[collection.ID] = collection
	s.nextCollectionID++

	return s.nextTx(), nil
}

// Mint creates a token in the caller's collection and returns the
// transaction id. Only the collection owner may mint.
func (s *Service) Mint(caller identity.Principal, collectionID uint64, metadata string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.collections[collectionID]
	if !ok {
		return 0, ErrCollectionNotFound
	}
	if collection.Owner != caller {
		return 0, ErrUnauthorized
	}

	token := Token{
		ID:           collection.NextTokenID,
		Owner:        caller,
		Metadata:     metadata,
		CollectionID: collection.ID,
	}
	collection.Tokens[token.ID] = token
	collection.NextTokenID++

	return s.nextTx(), nil
}

// Burn removes the token addressed by the composite id and returns the
// transaction id. Only the token owner may burn.
func (s *Service) Burn(caller identity.Principal, compositeID string) (uint64, error) {
	tokenID, collectionID, err := ParseTokenID(compositeID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.collections[collectionID]
	if !ok {
		return 0, ErrCollectionNotFound
	}
	token, ok := collection.Tokens[tokenID]
	if !ok {
		return 0, ErrTokenNotFound
	}
	if token.Owner != caller {
		return 0, ErrUnauthorized
	}

	delete(collection.Tokens, tokenID)
	return s.nextTx(), nil
}

// Transfer moves the token to a new owner and returns the transaction id.
// The current owner must equal both from and the caller; a delegated
// transfer where the caller is not the owner is rejected.
func (s *Service) Transfer(caller identity.Principal, compositeID string, from, to identity.Principal) (uint64, error) {
	tokenID, collectionID, err := ParseTokenID(compositeID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.collections[collectionID]
	if !ok {
		return 0, ErrCollectionNotFound
	}
	token, ok := collection.Tokens[tokenID]
	if !ok {
		return 0, ErrTokenNotFound
	}
	if token.Owner != from || token.Owner != caller {
		return 0, ErrUnauthorized
	}

	token.Owner = to
	collection.Tokens[tokenID] = token
	return s.nextTx(), nil
}

// TokenMetadata returns the token addressed by the composite id. An
// absent collection or token yields found=false, not an error.
func (s *Service) TokenMetadata(compositeID string) (Token, bool, error) {
	tokenID, collectionID, err := ParseTokenID(compositeID)
	if err != nil {
		return Token{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	collection, ok := s.collections[collectionID]
	if !ok {
		return Token{}, false, nil
	}
	token, ok := collection.Tokens[tokenID]
	if !ok {
		return Token{}, false, nil
	}
	return token, true, nil
}

// CollectionMetadata returns the collection's external view.
func (s *Service) CollectionMetadata(collectionID uint64) (CollectionMetadata, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collection, ok := s.collections[collectionID]
	if !ok {
		return CollectionMetadata{}, false
	}
	return CollectionMetadata{
		ID:          collection.ID,
		Name:        collection.Name,
		Symbol:      collection.Symbol,
		Owner:       collection.Owner,
		Description: collection.Description,
		Logo:        collection.Logo,
	}, true
}

// Name returns the collection name.
func (s *Service) Name(collectionID uint64) (string, bool) {
	meta, ok := s.CollectionMetadata(collectionID)
	return meta.Name, ok
}

// Symbol returns the collection symbol.
func (s *Service) Symbol(collectionID uint64) (string, bool) {
	meta, ok := s.CollectionMetadata(collectionID)
	return meta.Symbol, ok
}

// Description returns the collection description.
func (s *Service) Description(collectionID uint64) (string, bool) {
	meta, ok := s.CollectionMetadata(collectionID)
	return meta.Description, ok
}

// Logo returns the collection logo, if one was set.
func (s *Service) Logo(collectionID uint64) (string, bool) {
	meta, ok := s.CollectionMetadata(collectionID)
	if !ok || meta.Logo == nil {
		return "", false
	}
	return *meta.Logo, true
}

type ledgerState struct {
	Collections      map[uint64]*Collection `json:"collections"`
	TxID             uint64                 `json:"tx_id"`
	NextCollectionID uint64                 `json:"next_collection_id"`
}

// SnapshotName identifies the ledger blob.
func (s *Service) SnapshotName() string { return "nft" }

// MarshalSnapshot serializes the full state root.
func (s *Service) MarshalSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return json.Marshal(ledgerState{
		Collections:      s.collections,
		TxID:             s.txID,
		NextCollectionID: s.nextCollectionID,
	})
}

// RestoreSnapshot replaces the state root wholesale. Id counters missing
// from older blobs are reseeded past the highest live id.
func (s *Service) RestoreSnapshot(data []byte) error {
	var state ledgerState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}

	if state.Collections == nil {
		state.Collections = make(map[uint64]*Collection)
	}
	if state.NextCollectionID == 0 {
		state.NextCollectionID = 1
		for id := range state.Collections {
			if id >= state.NextCollectionID {
				state.NextCollectionID = id + 1
			}
		}
	}
	for _, collection := range state.Collections {
		if collection.Tokens == nil {
			collection.Tokens = make(map[uint64]Token)
		}
		if collection.NextTokenID == 0 {
			collection.NextTokenID = 1
			for id := range collection.Tokens {
				if id >= collection.NextTokenID {
					collection.NextTokenID = id + 1
				}
			}
		}
	}
	if state.TxID == 0 {
		state.TxID = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections = state.Collections
	s.txID = state.TxID
	s.nextCollectionID = state.NextCollectionID
	return nil
}
