package nft

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestTransactionIDsStrictlyIncrease(t *testing.T) {
	svc := NewService()

	tx1, err := svc.CreateCollection("alice", CollectionInput{Name: "art", Symbol: "ART"})
	if err != nil {
		t.Fatalf("CreateCollection returned error: %v", err)
	}
	if tx1 != 1 {
		t.Fatalf("expected first transaction id 1, got %d", tx1)
	}

	tx2, err := svc.Mint("alice", 1, "piece #1")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	tx3, err := svc.Mint("alice", 1, "piece #2")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	if tx2 != tx1+1 || tx3 != tx2+1 {
		t.Fatalf("expected consecutive transaction ids, got %d %d %d", tx1, tx2, tx3)
	}

	// a failed mutation must not consume a transaction id
	if _, err := svc.Mint("bob", 1, "stolen"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	tx4, err := svc.Burn("alice", FormatTokenID(1, 1))
	if err != nil {
		t.Fatalf("Burn returned error: %v", err)
	}
	if tx4 != tx3+1 {
		t.Fatalf("expected failed mint to leave the counter untouched, got %d after %d", tx4, tx3)
	}
}

func TestMintUnknownCollection(t *testing.T) {
	svc := NewService()
	if _, err := svc.Mint("alice", 7, "ghost"); err != ErrCollectionNotFound {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestMintRequiresCollectionOwner(t *testing.T) {
	svc := NewService()
	svc.CreateCollection("alice", CollectionInput{Name: "art", Symbol: "ART"})

	if _, err := svc.Mint("bob", 1, "piece"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestBurnRequiresTokenOwner(t *testing.T) {
	svc := NewService()
	svc.CreateCollection("alice", CollectionInput{Name: "art", Symbol: "ART"})
	svc.Mint("alice", 1, "piece #1")
	svc.Mint("alice", 1, "piece #2")
	svc.Mint("alice", 1, "piece #3")

	if _, err := svc.Burn("bob", "3x1"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, found, _ := svc.TokenMetadata("3x1"); !found {
		t.Fatalf("expected token to survive rejected burn")
	}

	if _, err := svc.Burn("alice", "3x1"); err != nil {
		t.Fatalf("Burn returned error: %v", err)
	}
	if _, found, _ := svc.TokenMetadata("3x1"); found {
		t.Fatalf("expected token gone after burn")
	}
}

func TestTransferOwnership(t *testing.T) {
	svc := NewService()
	svc.CreateCollection("alice", CollectionInput{Name: "art", Symbol: "ART"})
	svc.Mint("alice", 1, "piece #1")
	svc.Mint("alice", 1, "piece #2")

	tx, err := svc.Transfer("alice", "2x1", "alice", "bob")
	if err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}
	if tx == 0 {
		t.Fatalf("expected a transaction id")
	}

	token, found, _ := svc.TokenMetadata("2x1")
	if !found || token.Owner != "bob" {
		t.Fatalf("expected bob to own token, got %+v", token)
	}

	// the new owner must issue further transfers; neither the previous
	// owner nor a mismatched from may move it
	if _, err := svc.Transfer("alice", "2x1", "alice", "carol"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for stale owner, got %v", err)
	}
	if _, err := svc.Transfer("bob", "2x1", "alice", "carol"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for mismatched from, got %v", err)
	}
	if _, err := svc.Transfer("bob", "2x1", "bob", "carol"); err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}
}

func TestTransferUnknownToken(t *testing.T) {
	svc := NewService()
	svc.CreateCollection("alice", CollectionInput{Name: "art", Symbol: "ART"})

	if _, err := svc.Transfer("alice", "9x1", "alice", "bob"); err != ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if _, err := svc.Transfer("alice", "1x9", "alice", "bob"); err != ErrCollectionNotFound {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestBurnedTokenIDNeverReissued(t *testing.T) {
	svc := NewService()
	svc.CreateCollection("alice", CollectionInput{Name: "art", Symbol: "ART"})
	svc.Mint("alice", 1, "piece #1")
	svc.Burn("alice", "1x1")
	svc.Mint("alice", 1, "piece #2")

	if _, found, _ := svc.TokenMetadata("1x1"); found {
		t.Fatalf("expected burned id to stay vacant")
	}
	token, found, _ := svc.TokenMetadata("2x1")
	if !found || token.Metadata != "piece #2" {
		t.Fatalf("expected remint under a fresh id, got %+v found=%v", token, found)
	}
}

func TestReadsOnAbsentEntities(t *testing.T) {
	svc := NewService()

	if _, found, err := svc.TokenMetadata("1x1"); found || err != nil {
		t.Fatalf("expected quiet miss for absent collection, found=%v err=%v", found, err)
	}
	if _, found := svc.CollectionMetadata(1); found {
		t.Fatalf("expected quiet miss for absent collection metadata")
	}
	if _, _, err := svc.TokenMetadata("abc"); err != ErrInvalidTokenID {
		t.Fatalf("expected ErrInvalidTokenID, got %v", err)
	}
}

func TestCollectionAccessors(t *testing.T) {
	svc := NewService()
	svc.CreateCollection("alice", CollectionInput{
		Name:        "art",
		Symbol:      "ART",
		Description: "generative pieces",
		Logo:        strPtr("ipfs://logo"),
	})

	if name, ok := svc.Name(1); !ok || name != "art" {
		t.Fatalf("expected name art, got %q ok=%v", name, ok)
	}
	if symbol, ok := svc.Symbol(1); !ok || symbol != "ART" {
		t.Fatalf("expected symbol ART, got %q ok=%v", symbol, ok)
	}
	if desc, ok := svc.Description(1); !ok || desc != "generative pieces" {
		t.Fatalf("expected description, got %q ok=%v", desc, ok)
	}
	if logo, ok := svc.Logo(1); !ok || logo != "ipfs://logo" {
		t.Fatalf("expected logo, got %q ok=%v", logo, ok)
	}

	meta, ok := svc.CollectionMetadata(1)
	if !ok || meta.Owner != "alice" || meta.ID != 1 {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}

func TestLedgerSnapshotRoundTrip(t *testing.T) {
	svc := NewService()
	svc.CreateCollection("alice", CollectionInput{Name: "art", Symbol: "ART"})
	svc.Mint("alice", 1, "piece #1")
	svc.Mint("alice", 1, "piece #2")
	svc.Burn("alice", "1x1")
	svc.Transfer("alice", "2x1", "alice", "bob")

	blob, err := svc.MarshalSnapshot()
	if err != nil {
		t.Fatalf("MarshalSnapshot returned error: %v", err)
	}

	restored := NewService()
	restored.CreateCollection("stale", CollectionInput{Name: "junk", Symbol: "JNK"})
	if err := restored.RestoreSnapshot(blob); err != nil {
		t.Fatalf("RestoreSnapshot returned error: %v", err)
	}

	token, found, _ := restored.TokenMetadata("2x1")
	if !found || token.Owner != "bob" {
		t.Fatalf("expected transfer to round-trip, got %+v found=%v", token, found)
	}
	if _, found, _ := restored.TokenMetadata("1x1"); found {
		t.Fatalf("expected burn to round-trip")
	}

	// counters resume exactly where the snapshot left off
	tx, err := restored.Mint("alice", 1, "piece #3")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	if tx != 6 {
		t.Fatalf("expected transaction counter to resume at 6, got %d", tx)
	}
	if _, found, _ := restored.TokenMetadata("3x1"); !found {
		t.Fatalf("expected remint under next unburned id")
	}
}

func TestRestoreSeedsMissingCounters(t *testing.T) {
	restored := NewService()
	blob := []byte(`{"collections":{"2":{"id":2,"name":"art","symbol":"ART","owner":"alice","description":"","tokens":{"5":{"id":5,"owner":"alice","metadata":"m","collection_id":2}}}}}`)
	if err := restored.RestoreSnapshot(blob); err != nil {
		t.Fatalf("RestoreSnapshot returned error: %v", err)
	}

	if tx, err := restored.Mint("alice", 2, "fresh"); err != nil || tx != 1 {
		t.Fatalf("expected transaction counter seeded to 1, got tx=%d err=%v", tx, err)
	}
	if _, found, _ := restored.TokenMetadata("6x2"); !found {
		t.Fatalf("expected next token id seeded past highest live id")
	}

	if _, err := restored.CreateCollection("bob", CollectionInput{Name: "more", Symbol: "MOR"}); err != nil {
		t.Fatalf("CreateCollection returned error: %v", err)
	}
	if _, found := restored.CollectionMetadata(3); !found {
		t.Fatalf("expected collection counter seeded past highest live id")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	svc := NewService()
	if err := svc.RestoreSnapshot([]byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
