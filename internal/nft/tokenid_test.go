package nft

import "testing"

func TestParseTokenID(t *testing.T) {
	tokenID, collectionID, err := ParseTokenID("12x7")
	if err != nil {
		t.Fatalf("ParseTokenID returned error: %v", err)
	}
	if tokenID != 12 || collectionID != 7 {
		t.Fatalf("expected 12/7, got %d/%d", tokenID, collectionID)
	}
}

func TestParseTokenIDMalformed(t *testing.T) {
	for _, composite := range []string{"", "abc", "12", "x7", "12x", "axb", "1.5x2"} {
		if _, _, err := ParseTokenID(composite); err != ErrInvalidTokenID {
			t.Fatalf("expected ErrInvalidTokenID for %q, got %v", composite, err)
		}
	}
}

func TestFormatTokenIDRoundTrip(t *testing.T) {
	composite := FormatTokenID(3, 9)
	if composite != "3x9" {
		t.Fatalf("expected 3x9, got %q", composite)
	}
	tokenID, collectionID, err := ParseTokenID(composite)
	if err != nil || tokenID != 3 || collectionID != 9 {
		t.Fatalf("round trip failed: %d/%d err=%v", tokenID, collectionID, err)
	}
}
