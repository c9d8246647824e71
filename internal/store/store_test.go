package store

import "testing"

type record struct {
	ID   string
	Name string
}

func TestUpsertAndGet(t *testing.T) {
	s := New[string, record]()

	s.Upsert("a", record{ID: "a", Name: "first"})
	s.Upsert("a", record{ID: "a", Name: "second"})

	got, ok := s.Get("a")
	if !ok {
		t.Fatalf("expected record under key a")
	}
	if got.Name != "second" {
		t.Fatalf("expected upsert to replace, got %q", got.Name)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
}

func TestListIsPointInTimeCopy(t *testing.T) {
	s := New[string, record]()
	s.Upsert("a", record{ID: "a"})

	listed := s.List()
	s.Upsert("b", record{ID: "b"})

	if len(listed) != 1 {
		t.Fatalf("expected snapshot of 1 entry, got %d", len(listed))
	}
	if s.Len() != 2 {
		t.Fatalf("expected live store to hold 2 entries, got %d", s.Len())
	}
}

func TestSnapshotCopyIsDetached(t *testing.T) {
	s := New[string, record]()
	s.Upsert("a", record{ID: "a", Name: "original"})

	snap := s.Snapshot()
	snap["a"] = record{ID: "a", Name: "mutated"}

	got, _ := s.Get("a")
	if got.Name != "original" {
		t.Fatalf("snapshot mutation leaked into live store")
	}
}

func TestReplaceSwapsWholesale(t *testing.T) {
	s := New[string, record]()
	s.Upsert("stale", record{ID: "stale"})

	s.Replace(map[string]record{
		"x": {ID: "x"},
		"y": {ID: "y"},
	})

	if s.Contains("stale") {
		t.Fatalf("expected pre-restore entry to be gone")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries after replace, got %d", s.Len())
	}

	s.Replace(nil)
	if s.Len() != 0 {
		t.Fatalf("expected empty store after nil replace, got %d", s.Len())
	}
}
