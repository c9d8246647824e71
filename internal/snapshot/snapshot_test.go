package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeService struct {
	name       string
	state      map[string]string
	marshalErr error
}

func (f *fakeService) SnapshotName() string { return f.name }

func (f *fakeService) MarshalSnapshot() ([]byte, error) {
	if f.marshalErr != nil {
		return nil, f.marshalErr
	}
	return json.Marshal(f.state)
}

func (f *fakeService) RestoreSnapshot(data []byte) error {
	var state map[string]string
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	f.state = state
	return nil
}

type memBlobStore struct {
	blobs map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: make(map[string][]byte)}
}

func (m *memBlobStore) Save(ctx context.Context, name string, data []byte) error {
	m.blobs[name] = data
	return nil
}

func (m *memBlobStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return data, nil
}

func (m *memBlobStore) Ping(ctx context.Context) error { return nil }
func (m *memBlobStore) Close() error                   { return nil }

func TestManagerSaveAndRestoreRoundTrip(t *testing.T) {
	store := newMemBlobStore()
	svc := &fakeService{name: "catalog", state: map[string]string{"a": "1", "b": "2"}}

	mgr := NewManager(store, nil, svc)
	if err := mgr.SaveAll(context.Background()); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}

	restored := &fakeService{name: "catalog"}
	mgr2 := NewManager(store, nil, restored)
	if err := mgr2.RestoreAll(context.Background()); err != nil {
		t.Fatalf("RestoreAll returned error: %v", err)
	}

	if len(restored.state) != 2 || restored.state["a"] != "1" {
		t.Fatalf("restored state mismatch: %v", restored.state)
	}
}

func TestManagerRestoreMissingBlobStartsFresh(t *testing.T) {
	store := newMemBlobStore()
	svc := &fakeService{name: "accounts"}

	mgr := NewManager(store, nil, svc)
	if err := mgr.RestoreAll(context.Background()); err != nil {
		t.Fatalf("expected missing blob to be tolerated, got %v", err)
	}
	if svc.state != nil {
		t.Fatalf("expected service untouched, got %v", svc.state)
	}
}

func TestManagerRestoreDecodeFailureIsFatal(t *testing.T) {
	store := newMemBlobStore()
	store.blobs["nft"] = []byte("{not json")

	svc := &fakeService{name: "nft"}
	mgr := NewManager(store, nil, svc)

	if err := mgr.RestoreAll(context.Background()); err == nil {
		t.Fatalf("expected restore to fail on undecodable blob")
	}
}

func TestManagerSaveReportsFirstError(t *testing.T) {
	store := newMemBlobStore()
	bad := &fakeService{name: "bad", marshalErr: errors.New("boom")}
	good := &fakeService{name: "good", state: map[string]string{"x": "y"}}

	mgr := NewManager(store, nil, bad, good)
	if err := mgr.SaveAll(context.Background()); err == nil {
		t.Fatalf("expected error from failing service")
	}

	// the healthy service must still have been saved
	if _, ok := store.blobs["good"]; !ok {
		t.Fatalf("expected healthy service snapshot to be written")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if _, err := store.Load(context.Background(), "missing"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}

	payload := []byte(`{"hello":"world"}`)
	if err := store.Save(context.Background(), "catalog", payload); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := store.Load(context.Background(), "catalog")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("expected %s, got %s", payload, got)
	}

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}
