package catalog

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/veecerts/veevault/internal/identity"
	"github.com/veecerts/veevault/internal/store"
)

// clientRegistry reports whether a principal is a registered client.
// Satisfied by the accounts service.
type clientRegistry interface {
	IsRegisteredClient(principal identity.Principal) bool
}

// Service owns the folder and asset stores and applies the registered-client
// guard to every mutation.
type Service struct {
	folders *store.Store[string, Folder]
	assets  *store.Store[string, Asset]
	clients clientRegistry
	nowFunc func() time.Time
	newID   func() string
}

// NewService constructs a catalog service with empty stores.
func NewService(clients clientRegistry) *Service {
	return &Service{
		folders: store.New[string, Folder](),
		assets:  store.New[string, Asset](),
		clients: clients,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
}

func (s *Service) timestamp() string {
	return strconv.FormatInt(s.nowFunc().UnixNano(), 10)
}

// CreateUpdateFolder creates a folder or updates an existing one's name and
// description. The caller must be a registered client.
func (s *Service) CreateUpdateFolder(principal identity.Principal, input FolderInput) (Folder, store.Outcome, error) {
	if !s.clients.IsRegisteredClient(principal) {
		return Folder{}, 0, ErrUnauthorized
	}

	if existing, ok := s.folders.Get(input.UUID); ok {
		existing.Name = input.Name
		existing.Description = input.Description
		existing.LastUpdated = s.timestamp()
		s.folders.Upsert(existing.UUID, existing)
		return existing, store.Updated, nil
	}

	now := s.timestamp()
	folder := Folder{
		UUID:        s.newID(),
		Name:        input.Name,
		Description: input.Description,
		ClientID:    principal.String(),
		OwnerID:     principal,
		DateAdded:   now,
		LastUpdated: now,
	}
	s.folders.Upsert(folder.UUID, folder)
	return folder, store.Created, nil
}

// CreateUpdateAsset creates an asset inside an existing folder or updates an
// existing asset's mutable fields. The folder reference is checked only on
// the create path.
func (s *Service) CreateUpdateAsset(principal identity.Principal, input AssetInput) (Asset, store.Outcome, error) {
	if !s.clients.IsRegisteredClient(principal) {
		return Asset{}, 0, ErrUnauthorized
	}

	if existing, ok := s.assets.Get(input.UUID); ok {
		existing.Name = input.Name
		existing.Description = input.Description
		existing.IPFSHash = input.IPFSHash
		existing.SizeMB = input.SizeMB
		existing.LastUpdated = s.timestamp()
		s.assets.Upsert(existing.UUID, existing)
		return existing, store.Updated, nil
	}

	if !s.folders.Contains(input.FolderUUID) {
		return Asset{}, 0, ErrFolderNotFound
	}

	now := s.timestamp()
	asset := Asset{
		UUID:        s.newID(),
		Name:        input.Name,
		Description: input.Description,
		FolderUUID:  input.FolderUUID,
		IPFSHash:    input.IPFSHash,
		SizeMB:      input.SizeMB,
		OwnerID:     principal,
		DateAdded:   now,
		LastUpdated: now,
	}
	s.assets.Upsert(asset.UUID, asset)
	return asset, store.Created, nil
}

// ClientFolders lists folders owned by userID, passed through the query
// pipeline.
func (s *Service) ClientFolders(userID string, page *Page[FolderQueryOptions]) []Folder {
	folders := make([]Folder, 0)
	for _, folder := range s.folders.List() {
		if folder.OwnerID.String() == userID {
			folders = append(folders, folder)
		}
	}
	return ApplyFolderQuery(folders, page)
}

// ClientFolder returns a single folder owned by userID.
func (s *Service) ClientFolder(userID, folderID string) (Folder, bool) {
	folder, ok := s.folders.Get(folderID)
	if !ok || folder.OwnerID.String() != userID {
		return Folder{}, false
	}
	return folder, true
}

// ClientAssets lists assets owned by userID, passed through the query
// pipeline.
func (s *Service) ClientAssets(userID string, page *Page[AssetQueryOptions]) []Asset {
	assets := make([]Asset, 0)
	for _, asset := range s.assets.List() {
		if asset.OwnerID.String() == userID {
			assets = append(assets, asset)
		}
	}
	return ApplyAssetQuery(assets, page)
}

// ClientFolderAssets lists assets owned by userID within one folder.
func (s *Service) ClientFolderAssets(userID, folderID string, page *Page[AssetQueryOptions]) []Asset {
	assets := make([]Asset, 0)
	for _, asset := range s.assets.List() {
		if asset.OwnerID.String() == userID && asset.FolderUUID == folderID {
			assets = append(assets, asset)
		}
	}
	return ApplyAssetQuery(assets, page)
}

type catalogState struct {
	Folders map[string]Folder `json:"folders"`
	Assets  map[string]Asset  `json:"assets"`
}

// SnapshotName identifies the catalog blob.
func (s *Service) SnapshotName() string { return "catalog" }

// MarshalSnapshot serializes both stores.
func (s *Service) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(catalogState{
		Folders: s.folders.Snapshot(),
		Assets:  s.assets.Snapshot(),
	})
}

// RestoreSnapshot replaces both stores wholesale.
func (s *Service) RestoreSnapshot(data []byte) error {
	var state catalogState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	s.folders.Replace(state.Folders)
	s.assets.Replace(state.Assets)
	return nil
}
