package catalog

import "github.com/veecerts/veevault/internal/identity"

// Folder groups assets under a single owning client. Owner and client
// reference are fixed at creation; only name and description may change.
type Folder struct {
	UUID        string             `json:"uuid"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ClientID    string             `json:"client_id"`
	OwnerID     identity.Principal `json:"owner_id"`
	DateAdded   string             `json:"date_added"`
	LastUpdated string             `json:"last_updated"`
}

// Asset is a stored catalog entry addressed by a content hash. The folder
// reference is checked when the asset is created and never revalidated.
type Asset struct {
	UUID        string             `json:"uuid"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	FolderUUID  string             `json:"folder_uuid"`
	IPFSHash    string             `json:"ipfs_hash"`
	SizeMB      float64            `json:"size_mb"`
	OwnerID     identity.Principal `json:"owner_id"`
	DateAdded   string             `json:"date_added"`
	LastUpdated string             `json:"last_updated"`
}

// FolderInput carries caller-supplied folder fields. A UUID matching an
// existing folder selects the update path; anything else creates.
type FolderInput struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssetInput carries caller-supplied asset fields.
type AssetInput struct {
	UUID        string  `json:"uuid"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	FolderUUID  string  `json:"folder_uuid"`
	IPFSHash    string  `json:"ipfs_hash"`
	SizeMB      float64 `json:"size_mb"`
}
