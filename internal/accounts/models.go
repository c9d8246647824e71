package accounts

import "github.com/veecerts/veevault/internal/identity"

// Profile holds per-identity contact details. All optional fields stay nil
// until the owner supplies them.
type Profile struct {
	Principal   identity.Principal `json:"principal"`
	Email       *string            `json:"email,omitempty"`
	FirstName   *string            `json:"first_name,omitempty"`
	LastName    *string            `json:"last_name,omitempty"`
	ImageHash   *string            `json:"image_hash,omitempty"`
	DateAdded   string             `json:"date_added"`
	LastUpdated string             `json:"last_updated"`
}

// ProfileUpdate carries partial profile changes. Nil fields keep the
// stored value.
type ProfileUpdate struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	ImageHash *string `json:"image_hash,omitempty"`
}

// SubscriptionPackage describes a purchasable service tier.
type SubscriptionPackage struct {
	UUID               string  `json:"uuid"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	StorageCapacityMB  uint64  `json:"storage_capacity_mb"`
	MonthlyRequests    uint64  `json:"monthly_requests"`
	MaxAllowedSessions uint64  `json:"max_allowed_sessions"`
	LastUpdated        int64   `json:"last_updated"`
}

// PackageInput carries package upsert fields; a nil UUID creates a new
// package under a generated id.
type PackageInput struct {
	UUID               *string `json:"uuid,omitempty"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	StorageCapacityMB  uint64  `json:"storage_capacity_mb"`
	MonthlyRequests    uint64  `json:"monthly_requests"`
	MaxAllowedSessions uint64  `json:"max_allowed_sessions"`
}

// Client is created lazily the first time an identity subscribes. The
// active reference points at the current ClientPackageSubscription record;
// superseded records stay in the store unreferenced.
type Client struct {
	Principal              identity.Principal `json:"principal"`
	UUID                   string             `json:"uuid"`
	ActiveSubscriptionUUID *string            `json:"active_subscription_uuid,omitempty"`
}

// ClientPackageSubscription records one purchase of a package.
type ClientPackageSubscription struct {
	UUID                    string  `json:"uuid"`
	ClientUUID              string  `json:"client_uuid"`
	SubscriptionPackageUUID string  `json:"subscription_package_uuid"`
	Amount                  float64 `json:"amount"`
	ExpiresAt               int64   `json:"expires_at"`
}
