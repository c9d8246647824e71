package accounts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/veecerts/veevault/internal/identity"
	"github.com/veecerts/veevault/internal/store"
)

// subscriptionWindow is the fixed validity period of every subscription,
// regardless of package.
const subscriptionWindow = 30 * 24 * time.Hour

// Subscription status messages. Every not-found path collapses to
// StatusNone so callers cannot distinguish a dangling reference from a
// client that never subscribed.
const (
	StatusNone    = "No active subscription found."
	StatusExpired = "Subscription has expired."
)

// Service owns profiles, clients, subscription packages and subscription
// records. It also backs the catalog's registered-client guard.
type Service struct {
	users         *store.Store[identity.Principal, Profile]
	clients       *store.Store[identity.Principal, Client]
	packages      *store.Store[string, SubscriptionPackage]
	subscriptions *store.Store[string, ClientPackageSubscription]
	nowFunc       func() time.Time
	newID         func() string
}

// NewService constructs an accounts service with empty stores.
func NewService() *Service {
	return &Service{
		users:         store.New[identity.Principal, Profile](),
		clients:       store.New[identity.Principal, Client](),
		packages:      store.New[string, SubscriptionPackage](),
		subscriptions: store.New[string, ClientPackageSubscription](),
		nowFunc:       time.Now,
		newID:         uuid.NewString,
	}
}

func (s *Service) timestamp() string {
	return strconv.FormatInt(s.nowFunc().UnixNano(), 10)
}

// Register creates an empty profile for the caller. Registering twice is
// not an error; the second call reports created=false and leaves the
// stored profile untouched.
func (s *Service) Register(principal identity.Principal) (Profile, bool) {
	if existing, ok := s.users.Get(principal); ok {
		return existing, false
	}

	now := s.timestamp()
	profile := Profile{
		Principal:   principal,
		DateAdded:   now,
		LastUpdated: now,
	}
	s.users.Upsert(principal, profile)
	return profile, true
}

// UpdateProfile overwrites only the supplied fields of the caller's
// profile.
func (s *Service) UpdateProfile(principal identity.Principal, update ProfileUpdate) (Profile, error) {
	profile, ok := s.users.Get(principal)
	if !ok {
		return Profile{}, ErrProfileNotFound
	}

	if update.Email != nil {
		profile.Email = update.Email
	}
	if update.FirstName != nil {
		profile.FirstName = update.FirstName
	}
	if update.LastName != nil {
		profile.LastName = update.LastName
	}
	if update.ImageHash != nil {
		profile.ImageHash = update.ImageHash
	}
	profile.LastUpdated = s.timestamp()

	s.users.Upsert(principal, profile)
	return profile, nil
}

// GetProfile returns the caller's profile.
func (s *Service) GetProfile(principal identity.Principal) (Profile, bool) {
	return s.users.Get(principal)
}

// GetProfileByPrincipal returns any identity's profile.
func (s *Service) GetProfileByPrincipal(principal identity.Principal) (Profile, bool) {
	return s.users.Get(principal)
}

// CreateUpdatePackage upserts a subscription package. A nil input UUID
// creates a new package under a generated id.
func (s *Service) CreateUpdatePackage(input PackageInput) (SubscriptionPackage, store.Outcome) {
	id := ""
	if input.UUID != nil {
		id = *input.UUID
	}

	outcome := store.Updated
	if id == "" || !s.packages.Contains(id) {
		outcome = store.Created
	}
	if id == "" {
		id = s.newID()
	}

	pkg := SubscriptionPackage{
		UUID:               id,
		Name:               input.Name,
		Price:              input.Price,
		StorageCapacityMB:  input.StorageCapacityMB,
		MonthlyRequests:    input.MonthlyRequests,
		MaxAllowedSessions: input.MaxAllowedSessions,
		LastUpdated:        s.nowFunc().UnixNano(),
	}
	s.packages.Upsert(id, pkg)
	return pkg, outcome
}

// ListPackages returns all packages.
func (s *Service) ListPackages() []SubscriptionPackage {
	return s.packages.List()
}

// Subscribe purchases a package for the caller, creating the client record
// lazily and repointing its active subscription. Earlier subscription
// records stay in the store unreferenced.
func (s *Service) Subscribe(principal identity.Principal, packageUUID string) (Client, error) {
	pkg, ok := s.packages.Get(packageUUID)
	if !ok {
		return Client{}, ErrPackageNotFound
	}

	client, ok := s.clients.Get(principal)
	if !ok {
		client = Client{
			Principal: principal,
			UUID:      s.newID(),
		}
	}

	subscription := ClientPackageSubscription{
		UUID:                    s.newID(),
		ClientUUID:              client.UUID,
		SubscriptionPackageUUID: packageUUID,
		Amount:                  pkg.Price,
		ExpiresAt:               s.nowFunc().Add(subscriptionWindow).UnixNano(),
	}
	s.subscriptions.Upsert(subscription.UUID, subscription)

	client.ActiveSubscriptionUUID = &subscription.UUID
	s.clients.Upsert(principal, client)
	return client, nil
}

// SubscriptionStatus classifies the caller's subscription by comparing the
// stored expiry against the current time. The check is lazy; nothing
// expires in the background.
func (s *Service) SubscriptionStatus(principal identity.Principal) string {
	client, ok := s.clients.Get(principal)
	if !ok || client.ActiveSubscriptionUUID == nil {
		return StatusNone
	}

	subscription, ok := s.subscriptions.Get(*client.ActiveSubscriptionUUID)
	if !ok {
		return StatusNone
	}

	if subscription.ExpiresAt > s.nowFunc().UnixNano() {
		return fmt.Sprintf("Subscription is active. Expires at: %d", subscription.ExpiresAt)
	}
	return StatusExpired
}

// GetClient returns the caller's client record.
func (s *Service) GetClient(principal identity.Principal) (Client, bool) {
	return s.clients.Get(principal)
}

// IsRegisteredClient reports whether the principal has a client record.
// Consumed by the catalog mutation guard.
func (s *Service) IsRegisteredClient(principal identity.Principal) bool {
	return s.clients.Contains(principal)
}

type accountsState struct {
	Users         map[identity.Principal]Profile       `json:"users"`
	Clients       map[identity.Principal]Client        `json:"clients"`
	Packages      map[string]SubscriptionPackage       `json:"subscription_packages"`
	Subscriptions map[string]ClientPackageSubscription `json:"client_subscriptions"`
}

// SnapshotName identifies the accounts blob.
func (s *Service) SnapshotName() string { return "accounts" }

// MarshalSnapshot serializes all four stores.
func (s *Service) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(accountsState{
		Users:         s.users.Snapshot(),
		Clients:       s.clients.Snapshot(),
		Packages:      s.packages.Snapshot(),
		Subscriptions: s.subscriptions.Snapshot(),
	})
}

// RestoreSnapshot replaces all four stores wholesale.
func (s *Service) RestoreSnapshot(data []byte) error {
	var state accountsState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	s.users.Replace(state.Users)
	s.clients.Replace(state.Clients)
	s.packages.Replace(state.Packages)
	s.subscriptions.Replace(state.Subscriptions)
	return nil
}
