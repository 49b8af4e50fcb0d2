package storegen

import (
	"context"
	"time"
)

// Status represents the lifecycle state of a store's generation pipeline.
type Status string

// Pipeline statuses. A store is created as StatusPending, walks through
// scraping → analyzing → generating, and terminates in StatusReady or
// StatusError. StatusError is reachable from any state.
const (
	StatusPending    Status = "pending"
	StatusScraping   Status = "scraping"
	StatusAnalyzing  Status = "analyzing"
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
	StatusError      Status = "error"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScraping, StatusAnalyzing, StatusGenerating, StatusReady, StatusError:
		return true
	}
	return false
}

// Startable reports whether a generation run may begin from this status.
// In-flight statuses (scraping, analyzing, generating) are not startable;
// this is the idempotency guard against a second concurrent trigger for
// the same store. Terminal statuses are startable so a store can be
// regenerated.
func (s Status) Startable() bool {
	switch s {
	case StatusPending, StatusReady, StatusError:
		return true
	}
	return false
}

// Store represents a generated single-product storefront.
type Store struct {
	ID         string `json:"id"`
	ProductURL string `json:"productUrl"`
	Status     Status `json:"status"`

	// Set only when Status is StatusError.
	ErrorMessage string `json:"errorMessage,omitempty"`

	// Filled by the analysis stage.
	Product *Product `json:"product,omitempty"`

	// Filled by the design stage.
	Config *StoreConfig `json:"config,omitempty"`

	// Optional full-page HTML export. Never produced by the pipeline
	// itself; rendering is a separate concern.
	GeneratedHTML string `json:"generatedHtml,omitempty"`

	// Content hash of the fetched product page, for change detection
	// across pipeline re-runs.
	PageHash string `json:"pageHash,omitempty"`

	// Assigned deterministically from the store ID once the store
	// reaches StatusReady.
	Subdomain string `json:"subdomain,omitempty"`

	CustomDomain     string   `json:"customDomain,omitempty"`
	SuggestedDomains []string `json:"suggestedDomains,omitempty"`
	Published        bool     `json:"published"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the store contains invalid fields.
func (s *Store) Validate() error {
	if s.ProductURL == "" {
		return Errorf(EINVALID, "store product URL required")
	}
	if s.Status != "" && !s.Status.Valid() {
		return Errorf(EINVALID, "unknown store status %q", s.Status)
	}
	return nil
}

// StoreService represents a service for managing stores. All writes are
// single-row patches; no multi-row transaction semantics are promised.
type StoreService interface {
	// CreateStore creates a new store with StatusPending.
	CreateStore(ctx context.Context, store *Store) error

	// FindStoreByID retrieves a store by ID.
	// Returns ENOTFOUND if the store does not exist.
	FindStoreByID(ctx context.Context, id string) (*Store, error)

	// FindStoreBySubdomain retrieves a store by its assigned subdomain.
	// Returns ENOTFOUND if no store has the subdomain.
	FindStoreBySubdomain(ctx context.Context, subdomain string) (*Store, error)

	// FindStores retrieves stores matching the filter.
	FindStores(ctx context.Context, filter StoreFilter) ([]*Store, error)

	// BeginGeneration atomically claims the store for a generation run,
	// transitioning it to StatusScraping. Returns ECONFLICT if the store
	// is not in a startable status (a run is already in flight).
	BeginGeneration(ctx context.Context, id string) error

	// UpdateStatus writes the status, error message and updated
	// timestamp. Idempotent.
	UpdateStatus(ctx context.Context, id string, status Status, errorMessage string) error

	// SavePageHash records the content hash of the fetched product page.
	SavePageHash(ctx context.Context, id string, hash string) error

	// SaveProductData writes the analyzed product record and, as a side
	// effect, advances the status to StatusGenerating.
	SaveProductData(ctx context.Context, id string, product *Product) error

	// SaveStoreConfig writes the final store configuration and suggested
	// domains, assigns the permanent subdomain derived from the store ID,
	// sets published=false, and advances the status to StatusReady.
	SaveStoreConfig(ctx context.Context, id string, config *StoreConfig, suggestedDomains []string, generatedHTML string) error

	// SetPublished flips the published flag.
	SetPublished(ctx context.Context, id string, published bool) error

	// SetCustomDomain links a connected custom domain to the store.
	SetCustomDomain(ctx context.Context, id string, domain string) error

	// DeleteStore permanently removes a store.
	// Returns ENOTFOUND if the store does not exist.
	DeleteStore(ctx context.Context, id string) error
}

// StoreFilter represents a filter for FindStores.
type StoreFilter struct {
	ID        *string `json:"id"`
	Status    *Status `json:"status"`
	Subdomain *string `json:"subdomain"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SubdomainPrefix is prepended to the ID-derived suffix when the
// permanent subdomain is assigned.
const SubdomainPrefix = "store-"

// DeriveSubdomain returns the deterministic subdomain for a store ID:
// the last 8 characters of the ID prefixed with "store-".
func DeriveSubdomain(storeID string) string {
	suffix := storeID
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return SubdomainPrefix + suffix
}
