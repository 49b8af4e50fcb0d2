package storegen

import (
	"context"
	"time"
)

// DomainStatus tracks a custom domain's connection lifecycle. It is
// independent of the store's generation status.
type DomainStatus string

// Domain statuses.
const (
	DomainSuggested       DomainStatus = "suggested"
	DomainAvailable       DomainStatus = "available"
	DomainPendingPurchase DomainStatus = "pending_purchase"
	DomainPurchased       DomainStatus = "purchased"
	DomainConnected       DomainStatus = "connected"
	DomainError           DomainStatus = "error"
)

// SSLStatus mirrors the provider's certificate sub-status.
type SSLStatus string

// SSL statuses as mirrored onto a domain record.
const (
	SSLPending SSLStatus = "pending"
	SSLActive  SSLStatus = "active"
	SSLError   SSLStatus = "error"
)

// DNSRecord is a DNS record the user must create to validate a domain.
type DNSRecord struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
	TTL   int    `json:"ttl,omitempty"`
}

// Domain represents a suggested or connected custom domain for a store.
type Domain struct {
	ID         string       `json:"id"`
	StoreID    string       `json:"storeId"`
	DomainName string       `json:"domainName"`
	Status     DomainStatus `json:"status"`
	Provider   string       `json:"provider,omitempty"`
	DNSRecords []DNSRecord  `json:"dnsRecords,omitempty"`
	SSLStatus  SSLStatus    `json:"sslStatus,omitempty"`
	HostnameID string       `json:"hostnameId,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Validate returns an error if the domain contains invalid fields.
func (d *Domain) Validate() error {
	if d.DomainName == "" {
		return Errorf(EINVALID, "domain name required")
	}
	if d.StoreID == "" {
		return Errorf(EINVALID, "domain store ID required")
	}
	return nil
}

// DomainService represents a service for managing domain records.
type DomainService interface {
	// CreateDomain creates a new domain record.
	CreateDomain(ctx context.Context, domain *Domain) error

	// FindDomainByID retrieves a domain by ID.
	// Returns ENOTFOUND if the domain does not exist.
	FindDomainByID(ctx context.Context, id string) (*Domain, error)

	// FindDomainByName retrieves a domain by its name.
	// Returns ENOTFOUND if no record holds the name.
	FindDomainByName(ctx context.Context, name string) (*Domain, error)

	// FindDomainsByStore retrieves all domain records for a store.
	FindDomainsByStore(ctx context.Context, storeID string) ([]*Domain, error)

	// UpdateDomainStatus writes the domain status and provider.
	UpdateDomainStatus(ctx context.Context, id string, status DomainStatus, provider string) error

	// UpdateSSLStatus mirrors the provider's SSL sub-status.
	UpdateSSLStatus(ctx context.Context, id string, status SSLStatus) error

	// SaveDNSRecords stores the validation DNS records for display.
	SaveDNSRecords(ctx context.Context, id string, records []DNSRecord) error

	// SaveHostnameID stores the provider-side hostname resource ID.
	SaveHostnameID(ctx context.Context, id string, hostnameID string) error

	// DeleteDomain permanently removes a domain record.
	// Returns ENOTFOUND if the domain does not exist.
	DeleteDomain(ctx context.Context, id string) error
}

// Hostname is the provider-side custom hostname resource, carrying the
// top-level hostname status and the nested SSL sub-status.
type Hostname struct {
	ID       string      `json:"id"`
	Hostname string      `json:"hostname"`
	Status   string      `json:"status"` // e.g. pending, active
	SSL      HostnameSSL `json:"ssl"`
}

// HostnameSSL is the certificate sub-resource of a Hostname.
type HostnameSSL struct {
	Status            string      `json:"status"` // pending_validation → … → active
	Method            string      `json:"method,omitempty"`
	ValidationRecords []DNSRecord `json:"validationRecords,omitempty"`
	ValidationErrors  []string    `json:"validationErrors,omitempty"`
}

// Active reports whether both the hostname and its certificate are live.
func (h *Hostname) Active() bool {
	return h.Status == "active" && h.SSL.Status == "active"
}

// HostnameProvider is the third-party SSL/hostname API the domain
// connection workflow polls.
type HostnameProvider interface {
	// CreateHostname registers a custom hostname with the provider.
	CreateHostname(ctx context.Context, hostname string) (*Hostname, error)

	// FindHostname looks up the hostname resource by its name.
	// Returns ENOTFOUND if the provider has no such hostname.
	FindHostname(ctx context.Context, hostname string) (*Hostname, error)

	// DeleteHostname removes the hostname resource by provider ID.
	DeleteHostname(ctx context.Context, id string) error
}
