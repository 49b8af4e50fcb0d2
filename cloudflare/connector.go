package cloudflare

import (
	"context"

	"github.com/fwojciec/storegen"
)

// Connector drives the domain connection workflow: register the
// hostname with the provider, mirror its status onto the domain record,
// and link the domain to its store once everything is active.
//
// A nil Provider puts the connector in simulation mode: domains connect
// immediately without touching any external API. This keeps development
// environments working without Cloudflare credentials.
type Connector struct {
	Domains  storegen.DomainService
	Stores   storegen.StoreService
	Provider storegen.HostnameProvider

	// FallbackOrigin is the CNAME target the user points their domain
	// at; Cloudflare routes active hostnames to it.
	FallbackOrigin string
}

// Connect registers the domain as a custom hostname and records the DNS
// records the user must create. SSL certificates usually provision
// asynchronously; call Check to poll until the domain goes active.
func (c *Connector) Connect(ctx context.Context, domainID string) error {
	domain, err := c.Domains.FindDomainByID(ctx, domainID)
	if err != nil {
		return err
	}

	if err := c.Domains.UpdateDomainStatus(ctx, domainID, storegen.DomainPendingPurchase, "cloudflare"); err != nil {
		return err
	}

	if c.Provider == nil {
		return c.simulateConnect(ctx, domain)
	}

	hostname, err := c.Provider.CreateHostname(ctx, domain.DomainName)
	if err != nil {
		if uerr := c.Domains.UpdateDomainStatus(ctx, domainID, storegen.DomainError, "cloudflare"); uerr != nil {
			return uerr
		}
		return err
	}

	if err := c.Domains.SaveHostnameID(ctx, domainID, hostname.ID); err != nil {
		return err
	}

	records := []storegen.DNSRecord{{
		Type:  "CNAME",
		Name:  domain.DomainName,
		Value: c.FallbackOrigin,
		TTL:   3600,
	}}
	records = append(records, hostname.SSL.ValidationRecords...)
	if err := c.Domains.SaveDNSRecords(ctx, domainID, records); err != nil {
		return err
	}

	if err := c.Domains.UpdateSSLStatus(ctx, domainID, mirrorSSLStatus(hostname)); err != nil {
		return err
	}

	if hostname.Active() {
		return c.connectToStore(ctx, domain)
	}
	return nil
}

// Check polls the provider for the current hostname state, mirrors the
// SSL sub-status onto the domain record, and completes the connection
// when both the hostname and its certificate are active.
func (c *Connector) Check(ctx context.Context, domainID string) (*storegen.Hostname, error) {
	domain, err := c.Domains.FindDomainByID(ctx, domainID)
	if err != nil {
		return nil, err
	}

	if c.Provider == nil {
		if err := c.simulateConnect(ctx, domain); err != nil {
			return nil, err
		}
		return &storegen.Hostname{
			Hostname: domain.DomainName,
			Status:   "active",
			SSL:      storegen.HostnameSSL{Status: "active"},
		}, nil
	}

	hostname, err := c.Provider.FindHostname(ctx, domain.DomainName)
	if err != nil {
		return nil, err
	}

	if err := c.Domains.UpdateSSLStatus(ctx, domainID, mirrorSSLStatus(hostname)); err != nil {
		return nil, err
	}

	if hostname.Active() {
		if err := c.connectToStore(ctx, domain); err != nil {
			return nil, err
		}
	}
	return hostname, nil
}

// Disconnect removes the provider hostname and unlinks the domain from
// its store.
func (c *Connector) Disconnect(ctx context.Context, domainID string) error {
	domain, err := c.Domains.FindDomainByID(ctx, domainID)
	if err != nil {
		return err
	}

	if c.Provider != nil && domain.HostnameID != "" {
		if err := c.Provider.DeleteHostname(ctx, domain.HostnameID); err != nil {
			return err
		}
	}

	if err := c.Stores.SetCustomDomain(ctx, domain.StoreID, ""); err != nil {
		return err
	}
	return c.Domains.UpdateDomainStatus(ctx, domainID, storegen.DomainPurchased, "cloudflare")
}

// simulateConnect activates the domain without a provider.
func (c *Connector) simulateConnect(ctx context.Context, domain *storegen.Domain) error {
	if err := c.Domains.UpdateSSLStatus(ctx, domain.ID, storegen.SSLActive); err != nil {
		return err
	}
	return c.connectToStore(ctx, domain)
}

// connectToStore marks the domain connected and writes it onto the store.
func (c *Connector) connectToStore(ctx context.Context, domain *storegen.Domain) error {
	if err := c.Domains.UpdateDomainStatus(ctx, domain.ID, storegen.DomainConnected, "cloudflare"); err != nil {
		return err
	}
	return c.Stores.SetCustomDomain(ctx, domain.StoreID, domain.DomainName)
}

// mirrorSSLStatus collapses the provider's certificate states onto the
// domain record's three-valued SSL status.
func mirrorSSLStatus(hostname *storegen.Hostname) storegen.SSLStatus {
	if hostname.SSL.Status == "active" {
		return storegen.SSLActive
	}
	if len(hostname.SSL.ValidationErrors) > 0 {
		return storegen.SSLError
	}
	return storegen.SSLPending
}
