package mock

import (
	"context"

	"github.com/fwojciec/storegen"
)

var _ storegen.DomainService = (*DomainService)(nil)

// DomainService is a mock implementation of storegen.DomainService.
type DomainService struct {
	CreateDomainFn       func(ctx context.Context, domain *storegen.Domain) error
	FindDomainByIDFn     func(ctx context.Context, id string) (*storegen.Domain, error)
	FindDomainByNameFn   func(ctx context.Context, name string) (*storegen.Domain, error)
	FindDomainsByStoreFn func(ctx context.Context, storeID string) ([]*storegen.Domain, error)
	UpdateDomainStatusFn func(ctx context.Context, id string, status storegen.DomainStatus, provider string) error
	UpdateSSLStatusFn    func(ctx context.Context, id string, status storegen.SSLStatus) error
	SaveDNSRecordsFn     func(ctx context.Context, id string, records []storegen.DNSRecord) error
	SaveHostnameIDFn     func(ctx context.Context, id string, hostnameID string) error
	DeleteDomainFn       func(ctx context.Context, id string) error
}

func (s *DomainService) CreateDomain(ctx context.Context, domain *storegen.Domain) error {
	return s.CreateDomainFn(ctx, domain)
}

func (s *DomainService) FindDomainByID(ctx context.Context, id string) (*storegen.Domain, error) {
	return s.FindDomainByIDFn(ctx, id)
}

func (s *DomainService) FindDomainByName(ctx context.Context, name string) (*storegen.Domain, error) {
	return s.FindDomainByNameFn(ctx, name)
}

func (s *DomainService) FindDomainsByStore(ctx context.Context, storeID string) ([]*storegen.Domain, error) {
	return s.FindDomainsByStoreFn(ctx, storeID)
}

func (s *DomainService) UpdateDomainStatus(ctx context.Context, id string, status storegen.DomainStatus, provider string) error {
	return s.UpdateDomainStatusFn(ctx, id, status, provider)
}

func (s *DomainService) UpdateSSLStatus(ctx context.Context, id string, status storegen.SSLStatus) error {
	return s.UpdateSSLStatusFn(ctx, id, status)
}

func (s *DomainService) SaveDNSRecords(ctx context.Context, id string, records []storegen.DNSRecord) error {
	return s.SaveDNSRecordsFn(ctx, id, records)
}

func (s *DomainService) SaveHostnameID(ctx context.Context, id string, hostnameID string) error {
	return s.SaveHostnameIDFn(ctx, id, hostnameID)
}

func (s *DomainService) DeleteDomain(ctx context.Context, id string) error {
	return s.DeleteDomainFn(ctx, id)
}
