package mock

import (
	"context"

	"github.com/fwojciec/storegen"
)

var _ storegen.StoreService = (*StoreService)(nil)

// StoreService is a mock implementation of storegen.StoreService.
type StoreService struct {
	CreateStoreFn          func(ctx context.Context, store *storegen.Store) error
	FindStoreByIDFn        func(ctx context.Context, id string) (*storegen.Store, error)
	FindStoreBySubdomainFn func(ctx context.Context, subdomain string) (*storegen.Store, error)
	FindStoresFn           func(ctx context.Context, filter storegen.StoreFilter) ([]*storegen.Store, error)
	BeginGenerationFn      func(ctx context.Context, id string) error
	UpdateStatusFn         func(ctx context.Context, id string, status storegen.Status, errorMessage string) error
	SavePageHashFn         func(ctx context.Context, id string, hash string) error
	SaveProductDataFn      func(ctx context.Context, id string, product *storegen.Product) error
	SaveStoreConfigFn      func(ctx context.Context, id string, config *storegen.StoreConfig, suggestedDomains []string, generatedHTML string) error
	SetPublishedFn         func(ctx context.Context, id string, published bool) error
	SetCustomDomainFn      func(ctx context.Context, id string, domain string) error
	DeleteStoreFn          func(ctx context.Context, id string) error
}

func (s *StoreService) CreateStore(ctx context.Context, store *storegen.Store) error {
	return s.CreateStoreFn(ctx, store)
}

func (s *StoreService) FindStoreByID(ctx context.Context, id string) (*storegen.Store, error) {
	return s.FindStoreByIDFn(ctx, id)
}

func (s *StoreService) FindStoreBySubdomain(ctx context.Context, subdomain string) (*storegen.Store, error) {
	return s.FindStoreBySubdomainFn(ctx, subdomain)
}

func (s *StoreService) FindStores(ctx context.Context, filter storegen.StoreFilter) ([]*storegen.Store, error) {
	return s.FindStoresFn(ctx, filter)
}

func (s *StoreService) BeginGeneration(ctx context.Context, id string) error {
	return s.BeginGenerationFn(ctx, id)
}

func (s *StoreService) UpdateStatus(ctx context.Context, id string, status storegen.Status, errorMessage string) error {
	return s.UpdateStatusFn(ctx, id, status, errorMessage)
}

func (s *StoreService) SavePageHash(ctx context.Context, id string, hash string) error {
	return s.SavePageHashFn(ctx, id, hash)
}

func (s *StoreService) SaveProductData(ctx context.Context, id string, product *storegen.Product) error {
	return s.SaveProductDataFn(ctx, id, product)
}

func (s *StoreService) SaveStoreConfig(ctx context.Context, id string, config *storegen.StoreConfig, suggestedDomains []string, generatedHTML string) error {
	return s.SaveStoreConfigFn(ctx, id, config, suggestedDomains, generatedHTML)
}

func (s *StoreService) SetPublished(ctx context.Context, id string, published bool) error {
	return s.SetPublishedFn(ctx, id, published)
}

func (s *StoreService) SetCustomDomain(ctx context.Context, id string, domain string) error {
	return s.SetCustomDomainFn(ctx, id, domain)
}

func (s *StoreService) DeleteStore(ctx context.Context, id string) error {
	return s.DeleteStoreFn(ctx, id)
}
