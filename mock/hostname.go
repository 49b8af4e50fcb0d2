package mock

import (
	"context"

	"github.com/fwojciec/storegen"
)

var _ storegen.HostnameProvider = (*HostnameProvider)(nil)

// HostnameProvider is a mock implementation of storegen.HostnameProvider.
type HostnameProvider struct {
	CreateHostnameFn func(ctx context.Context, hostname string) (*storegen.Hostname, error)
	FindHostnameFn   func(ctx context.Context, hostname string) (*storegen.Hostname, error)
	DeleteHostnameFn func(ctx context.Context, id string) error
}

func (p *HostnameProvider) CreateHostname(ctx context.Context, hostname string) (*storegen.Hostname, error) {
	return p.CreateHostnameFn(ctx, hostname)
}

func (p *HostnameProvider) FindHostname(ctx context.Context, hostname string) (*storegen.Hostname, error) {
	return p.FindHostnameFn(ctx, hostname)
}

func (p *HostnameProvider) DeleteHostname(ctx context.Context, id string) error {
	return p.DeleteHostnameFn(ctx, id)
}
