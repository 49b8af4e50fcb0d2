package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/storegen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ storegen.DomainService = (*DomainService)(nil)

// DomainService implements storegen.DomainService using SQLite.
type DomainService struct {
	db *DB
}

// NewDomainService creates a new DomainService.
func NewDomainService(db *DB) *DomainService {
	return &DomainService{db: db}
}

const domainColumns = `id, store_id, domain_name, status, provider, dns_records,
	ssl_status, hostname_id, created_at, updated_at`

// CreateDomain creates a new domain record.
func (s *DomainService) CreateDomain(ctx context.Context, domain *storegen.Domain) error {
	if err := domain.Validate(); err != nil {
		return err
	}

	domain.ID = uuid.New().String()
	if domain.Status == "" {
		domain.Status = storegen.DomainSuggested
	}
	now := time.Now().UTC()
	domain.CreatedAt = now
	domain.UpdatedAt = now

	rawRecords, err := marshalJSON(domain.DNSRecords)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO domains (id, store_id, domain_name, status, provider, dns_records,
			ssl_status, hostname_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, domain.ID, domain.StoreID, domain.DomainName, string(domain.Status), domain.Provider,
		rawRecords, string(domain.SSLStatus), domain.HostnameID,
		domain.CreatedAt.Format(time.RFC3339), domain.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindDomainByID retrieves a domain by ID.
func (s *DomainService) FindDomainByID(ctx context.Context, id string) (*storegen.Domain, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+domainColumns+`
		FROM domains
		WHERE id = ?
	`, id)
	return scanDomain(row)
}

// FindDomainByName retrieves a domain by its name.
func (s *DomainService) FindDomainByName(ctx context.Context, name string) (*storegen.Domain, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+domainColumns+`
		FROM domains
		WHERE domain_name = ?
	`, name)
	return scanDomain(row)
}

// FindDomainsByStore retrieves all domain records for a store.
func (s *DomainService) FindDomainsByStore(ctx context.Context, storeID string) ([]*storegen.Domain, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+domainColumns+`
		FROM domains
		WHERE store_id = ?
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []*storegen.Domain
	for rows.Next() {
		domain, err := scanDomain(rows)
		if err != nil {
			return nil, err
		}
		domains = append(domains, domain)
	}

	return domains, rows.Err()
}

// UpdateDomainStatus writes the domain status and provider.
func (s *DomainService) UpdateDomainStatus(ctx context.Context, id string, status storegen.DomainStatus, provider string) error {
	return s.updateDomain(ctx, `
		UPDATE domains
		SET status = ?, provider = ?, updated_at = ?
		WHERE id = ?
	`, string(status), provider, time.Now().UTC().Format(time.RFC3339), id)
}

// UpdateSSLStatus mirrors the provider's SSL sub-status.
func (s *DomainService) UpdateSSLStatus(ctx context.Context, id string, status storegen.SSLStatus) error {
	return s.updateDomain(ctx, `
		UPDATE domains
		SET ssl_status = ?, updated_at = ?
		WHERE id = ?
	`, string(status), time.Now().UTC().Format(time.RFC3339), id)
}

// SaveDNSRecords stores the validation DNS records for display.
func (s *DomainService) SaveDNSRecords(ctx context.Context, id string, records []storegen.DNSRecord) error {
	raw, err := marshalJSON(records)
	if err != nil {
		return err
	}
	return s.updateDomain(ctx, `
		UPDATE domains
		SET dns_records = ?, updated_at = ?
		WHERE id = ?
	`, raw, time.Now().UTC().Format(time.RFC3339), id)
}

// SaveHostnameID stores the provider-side hostname resource ID.
func (s *DomainService) SaveHostnameID(ctx context.Context, id string, hostnameID string) error {
	return s.updateDomain(ctx, `
		UPDATE domains
		SET hostname_id = ?, updated_at = ?
		WHERE id = ?
	`, hostnameID, time.Now().UTC().Format(time.RFC3339), id)
}

// DeleteDomain permanently removes a domain record.
func (s *DomainService) DeleteDomain(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM domains WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return storegen.Errorf(storegen.ENOTFOUND, "domain not found")
	}

	return nil
}

func (s *DomainService) updateDomain(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return storegen.Errorf(storegen.ENOTFOUND, "domain not found")
	}

	return nil
}

func scanDomain(row scanner) (*storegen.Domain, error) {
	var domain storegen.Domain
	var status, sslStatus, rawRecords, createdAt, updatedAt string

	err := row.Scan(&domain.ID, &domain.StoreID, &domain.DomainName, &status, &domain.Provider,
		&rawRecords, &sslStatus, &domain.HostnameID, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, storegen.Errorf(storegen.ENOTFOUND, "domain not found")
	}
	if err != nil {
		return nil, err
	}

	domain.Status = storegen.DomainStatus(status)
	domain.SSLStatus = storegen.SSLStatus(sslStatus)

	if err := unmarshalJSON(rawRecords, &domain.DNSRecords, "dns_records"); err != nil {
		return nil, err
	}

	if domain.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if domain.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &domain, nil
}
