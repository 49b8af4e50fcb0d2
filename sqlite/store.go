package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/storegen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ storegen.StoreService = (*StoreService)(nil)

// StoreService implements storegen.StoreService using SQLite.
type StoreService struct {
	db *DB
}

// NewStoreService creates a new StoreService.
func NewStoreService(db *DB) *StoreService {
	return &StoreService{db: db}
}

const storeColumns = `id, product_url, status, error_message, product, config,
	generated_html, page_hash, subdomain, custom_domain, suggested_domains,
	published, created_at, updated_at`

// CreateStore creates a new store with StatusPending.
func (s *StoreService) CreateStore(ctx context.Context, store *storegen.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}

	store.ID = uuid.New().String()
	store.Status = storegen.StatusPending
	now := time.Now().UTC()
	store.CreatedAt = now
	store.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stores (id, product_url, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, store.ID, store.ProductURL, string(store.Status),
		store.CreatedAt.Format(time.RFC3339), store.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindStoreByID retrieves a store by ID.
func (s *StoreService) FindStoreByID(ctx context.Context, id string) (*storegen.Store, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE id = ?
	`, id)
	return scanStore(row)
}

// FindStoreBySubdomain retrieves a store by its assigned subdomain.
func (s *StoreService) FindStoreBySubdomain(ctx context.Context, subdomain string) (*storegen.Store, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE subdomain = ?
	`, subdomain)
	return scanStore(row)
}

// FindStores retrieves stores matching the filter.
func (s *StoreService) FindStores(ctx context.Context, filter storegen.StoreFilter) ([]*storegen.Store, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + storeColumns + " FROM stores WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Subdomain != nil {
		query.WriteString(" AND subdomain = ?")
		args = append(args, *filter.Subdomain)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []*storegen.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return stores, rows.Err()
}

// BeginGeneration atomically claims the store for a generation run. The
// claim is a conditional update: it succeeds only from a startable
// status, so two concurrent triggers for the same store cannot both win.
func (s *StoreService) BeginGeneration(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE stores
		SET status = ?, error_message = '', updated_at = ?
		WHERE id = ? AND status IN (?, ?, ?)
	`, string(storegen.StatusScraping), time.Now().UTC().Format(time.RFC3339), id,
		string(storegen.StatusPending), string(storegen.StatusReady), string(storegen.StatusError))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Distinguish a missing store from one already being generated.
		if _, err := s.FindStoreByID(ctx, id); err != nil {
			return err
		}
		return storegen.Errorf(storegen.ECONFLICT, "store generation already in progress")
	}

	return nil
}

// UpdateStatus writes the status, error message and updated timestamp.
func (s *StoreService) UpdateStatus(ctx context.Context, id string, status storegen.Status, errorMessage string) error {
	if !status.Valid() {
		return storegen.Errorf(storegen.EINVALID, "unknown store status %q", status)
	}
	return s.updateStore(ctx, id, `
		UPDATE stores
		SET status = ?, error_message = ?, updated_at = ?
		WHERE id = ?
	`, string(status), errorMessage, time.Now().UTC().Format(time.RFC3339), id)
}

// SavePageHash records the content hash of the fetched product page.
func (s *StoreService) SavePageHash(ctx context.Context, id string, hash string) error {
	return s.updateStore(ctx, id, `
		UPDATE stores
		SET page_hash = ?, updated_at = ?
		WHERE id = ?
	`, hash, time.Now().UTC().Format(time.RFC3339), id)
}

// SaveProductData writes the analyzed product record and advances the
// status to StatusGenerating.
func (s *StoreService) SaveProductData(ctx context.Context, id string, product *storegen.Product) error {
	raw, err := marshalJSON(product)
	if err != nil {
		return err
	}
	return s.updateStore(ctx, id, `
		UPDATE stores
		SET product = ?, status = ?, updated_at = ?
		WHERE id = ?
	`, raw, string(storegen.StatusGenerating), time.Now().UTC().Format(time.RFC3339), id)
}

// SaveStoreConfig writes the final store configuration, assigns the
// permanent subdomain derived from the store ID, resets the published
// flag and advances the status to StatusReady.
func (s *StoreService) SaveStoreConfig(ctx context.Context, id string, config *storegen.StoreConfig, suggestedDomains []string, generatedHTML string) error {
	rawConfig, err := marshalJSON(config)
	if err != nil {
		return err
	}
	rawDomains, err := marshalJSON(suggestedDomains)
	if err != nil {
		return err
	}
	return s.updateStore(ctx, id, `
		UPDATE stores
		SET config = ?, suggested_domains = ?, generated_html = ?,
			subdomain = ?, published = 0, status = ?, error_message = '', updated_at = ?
		WHERE id = ?
	`, rawConfig, rawDomains, generatedHTML,
		storegen.DeriveSubdomain(id), string(storegen.StatusReady),
		time.Now().UTC().Format(time.RFC3339), id)
}

// SetPublished flips the published flag.
func (s *StoreService) SetPublished(ctx context.Context, id string, published bool) error {
	return s.updateStore(ctx, id, `
		UPDATE stores
		SET published = ?, updated_at = ?
		WHERE id = ?
	`, published, time.Now().UTC().Format(time.RFC3339), id)
}

// SetCustomDomain links a connected custom domain to the store.
func (s *StoreService) SetCustomDomain(ctx context.Context, id string, domain string) error {
	return s.updateStore(ctx, id, `
		UPDATE stores
		SET custom_domain = ?, updated_at = ?
		WHERE id = ?
	`, domain, time.Now().UTC().Format(time.RFC3339), id)
}

// DeleteStore permanently removes a store.
func (s *StoreService) DeleteStore(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM stores WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return storegen.Errorf(storegen.ENOTFOUND, "store not found")
	}

	return nil
}

// updateStore runs a single-store UPDATE and maps zero affected rows to
// ENOTFOUND.
func (s *StoreService) updateStore(ctx context.Context, id, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return storegen.Errorf(storegen.ENOTFOUND, "store not found")
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStore(row scanner) (*storegen.Store, error) {
	var store storegen.Store
	var status, rawProduct, rawConfig, rawDomains, createdAt, updatedAt string

	err := row.Scan(&store.ID, &store.ProductURL, &status, &store.ErrorMessage,
		&rawProduct, &rawConfig, &store.GeneratedHTML, &store.PageHash,
		&store.Subdomain, &store.CustomDomain, &rawDomains, &store.Published,
		&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, storegen.Errorf(storegen.ENOTFOUND, "store not found")
	}
	if err != nil {
		return nil, err
	}

	store.Status = storegen.Status(status)

	if rawProduct != "" {
		store.Product = &storegen.Product{}
		if err := unmarshalJSON(rawProduct, store.Product, "product"); err != nil {
			return nil, err
		}
	}
	if rawConfig != "" {
		store.Config = &storegen.StoreConfig{}
		if err := unmarshalJSON(rawConfig, store.Config, "config"); err != nil {
			return nil, err
		}
	}
	if err := unmarshalJSON(rawDomains, &store.SuggestedDomains, "suggested_domains"); err != nil {
		return nil, err
	}

	if store.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if store.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &store, nil
}
