package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/storegen"
	"github.com/fwojciec/storegen/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestStore(t *testing.T, svc *sqlite.StoreService) *storegen.Store {
	t.Helper()
	store := &storegen.Store{ProductURL: "https://example.com/products/kettle"}
	require.NoError(t, svc.CreateStore(context.Background(), store))
	return store
}

func TestStoreService_CreateStore(t *testing.T) {
	t.Parallel()

	t.Run("creates store with generated ID and pending status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := &storegen.Store{ProductURL: "https://example.com/products/kettle"}

		err := svc.CreateStore(ctx, store)
		require.NoError(t, err)

		assert.NotEmpty(t, store.ID, "ID should be generated")
		assert.Equal(t, storegen.StatusPending, store.Status)
		assert.False(t, store.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, store.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for missing product URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		err := svc.CreateStore(context.Background(), &storegen.Store{})
		require.Error(t, err)
		assert.Equal(t, storegen.EINVALID, storegen.ErrorCode(err))
	})
}

func TestStoreService_FindStoreByID(t *testing.T) {
	t.Parallel()

	t.Run("returns store when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		store := createTestStore(t, svc)

		found, err := svc.FindStoreByID(context.Background(), store.ID)
		require.NoError(t, err)
		assert.Equal(t, store.ID, found.ID)
		assert.Equal(t, store.ProductURL, found.ProductURL)
		assert.Equal(t, storegen.StatusPending, found.Status)
		assert.Nil(t, found.Product)
		assert.Nil(t, found.Config)
		assert.False(t, found.Published)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		_, err := svc.FindStoreByID(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, storegen.ENOTFOUND, storegen.ErrorCode(err))
	})
}

func TestStoreService_BeginGeneration(t *testing.T) {
	t.Parallel()

	t.Run("claims a pending store", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)

		require.NoError(t, svc.BeginGeneration(ctx, store.ID))

		found, err := svc.FindStoreByID(ctx, store.ID)
		require.NoError(t, err)
		assert.Equal(t, storegen.StatusScraping, found.Status)
	})

	t.Run("returns ECONFLICT for an in-flight store", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)
		require.NoError(t, svc.BeginGeneration(ctx, store.ID))

		err := svc.BeginGeneration(ctx, store.ID)
		require.Error(t, err)
		assert.Equal(t, storegen.ECONFLICT, storegen.ErrorCode(err))
	})

	t.Run("reclaims a store in error status and clears the message", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)
		require.NoError(t, svc.BeginGeneration(ctx, store.ID))
		require.NoError(t, svc.UpdateStatus(ctx, store.ID, storegen.StatusError, "boom"))

		require.NoError(t, svc.BeginGeneration(ctx, store.ID))

		found, err := svc.FindStoreByID(ctx, store.ID)
		require.NoError(t, err)
		assert.Equal(t, storegen.StatusScraping, found.Status)
		assert.Empty(t, found.ErrorMessage)
	})

	t.Run("returns ENOTFOUND for missing store", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		err := svc.BeginGeneration(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, storegen.ENOTFOUND, storegen.ErrorCode(err))
	})
}

func TestStoreService_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("writes status and error message", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)

		require.NoError(t, svc.UpdateStatus(ctx, store.ID, storegen.StatusError, "fetch failed"))

		found, err := svc.FindStoreByID(ctx, store.ID)
		require.NoError(t, err)
		assert.Equal(t, storegen.StatusError, found.Status)
		assert.Equal(t, "fetch failed", found.ErrorMessage)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		store := createTestStore(t, svc)

		err := svc.UpdateStatus(context.Background(), store.ID, storegen.Status("bogus"), "")
		require.Error(t, err)
		assert.Equal(t, storegen.EINVALID, storegen.ErrorCode(err))
	})
}

func TestStoreService_SaveProductData(t *testing.T) {
	t.Parallel()

	t.Run("persists product and advances status to generating", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)

		product := &storegen.Product{
			Name:     "Electric Kettle",
			Price:    "39.99",
			Currency: "USD",
			Images:   []string{"https://cdn.example.com/product/kettle.jpg"},
			Features: []string{"Boils in 90 seconds"},
		}
		require.NoError(t, svc.SaveProductData(ctx, store.ID, product))

		found, err := svc.FindStoreByID(ctx, store.ID)
		require.NoError(t, err)
		assert.Equal(t, storegen.StatusGenerating, found.Status)
		require.NotNil(t, found.Product)
		assert.Equal(t, "Electric Kettle", found.Product.Name)
		assert.Equal(t, []string{"https://cdn.example.com/product/kettle.jpg"}, found.Product.Images)
	})

	t.Run("returns ENOTFOUND for missing store", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		err := svc.SaveProductData(context.Background(), "nonexistent-id", &storegen.Product{})
		require.Error(t, err)
		assert.Equal(t, storegen.ENOTFOUND, storegen.ErrorCode(err))
	})
}

func TestStoreService_SaveStoreConfig(t *testing.T) {
	t.Parallel()

	t.Run("persists config, assigns subdomain and marks ready", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)

		config := &storegen.StoreConfig{
			StoreName: "Kettle Haven",
			Tagline:   "Boil better.",
			Theme:     storegen.ThemeMinimal,
		}
		domains := []string{"kettlehaven.com", "kettlehaven.shop"}

		require.NoError(t, svc.SaveStoreConfig(ctx, store.ID, config, domains, ""))

		found, err := svc.FindStoreByID(ctx, store.ID)
		require.NoError(t, err)
		assert.Equal(t, storegen.StatusReady, found.Status)
		assert.Equal(t, storegen.DeriveSubdomain(store.ID), found.Subdomain)
		assert.False(t, found.Published)
		assert.Equal(t, domains, found.SuggestedDomains)
		require.NotNil(t, found.Config)
		assert.Equal(t, "Kettle Haven", found.Config.StoreName)
	})

	t.Run("store is findable by assigned subdomain", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)
		require.NoError(t, svc.SaveStoreConfig(ctx, store.ID, &storegen.StoreConfig{StoreName: "X"}, nil, ""))

		found, err := svc.FindStoreBySubdomain(ctx, storegen.DeriveSubdomain(store.ID))
		require.NoError(t, err)
		assert.Equal(t, store.ID, found.ID)
	})
}

func TestStoreService_FindStores(t *testing.T) {
	t.Parallel()

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		a := createTestStore(t, svc)
		createTestStore(t, svc)
		require.NoError(t, svc.BeginGeneration(ctx, a.ID))

		scraping := storegen.StatusScraping
		stores, err := svc.FindStores(ctx, storegen.StoreFilter{Status: &scraping})
		require.NoError(t, err)
		require.Len(t, stores, 1)
		assert.Equal(t, a.ID, stores[0].ID)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		for i := 0; i < 3; i++ {
			createTestStore(t, svc)
		}

		stores, err := svc.FindStores(context.Background(), storegen.StoreFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, stores, 2)
	})
}

func TestStoreService_SetPublished(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewStoreService(db)
	ctx := context.Background()

	store := createTestStore(t, svc)

	require.NoError(t, svc.SetPublished(ctx, store.ID, true))

	found, err := svc.FindStoreByID(ctx, store.ID)
	require.NoError(t, err)
	assert.True(t, found.Published)
}

func TestStoreService_SetCustomDomain(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewStoreService(db)
	ctx := context.Background()

	store := createTestStore(t, svc)

	require.NoError(t, svc.SetCustomDomain(ctx, store.ID, "kettlehaven.com"))

	found, err := svc.FindStoreByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "kettlehaven.com", found.CustomDomain)
}

func TestStoreService_DeleteStore(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing store", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)
		ctx := context.Background()

		store := createTestStore(t, svc)

		require.NoError(t, svc.DeleteStore(ctx, store.ID))

		_, err := svc.FindStoreByID(ctx, store.ID)
		assert.Equal(t, storegen.ENOTFOUND, storegen.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when store missing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewStoreService(db)

		err := svc.DeleteStore(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, storegen.ENOTFOUND, storegen.ErrorCode(err))
	})
}

func TestStoreService_SavePageHash(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewStoreService(db)
	ctx := context.Background()

	store := createTestStore(t, svc)

	require.NoError(t, svc.SavePageHash(ctx, store.ID, "cafebabe12345678"))

	found, err := svc.FindStoreByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "cafebabe12345678", found.PageHash)
}
