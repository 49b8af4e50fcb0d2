package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/storegen"
	main "github.com/fwojciec/storegen/cmd/storegen"
	"github.com/fwojciec/storegen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates store record with --no-generate", func(t *testing.T) {
		t.Parallel()

		var created *storegen.Store
		stores := &mock.StoreService{
			CreateStoreFn: func(_ context.Context, store *storegen.Store) error {
				store.ID = "new-store-id"
				store.Status = storegen.StatusPending
				created = store
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Stores: stores,
		}

		cmd := &main.CreateCmd{URL: "https://example.com/products/kettle", NoGenerate: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "https://example.com/products/kettle", created.ProductURL)
		assert.Contains(t, stdout.String(), "Created store new-store-id")
		assert.Contains(t, stdout.String(), "storegen generate new-store-id")
	})

	t.Run("returns error when create fails", func(t *testing.T) {
		t.Parallel()

		stores := &mock.StoreService{
			CreateStoreFn: func(_ context.Context, store *storegen.Store) error {
				return storegen.Errorf(storegen.EINVALID, "store product URL required")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Stores: stores,
		}

		cmd := &main.CreateCmd{NoGenerate: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "store product URL required")
	})
}
