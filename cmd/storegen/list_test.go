package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/storegen"
	main "github.com/fwojciec/storegen/cmd/storegen"
	"github.com/fwojciec/storegen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stores with ID, status, subdomain and URL", func(t *testing.T) {
		t.Parallel()

		stores := &mock.StoreService{
			FindStoresFn: func(_ context.Context, _ storegen.StoreFilter) ([]*storegen.Store, error) {
				return []*storegen.Store{
					{
						ID:         "store-id-1",
						ProductURL: "https://example.com/products/kettle",
						Status:     storegen.StatusReady,
						Subdomain:  "store-ore-id-1",
						CreatedAt:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:         "store-id-2",
						ProductURL: "https://example.com/products/lamp",
						Status:     storegen.StatusPending,
						CreatedAt:  time.Date(2026, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Stores: stores,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "store-id-1")
		assert.Contains(t, output, "store-id-2")
		assert.Contains(t, output, "ready")
		assert.Contains(t, output, "pending")
		assert.Contains(t, output, "https://example.com/products/kettle")
		assert.Contains(t, output, "https://example.com/products/lamp")
	})

	t.Run("passes status filter", func(t *testing.T) {
		t.Parallel()

		var gotFilter storegen.StoreFilter
		stores := &mock.StoreService{
			FindStoresFn: func(_ context.Context, filter storegen.StoreFilter) ([]*storegen.Store, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Stores: stores,
		}

		cmd := &main.ListCmd{Status: "ready"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, storegen.StatusReady, *gotFilter.Status)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.ListCmd{Status: "done"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, storegen.EINVALID, storegen.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown status")
	})

	t.Run("shows helpful message when no stores exist", func(t *testing.T) {
		t.Parallel()

		stores := &mock.StoreService{
			FindStoresFn: func(_ context.Context, _ storegen.StoreFilter) ([]*storegen.Store, error) {
				return []*storegen.Store{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Stores: stores,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No stores")
	})

	t.Run("returns error when FindStores fails", func(t *testing.T) {
		t.Parallel()

		stores := &mock.StoreService{
			FindStoresFn: func(_ context.Context, _ storegen.StoreFilter) ([]*storegen.Store, error) {
				return nil, storegen.Errorf(storegen.EINTERNAL, "database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Stores: stores,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
