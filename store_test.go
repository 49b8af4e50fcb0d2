package storegen_test

import (
	"testing"

	"github.com/fwojciec/storegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires product URL", func(t *testing.T) {
		t.Parallel()

		store := &storegen.Store{}
		err := store.Validate()

		require.Error(t, err)
		assert.Equal(t, storegen.EINVALID, storegen.ErrorCode(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		store := &storegen.Store{ProductURL: "https://example.com/p/1", Status: "launching"}
		err := store.Validate()

		require.Error(t, err)
		assert.Equal(t, storegen.EINVALID, storegen.ErrorCode(err))
	})

	t.Run("accepts valid store", func(t *testing.T) {
		t.Parallel()

		store := &storegen.Store{ProductURL: "https://example.com/p/1", Status: storegen.StatusPending}
		require.NoError(t, store.Validate())
	})
}

func TestStatus_Startable(t *testing.T) {
	t.Parallel()

	assert.True(t, storegen.StatusPending.Startable())
	assert.True(t, storegen.StatusReady.Startable())
	assert.True(t, storegen.StatusError.Startable())
	assert.False(t, storegen.StatusScraping.Startable())
	assert.False(t, storegen.StatusAnalyzing.Startable())
	assert.False(t, storegen.StatusGenerating.Startable())
}

func TestDeriveSubdomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "store-89abcdef", storegen.DeriveSubdomain("0123456789abcdef"))
	assert.Equal(t, "store-abc", storegen.DeriveSubdomain("abc"))
}
