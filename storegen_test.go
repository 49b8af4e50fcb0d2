package storegen_test

import (
	"testing"

	"github.com/fwojciec/storegen"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := storegen.Errorf(storegen.ENOTFOUND, "store %q not found", "test")

	assert.Equal(t, storegen.ENOTFOUND, storegen.ErrorCode(err))
	assert.Equal(t, "store \"test\" not found", storegen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, storegen.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, storegen.ErrorMessage(nil))
}
