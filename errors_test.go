package caniuse_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/caniuse"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := caniuse.Errorf(caniuse.ENOTFOUND, "no matches found for query: %q", "grid")

	assert.Equal(t, caniuse.ENOTFOUND, caniuse.ErrorCode(err))
	assert.Equal(t, "no matches found for query: \"grid\"", caniuse.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, caniuse.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, caniuse.EINTERNAL, caniuse.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, caniuse.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", caniuse.ErrorMessage(errors.New("boom")))
}
