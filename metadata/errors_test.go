package metadata

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	envErr := EnvNotSetError{Name: EnvMetadataURIV4}
	fetchErr := FetchError{Op: "failed to fetch container metadata", Err: io.ErrUnexpectedEOF}

	assert.True(t, IsEnvNotSetError(envErr))
	assert.False(t, IsEnvNotSetError(fetchErr))
	assert.False(t, IsEnvNotSetError(nil))

	assert.True(t, IsFetchError(fetchErr))
	assert.False(t, IsFetchError(envErr))
	assert.False(t, IsFetchError(nil))

	assert.Contains(t, envErr.Error(), EnvMetadataURIV4)
	assert.Contains(t, fetchErr.Error(), "unexpected EOF")
}

func TestFetchErrorCause(t *testing.T) {
	err := FetchError{Op: "failed to parse container metadata", Err: io.ErrUnexpectedEOF}
	assert.Equal(t, io.ErrUnexpectedEOF, err.Cause())
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
