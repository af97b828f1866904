package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalicorera/storefront/storage"
)

func TestPutGetDelete(t *testing.T) {
	s := NewStore()

	_, err := s.Get("token")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.Put("token", []byte("abc")))
	got, err := s.Get("token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	require.NoError(t, s.Delete("token"))
	_, err = s.Get("token")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.NoError(t, s.Delete("token"))
}

func TestValueIsolation(t *testing.T) {
	s := NewStore()

	in := []byte("original")
	require.NoError(t, s.Put("k", in))
	in[0] = 'X'

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	// Mutating the returned slice must not affect the stored copy.
	got[0] = 'Y'
	again, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
