package credentials

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSealer(t *testing.T) *Sealer {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	s, err := NewSealerFromBase64(key)
	require.NoError(t, err)
	return s
}

func TestNewSealer(t *testing.T) {
	t.Run("valid key size", func(t *testing.T) {
		s, err := NewSealer(make([]byte, 32))
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("invalid key size", func(t *testing.T) {
		s, err := NewSealer(make([]byte, 16))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.Nil(t, s)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := NewSealerFromBase64("not-valid-base64!!!")
		assert.Error(t, err)
	})
}

func TestSealer_RoundTrip(t *testing.T) {
	s := testSealer(t)

	sealed, err := s.Seal("AIza-secret")
	require.NoError(t, err)
	assert.True(t, IsSealed(sealed))
	assert.NotContains(t, sealed, "AIza-secret")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "AIza-secret", opened)
}

func TestSealer_NonceIsRandom(t *testing.T) {
	s := testSealer(t)
	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSealer_Open(t *testing.T) {
	s := testSealer(t)

	t.Run("plain value passes through", func(t *testing.T) {
		v, err := s.Open("plain-key")
		require.NoError(t, err)
		assert.Equal(t, "plain-key", v)
	})

	t.Run("wrong key", func(t *testing.T) {
		sealed, err := testSealer(t).Seal("secret")
		require.NoError(t, err)
		_, err = s.Open(sealed)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := s.Open(sealedPrefix + base64.StdEncoding.EncodeToString([]byte("abc")))
		assert.ErrorIs(t, err, ErrSealedTooShort)
	})

	t.Run("tampered", func(t *testing.T) {
		sealed, err := s.Seal("secret")
		require.NoError(t, err)
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(sealed, sealedPrefix))
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xFF
		_, err = s.Open(sealedPrefix + base64.StdEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})
}

func TestNewSealerFromPassphrase(t *testing.T) {
	a, err := NewSealerFromPassphrase("correct horse")
	require.NoError(t, err)
	b, err := NewSealerFromPassphrase("correct horse")
	require.NoError(t, err)

	sealed, err := a.Seal("AIza-secret")
	require.NoError(t, err)
	opened, err := b.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "AIza-secret", opened)

	other, err := NewSealerFromPassphrase("battery staple")
	require.NoError(t, err)
	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = NewSealerFromPassphrase("")
	assert.Error(t, err)
}
