package testutil

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-services/internal/domain/keys"

	"github.com/stretchr/testify/require"
)

// InMemoryKeyLoader serves a fixed symmetric key.
type InMemoryKeyLoader struct {
	key []byte
	err error
}

// NewInMemoryKeyLoader decodes a base64 key, with or without the "base64:" prefix.
func NewInMemoryKeyLoader(t *testing.T, encoded string) *InMemoryKeyLoader {
	t.Helper()

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(encoded, "base64:"))
	require.NoError(t, err)
	return &InMemoryKeyLoader{key: key}
}

// NewRandomKeyLoader serves a random key of size bytes.
func NewRandomKeyLoader(t *testing.T, size int) *InMemoryKeyLoader {
	t.Helper()

	key := make([]byte, size)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return &InMemoryKeyLoader{key: key}
}

// NewFailingKeyLoader always fails with err.
func NewFailingKeyLoader(err error) *InMemoryKeyLoader {
	return &InMemoryKeyLoader{err: err}
}

// Key returns the configured key or error.
func (l *InMemoryKeyLoader) Key() ([]byte, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.key, nil
}

// InMemoryPairLoader serves a fixed Ed25519 key pair.
type InMemoryPairLoader struct {
	pair keys.KeyPair
	err  error
}

// NewRandomPairLoader serves a freshly generated key pair.
func NewRandomPairLoader(t *testing.T) *InMemoryPairLoader {
	t.Helper()

	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return &InMemoryPairLoader{pair: keys.KeyPair{Public: public, Private: private}}
}

// NewFailingPairLoader always fails with err.
func NewFailingPairLoader(err error) *InMemoryPairLoader {
	return &InMemoryPairLoader{err: err}
}

// KeyPair returns the configured key pair or error.
func (l *InMemoryPairLoader) KeyPair() (keys.KeyPair, error) {
	if l.err != nil {
		return keys.KeyPair{}, l.err
	}
	return l.pair, nil
}
