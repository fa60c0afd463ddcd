//go:build unit
// +build unit

package keys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/pkg/config"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"
	"github.com/MGTheTrain/crypto-services/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEdDSAKey(path string) *EdDSASignerKey {
	return NewEdDSASignerKey(config.MapProvider{config.KeyPathEdDSA: path}, logger.NewNopLogger())
}

func TestEdDSASignerKey_Generate(t *testing.T) {
	k := NewEdDSASignerKey(nil, logger.NewNopLogger())

	content, err := k.Generate()
	require.NoError(t, err)
	require.Len(t, content, keyPairFileSize)

	lines := strings.Split(content, "\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 2*ed25519.PublicKeySize)
	assert.Len(t, lines[1], 2*ed25519.PrivateKeySize)

	public, err := hex.DecodeString(lines[0])
	require.NoError(t, err)
	private, err := hex.DecodeString(lines[1])
	require.NoError(t, err)
	assert.Equal(t, public, []byte(ed25519.PrivateKey(private).Public().(ed25519.PublicKey)))

	other, err := k.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, content, other)
}

func TestEdDSASignerKey_GenerateToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage", "keys", "eddsa.key")
	k := newEdDSAKey(path)

	require.NoError(t, k.GenerateToConfigured())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(keyPairFileSize), info.Size())

	pair, err := k.KeyPair()
	require.NoError(t, err)
	require.Len(t, pair.Public, ed25519.PublicKeySize)
	require.Len(t, pair.Private, ed25519.PrivateKeySize)

	msg := []byte("round trip")
	priv := append(ed25519.PrivateKey(nil), pair.Private...)
	sig := ed25519.Sign(priv, msg)
	assert.True(t, ed25519.Verify(pair.Public, msg, sig))
}

func TestEdDSASignerKey_GenerateToConfiguredWithoutPath(t *testing.T) {
	k := NewEdDSASignerKey(config.MapProvider{}, logger.NewNopLogger())

	err := k.GenerateToConfigured()
	require.ErrorIs(t, err, crypto.ErrKeyNotSet)
	assert.True(t, crypto.IsConfigurationError(err))
}

func TestEdDSASignerKey_KeyPairErrors(t *testing.T) {
	valid, err := NewEdDSASignerKey(nil, nil).Generate()
	require.NoError(t, err)
	lines := strings.Split(valid, "\n")

	other, err := NewEdDSASignerKey(nil, nil).Generate()
	require.NoError(t, err)
	otherLines := strings.Split(other, "\n")

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty file", content: "", wantErr: crypto.ErrKeyNotSet},
		{name: "trailing newline", content: valid + "\n", wantErr: crypto.ErrInvalidKey},
		{name: "trailing data", content: valid + "\nextra", wantErr: crypto.ErrInvalidKey},
		{name: "single line", content: lines[0], wantErr: crypto.ErrInvalidKey},
		{name: "truncated private key", content: lines[0] + "\n" + lines[1][:10], wantErr: crypto.ErrInvalidKey},
		{name: "non hex", content: strings.Repeat("z", 64) + "\n" + lines[1], wantErr: crypto.ErrInvalidKey},
		{name: "mismatched pair", content: otherLines[0] + "\n" + lines[1], wantErr: crypto.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.CreateTempFile(t, "eddsa.key", []byte(tt.content))

			_, err := newEdDSAKey(path).KeyPair()
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, crypto.IsConfigurationError(err))
		})
	}
}

func TestEdDSASignerKey_AcceptsCRLF(t *testing.T) {
	valid, err := NewEdDSASignerKey(nil, nil).Generate()
	require.NoError(t, err)

	path := testutil.CreateTempFile(t, "eddsa.key", []byte(strings.Replace(valid, "\n", "\r\n", 1)))
	_, err = newEdDSAKey(path).KeyPair()
	require.NoError(t, err)
}

func TestEdDSASignerKey_MissingSource(t *testing.T) {
	_, err := NewEdDSASignerKey(config.MapProvider{}, nil).KeyPair()
	require.ErrorIs(t, err, crypto.ErrKeyNotSet)

	_, err = newEdDSAKey(filepath.Join(t.TempDir(), "absent.key")).KeyPair()
	require.ErrorIs(t, err, crypto.ErrIO)
	assert.True(t, crypto.IsIOError(err))
}

func TestEdDSASignerKey_ResolvesSourceOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eddsa.key")
	require.NoError(t, newEdDSAKey(path).GenerateTo(path))

	provider := testutil.NewCountingProvider(map[string]interface{}{config.KeyPathEdDSA: path})
	k := NewEdDSASignerKey(provider, logger.NewNopLogger())

	var wg sync.WaitGroup
	publics := make([][]byte, 16)
	for i := range publics {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pair, err := k.KeyPair()
			if err == nil {
				publics[i] = append([]byte(nil), pair.Public...)
			}
		}(i)
	}
	wg.Wait()

	for _, p := range publics {
		assert.True(t, bytes.Equal(publics[0], p))
	}
	assert.Equal(t, int64(1), provider.Calls(config.KeyPathEdDSA))
}

func TestEdDSASignerKey_ConcurrentGenerateAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eddsa.key")
	generator := NewEdDSASignerKey(nil, logger.NewNopLogger())
	require.NoError(t, generator.GenerateTo(path))

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := generator.GenerateTo(path); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			// The shared lock keeps readers out of a half-written file.
			if _, err := newEdDSAKey(path).KeyPair(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	_, err := newEdDSAKey(path).KeyPair()
	require.NoError(t, err)
}

func TestEdDSASignerKey_Destroy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eddsa.key")
	k := newEdDSAKey(path)
	require.NoError(t, k.GenerateTo(path))

	_, err := k.KeyPair()
	require.NoError(t, err)

	k.Destroy()
	_, err = k.KeyPair()
	assert.True(t, crypto.IsConfigurationError(err))
}
