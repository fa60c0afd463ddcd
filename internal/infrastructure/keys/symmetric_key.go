package keys

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	domainKeys "github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/pkg/config"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"

	"github.com/awnumar/memguard"
)

const (
	// base64Prefix marks a base64 encoded key value, e.g. "base64:AAAA...".
	base64Prefix = "base64:"

	// filePrefix marks a key value that names a file holding the base64 key, e.g. "file:/etc/app.key".
	filePrefix = "file:"

	// maxSymmetricKeyFileSize bounds the content read from a symmetric key file.
	maxSymmetricKeyFileSize = 1024
)

// SymmetricKey loads a fixed-length secret from a configuration value.
// The value is either the base64 key itself (optionally prefixed "base64:")
// or "file:<path>" naming a file that holds it.
// Key is safe for concurrent use; the source is resolved once.
type SymmetricKey struct {
	provider config.Provider
	path     string
	size     int
	logger   logger.Logger

	once      sync.Once
	buf       *memguard.LockedBuffer
	err       error
	destroyed atomic.Bool
}

// Compile-time interface check.
var _ domainKeys.Loader = (*SymmetricKey)(nil)

// NewSymmetricKey creates a loader for the key stored under the dotted configuration path.
func NewSymmetricKey(provider config.Provider, path string, size int, log logger.Logger) *SymmetricKey {
	return &SymmetricKey{
		provider: provider,
		path:     path,
		size:     size,
		logger:   logger.OrNop(log),
	}
}

// NewAppKey creates the loader of the encryption key.
func NewAppKey(provider config.Provider, log logger.Logger) *SymmetricKey {
	return NewSymmetricKey(provider, config.KeyPathApp, crypto.SymmetricKeySize, log)
}

// NewHashingKey creates the loader of the keyed hashing secret.
func NewHashingKey(provider config.Provider, log logger.Logger) *SymmetricKey {
	return NewSymmetricKey(provider, config.KeyPathHashing, crypto.SymmetricKeySize, log)
}

// NewHmacKey creates the loader of the symmetric signing secret.
func NewHmacKey(provider config.Provider, log logger.Logger) *SymmetricKey {
	return NewSymmetricKey(provider, config.KeyPathHmac, crypto.SymmetricKeySize, log)
}

// Key returns the cached key, resolving the configured source on first use.
// A failed first resolution is returned on every later call as well.
func (k *SymmetricKey) Key() ([]byte, error) {
	k.once.Do(func() {
		var raw []byte
		raw, k.err = k.load()
		if k.err == nil {
			k.buf = sealBuffer(raw)
			k.logger.Debug("Loaded symmetric key ", k.path)
		}
	})
	if k.err != nil {
		return nil, k.err
	}
	if k.destroyed.Load() {
		return nil, fmt.Errorf("%w: key %s was destroyed", crypto.ErrConfiguration, k.path)
	}
	return k.buf.Bytes(), nil
}

// Destroy wipes the cached key. It must not race with Key.
func (k *SymmetricKey) Destroy() {
	if k.destroyed.Swap(true) {
		return
	}
	if k.buf != nil {
		k.buf.Destroy()
	}
}

func (k *SymmetricKey) load() ([]byte, error) {
	value, err := configuredString(k.provider, k.path)
	if err != nil {
		return nil, err
	}

	src := []byte(value)
	defer wipe(src)

	if rest, ok := bytes.CutPrefix(src, []byte(filePrefix)); ok {
		content, err := readKeyFile(string(rest), maxSymmetricKeyFileSize, k.logger)
		if err != nil {
			return nil, err
		}
		defer wipe(content)
		src = content
	}

	return decodeSymmetricKey(src, k.size)
}

// decodeSymmetricKey decodes a base64 key of exactly size bytes. The input is not modified.
func decodeSymmetricKey(src []byte, size int) ([]byte, error) {
	src = bytes.TrimSpace(src)
	src = bytes.TrimPrefix(src, []byte(base64Prefix))

	key := make([]byte, base64.StdEncoding.DecodedLen(len(src)))
	n, err := base64.StdEncoding.Decode(key, src)
	if err != nil {
		wipe(key)
		return nil, fmt.Errorf("%w: key is not valid base64", crypto.ErrInvalidKey)
	}
	if n != size {
		wipe(key)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", crypto.ErrInvalidKey, n, size)
	}
	return key[:n], nil
}

// configuredString resolves a non-empty string value, failing before any I/O when it is unset.
func configuredString(provider config.Provider, path string) (string, error) {
	if provider == nil {
		return "", fmt.Errorf("%w: %s", crypto.ErrKeyNotSet, path)
	}

	switch v := provider.Get(path).(type) {
	case nil:
		return "", fmt.Errorf("%w: %s", crypto.ErrKeyNotSet, path)
	case string:
		if strings.TrimSpace(v) == "" {
			return "", fmt.Errorf("%w: %s", crypto.ErrKeyNotSet, path)
		}
		return v, nil
	default:
		return "", fmt.Errorf("%w: %s must be a string, got %T", crypto.ErrInvalidKey, path, v)
	}
}
