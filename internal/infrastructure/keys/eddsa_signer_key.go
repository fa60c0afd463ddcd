package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	domainKeys "github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/pkg/config"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"

	"github.com/awnumar/memguard"
)

const (
	// keyPairSize is the cached layout: public key followed by private key.
	keyPairSize = ed25519.PublicKeySize + ed25519.PrivateKeySize

	// keyPairFileSize is hex(public) + "\n" + hex(private).
	keyPairFileSize = 2*ed25519.PublicKeySize + 1 + 2*ed25519.PrivateKeySize
)

// EdDSASignerKey loads and generates the Ed25519 key pair stored in the file named by
// the "crypto.signing.keys.eddsa" configuration value.
//
// The file holds two hex lines: the public key, then the private key, with no trailing data.
type EdDSASignerKey struct {
	provider config.Provider
	logger   logger.Logger

	once      sync.Once
	buf       *memguard.LockedBuffer
	err       error
	destroyed atomic.Bool
}

// Compile-time interface checks.
var (
	_ domainKeys.PairLoader = (*EdDSASignerKey)(nil)
	_ domainKeys.Generator  = (*EdDSASignerKey)(nil)
)

// NewEdDSASignerKey creates the key-pair loader and generator.
func NewEdDSASignerKey(provider config.Provider, log logger.Logger) *EdDSASignerKey {
	return &EdDSASignerKey{
		provider: provider,
		logger:   logger.OrNop(log),
	}
}

// KeyPair returns the cached key pair, reading the key file under a shared lock on first use.
func (k *EdDSASignerKey) KeyPair() (domainKeys.KeyPair, error) {
	k.once.Do(func() {
		var raw []byte
		raw, k.err = k.load()
		if k.err == nil {
			k.buf = sealBuffer(raw)
			k.logger.Debug("Loaded EdDSA key pair")
		}
	})
	if k.err != nil {
		return domainKeys.KeyPair{}, k.err
	}
	if k.destroyed.Load() {
		return domainKeys.KeyPair{}, fmt.Errorf("%w: EdDSA key pair was destroyed", crypto.ErrConfiguration)
	}

	b := k.buf.Bytes()
	return domainKeys.KeyPair{
		Public:  ed25519.PublicKey(b[:ed25519.PublicKeySize:ed25519.PublicKeySize]),
		Private: ed25519.PrivateKey(b[ed25519.PublicKeySize:keyPairSize:keyPairSize]),
	}, nil
}

// Destroy wipes the cached key pair. It must not race with KeyPair.
func (k *EdDSASignerKey) Destroy() {
	if k.destroyed.Swap(true) {
		return
	}
	if k.buf != nil {
		k.buf.Destroy()
	}
}

func (k *EdDSASignerKey) load() ([]byte, error) {
	path, err := configuredString(k.provider, config.KeyPathEdDSA)
	if err != nil {
		return nil, err
	}

	content, err := readKeyFile(path, keyPairFileSize+1, k.logger)
	if err != nil {
		return nil, err
	}
	defer wipe(content)

	return parseKeyPair(content)
}

// parseKeyPair decodes the key file content into public || private.
func parseKeyPair(content []byte) ([]byte, error) {
	pubHex, privHex, ok := bytes.Cut(content, []byte("\n"))
	if !ok {
		return nil, fmt.Errorf("%w: key pair file has no line terminator", crypto.ErrInvalidKey)
	}
	pubHex = bytes.TrimSuffix(pubHex, []byte("\r"))

	if len(pubHex) != hex.EncodedLen(ed25519.PublicKeySize) || len(privHex) != hex.EncodedLen(ed25519.PrivateKeySize) {
		return nil, fmt.Errorf("%w: key pair file has invalid field lengths", crypto.ErrInvalidKey)
	}

	pair := make([]byte, keyPairSize)
	if _, err := hex.Decode(pair[:ed25519.PublicKeySize], pubHex); err != nil {
		wipe(pair)
		return nil, fmt.Errorf("%w: public key is not valid hex", crypto.ErrInvalidKey)
	}
	if _, err := hex.Decode(pair[ed25519.PublicKeySize:], privHex); err != nil {
		wipe(pair)
		return nil, fmt.Errorf("%w: private key is not valid hex", crypto.ErrInvalidKey)
	}

	// The private key carries its public half in the trailing 32 bytes.
	if !bytes.Equal(pair[:ed25519.PublicKeySize], pair[keyPairSize-ed25519.PublicKeySize:]) {
		wipe(pair)
		return nil, fmt.Errorf("%w: public key does not match private key", crypto.ErrInvalidKey)
	}

	return pair, nil
}

// Generate returns a fresh key pair in the key file format without persisting it.
func (k *EdDSASignerKey) Generate() (string, error) {
	payload, err := newKeyPairPayload()
	if err != nil {
		return "", err
	}
	defer wipe(payload)

	k.logger.Info("Generated EdDSA key pair")
	return string(payload), nil
}

// GenerateTo writes a fresh key pair to path under an exclusive lock.
func (k *EdDSASignerKey) GenerateTo(path string) error {
	payload, err := newKeyPairPayload()
	if err != nil {
		return err
	}
	defer wipe(payload)

	if err := writeKeyFile(path, payload, k.logger); err != nil {
		return err
	}

	k.logger.Info("Saved EdDSA key pair to ", path)
	return nil
}

// GenerateToConfigured writes a fresh key pair to the configured key file path.
func (k *EdDSASignerKey) GenerateToConfigured() error {
	path, err := configuredString(k.provider, config.KeyPathEdDSA)
	if err != nil {
		return fmt.Errorf("file for EdDSA signer is not set: %w", err)
	}
	return k.GenerateTo(path)
}

// newKeyPairPayload generates a key pair and composes the key file content.
// Every intermediate buffer is wiped before returning; the caller wipes the payload.
func newKeyPairPayload() ([]byte, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate EdDSA key pair: %w", crypto.ErrCrypto, err)
	}
	defer wipe(public, private)

	publicHex := make([]byte, hex.EncodedLen(len(public)))
	hex.Encode(publicHex, public)
	defer wipe(publicHex)

	privateHex := make([]byte, hex.EncodedLen(len(private)))
	hex.Encode(privateHex, private)
	defer wipe(privateHex)

	payload := make([]byte, 0, keyPairFileSize)
	payload = append(payload, publicHex...)
	payload = append(payload, '\n')
	payload = append(payload, privateHex...)

	return payload, nil
}
