package cryptography

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"
	"time"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"

	"golang.org/x/crypto/blake2b"
)

// hasher implements crypto.Hasher. key is nil for unkeyed variants.
type hasher struct {
	algorithm string
	newHash   func(key []byte) (hash.Hash, error)
	key       keys.Loader
	logger    logger.Logger
	options
}

// NewBlake2bHasher creates an unkeyed BLAKE2b-512 hasher.
func NewBlake2bHasher(log logger.Logger, opts ...Option) (crypto.Hasher, error) {
	return newHasher(crypto.AlgorithmBlake2b, blake2b.New512, nil, log, opts), nil
}

// NewKeyedBlake2bHasher creates a BLAKE2b-512 hasher keyed with the key served by loader.
func NewKeyedBlake2bHasher(loader keys.Loader, log logger.Logger, opts ...Option) (crypto.Hasher, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: %s hasher requires a key loader", crypto.ErrConfiguration, crypto.AlgorithmBlake2bKeyed)
	}
	return newHasher(crypto.AlgorithmBlake2bKeyed, blake2b.New512, loader, log, opts), nil
}

// NewSHA256Hasher creates a SHA-256 hasher.
func NewSHA256Hasher(log logger.Logger, opts ...Option) (crypto.Hasher, error) {
	return newHasher(crypto.AlgorithmSHA256, func([]byte) (hash.Hash, error) { return sha256.New(), nil }, nil, log, opts), nil
}

// NewSHA512Hasher creates a SHA-512 hasher.
func NewSHA512Hasher(log logger.Logger, opts ...Option) (crypto.Hasher, error) {
	return newHasher(crypto.AlgorithmSHA512, func([]byte) (hash.Hash, error) { return sha512.New(), nil }, nil, log, opts), nil
}

// NewHasher creates the hasher for algorithm. loader is only used by the keyed variant.
func NewHasher(algorithm cryptoalg.HashAlgorithm, loader keys.Loader, log logger.Logger, opts ...Option) (crypto.Hasher, error) {
	switch algorithm {
	case cryptoalg.HashBlake2b:
		return NewBlake2bHasher(log, opts...)
	case cryptoalg.HashBlake2bKeyed:
		return NewKeyedBlake2bHasher(loader, log, opts...)
	case cryptoalg.HashSHA256:
		return NewSHA256Hasher(log, opts...)
	case cryptoalg.HashSHA512:
		return NewSHA512Hasher(log, opts...)
	default:
		return nil, fmt.Errorf("%w: hashing driver %q", crypto.ErrUnknownDriver, algorithm)
	}
}

func newHasher(algorithm string, newHash func([]byte) (hash.Hash, error), key keys.Loader, log logger.Logger, opts []Option) *hasher {
	return &hasher{
		algorithm: algorithm,
		newHash:   newHash,
		key:       key,
		logger:    logger.OrNop(log),
		options:   newOptions(opts),
	}
}

// Hash returns the text form of the digest of data, or "" on failure.
func (h *hasher) Hash(data []byte) (string, error) {
	digest, err := h.HashRaw(data)
	if err != nil {
		return "", err
	}
	return textEncoding.EncodeToString(digest), nil
}

// HashRaw returns the digest of data, or nil on failure.
func (h *hasher) HashRaw(data []byte) (_ []byte, err error) {
	defer h.record(crypto.OperationHashing, h.algorithm, time.Now(), &err)

	var key []byte
	if h.key != nil {
		if key, err = h.key.Key(); err != nil {
			return nil, err
		}
	}

	d, err := h.newHash(key)
	if err != nil {
		h.logger.Error(h.algorithm, " hashing failed: ", err)
		return nil, fmt.Errorf("%w: %s: %w", crypto.ErrHashFailed, h.algorithm, err)
	}
	d.Write(data)
	return d.Sum(nil), nil
}

// Equal compares two encoded digests in constant time. Empty digests never match.
func (h *hasher) Equal(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
