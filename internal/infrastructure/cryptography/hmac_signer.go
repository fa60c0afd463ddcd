package cryptography

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"time"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"

	"golang.org/x/crypto/blake2b"
)

// hmacSigner implements crypto.Signer with a keyed MAC over a symmetric key.
type hmacSigner struct {
	algorithm string
	size      int
	newMAC    func(key []byte) (hash.Hash, error)
	loader    keys.Loader
	logger    logger.Logger
	options
}

// NewHmacSHA256Signer creates an HMAC-SHA256 signer.
func NewHmacSHA256Signer(loader keys.Loader, log logger.Logger, opts ...Option) (crypto.Signer, error) {
	return newHmacSigner(crypto.AlgorithmHmacSHA256, sha256.Size, func(key []byte) (hash.Hash, error) {
		return hmac.New(sha256.New, key), nil
	}, loader, log, opts)
}

// NewHmacSHA512Signer creates an HMAC-SHA512 signer.
func NewHmacSHA512Signer(loader keys.Loader, log logger.Logger, opts ...Option) (crypto.Signer, error) {
	return newHmacSigner(crypto.AlgorithmHmacSHA512, sha512.Size, func(key []byte) (hash.Hash, error) {
		return hmac.New(sha512.New, key), nil
	}, loader, log, opts)
}

// NewHmacBlake2bSigner creates a signer using BLAKE2b-512 in keyed mode as the MAC.
func NewHmacBlake2bSigner(loader keys.Loader, log logger.Logger, opts ...Option) (crypto.Signer, error) {
	return newHmacSigner(crypto.AlgorithmHmacBlake2b, blake2b.Size, blake2b.New512, loader, log, opts)
}

// NewSigner creates the symmetric signer for algorithm.
func NewSigner(algorithm cryptoalg.SigningAlgorithm, loader keys.Loader, log logger.Logger, opts ...Option) (crypto.Signer, error) {
	switch algorithm {
	case cryptoalg.SigningHmacSHA256:
		return NewHmacSHA256Signer(loader, log, opts...)
	case cryptoalg.SigningHmacSHA512:
		return NewHmacSHA512Signer(loader, log, opts...)
	case cryptoalg.SigningHmacBlake2b:
		return NewHmacBlake2bSigner(loader, log, opts...)
	default:
		return nil, fmt.Errorf("%w: signing driver %q", crypto.ErrUnknownDriver, algorithm)
	}
}

func newHmacSigner(algorithm string, size int, newMAC func([]byte) (hash.Hash, error), loader keys.Loader, log logger.Logger, opts []Option) (*hmacSigner, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: %s signer requires a key loader", crypto.ErrConfiguration, algorithm)
	}

	return &hmacSigner{
		algorithm: algorithm,
		size:      size,
		newMAC:    newMAC,
		loader:    loader,
		logger:    logger.OrNop(log),
		options:   newOptions(opts),
	}, nil
}

// Sign returns the text form of the MAC of message.
func (s *hmacSigner) Sign(message []byte) (string, error) {
	mac, err := s.SignRaw(message)
	if err != nil {
		return "", err
	}
	return textEncoding.EncodeToString(mac), nil
}

// SignRaw returns the MAC of message.
func (s *hmacSigner) SignRaw(message []byte) (_ []byte, err error) {
	defer s.record(crypto.OperationSigning, s.algorithm, time.Now(), &err)
	return s.mac(message)
}

// Verify checks an encoded MAC. A signature that is not valid base64url verifies false.
func (s *hmacSigner) Verify(message []byte, signature string) (bool, error) {
	raw, err := textEncoding.DecodeString(signature)
	if err != nil {
		return false, nil
	}
	return s.VerifyRaw(message, raw)
}

// VerifyRaw checks a raw MAC in constant time. A signature of the wrong length verifies false.
func (s *hmacSigner) VerifyRaw(message, signature []byte) (_ bool, err error) {
	defer s.record(crypto.OperationVerification, s.algorithm, time.Now(), &err)

	expected, err := s.mac(message)
	if err != nil {
		return false, err
	}
	if len(signature) != s.size {
		return false, nil
	}
	return hmac.Equal(expected, signature), nil
}

func (s *hmacSigner) mac(message []byte) ([]byte, error) {
	key, err := s.loader.Key()
	if err != nil {
		return nil, err
	}

	h, err := s.newMAC(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", crypto.ErrInvalidKey, s.algorithm, err)
	}
	h.Write(message)
	return h.Sum(nil), nil
}
