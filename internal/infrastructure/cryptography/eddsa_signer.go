package cryptography

import (
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"

	"github.com/awnumar/memguard"
)

// eddsaSigner implements crypto.PublicKeySigner with Ed25519.
type eddsaSigner struct {
	loader keys.PairLoader
	logger logger.Logger
	options
}

// NewEdDSASigner creates an Ed25519 signer over the key pair served by loader.
func NewEdDSASigner(loader keys.PairLoader, log logger.Logger, opts ...Option) (crypto.PublicKeySigner, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: %s signer requires a key pair loader", crypto.ErrConfiguration, crypto.AlgorithmEdDSA)
	}

	return &eddsaSigner{
		loader:  loader,
		logger:  logger.OrNop(log),
		options: newOptions(opts),
	}, nil
}

// Sign returns the text form of the Ed25519 signature of message.
func (s *eddsaSigner) Sign(message []byte) (string, error) {
	sig, err := s.SignRaw(message)
	if err != nil {
		return "", err
	}
	return textEncoding.EncodeToString(sig), nil
}

// SignRaw signs message with the private key.
func (s *eddsaSigner) SignRaw(message []byte) (_ []byte, err error) {
	defer s.record(crypto.OperationSigning, crypto.AlgorithmEdDSA, time.Now(), &err)

	pair, err := s.loader.KeyPair()
	if err != nil {
		return nil, err
	}
	if len(pair.Private) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: EdDSA private key has %d bytes", crypto.ErrInvalidKey, len(pair.Private))
	}

	// ed25519.Sign caches on the key through a weak pointer, which is invalid for locked memory
	// outside the Go heap, so it signs with a heap copy wiped after the call.
	priv := append(ed25519.PrivateKey(nil), pair.Private...)
	defer memguard.WipeBytes(priv)

	sig := ed25519.Sign(priv, message)
	s.logger.Debug("EdDSA signing succeeded")
	return sig, nil
}

// Verify checks an encoded signature produced by Sign.
func (s *eddsaSigner) Verify(message []byte, signature string) (bool, error) {
	return s.VerifyEncoded(message, signature, true)
}

// VerifyEncoded checks signature, decoding it from base64url first when decode is set.
// Otherwise the signature string carries the raw signature bytes.
func (s *eddsaSigner) VerifyEncoded(message []byte, signature string, decode bool) (bool, error) {
	raw := []byte(signature)
	if decode {
		var err error
		if raw, err = textEncoding.DecodeString(signature); err != nil {
			return false, fmt.Errorf("%w: signature is not valid base64url", crypto.ErrMalformedSignature)
		}
	}
	return s.VerifyRaw(message, raw)
}

// VerifyRaw checks a raw signature with the public key.
// A well-formed signature that does not verify yields false and a nil error.
func (s *eddsaSigner) VerifyRaw(message, signature []byte) (_ bool, err error) {
	defer s.record(crypto.OperationVerification, crypto.AlgorithmEdDSA, time.Now(), &err)

	if len(signature) != ed25519.SignatureSize {
		return false, fmt.Errorf("%w: got %d bytes, want %d", crypto.ErrMalformedSignature, len(signature), ed25519.SignatureSize)
	}

	pair, err := s.loader.KeyPair()
	if err != nil {
		return false, err
	}
	if len(pair.Public) != ed25519.PublicKeySize {
		return false, fmt.Errorf("%w: EdDSA public key has %d bytes", crypto.ErrInvalidKey, len(pair.Public))
	}

	return ed25519.Verify(pair.Public, message, signature), nil
}
