package app

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-services/internal/infrastructure/encoder"
	infraKeys "github.com/MGTheTrain/crypto-services/internal/infrastructure/keys"
	"github.com/MGTheTrain/crypto-services/internal/pkg/config"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"
)

// symmetricFilePrefix marks a symmetric key value stored in a file.
const symmetricFilePrefix = "file:"

// CryptoServices holds the implementations selected by configuration.
// Keys are resolved on first use, so construction performs no I/O.
type CryptoServices struct {
	Encryptor       crypto.Encryptor
	Signer          crypto.Signer
	PublicKeySigner crypto.PublicKeySigner
	Hasher          crypto.Hasher
	Encoder         crypto.Encoder

	provider   config.Provider
	appKey     *infraKeys.SymmetricKey
	hashingKey *infraKeys.SymmetricKey
	hmacKey    *infraKeys.SymmetricKey
	eddsaKey   *infraKeys.EdDSASignerKey
	generator  *infraKeys.SymmetricKeyGenerator
	logger     logger.Logger
}

// NewCryptoServices parses every configured driver and wires the shared key loaders into the implementations.
func NewCryptoServices(cfg *config.CryptoSettings, provider config.Provider, log logger.Logger, opts ...cryptography.Option) (*CryptoServices, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: crypto settings are nil", crypto.ErrConfiguration)
	}
	log = logger.OrNop(log)

	cipherName, err := cryptoalg.ParseCipher(cfg.Cipher)
	if err != nil {
		return nil, err
	}
	encoderFormat, err := cryptoalg.ParseEncoderFormat(cfg.Encoder.Driver)
	if err != nil {
		return nil, err
	}
	signingAlgorithm, err := cryptoalg.ParseSigningAlgorithm(cfg.Signing.Driver)
	if err != nil {
		return nil, err
	}
	hashAlgorithm, err := cryptoalg.ParseHashAlgorithm(cfg.Hashing.Driver)
	if err != nil {
		return nil, err
	}

	s := &CryptoServices{
		provider:   provider,
		appKey:     infraKeys.NewAppKey(provider, log),
		hashingKey: infraKeys.NewHashingKey(provider, log),
		hmacKey:    infraKeys.NewHmacKey(provider, log),
		eddsaKey:   infraKeys.NewEdDSASignerKey(provider, log),
		generator:  infraKeys.NewSymmetricKeyGenerator(log),
		logger:     log,
	}

	if s.Encoder, err = encoder.New(encoderFormat); err != nil {
		return nil, err
	}
	if s.Encryptor, err = cryptography.NewEncryptor(cipherName, s.appKey, s.Encoder, log, opts...); err != nil {
		return nil, err
	}
	if s.Signer, err = cryptography.NewSigner(signingAlgorithm, s.hmacKey, log, opts...); err != nil {
		return nil, err
	}
	if s.PublicKeySigner, err = cryptography.NewEdDSASigner(s.eddsaKey, log, opts...); err != nil {
		return nil, err
	}
	if s.Hasher, err = cryptography.NewHasher(hashAlgorithm, s.hashingKey, log, opts...); err != nil {
		return nil, err
	}

	log.Info("Crypto services initialized: cipher=", cipherName, " encoder=", encoderFormat,
		" signing=", signingAlgorithm, " hashing=", hashAlgorithm)
	return s, nil
}

// Generator returns the key generator for kind.
func (s *CryptoServices) Generator(kind KeyKind) (keys.Generator, error) {
	switch kind {
	case KeyKindApp, KeyKindHashing, KeyKindHmac:
		return s.generator, nil
	case KeyKindEdDSA:
		return s.eddsaKey, nil
	default:
		return nil, fmt.Errorf("%w: key type %q", crypto.ErrUnknownDriver, kind)
	}
}

// KeyFilePath returns the configured file of kind. Symmetric keys only have one
// when their value is "file:<path>".
func (s *CryptoServices) KeyFilePath(kind KeyKind) (string, error) {
	var path string
	switch kind {
	case KeyKindApp:
		path = config.KeyPathApp
	case KeyKindHashing:
		path = config.KeyPathHashing
	case KeyKindHmac:
		path = config.KeyPathHmac
	case KeyKindEdDSA:
		return s.configuredString(config.KeyPathEdDSA)
	default:
		return "", fmt.Errorf("%w: key type %q", crypto.ErrUnknownDriver, kind)
	}

	value, err := s.configuredString(path)
	if err != nil {
		return "", err
	}
	file, ok := strings.CutPrefix(value, symmetricFilePrefix)
	if !ok || file == "" {
		return "", fmt.Errorf("%w: %s is not a %s<path> value", crypto.ErrConfiguration, path, symmetricFilePrefix)
	}
	return file, nil
}

func (s *CryptoServices) configuredString(path string) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("%w: %s", crypto.ErrKeyNotSet, path)
	}
	value, ok := s.provider.Get(path).(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s", crypto.ErrKeyNotSet, path)
	}
	return strings.TrimSpace(value), nil
}

// Close wipes every cached key. The services must not be used afterwards.
func (s *CryptoServices) Close() {
	s.appKey.Destroy()
	s.hashingKey.Destroy()
	s.hmacKey.Destroy()
	s.eddsaKey.Destroy()
}
