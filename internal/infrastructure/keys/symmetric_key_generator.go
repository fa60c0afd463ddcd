package keys

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	domainKeys "github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"
)

// SymmetricKeyGenerator produces random symmetric keys encoded as standard base64.
type SymmetricKeyGenerator struct {
	size   int
	logger logger.Logger
}

// Compile-time interface check.
var _ domainKeys.Generator = (*SymmetricKeyGenerator)(nil)

// NewSymmetricKeyGenerator creates a generator of keys of crypto.SymmetricKeySize bytes.
func NewSymmetricKeyGenerator(log logger.Logger) *SymmetricKeyGenerator {
	return &SymmetricKeyGenerator{
		size:   crypto.SymmetricKeySize,
		logger: logger.OrNop(log),
	}
}

// Generate returns a fresh base64 encoded key without persisting it.
func (g *SymmetricKeyGenerator) Generate() (string, error) {
	encoded, err := g.newEncodedKey()
	if err != nil {
		return "", err
	}
	defer wipe(encoded)

	g.logger.Info("Generated symmetric key")
	return string(encoded), nil
}

// GenerateTo writes a fresh base64 encoded key to path under an exclusive lock.
// A loader reads it back when its configuration value is "file:<path>".
func (g *SymmetricKeyGenerator) GenerateTo(path string) error {
	encoded, err := g.newEncodedKey()
	if err != nil {
		return err
	}
	defer wipe(encoded)

	if err := writeKeyFile(path, encoded, g.logger); err != nil {
		return err
	}

	g.logger.Info("Saved symmetric key to ", path)
	return nil
}

func (g *SymmetricKeyGenerator) newEncodedKey() ([]byte, error) {
	key := make([]byte, g.size)
	defer wipe(key)

	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: failed to generate symmetric key: %w", crypto.ErrCrypto, err)
	}

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(key)))
	base64.StdEncoding.Encode(encoded, key)
	return encoded, nil
}
