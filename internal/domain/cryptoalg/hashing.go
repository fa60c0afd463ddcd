package cryptoalg

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
)

// HashAlgorithm selects the hasher.
type HashAlgorithm string

const (
	// HashBlake2b is unkeyed BLAKE2b-512.
	HashBlake2b HashAlgorithm = crypto.AlgorithmBlake2b
	// HashBlake2bKeyed is BLAKE2b-512 keyed with the hashing key.
	HashBlake2bKeyed HashAlgorithm = crypto.AlgorithmBlake2bKeyed
	// HashSHA256 is SHA-256.
	HashSHA256 HashAlgorithm = crypto.AlgorithmSHA256
	// HashSHA512 is SHA-512.
	HashSHA512 HashAlgorithm = crypto.AlgorithmSHA512
)

// ParseHashAlgorithm maps a configured hashing driver name to a HashAlgorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch h := HashAlgorithm(name); h {
	case HashBlake2b, HashBlake2bKeyed, HashSHA256, HashSHA512:
		return h, nil
	default:
		return "", fmt.Errorf("%w: hashing driver %q", crypto.ErrUnknownDriver, name)
	}
}
