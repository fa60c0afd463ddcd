package cryptoalg

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
)

// SigningAlgorithm selects the symmetric signer.
type SigningAlgorithm string

const (
	// SigningHmacSHA256 is HMAC-SHA256 (32-byte signatures).
	SigningHmacSHA256 SigningAlgorithm = crypto.AlgorithmHmacSHA256
	// SigningHmacSHA512 is HMAC-SHA512 (64-byte signatures).
	SigningHmacSHA512 SigningAlgorithm = crypto.AlgorithmHmacSHA512
	// SigningHmacBlake2b is keyed BLAKE2b-512 (64-byte signatures).
	SigningHmacBlake2b SigningAlgorithm = crypto.AlgorithmHmacBlake2b
)

// ParseSigningAlgorithm maps a configured signing driver name to a SigningAlgorithm.
func ParseSigningAlgorithm(name string) (SigningAlgorithm, error) {
	switch s := SigningAlgorithm(name); s {
	case SigningHmacSHA256, SigningHmacSHA512, SigningHmacBlake2b:
		return s, nil
	default:
		return "", fmt.Errorf("%w: signing driver %q", crypto.ErrUnknownDriver, name)
	}
}
