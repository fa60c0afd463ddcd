package cryptoalg

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
)

// Cipher selects the AEAD used by the encryptor.
type Cipher string

const (
	// CipherAES256GCM is the block-cipher based AEAD (12-byte nonce, 16-byte tag).
	CipherAES256GCM Cipher = crypto.AlgorithmAES256GCM
	// CipherXChaCha20Poly1305 is the stream-cipher based AEAD (24-byte nonce, 16-byte tag).
	CipherXChaCha20Poly1305 Cipher = crypto.AlgorithmXChaCha20Poly1305
)

// ParseCipher maps a configured cipher name to a Cipher.
func ParseCipher(name string) (Cipher, error) {
	switch c := Cipher(name); c {
	case CipherAES256GCM, CipherXChaCha20Poly1305:
		return c, nil
	default:
		return "", fmt.Errorf("%w: cipher %q", crypto.ErrUnknownDriver, name)
	}
}
