package app

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
)

// KeyKind names one of the managed keys.
type KeyKind string

const (
	// KeyKindApp is the encryption key.
	KeyKindApp KeyKind = "app"
	// KeyKindHashing is the keyed hashing secret.
	KeyKindHashing KeyKind = "hashing"
	// KeyKindHmac is the symmetric signing secret.
	KeyKindHmac KeyKind = "hmac"
	// KeyKindEdDSA is the Ed25519 signing key pair.
	KeyKindEdDSA KeyKind = "eddsa"
)

// KeyKinds lists every KeyKind.
var KeyKinds = []KeyKind{KeyKindApp, KeyKindHashing, KeyKindHmac, KeyKindEdDSA}

// ParseKeyKind maps a key name to a KeyKind.
func ParseKeyKind(name string) (KeyKind, error) {
	switch k := KeyKind(name); k {
	case KeyKindApp, KeyKindHashing, KeyKindHmac, KeyKindEdDSA:
		return k, nil
	default:
		return "", fmt.Errorf("%w: key type %q", crypto.ErrUnknownDriver, name)
	}
}
