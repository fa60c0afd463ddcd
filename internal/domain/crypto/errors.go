package crypto

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the crypto services wraps exactly one of them.
var (
	// ErrConfiguration is returned when a required key source is missing, unset or malformed.
	ErrConfiguration = errors.New("configuration error")

	// ErrIO is returned when a key file cannot be opened, locked, read or written.
	ErrIO = errors.New("i/o error")

	// ErrCrypto is returned when a primitive rejects its input or authentication fails.
	ErrCrypto = errors.New("crypto error")

	// ErrSerialization is returned when a value cannot be encoded or decoded by the Encoder.
	ErrSerialization = errors.New("serialization error")
)

var (
	// ErrKeyNotSet is returned when the configured key source is absent or empty.
	ErrKeyNotSet = fmt.Errorf("%w: key source is not set", ErrConfiguration)

	// ErrInvalidKey is returned when key material does not decode to the required length.
	ErrInvalidKey = fmt.Errorf("%w: invalid key material", ErrConfiguration)

	// ErrUnknownDriver is returned when a configured driver name is not one of the known variants.
	ErrUnknownDriver = fmt.Errorf("%w: unknown driver", ErrConfiguration)

	// ErrDecryptionFailed is returned when the authentication tag does not verify (wrong key, tampered data).
	ErrDecryptionFailed = fmt.Errorf("%w: decryption failed", ErrCrypto)

	// ErrInvalidFormat is returned when a ciphertext envelope cannot be decoded or framed.
	ErrInvalidFormat = fmt.Errorf("%w: invalid ciphertext format", ErrCrypto)

	// ErrMalformedSignature is returned when a signature has the wrong length or encoding.
	ErrMalformedSignature = fmt.Errorf("%w: malformed signature", ErrCrypto)

	// ErrHashFailed is returned when the hash primitive rejects its parameters.
	ErrHashFailed = fmt.Errorf("%w: hash failed", ErrCrypto)
)

// IsConfigurationError returns true if the error is or wraps ErrConfiguration.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsIOError returns true if the error is or wraps ErrIO.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsCryptoError returns true if the error is or wraps ErrCrypto.
func IsCryptoError(err error) bool {
	return errors.Is(err, ErrCrypto)
}

// IsSerializationError returns true if the error is or wraps ErrSerialization.
func IsSerializationError(err error) bool {
	return errors.Is(err, ErrSerialization)
}
