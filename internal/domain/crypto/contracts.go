package crypto

// Encoder serializes application values to bytes and back.
// Implementations must be safe for concurrent use.
type Encoder interface {
	// Name returns the encoder name, e.g. "json".
	Name() string

	// Encode serializes v into bytes.
	Encode(v any) ([]byte, error)

	// Decode deserializes data into the value pointed to by v.
	Decode(data []byte, v any) error
}

// Encryptor turns application values into self-describing authenticated ciphertext and back.
// The text form is the URL-safe, unpadded base64 encoding of nonce || ciphertext || tag.
type Encryptor interface {
	// Encrypt encrypts value. With serialize the value is passed through the Encoder first,
	// otherwise it must be a []byte or a string.
	Encrypt(value any, serialize bool) (string, error)

	// Decrypt reverses Encrypt. With serialize the plaintext is decoded into a generic value,
	// otherwise the plaintext bytes are returned.
	Decrypt(payload string, serialize bool) (any, error)

	// DecryptInto decrypts payload and decodes the plaintext into the value pointed to by v.
	DecryptInto(payload string, v any) error

	// EncryptString encrypts a string without serialization.
	EncryptString(value string) (string, error)

	// DecryptString decrypts a payload produced by EncryptString.
	DecryptString(payload string) (string, error)

	// EncryptRaw encrypts plaintext and returns the binary frame without text encoding.
	EncryptRaw(plaintext []byte) ([]byte, error)

	// DecryptRaw opens a binary frame produced by EncryptRaw.
	DecryptRaw(frame []byte) ([]byte, error)
}

// Signer produces and verifies detached signatures over byte messages.
type Signer interface {
	// Sign returns the URL-safe, unpadded base64 signature of message.
	Sign(message []byte) (string, error)

	// SignRaw returns the raw signature bytes of message.
	SignRaw(message []byte) ([]byte, error)

	// Verify checks an encoded signature produced by Sign.
	// An invalid signature yields false and a nil error.
	Verify(message []byte, signature string) (bool, error)

	// VerifyRaw checks a raw signature produced by SignRaw.
	VerifyRaw(message, signature []byte) (bool, error)
}

// PublicKeySigner is a Signer backed by an asymmetric key pair.
type PublicKeySigner interface {
	Signer

	// VerifyEncoded checks signature against message, decoding it from URL-safe base64 first when decode is set.
	VerifyEncoded(message []byte, signature string, decode bool) (bool, error)
}

// Hasher computes fixed-length digests.
type Hasher interface {
	// Hash returns the URL-safe, unpadded base64 digest of data, or "" and an error if hashing failed.
	Hash(data []byte) (string, error)

	// HashRaw returns the raw digest of data, or nil and an error if hashing failed.
	HashRaw(data []byte) ([]byte, error)

	// Equal reports whether two encoded digests are equal, in constant time.
	Equal(a, b string) bool
}
