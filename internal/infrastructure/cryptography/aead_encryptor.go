package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-services/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-services/internal/domain/keys"
	"github.com/MGTheTrain/crypto-services/internal/infrastructure/encoder"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"

	"golang.org/x/crypto/chacha20poly1305"
)

// aeadEncryptor implements crypto.Encryptor for any AEAD constructed from a symmetric key.
// The AEAD is built per call so no key schedule outlives an operation.
type aeadEncryptor struct {
	algorithm string
	newAEAD   func(key []byte) (cipher.AEAD, error)
	loader    keys.Loader
	encoder   crypto.Encoder
	logger    logger.Logger
	options
}

// NewAESGCMEncryptor creates an AES-256-GCM encryptor (12 byte nonce, 16 byte tag).
func NewAESGCMEncryptor(loader keys.Loader, enc crypto.Encoder, log logger.Logger, opts ...Option) (crypto.Encryptor, error) {
	return newAEADEncryptor(crypto.AlgorithmAES256GCM, newAESGCM, loader, enc, log, opts)
}

// NewXChaCha20Poly1305Encryptor creates an XChaCha20-Poly1305 encryptor (24 byte nonce, 16 byte tag).
func NewXChaCha20Poly1305Encryptor(loader keys.Loader, enc crypto.Encoder, log logger.Logger, opts ...Option) (crypto.Encryptor, error) {
	return newAEADEncryptor(crypto.AlgorithmXChaCha20Poly1305, chacha20poly1305.NewX, loader, enc, log, opts)
}

// NewEncryptor creates the encryptor for c.
func NewEncryptor(c cryptoalg.Cipher, loader keys.Loader, enc crypto.Encoder, log logger.Logger, opts ...Option) (crypto.Encryptor, error) {
	switch c {
	case cryptoalg.CipherAES256GCM:
		return NewAESGCMEncryptor(loader, enc, log, opts...)
	case cryptoalg.CipherXChaCha20Poly1305:
		return NewXChaCha20Poly1305Encryptor(loader, enc, log, opts...)
	default:
		return nil, fmt.Errorf("%w: cipher %q", crypto.ErrUnknownDriver, c)
	}
}

func newAEADEncryptor(algorithm string, newAEAD func([]byte) (cipher.AEAD, error), loader keys.Loader, enc crypto.Encoder, log logger.Logger, opts []Option) (*aeadEncryptor, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: %s encryptor requires a key loader", crypto.ErrConfiguration, algorithm)
	}
	if enc == nil {
		var err error
		if enc, err = encoder.New(cryptoalg.EncoderJSON); err != nil {
			return nil, err
		}
	}

	return &aeadEncryptor{
		algorithm: algorithm,
		newAEAD:   newAEAD,
		loader:    loader,
		encoder:   enc,
		logger:    logger.OrNop(log),
		options:   newOptions(opts),
	}, nil
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt encrypts value and returns the text form of the frame.
func (e *aeadEncryptor) Encrypt(value any, serialize bool) (_ string, err error) {
	defer e.record(crypto.OperationEncryption, e.algorithm, time.Now(), &err)

	plaintext, err := e.plaintext(value, serialize)
	if err != nil {
		return "", err
	}

	frame, err := e.seal(plaintext)
	if err != nil {
		return "", err
	}
	return textEncoding.EncodeToString(frame), nil
}

// Decrypt decodes and opens payload. With serialize the plaintext is decoded into a generic value.
func (e *aeadEncryptor) Decrypt(payload string, serialize bool) (_ any, err error) {
	defer e.record(crypto.OperationDecryption, e.algorithm, time.Now(), &err)

	plaintext, err := e.openText(payload)
	if err != nil {
		return nil, err
	}
	if !serialize {
		return plaintext, nil
	}

	var value any
	if err := e.decode(plaintext, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// DecryptInto decodes and opens payload, then decodes the plaintext into v.
func (e *aeadEncryptor) DecryptInto(payload string, v any) (err error) {
	defer e.record(crypto.OperationDecryption, e.algorithm, time.Now(), &err)

	plaintext, err := e.openText(payload)
	if err != nil {
		return err
	}
	return e.decode(plaintext, v)
}

// EncryptString encrypts value without passing it through the encoder.
func (e *aeadEncryptor) EncryptString(value string) (string, error) {
	return e.Encrypt(value, false)
}

// DecryptString opens a payload produced by EncryptString.
func (e *aeadEncryptor) DecryptString(payload string) (_ string, err error) {
	defer e.record(crypto.OperationDecryption, e.algorithm, time.Now(), &err)

	plaintext, err := e.openText(payload)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptRaw returns nonce || ciphertext || tag.
func (e *aeadEncryptor) EncryptRaw(plaintext []byte) (_ []byte, err error) {
	defer e.record(crypto.OperationEncryption, e.algorithm, time.Now(), &err)
	return e.seal(plaintext)
}

// DecryptRaw opens nonce || ciphertext || tag.
func (e *aeadEncryptor) DecryptRaw(frame []byte) (_ []byte, err error) {
	defer e.record(crypto.OperationDecryption, e.algorithm, time.Now(), &err)
	return e.open(frame)
}

func (e *aeadEncryptor) plaintext(value any, serialize bool) ([]byte, error) {
	if serialize {
		data, err := e.encoder.Encode(value)
		if err != nil {
			return nil, serializationError(err)
		}
		return data, nil
	}

	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T cannot be encrypted without serialization", crypto.ErrSerialization, value)
	}
}

func (e *aeadEncryptor) decode(plaintext []byte, v any) error {
	if err := e.encoder.Decode(plaintext, v); err != nil {
		return serializationError(err)
	}
	return nil
}

func (e *aeadEncryptor) aead() (cipher.AEAD, error) {
	key, err := e.loader.Key()
	if err != nil {
		return nil, err
	}

	aead, err := e.newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", crypto.ErrInvalidKey, e.algorithm, err)
	}
	return aead, nil
}

func (e *aeadEncryptor) seal(plaintext []byte) ([]byte, error) {
	aead, err := e.aead()
	if err != nil {
		return nil, err
	}

	frame := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, frame); err != nil {
		return nil, fmt.Errorf("%w: failed to generate nonce: %w", crypto.ErrCrypto, err)
	}

	frame = aead.Seal(frame, frame, plaintext, nil)
	e.logger.Debug(e.algorithm, " encryption succeeded")
	return frame, nil
}

func (e *aeadEncryptor) openText(payload string) ([]byte, error) {
	frame, err := textEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not valid base64url", crypto.ErrInvalidFormat)
	}
	return e.open(frame)
}

func (e *aeadEncryptor) open(frame []byte) ([]byte, error) {
	aead, err := e.aead()
	if err != nil {
		return nil, err
	}

	if len(frame) < aead.NonceSize()+aead.Overhead() {
		return nil, fmt.Errorf("%w: frame of %d bytes is too short", crypto.ErrInvalidFormat, len(frame))
	}

	nonce, body := frame[:aead.NonceSize()], frame[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, crypto.ErrDecryptionFailed
	}

	e.logger.Debug(e.algorithm, " decryption succeeded")
	return plaintext, nil
}

// serializationError makes sure an encoder failure is identifiable as crypto.ErrSerialization.
func serializationError(err error) error {
	if crypto.IsSerializationError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", crypto.ErrSerialization, err)
}
