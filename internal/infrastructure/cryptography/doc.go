// Package cryptography implements the encryptors, signers and hashers
// declared in internal/domain/crypto on top of key loaders from internal/infrastructure/keys.
//
// Text forms (ciphertext, signatures, digests) are URL-safe base64 without padding
// and are decoded strictly.
package cryptography
