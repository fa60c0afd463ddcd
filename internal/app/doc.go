// Package app assembles the configured encryptor, signers, hasher and encoder
// from the crypto settings and the key material provider.
package app
