package keys

import "crypto/ed25519"

// KeyPair is an Ed25519 key pair. The private half embeds the public half in its last 32 bytes.
// Both halves may alias locked memory outside the Go heap, so ed25519.Sign must be given a heap copy.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// Loader resolves a symmetric key from its configured source.
// The source is read at most once; every later call returns the cached bytes.
// Callers borrow the returned slice for the duration of one operation and must not modify or retain it.
type Loader interface {
	// Key returns the cached key, loading it on first use.
	Key() ([]byte, error)
}

// PairLoader resolves an asymmetric key pair from its configured source with the same
// load-once and borrowing rules as Loader.
type PairLoader interface {
	// KeyPair returns the cached key pair, loading it on first use.
	KeyPair() (KeyPair, error)
}

// Generator produces fresh key material.
type Generator interface {
	// Generate returns fresh key material encoded as text without persisting it.
	Generate() (string, error)

	// GenerateTo persists fresh key material to path under an exclusive file lock.
	GenerateTo(path string) error
}
