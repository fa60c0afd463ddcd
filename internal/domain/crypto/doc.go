// Package crypto defines the capabilities offered by the crypto services layer: authenticated
// encryption, symmetric and asymmetric signing, hashing and payload encoding, together with the
// error taxonomy every implementation reports through.
package crypto
