package crypto

// OperationEncryption represents the encryption operation type
const OperationEncryption = "encrypt"

// OperationDecryption represents the decryption operation type
const OperationDecryption = "decrypt"

// OperationSigning represents the signing operation type
const OperationSigning = "sign"

// OperationVerification represents the signature verification operation type
const OperationVerification = "verify"

// OperationHashing represents the hashing operation type
const OperationHashing = "hash"

// AlgorithmAES256GCM represents the AES-256-GCM AEAD
const AlgorithmAES256GCM = "aes-256-gcm"

// AlgorithmXChaCha20Poly1305 represents the XChaCha20-Poly1305 AEAD
const AlgorithmXChaCha20Poly1305 = "xchacha20-poly1305"

// AlgorithmHmacSHA256 represents HMAC over SHA-256
const AlgorithmHmacSHA256 = "hmac-sha256"

// AlgorithmHmacSHA512 represents HMAC over SHA-512
const AlgorithmHmacSHA512 = "hmac-sha512"

// AlgorithmHmacBlake2b represents keyed BLAKE2b-512 used as a MAC
const AlgorithmHmacBlake2b = "hmac-blake2b"

// AlgorithmEdDSA represents Ed25519 signatures
const AlgorithmEdDSA = "eddsa"

// AlgorithmBlake2b represents unkeyed BLAKE2b-512
const AlgorithmBlake2b = "blake2b"

// AlgorithmBlake2bKeyed represents BLAKE2b-512 keyed with the hashing key
const AlgorithmBlake2bKeyed = "blake2b-keyed"

// AlgorithmSHA256 represents SHA-256
const AlgorithmSHA256 = "sha256"

// AlgorithmSHA512 represents SHA-512
const AlgorithmSHA512 = "sha512"

// SymmetricKeySize is the length in bytes of every symmetric key (app, hashing and hmac keys)
const SymmetricKeySize = 32

// Blake2bDigestSize is the digest length of BLAKE2b-512 in bytes
const Blake2bDigestSize = 64
