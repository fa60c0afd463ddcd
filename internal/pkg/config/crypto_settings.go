package config

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Dotted configuration paths of the key sources.
const (
	KeyPathApp     = "crypto.keys.app"
	KeyPathHashing = "crypto.keys.hashing"
	KeyPathHmac    = "crypto.keys.hmac"
	KeyPathEdDSA   = "crypto.signing.keys.eddsa"
)

// Driver defaults
const (
	DefaultCipher        = "xchacha20-poly1305"
	DefaultEncoderDriver = "json"
	DefaultSigningDriver = "hmac-blake2b"
	DefaultHashingDriver = "blake2b"
	DefaultEdDSAKeyPath  = "storage/keys/eddsa.key"
)

// EncoderSettings selects the payload encoder
type EncoderSettings struct {
	Driver string `mapstructure:"driver" validate:"required,encoder"`
}

// SigningSettings selects the symmetric signer
type SigningSettings struct {
	Driver string `mapstructure:"driver" validate:"required,signing"`
}

// HashingSettings selects the hasher
type HashingSettings struct {
	Driver string `mapstructure:"driver" validate:"required,hashing"`
}

// CryptoSettings holds the driver selection of the crypto services
type CryptoSettings struct {
	Cipher  string          `mapstructure:"cipher" validate:"required,cipher"`
	Encoder EncoderSettings `mapstructure:"encoder"`
	Signing SigningSettings `mapstructure:"signing"`
	Hashing HashingSettings `mapstructure:"hashing"`
}

// Validate checks that every driver in CryptoSettings names a known variant
func (s *CryptoSettings) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register driver validations: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CryptoSettings: %w", err)
	}

	return nil
}
