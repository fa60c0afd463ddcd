package validators

import (
	"github.com/MGTheTrain/crypto-services/internal/domain/cryptoalg"

	"github.com/go-playground/validator/v10"
)

// Tag names of the driver validations registered by Register.
const (
	TagCipher  = "cipher"
	TagSigning = "signing"
	TagHashing = "hashing"
	TagEncoder = "encoder"
)

// CipherValidation validates that the field names a supported AEAD cipher.
func CipherValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseCipher(fl.Field().String())
	return err == nil
}

// SigningValidation validates that the field names a supported symmetric signing driver.
func SigningValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseSigningAlgorithm(fl.Field().String())
	return err == nil
}

// HashingValidation validates that the field names a supported hashing driver.
func HashingValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseHashAlgorithm(fl.Field().String())
	return err == nil
}

// EncoderValidation validates that the field names a supported encoder.
func EncoderValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseEncoderFormat(fl.Field().String())
	return err == nil
}

// Register adds the driver validations to v.
func Register(v *validator.Validate) error {
	validations := map[string]validator.Func{
		TagCipher:  CipherValidation,
		TagSigning: SigningValidation,
		TagHashing: HashingValidation,
		TagEncoder: EncoderValidation,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
