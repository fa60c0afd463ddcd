//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCryptoSettings() CryptoSettings {
	return CryptoSettings{
		Cipher:  DefaultCipher,
		Encoder: EncoderSettings{Driver: DefaultEncoderDriver},
		Signing: SigningSettings{Driver: DefaultSigningDriver},
		Hashing: HashingSettings{Driver: DefaultHashingDriver},
	}
}

func TestCryptoSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*CryptoSettings)
		expectedError bool
	}{
		{
			name:          "valid defaults",
			mutate:        func(*CryptoSettings) {},
			expectedError: false,
		},
		{
			name:          "aes-256-gcm cipher",
			mutate:        func(s *CryptoSettings) { s.Cipher = "aes-256-gcm" },
			expectedError: false,
		},
		{
			name:          "missing cipher",
			mutate:        func(s *CryptoSettings) { s.Cipher = "" },
			expectedError: true,
		},
		{
			name:          "unknown cipher",
			mutate:        func(s *CryptoSettings) { s.Cipher = "aes-256-cbc" },
			expectedError: true,
		},
		{
			name:          "unknown encoder",
			mutate:        func(s *CryptoSettings) { s.Encoder.Driver = "igbinary" },
			expectedError: true,
		},
		{
			name:          "unknown signing driver",
			mutate:        func(s *CryptoSettings) { s.Signing.Driver = "hmac-md5" },
			expectedError: true,
		},
		{
			name:          "missing hashing driver",
			mutate:        func(s *CryptoSettings) { s.Hashing.Driver = "" },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := validCryptoSettings()
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}

func TestMapProvider(t *testing.T) {
	p := MapProvider{KeyPathApp: "base64:AAAA"}

	assert.Equal(t, "base64:AAAA", p.Get(KeyPathApp))
	assert.Nil(t, p.Get(KeyPathHmac))
}
