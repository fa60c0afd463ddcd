//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, v, err := InitializeConfig("")
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, LogOutputStderr, cfg.Logger.Output)
	assert.Equal(t, DefaultCipher, cfg.Crypto.Cipher)
	assert.Equal(t, DefaultEncoderDriver, cfg.Crypto.Encoder.Driver)
	assert.Equal(t, DefaultSigningDriver, cfg.Crypto.Signing.Driver)
	assert.Equal(t, DefaultHashingDriver, cfg.Crypto.Hashing.Driver)
	assert.Equal(t, DefaultEdDSAKeyPath, v.Get(KeyPathEdDSA))
}

func TestInitializeConfig_File(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  log_level: debug
  log_type: console
crypto:
  cipher: aes-256-gcm
  encoder:
    driver: msgpack
  signing:
    driver: hmac-sha256
    keys:
      eddsa: /etc/crypto/eddsa.key
  hashing:
    driver: sha512
  keys:
    app: base64:c2VjcmV0
`)

	cfg, v, err := InitializeConfig(path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "aes-256-gcm", cfg.Crypto.Cipher)
	assert.Equal(t, "msgpack", cfg.Crypto.Encoder.Driver)
	assert.Equal(t, "hmac-sha256", cfg.Crypto.Signing.Driver)
	assert.Equal(t, "sha512", cfg.Crypto.Hashing.Driver)
	assert.Equal(t, "/etc/crypto/eddsa.key", v.Get(KeyPathEdDSA))
	assert.Equal(t, "base64:c2VjcmV0", v.Get(KeyPathApp))
	assert.Nil(t, v.Get(KeyPathHmac))
}

func TestInitializeConfig_Env(t *testing.T) {
	t.Setenv("CRYPTO_CIPHER", "aes-256-gcm")
	t.Setenv("CRYPTO_KEYS_HMAC", "base64:aG1hYw==")

	cfg, v, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "aes-256-gcm", cfg.Crypto.Cipher)
	assert.Equal(t, "base64:aG1hYw==", v.Get(KeyPathHmac))
}

func TestInitializeConfig_Invalid(t *testing.T) {
	t.Run("unknown cipher", func(t *testing.T) {
		path := writeConfigFile(t, "crypto:\n  cipher: rot13\n")
		_, _, err := InitializeConfig(path)
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfigFile(t, "crypto: [unterminated\n")
		_, _, err := InitializeConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := InitializeConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
