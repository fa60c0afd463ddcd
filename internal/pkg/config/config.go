package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration of the crypto services
type Config struct {
	Logger LoggerSettings `mapstructure:"logger"`
	Crypto CryptoSettings `mapstructure:"crypto"`
}

// Validate validates all nested settings
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Crypto.Validate()
}

// InitializeConfig loads the configuration file at path (optional) merged with the environment.
// Environment variables use the upper-cased dotted path with "_" separators, e.g. CRYPTO_KEYS_APP.
// The returned viper instance doubles as the Provider for key material.
func InitializeConfig(path string) (*Config, *viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.output", LogOutputStderr)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("crypto.cipher", DefaultCipher)
	v.SetDefault("crypto.encoder.driver", DefaultEncoderDriver)
	v.SetDefault("crypto.signing.driver", DefaultSigningDriver)
	v.SetDefault("crypto.hashing.driver", DefaultHashingDriver)
	v.SetDefault(KeyPathEdDSA, DefaultEdDSAKeyPath)
}
