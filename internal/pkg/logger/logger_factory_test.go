//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-services/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func consoleSettings(level string) *config.LoggerSettings {
	return &config.LoggerSettings{LogLevel: level, LogType: config.LogTypeConsole, Output: config.LogOutputStderr}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		settings func(t *testing.T) *config.LoggerSettings
		wantErr  string
	}{
		{
			name:     "console on stderr",
			settings: func(*testing.T) *config.LoggerSettings { return consoleSettings(config.LogLevelDebug) },
		},
		{
			name: "console on stdout",
			settings: func(*testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: config.LogLevelWarning, LogType: config.LogTypeConsole}
			},
		},
		{
			name: "rotating file",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel:   config.LogLevelInfo,
					LogType:    config.LogTypeFile,
					FilePath:   filepath.Join(t.TempDir(), "crypto.log"),
					MaxSize:    1,
					MaxBackups: 1,
					MaxAge:     1,
				}
			},
		},
		{
			name:     "nil settings",
			settings: func(*testing.T) *config.LoggerSettings { return nil },
			wantErr:  "settings are nil",
		},
		{
			name:     "unknown level",
			settings: func(*testing.T) *config.LoggerSettings { return consoleSettings("verbose") },
			wantErr:  "invalid config",
		},
		{
			name: "file without rotation",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel: config.LogLevelInfo,
					LogType:  config.LogTypeFile,
					FilePath: filepath.Join(t.TempDir(), "crypto.log"),
				}
			},
			wantErr: "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := tt.settings(t)

			log, err := New(settings)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, log)

			if settings.LogType == config.LogTypeFile {
				log.Info("key loaded")
				_, statErr := os.Stat(settings.FilePath)
				assert.NoError(t, statErr)
			}
		})
	}
}

func TestNew_DoesNotInitializeSingleton(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	_, err := New(consoleSettings(config.LogLevelInfo))
	require.NoError(t, err)

	_, err = GetLogger()
	assert.ErrorContains(t, err, "not initialized")
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(consoleSettings(config.LogLevelInfo)))
	first, err := GetLogger()
	require.NoError(t, err)

	// a later invalid call is ignored because the logger already exists
	require.NoError(t, InitLogger(consoleSettings("bogus")))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestInitLogger_FailureIsSticky(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(consoleSettings("bogus"))
	require.Error(t, err)

	assert.Equal(t, err, InitLogger(consoleSettings(config.LogLevelInfo)))

	log, getErr := GetLogger()
	assert.Error(t, getErr)
	assert.Nil(t, log)
}

func TestParseLevel(t *testing.T) {
	levels := map[string]slog.Level{
		config.LogLevelDebug:    slog.LevelDebug,
		config.LogLevelInfo:     slog.LevelInfo,
		config.LogLevelWarning:  slog.LevelWarn,
		config.LogLevelError:    slog.LevelError,
		config.LogLevelCritical: slog.LevelError,
		"":                      slog.LevelInfo,
	}

	for level, want := range levels {
		t.Run("level="+level, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Empty(t, formatArgs())
	assert.Equal(t, "key", formatArgs("key"))
	assert.Equal(t, "keyloaded", formatArgs("key", "loaded"))
	assert.Equal(t, "size 32", formatArgs("size ", 32))
}
