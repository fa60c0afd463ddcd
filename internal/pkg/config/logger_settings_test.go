//go:build unit
// +build unit

package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelDebug,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/crypto-services.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*LoggerSettings)
		badField string
	}{
		{name: "file sink", mutate: func(*LoggerSettings) {}},
		{name: "console sink without output", mutate: func(s *LoggerSettings) { s.LogType = LogTypeConsole }},
		{name: "console sink on stderr", mutate: func(s *LoggerSettings) {
			s.LogType = LogTypeConsole
			s.Output = LogOutputStderr
		}},
		{name: "console sink ignores rotation", mutate: func(s *LoggerSettings) {
			*s = LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole, MaxSize: 500}
		}},
		{name: "unknown output", mutate: func(s *LoggerSettings) { s.Output = "syslog" }, badField: "Output"},
		{name: "missing level", mutate: func(s *LoggerSettings) { s.LogLevel = "" }, badField: "LogLevel"},
		{name: "unknown level", mutate: func(s *LoggerSettings) { s.LogLevel = "trace" }, badField: "LogLevel"},
		{name: "missing type", mutate: func(s *LoggerSettings) { s.LogType = "" }, badField: "LogType"},
		{name: "unknown type", mutate: func(s *LoggerSettings) { s.LogType = "journald" }, badField: "LogType"},
		{name: "file sink without path", mutate: func(s *LoggerSettings) { s.FilePath = "" }, badField: "FilePath"},
		{name: "max size below range", mutate: func(s *LoggerSettings) { s.MaxSize = 0 }, badField: "MaxSize"},
		{name: "max size above range", mutate: func(s *LoggerSettings) { s.MaxSize = 101 }, badField: "MaxSize"},
		{name: "max backups above range", mutate: func(s *LoggerSettings) { s.MaxBackups = 11 }, badField: "MaxBackups"},
		{name: "max age above range", mutate: func(s *LoggerSettings) { s.MaxAge = 366 }, badField: "MaxAge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := fileSettings()
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.badField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			fields := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fields = append(fields, fe.StructField())
			}
			assert.Contains(t, fields, tt.badField)
		})
	}
}

func TestLoggerSettings_FileSinkReportsEveryRotationField(t *testing.T) {
	settings := LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile}

	err := settings.Validate()
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Len(t, validationErrs, 4)
}
