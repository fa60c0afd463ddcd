package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels, critical maps onto slog's error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Console streams. An empty Output writes to stdout.
const (
	LogOutputStdout = "stdout"
	LogOutputStderr = "stderr"
)

// LoggerSettings selects the log sink. Rotation fields only apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	Output     string `mapstructure:"output" validate:"omitempty,oneof=stdout stderr"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type rotationLimit struct {
	field    string
	value    func(LoggerSettings) int
	min, max int
}

var rotationLimits = []rotationLimit{
	{field: "MaxSize", value: func(s LoggerSettings) int { return s.MaxSize }, min: 1, max: 100},
	{field: "MaxBackups", value: func(s LoggerSettings) int { return s.MaxBackups }, min: 1, max: 10},
	{field: "MaxAge", value: func(s LoggerSettings) int { return s.MaxAge }, min: 1, max: 365},
}

// Validate checks the sink selection and, for the file sink, the rotation bounds
func (s *LoggerSettings) Validate() error {
	validate := validator.New()
	validate.RegisterStructValidation(validateFileSink, LoggerSettings{})

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}

func validateFileSink(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(LoggerSettings)
	if !ok || s.LogType != LogTypeFile {
		return
	}

	if s.FilePath == "" {
		sl.ReportError(s.FilePath, "file_path", "FilePath", "required_for_file", "")
	}
	for _, limit := range rotationLimits {
		v := limit.value(s)
		if v < limit.min || v > limit.max {
			sl.ReportError(v, limit.field, limit.field, "range", fmt.Sprintf("%d-%d", limit.min, limit.max))
		}
	}
}
