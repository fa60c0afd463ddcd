package logger

import (
	"log/slog"

	"github.com/MGTheTrain/crypto-services/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger writes JSON records to the settings' file, rotated and gzip-compressed by lumberjack.
// Settings are not validated here, New does that.
func NewFileLogger(settings config.LoggerSettings) Logger {
	rotator := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		LocalTime:  true,
		Compress:   true,
	}

	return newSlogLogger(slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)}))
}
