package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-services/internal/pkg/config"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"
)

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// SetupTestLogger returns a debug logger whose records show up in the test's own output.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewTextLogger(testWriter{t: t}, config.LogLevelDebug)
}
