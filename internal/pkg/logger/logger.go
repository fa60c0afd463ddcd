package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// nopLogger discards every message except Fatal and Panic, which keep their control-flow effect.
type nopLogger struct{}

// NewNopLogger returns a Logger that discards output.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(...interface{}) {}
func (nopLogger) Info(...interface{})  {}
func (nopLogger) Warn(...interface{})  {}
func (nopLogger) Error(...interface{}) {}

func (nopLogger) Fatal(args ...interface{}) {
	panic(formatArgs(args...))
}

func (nopLogger) Panic(args ...interface{}) {
	panic(formatArgs(args...))
}

// OrNop returns l, or a discarding Logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return l
}
