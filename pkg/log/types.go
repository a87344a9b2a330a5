package log

// Logger is a leveled, structured logger.
// keysAndValues are treated as alternating key-value pairs
// (e.g., "txHash", hash, "contract", name).
type Logger interface {
	// Debug logs detailed information useful during development.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine events and state changes.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations that are not errors.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that prevent normal operation.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and may terminate the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger carrying an extra key-value pair on every message.
	WithKV(key string, value any) Logger
	// WithName returns a logger named after a component or subsystem.
	WithName(name string) Logger
	// Name returns the logger's name.
	Name() string
}

// Level represents the severity level of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)
