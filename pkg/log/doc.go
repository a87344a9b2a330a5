// Package log defines the structured logging surface of the SDK.
//
// The Logger interface decouples the client from any particular logging
// backend. ZapLogger is the default implementation, supporting console,
// logfmt, and JSON output; NoopLogger discards everything and is the
// fallback when the caller supplies no logger.
package log
