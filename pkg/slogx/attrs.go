package slogx

import "log/slog"

// Error returns a slog attribute with key "error" and the error's
// message as value.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// ByteString returns a slog attribute rendering a byte slice as a
// string, useful for logging wire payloads.
func ByteString(key string, value []byte) slog.Attr {
	return slog.String(key, string(value))
}
