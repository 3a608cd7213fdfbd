//go:build !wasm
// +build !wasm

// Package console routes renderer diagnostics to the host environment: the
// browser console under js/wasm, a zap logger in native builds.
package console

import "go.uber.org/zap"

// Silent by default so embedding the renderer as a library never writes to
// anyone's output unasked.
var logger = zap.NewNop().Sugar()

// SetLogger directs console output to the given zap logger. Passing nil
// restores the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// Log writes an informational message.
func Log(args ...any) {
	logger.Info(args...)
}

// Warn writes a warning.
func Warn(args ...any) {
	logger.Warn(args...)
}

// Error writes an error.
func Error(args ...any) {
	logger.Error(args...)
}
