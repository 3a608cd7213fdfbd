//go:build js || wasm
// +build js wasm

// Package console routes renderer diagnostics to the host environment: the
// browser console under js/wasm, a zap logger in native builds.
package console

import (
	"syscall/js"
)

// Log writes an informational message to the browser console.
func Log(args ...any) {
	js.Global().Get("console").Call("log", args...)
}

// Warn writes a warning to the browser console.
func Warn(args ...any) {
	js.Global().Get("console").Call("warn", args...)
}

// Error writes an error to the browser console.
func Error(args ...any) {
	js.Global().Get("console").Call("error", args...)
}
