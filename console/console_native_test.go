//go:build !wasm
// +build !wasm

package console

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestSetLogger_RoutesToZap verifies console output reaches the configured
// zap logger at the matching levels.
func TestSetLogger_RoutesToZap(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Log("rendered")
	Warn("slow host")
	Error("sink gone")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 log entries, got %d", len(entries))
	}
	if entries[0].Level != zap.InfoLevel || entries[0].Message != "rendered" {
		t.Errorf("Expected info 'rendered', got %v %q", entries[0].Level, entries[0].Message)
	}
	if entries[1].Level != zap.WarnLevel || entries[1].Message != "slow host" {
		t.Errorf("Expected warn 'slow host', got %v %q", entries[1].Level, entries[1].Message)
	}
	if entries[2].Level != zap.ErrorLevel || entries[2].Message != "sink gone" {
		t.Errorf("Expected error 'sink gone', got %v %q", entries[2].Level, entries[2].Message)
	}
}

// TestSetLogger_NilRestoresSilence verifies the silent default comes back.
func TestSetLogger_NilRestoresSilence(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	SetLogger(nil)

	Log("should vanish")

	if n := logs.Len(); n != 0 {
		t.Errorf("Expected no entries after resetting the logger, got %d", n)
	}
}
