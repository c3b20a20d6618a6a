package core

import (
	"testing"
	"time"
)

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected function to run")
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	called := false
	SetCrashCleanup(func() { called = true })
	defer SetCrashCleanup(nil)

	HandleCrash(nil)
	if called {
		t.Error("Expected cleanup not to run without a panic value")
	}
	if crashCleanup.Load() == nil {
		t.Error("Expected cleanup to stay registered")
	}
}

func TestSetCrashCleanupClear(t *testing.T) {
	SetCrashCleanup(func() {})
	SetCrashCleanup(nil)
	if crashCleanup.Load() != nil {
		t.Error("Expected cleanup cleared")
	}
}
