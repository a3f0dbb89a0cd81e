package testutil

import (
	"fmt"
	"strings"
	"testing"
)

func AssertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but code did not panic")
		}
	}()
	f()
}

// AssertPanicsWith expects f to panic with a value whose printed form contains substr.
func AssertPanicsWith(t *testing.T, substr string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but code did not panic", substr)
			return
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q but got: %s", substr, msg)
		}
	}()
	f()
}

func AssertNotPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Expected no panic but code panicked: %v", r)
		}
	}()
	f()
}
