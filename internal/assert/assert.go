// Package assert provides runtime tripwires to validate state invariants.
// It is a fail-fast mechanism that immediately crashes when a collection
// reaches a state its own operations should never produce (a size that
// disagrees with its links, a tail that is not the last node, a backing
// array smaller than its contents).
// Caller mistakes that can be recovered from are reported as errors instead.
package assert

import (
	"fmt"
	"reflect"
)

func OK(cond bool, format string, args ...any) {
	if !cond {
		panic(failedMsgf(format, args...))
	}
}

func NonNil(v any, format string, args ...any) {
	if IsNil(v) {
		panic(failedMsgf(format, args...))
	}
}

func NonZero[T comparable](v T, format string, args ...any) {
	var zero T
	if v == zero {
		panic(failedMsgf(format, args...))
	}
}

func NonEmpty[T any](s []T, format string, args ...any) {
	if len(s) == 0 {
		panic(failedMsgf(format, args...))
	}
}

// IsNil reports whether i is nil or holds a nil value of a nilable kind.
// A typed nil pointer stored in an interface is nil here, unlike a plain i == nil check.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func failedMsgf(format string, args ...any) string {
	return fmt.Sprintln("assertion failed:", fmt.Sprintf(format, args...))
}
