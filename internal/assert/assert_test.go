package assert

import (
	"testing"

	"github.com/hastyy/collections/internal/testutil"
)

func TestOK(t *testing.T) {
	testutil.AssertPanicsWith(t, "assertion failed: size 3 != 2", func() {
		OK(false, "size %d != %d", 3, 2)
	})
	testutil.AssertNotPanics(t, func() {
		OK(true, "unreachable")
	})
}

func TestNonNil(t *testing.T) {
	var (
		nilPtr   *struct{}
		typedNil any = nilPtr
	)

	for name, v := range map[string]any{
		"untyped nil":        nil,
		"nil pointer in any": typedNil,
		"nil slice":          []int(nil),
		"nil func":           (func())(nil),
	} {
		t.Run(name, func(t *testing.T) {
			testutil.AssertPanicsWith(t, "tail is nil", func() {
				NonNil(v, "tail is nil")
			})
		})
	}

	testutil.AssertNotPanics(t, func() {
		NonNil(struct{}{}, "unreachable")
		NonNil(&struct{}{}, "unreachable")
	})
}

func TestNonZero(t *testing.T) {
	type kind string

	testutil.AssertPanicsWith(t, "kind can't be empty", func() {
		NonZero(kind(""), "kind can't be empty")
	})
	testutil.AssertPanicsWith(t, "capacity is 0", func() {
		NonZero(0, "capacity is %d", 0)
	})
	testutil.AssertNotPanics(t, func() {
		NonZero(kind("list"), "unreachable")
		NonZero(-1, "unreachable")
	})
}

func TestNonEmpty(t *testing.T) {
	testutil.AssertPanicsWith(t, `no fields in "  "`, func() {
		NonEmpty([]string(nil), "no fields in %q", "  ")
	})
	testutil.AssertPanics(t, func() {
		NonEmpty([]int{}, "empty")
	})
	testutil.AssertNotPanics(t, func() {
		NonEmpty([]string{"peek"}, "unreachable")
	})
}

func TestIsNil(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []int
	var nilChan chan int
	var nilFunc func()
	var nilIface error

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"nil chan", nilChan, true},
		{"nil func", nilFunc, true},
		{"nil interface", nilIface, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"empty struct", struct{}{}, false},
		{"non-nil pointer", new(int), false},
		{"empty non-nil slice", []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNil(tt.v); got != tt.want {
				t.Errorf("IsNil(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
