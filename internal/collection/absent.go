package collection

import "github.com/hastyy/collections/internal/assert"

// IsAbsent reports whether v stands for "no value": an untyped nil, or a nil
// pointer, map, slice, channel, func or interface.
// Zero values of other kinds ("" or 0) are ordinary payloads.
func IsAbsent(v any) bool {
	return assert.IsNil(v)
}
