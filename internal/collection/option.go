package collection

// Option holds either a value or nothing.
// Array-backed collections store their slots as Options so that a vacant slot
// is never confused with a stored zero value (an empty string, a 0).
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and true, or the zero value and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}
