package stack

import (
	"log/slog"

	"github.com/hastyy/collections/internal/assert"
	"github.com/hastyy/collections/internal/collection"
)

// ArrayStack is a LIFO stack backed by a linear buffer.
// The bottom of the stack is slot 0 and the top is slot size-1.
// When the buffer is full the next Push doubles it, so Push is amortized O(1).
// ArrayStack is not safe for concurrent use.
type ArrayStack[T any] struct {
	backingArray []collection.Option[T]
	size         int
	logger       *slog.Logger
}

// NewArrayStack creates an empty ArrayStack.
// Unset config values are taken from collection.DefaultConfig.
func NewArrayStack[T any](cfg collection.Config) *ArrayStack[T] {
	cfg = cfg.CombineWith(collection.DefaultConfig)

	assert.OK(cfg.InitialCapacity > 0, "InitialCapacity must be > 0, got %d", cfg.InitialCapacity)
	assert.NonNil(cfg.Logger, "Logger can't be nil")

	return &ArrayStack[T]{
		backingArray: make([]collection.Option[T], cfg.InitialCapacity),
		logger:       cfg.Logger,
	}
}

// Push adds v to the top of the stack.
// Returns collection.ErrInvalidInput if v is absent.
func (s *ArrayStack[T]) Push(v T) error {
	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't push an absent value")
	}

	if s.size == len(s.backingArray) {
		s.grow()
	}

	s.backingArray[s.size] = collection.Some(v)
	s.size++

	return nil
}

// Pop removes and returns the top of the stack, clearing its slot.
// Returns collection.ErrEmptyCollection if the stack is empty.
func (s *ArrayStack[T]) Pop() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't pop from an empty stack")
	}

	top := s.size - 1
	v, ok := s.backingArray[top].Get()
	assert.OK(ok, "top slot %d of a stack with size %d is vacant", top, s.size)

	s.backingArray[top] = collection.None[T]()
	s.size--

	return v, nil
}

// Peek returns the top of the stack without removing it.
// Returns collection.ErrEmptyCollection if the stack is empty.
func (s *ArrayStack[T]) Peek() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't peek into an empty stack")
	}

	v, ok := s.backingArray[s.size-1].Get()
	assert.OK(ok, "top slot %d of a stack with size %d is vacant", s.size-1, s.size)

	return v, nil
}

func (s *ArrayStack[T]) Size() int {
	return s.size
}

func (s *ArrayStack[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *ArrayStack[T]) Capacity() int {
	return len(s.backingArray)
}

// BackingArray returns a copy of the backing array, vacant slots included.
func (s *ArrayStack[T]) BackingArray() []collection.Option[T] {
	return append([]collection.Option[T](nil), s.backingArray...)
}

func (s *ArrayStack[T]) grow() {
	capacity := len(s.backingArray)
	grown := make([]collection.Option[T], 2*capacity)
	copy(grown, s.backingArray)

	s.logger.Debug("growing backing array", "collection", "ArrayStack", "from", capacity, "to", len(grown))

	s.backingArray = grown
}
