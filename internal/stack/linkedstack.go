package stack

import "github.com/hastyy/collections/internal/collection"

// LinkedStack is a LIFO stack backed by a singly linked chain whose head is the top.
// LinkedStack is not safe for concurrent use.
type LinkedStack[T any] struct {
	head *collection.Node[T]
	size int
}

func NewLinkedStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Push adds v to the top of the stack.
// Returns collection.ErrInvalidInput if v is absent.
func (s *LinkedStack[T]) Push(v T) error {
	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't push an absent value")
	}

	node := collection.NewNode(v)
	node.Next = s.head
	s.head = node
	s.size++

	return nil
}

// Pop removes and returns the top of the stack.
// Returns collection.ErrEmptyCollection if the stack is empty.
func (s *LinkedStack[T]) Pop() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't pop from an empty stack")
	}

	removed := s.head
	s.head = removed.Next
	removed.Next = nil
	s.size--

	return removed.Value, nil
}

// Peek returns the top of the stack without removing it.
// Returns collection.ErrEmptyCollection if the stack is empty.
func (s *LinkedStack[T]) Peek() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't peek into an empty stack")
	}
	return s.head.Value, nil
}

func (s *LinkedStack[T]) Clear() {
	for node := s.head; node != nil; {
		next := node.Next
		node.Next = nil
		node = next
	}
	s.head = nil
	s.size = 0
}

func (s *LinkedStack[T]) Size() int {
	return s.size
}

func (s *LinkedStack[T]) IsEmpty() bool {
	return s.size == 0
}

// Head returns the top node, or nil if the stack is empty.
func (s *LinkedStack[T]) Head() *collection.Node[T] {
	return s.head
}
