package list

import (
	"iter"

	"github.com/hastyy/collections/internal/assert"
	"github.com/hastyy/collections/internal/collection"
)

// SinglyLinkedList is an indexed list over a singly linked chain.
// It keeps head and tail pointers, so adding at either end and removing from the
// front are O(1). Removing from the back is O(n) since the new tail can only be
// found by walking from the head.
// SinglyLinkedList is not safe for concurrent use.
//
// Elements are compared with ==. When T is an interface type, RemoveLastOccurrence
// panics if it compares two elements holding the same non-comparable dynamic type
// (a slice, map or func).
type SinglyLinkedList[T comparable] struct {
	head *collection.Node[T]
	tail *collection.Node[T]
	size int
}

func New[T comparable]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// AddAtIndex inserts v so that it ends up at position index.
// Valid indexes are [0, size]. It is O(1) for 0 and size and O(n) otherwise.
// Returns collection.ErrIndexOutOfRange for an invalid index and collection.ErrInvalidInput
// for an absent v, in that order of precedence.
func (l *SinglyLinkedList[T]) AddAtIndex(index int, v T) error {
	if index < 0 || index > l.size {
		return collection.IndexOutOfRangeErrorf("index %d out of range [0, %d]", index, l.size)
	}

	switch index {
	case 0:
		return l.AddToFront(v)
	case l.size:
		return l.AddToBack(v)
	}

	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't add an absent value")
	}

	prev := l.nodeAt(index - 1)
	node := collection.NewNode(v)
	node.Next = prev.Next
	prev.Next = node
	l.size++

	return nil
}

// AddToFront inserts v at the head in O(1).
func (l *SinglyLinkedList[T]) AddToFront(v T) error {
	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't add an absent value")
	}

	node := collection.NewNode(v)
	if l.size == 0 {
		l.tail = node
	} else {
		node.Next = l.head
	}
	l.head = node
	l.size++

	return nil
}

// AddToBack inserts v at the tail in O(1).
func (l *SinglyLinkedList[T]) AddToBack(v T) error {
	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't add an absent value")
	}

	node := collection.NewNode(v)
	if l.size == 0 {
		l.head = node
	} else {
		l.tail.Next = node
	}
	l.tail = node
	l.size++

	return nil
}

// RemoveAtIndex removes and returns the element at index.
// Valid indexes are [0, size). It is O(1) for 0 and O(n) otherwise.
func (l *SinglyLinkedList[T]) RemoveAtIndex(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, collection.IndexOutOfRangeErrorf("index %d out of range [0, %d)", index, l.size)
	}

	switch index {
	case 0:
		return l.RemoveFromFront()
	case l.size - 1:
		return l.RemoveFromBack()
	}

	return l.unlinkAfter(l.nodeAt(index - 1)), nil
}

// RemoveFromFront removes and returns the first element in O(1).
// Returns collection.ErrEmptyCollection if the list is empty.
func (l *SinglyLinkedList[T]) RemoveFromFront() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't remove from an empty list")
	}
	return l.unlinkAfter(nil), nil
}

// RemoveFromBack removes and returns the last element in O(n).
// Returns collection.ErrEmptyCollection if the list is empty.
func (l *SinglyLinkedList[T]) RemoveFromBack() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't remove from an empty list")
	}

	var prev *collection.Node[T]
	if l.size > 1 {
		prev = l.nodeAt(l.size - 2)
	}
	return l.unlinkAfter(prev), nil
}

// Get returns the element at index.
// It is O(1) for 0 and size-1 and O(n) otherwise.
func (l *SinglyLinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, collection.IndexOutOfRangeErrorf("index %d out of range [0, %d)", index, l.size)
	}
	return l.nodeAt(index).Value, nil
}

// RemoveLastOccurrence removes the last element equal to v and returns the stored element.
// It makes a single forward pass remembering the predecessor of the latest match.
// Returns collection.ErrInvalidInput for an absent v and collection.ErrValueNotFound
// when no element is equal to v.
// It panics when the == comparison does (see SinglyLinkedList).
func (l *SinglyLinkedList[T]) RemoveLastOccurrence(v T) (T, error) {
	var zero T
	if collection.IsAbsent(v) {
		return zero, collection.InvalidInputErrorf("can't search for an absent value")
	}

	var (
		found     bool
		matchPrev *collection.Node[T]
		prev      *collection.Node[T]
	)
	for node := l.head; node != nil; prev, node = node, node.Next {
		if node.Value == v {
			found = true
			matchPrev = prev
		}
	}

	if !found {
		return zero, collection.ValueNotFoundErrorf("%v is not in the list", v)
	}
	return l.unlinkAfter(matchPrev), nil
}

// ToArray returns the elements in order in a newly allocated slice.
func (l *SinglyLinkedList[T]) ToArray() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// All returns an iterator over the elements from head to tail.
// The list must not be modified during iteration.
func (l *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.Next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Clear drops every element, unlinking the chain node by node.
func (l *SinglyLinkedList[T]) Clear() {
	for node := l.head; node != nil; {
		next := node.Next
		node.Next = nil
		node = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *SinglyLinkedList[T]) Size() int {
	return l.size
}

// Head returns the first node, or nil if the list is empty.
func (l *SinglyLinkedList[T]) Head() *collection.Node[T] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *SinglyLinkedList[T]) Tail() *collection.Node[T] {
	return l.tail
}

// nodeAt walks to the node at a valid index, short-circuiting to the tail.
func (l *SinglyLinkedList[T]) nodeAt(index int) *collection.Node[T] {
	assert.OK(index >= 0 && index < l.size, "index %d out of range [0, %d)", index, l.size)

	if index == l.size-1 {
		return l.tail
	}

	node := l.head
	for range index {
		node = node.Next
	}
	return node
}

// unlinkAfter removes the node following prev, or the head when prev is nil,
// and returns its value. The removed node is detached from the chain and the
// tail is repaired when the removed node was the tail.
func (l *SinglyLinkedList[T]) unlinkAfter(prev *collection.Node[T]) T {
	removed := l.head
	if prev != nil {
		removed = prev.Next
	}
	assert.NonNil(removed, "unlinking past the end of a list with size %d", l.size)

	if prev == nil {
		l.head = removed.Next
	} else {
		prev.Next = removed.Next
	}

	if removed == l.tail {
		l.tail = prev
	}
	removed.Next = nil
	l.size--

	assert.OK((l.size == 0) == (l.head == nil && l.tail == nil), "head/tail out of sync with size %d", l.size)

	return removed.Value
}
