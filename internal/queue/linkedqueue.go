package queue

import (
	"github.com/hastyy/collections/internal/assert"
	"github.com/hastyy/collections/internal/collection"
)

// LinkedQueue is a FIFO queue backed by a singly linked chain.
// Elements are enqueued at the tail and dequeued at the head, both in O(1).
// LinkedQueue is not safe for concurrent use.
type LinkedQueue[T any] struct {
	head *collection.Node[T]
	tail *collection.Node[T]
	size int
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue adds v to the back of the queue.
// Returns collection.ErrInvalidInput if v is absent.
func (q *LinkedQueue[T]) Enqueue(v T) error {
	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't enqueue an absent value")
	}

	node := collection.NewNode(v)
	if q.size == 0 {
		q.head = node
	} else {
		q.tail.Next = node
	}
	q.tail = node
	q.size++

	return nil
}

// Dequeue removes and returns the element at the front of the queue.
// Returns collection.ErrEmptyCollection if the queue is empty.
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't dequeue from an empty queue")
	}

	removed := q.head
	q.head = removed.Next
	removed.Next = nil
	q.size--

	if q.size == 0 {
		assert.OK(q.head == nil, "head must be nil once the queue is empty")
		q.tail = nil
	}

	return removed.Value, nil
}

// Peek returns the element at the front of the queue without removing it.
// Returns collection.ErrEmptyCollection if the queue is empty.
func (q *LinkedQueue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't peek into an empty queue")
	}
	return q.head.Value, nil
}

// Clear drops every element, unlinking the chain node by node.
func (q *LinkedQueue[T]) Clear() {
	for node := q.head; node != nil; {
		next := node.Next
		node.Next = nil
		node = next
	}
	q.head = nil
	q.tail = nil
	q.size = 0
}

func (q *LinkedQueue[T]) Size() int {
	return q.size
}

func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Head returns the first node of the chain, or nil if the queue is empty.
func (q *LinkedQueue[T]) Head() *collection.Node[T] {
	return q.head
}

// Tail returns the last node of the chain, or nil if the queue is empty.
func (q *LinkedQueue[T]) Tail() *collection.Node[T] {
	return q.tail
}
