package queue

import (
	"log/slog"

	"github.com/hastyy/collections/internal/assert"
	"github.com/hastyy/collections/internal/collection"
)

// ArrayQueue is a FIFO queue backed by a circular buffer.
// The live elements occupy size slots starting at front, wrapping around the end of the buffer.
// When the buffer is full the next Enqueue doubles it and moves the live elements to the
// beginning of the new buffer, so Enqueue is amortized O(1). The buffer never shrinks.
// ArrayQueue is not safe for concurrent use.
type ArrayQueue[T any] struct {
	backingArray []collection.Option[T]
	front        int
	size         int
	logger       *slog.Logger
}

// NewArrayQueue creates an empty ArrayQueue.
// Unset config values are taken from collection.DefaultConfig.
func NewArrayQueue[T any](cfg collection.Config) *ArrayQueue[T] {
	cfg = cfg.CombineWith(collection.DefaultConfig)

	assert.OK(cfg.InitialCapacity > 0, "InitialCapacity must be > 0, got %d", cfg.InitialCapacity)
	assert.NonNil(cfg.Logger, "Logger can't be nil")

	return &ArrayQueue[T]{
		backingArray: make([]collection.Option[T], cfg.InitialCapacity),
		logger:       cfg.Logger,
	}
}

// Enqueue adds v to the back of the queue.
// Returns collection.ErrInvalidInput if v is absent (see collection.IsAbsent).
func (q *ArrayQueue[T]) Enqueue(v T) error {
	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't enqueue an absent value")
	}

	if q.size == len(q.backingArray) {
		q.grow()
	}

	q.backingArray[(q.front+q.size)%len(q.backingArray)] = collection.Some(v)
	q.size++

	return nil
}

// Dequeue removes and returns the element at the front of the queue.
// The vacated slot is cleared. front is not reset when the queue becomes empty.
// Returns collection.ErrEmptyCollection if the queue is empty.
func (q *ArrayQueue[T]) Dequeue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't dequeue from an empty queue")
	}

	v, ok := q.backingArray[q.front].Get()
	assert.OK(ok, "front slot %d of a queue with size %d is vacant", q.front, q.size)

	q.backingArray[q.front] = collection.None[T]()
	q.front = (q.front + 1) % len(q.backingArray)
	q.size--

	return v, nil
}

// Peek returns the element at the front of the queue without removing it.
// Returns collection.ErrEmptyCollection if the queue is empty.
func (q *ArrayQueue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collection.EmptyCollectionErrorf("can't peek into an empty queue")
	}

	v, ok := q.backingArray[q.front].Get()
	assert.OK(ok, "front slot %d of a queue with size %d is vacant", q.front, q.size)

	return v, nil
}

func (q *ArrayQueue[T]) Size() int {
	return q.size
}

func (q *ArrayQueue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *ArrayQueue[T]) Capacity() int {
	return len(q.backingArray)
}

// Front returns the index of the slot holding the front of the queue.
func (q *ArrayQueue[T]) Front() int {
	return q.front
}

// BackingArray returns a copy of the backing array, vacant slots included.
func (q *ArrayQueue[T]) BackingArray() []collection.Option[T] {
	return append([]collection.Option[T](nil), q.backingArray...)
}

// grow doubles the backing array, unrolling the circular window into slots [0, size).
func (q *ArrayQueue[T]) grow() {
	capacity := len(q.backingArray)
	grown := make([]collection.Option[T], 2*capacity)
	for i := range capacity {
		grown[i] = q.backingArray[(q.front+i)%capacity]
	}

	q.logger.Debug("growing backing array", "collection", "ArrayQueue", "from", capacity, "to", len(grown))

	q.backingArray = grown
	q.front = 0
}
