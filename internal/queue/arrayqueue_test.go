package queue

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/hastyy/collections/internal/collection"
	"github.com/hastyy/collections/internal/testutil"
	"github.com/stretchr/testify/require"
)

// slots builds an expected backing array; indexes missing from values are vacant.
func slots(capacity int, values map[int]string) []collection.Option[string] {
	s := make([]collection.Option[string], capacity)
	for i, v := range values {
		s[i] = collection.Some(v)
	}
	return s
}

func TestArrayQueue_Initialization(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{})

	require.Equal(0, q.Size())
	require.True(q.IsEmpty())
	require.Equal(collection.DefaultConfig.InitialCapacity, q.Capacity())
	require.Equal(slots(9, nil), q.BackingArray())
}

func TestArrayQueue_New_InvalidCapacityPanics(t *testing.T) {
	testutil.AssertPanicsWith(t, "InitialCapacity must be > 0", func() {
		NewArrayQueue[string](collection.Config{InitialCapacity: -3})
	})
}

func TestArrayQueue_Enqueue(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{})
	for _, v := range []string{"0a", "1a", "2a", "3a", "4a"} {
		require.NoError(q.Enqueue(v))
	}

	require.Equal(5, q.Size())
	require.Equal(slots(9, map[int]string{0: "0a", 1: "1a", 2: "2a", 3: "3a", 4: "4a"}), q.BackingArray())
}

func TestArrayQueue_Enqueue_EmptyStringIsAValue(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{})
	require.NoError(q.Enqueue(""))
	require.Equal(1, q.Size())

	v, err := q.Dequeue()
	require.NoError(err)
	require.Equal("", v)
}

func TestArrayQueue_Enqueue_AbsentValue(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[*int](collection.Config{})
	one := 1
	require.NoError(q.Enqueue(&one))

	err := q.Enqueue(nil)
	require.ErrorIs(err, collection.ErrInvalidInput)
	require.Equal(1, q.Size())

	v, err := q.Peek()
	require.NoError(err)
	require.Same(&one, v)
}

func TestArrayQueue_Dequeue(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{})
	temp := "0a"
	require.NoError(q.Enqueue(temp))
	for _, v := range []string{"1a", "2a", "3a", "4a", "5a"} {
		require.NoError(q.Enqueue(v))
	}
	require.Equal(6, q.Size())

	v, err := q.Dequeue()
	require.NoError(err)
	require.Equal(temp, v)
	require.Equal(5, q.Size())
	require.Equal(1, q.Front())

	// The dequeued slot is vacant again.
	require.Equal(slots(9, map[int]string{1: "1a", 2: "2a", 3: "3a", 4: "4a", 5: "5a"}), q.BackingArray())
}

func TestArrayQueue_Dequeue_Empty(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{})

	_, err := q.Dequeue()
	require.ErrorIs(err, collection.ErrEmptyCollection)
	require.Equal(0, q.Size())
	require.Equal(0, q.Front())
}

func TestArrayQueue_Dequeue_FrontNotResetWhenEmptied(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{})
	require.NoError(q.Enqueue("a"))
	require.NoError(q.Enqueue("b"))
	_, _ = q.Dequeue()
	_, _ = q.Dequeue()

	require.True(q.IsEmpty())
	require.Equal(2, q.Front())
	require.Equal(slots(9, nil), q.BackingArray())
}

func TestArrayQueue_Peek(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{})
	_, err := q.Peek()
	require.ErrorIs(err, collection.ErrEmptyCollection)

	for _, v := range []string{"0a", "1a", "2a", "3a", "4a"} {
		require.NoError(q.Enqueue(v))
	}

	v, err := q.Peek()
	require.NoError(err)
	require.Equal("0a", v)
	require.Equal(5, q.Size())
}

func TestArrayQueue_Wraparound(t *testing.T) {
	require := require.New(t)

	q := NewArrayQueue[string](collection.Config{InitialCapacity: 4})
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(q.Enqueue(v))
	}
	_, _ = q.Dequeue()
	_, _ = q.Dequeue()
	require.NoError(q.Enqueue("d"))
	require.NoError(q.Enqueue("e"))

	// Window starts at slot 2 and wraps into slot 0.
	require.Equal(2, q.Front())
	require.Equal(4, q.Capacity())
	require.Equal(slots(4, map[int]string{0: "e", 2: "c", 3: "d"}), q.BackingArray())
}

func TestArrayQueue_Growth_UnrollsWindow(t *testing.T) {
	require := require.New(t)

	var logs bytes.Buffer
	q := NewArrayQueue[string](collection.Config{
		InitialCapacity: 4,
		Logger:          slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(q.Enqueue(v))
	}
	_, _ = q.Dequeue()
	_, _ = q.Dequeue()
	require.NoError(q.Enqueue("e"))
	require.NoError(q.Enqueue("f"))
	require.Equal(4, q.Capacity())
	require.Empty(logs.String())

	// Full with front=2, the next enqueue doubles and unrolls.
	require.NoError(q.Enqueue("g"))

	require.Equal(8, q.Capacity())
	require.Equal(0, q.Front())
	require.Equal(5, q.Size())
	require.Equal(slots(8, map[int]string{0: "c", 1: "d", 2: "e", 3: "f", 4: "g"}), q.BackingArray())
	require.Contains(logs.String(), `msg="growing backing array"`)
	require.Contains(logs.String(), "from=4 to=8")
}

func TestArrayQueue_MatchesReferenceModel(t *testing.T) {
	require := require.New(t)

	r := rand.New(rand.NewPCG(7, 11))
	q := NewArrayQueue[string](collection.Config{InitialCapacity: 1})
	model := arrayqueue.New()

	for i := range 2_000 {
		switch r.IntN(5) {
		case 0, 1, 2:
			v := fmt.Sprintf("v%d", i)
			capacity := q.Capacity()
			full := q.Size() == capacity
			require.NoError(q.Enqueue(v))
			model.Enqueue(v)
			if full {
				require.Equal(2*capacity, q.Capacity())
			}
		case 3:
			want, ok := model.Dequeue()
			got, err := q.Dequeue()
			if !ok {
				require.ErrorIs(err, collection.ErrEmptyCollection)
				continue
			}
			require.NoError(err)
			require.Equal(want, got)
		case 4:
			want, ok := model.Peek()
			got, err := q.Peek()
			if !ok {
				require.ErrorIs(err, collection.ErrEmptyCollection)
				continue
			}
			require.NoError(err)
			require.Equal(want, got)
		}
		require.Equal(model.Size(), q.Size())
	}

	for _, want := range model.Values() {
		got, err := q.Dequeue()
		require.NoError(err)
		require.Equal(want, got)
	}
	require.True(q.IsEmpty())
}

func BenchmarkArrayQueue_Enqueue(b *testing.B) {
	q := NewArrayQueue[int](collection.Config{})
	for i := 0; b.Loop(); i++ {
		_ = q.Enqueue(i)
	}
}
