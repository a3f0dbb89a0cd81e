package replay

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hastyy/collections/internal/bst"
	"github.com/hastyy/collections/internal/list"
	"github.com/hastyy/collections/internal/logging"
	"github.com/hastyy/collections/internal/queue"
	"github.com/hastyy/collections/internal/stack"
)

// Handler applies a decoded Command and produces its Reply.
type Handler interface {
	Execute(ctx context.Context, cmd Command) (Reply, error)
}

// HandlerFunc can wrap a function with the Execute format and turn it into a Handler.
type HandlerFunc func(ctx context.Context, cmd Command) (Reply, error)

// Execute implements the Handler interface.
func (h HandlerFunc) Execute(ctx context.Context, cmd Command) (Reply, error) {
	return h(ctx, cmd)
}

type fifo interface {
	Enqueue(v string) error
	Dequeue() (string, error)
	Peek() (string, error)
	Size() int
}

type lifo interface {
	Push(v string) error
	Pop() (string, error)
	Peek() (string, error)
	Size() int
}

// Executor owns one collection of the configured Kind and applies Commands to it.
// Errors from the collection are returned unchanged, so callers can extract their
// collection.ErrorCode. Arguments that can't be parsed produce an Error with ErrCodeBadFormat.
// Executor is not safe for concurrent use.
type Executor struct {
	kind Kind
	exec func(cmd Command) (Reply, error)
	size func() int
}

// NewExecutor creates an Executor over an empty collection.
// Unset config values are taken from DefaultConfig.
// Returns Error with ErrCodeUnknownKind if cfg.Kind is not a known Kind.
func NewExecutor(cfg Config) (*Executor, error) {
	cfg = cfg.CombineWith(DefaultConfig)

	if _, err := ParseKind(string(cfg.Kind)); err != nil {
		return nil, err
	}

	e := &Executor{kind: cfg.Kind}
	switch cfg.Kind {
	case KindArrayQueue:
		e.useQueue(queue.NewArrayQueue[string](cfg.Collection))
	case KindLinkedQueue:
		e.useQueue(queue.NewLinkedQueue[string]())
	case KindArrayStack:
		e.useStack(stack.NewArrayStack[string](cfg.Collection))
	case KindLinkedStack:
		e.useStack(stack.NewLinkedStack[string]())
	case KindList:
		e.useList(list.New[string]())
	case KindBST:
		e.useTree(bst.New[int]())
	}
	return e, nil
}

// Execute implements the Handler interface.
func (e *Executor) Execute(ctx context.Context, cmd Command) (Reply, error) {
	reply, err := e.exec(cmd)
	logging.Record(ctx,
		slog.String("kind", string(e.kind)),
		slog.Int("size", e.size()),
	)
	return reply, err
}

func (e *Executor) Kind() Kind {
	return e.kind
}

func (e *Executor) useQueue(q fifo) {
	e.size = q.Size
	e.exec = func(cmd Command) (Reply, error) {
		switch cmd.Op {
		case OpEnqueue:
			return empty(q.Enqueue(cmd.Args[0]))
		case OpDequeue:
			return text(q.Dequeue())
		case OpPeek:
			return text(q.Peek())
		case OpSize:
			return count(q.Size())
		}
		return unsupported(e.kind, cmd)
	}
}

func (e *Executor) useStack(s lifo) {
	e.size = s.Size
	e.exec = func(cmd Command) (Reply, error) {
		switch cmd.Op {
		case OpPush:
			return empty(s.Push(cmd.Args[0]))
		case OpPop:
			return text(s.Pop())
		case OpPeek:
			return text(s.Peek())
		case OpSize:
			return count(s.Size())
		}
		return unsupported(e.kind, cmd)
	}
}

func (e *Executor) useList(l *list.SinglyLinkedList[string]) {
	e.size = l.Size
	e.exec = func(cmd Command) (Reply, error) {
		switch cmd.Op {
		case OpAdd:
			index, err := parseInt(cmd.Args[0])
			if err != nil {
				return "", err
			}
			return empty(l.AddAtIndex(index, cmd.Args[1]))
		case OpAddFront:
			return empty(l.AddToFront(cmd.Args[0]))
		case OpAddBack:
			return empty(l.AddToBack(cmd.Args[0]))
		case OpRemove:
			index, err := parseInt(cmd.Args[0])
			if err != nil {
				return "", err
			}
			return text(l.RemoveAtIndex(index))
		case OpRemoveFront:
			return text(l.RemoveFromFront())
		case OpRemoveBack:
			return text(l.RemoveFromBack())
		case OpGet:
			index, err := parseInt(cmd.Args[0])
			if err != nil {
				return "", err
			}
			return text(l.Get(index))
		case OpRemoveLast:
			return text(l.RemoveLastOccurrence(cmd.Args[0]))
		case OpToArray:
			return sequence(l.ToArray())
		case OpClear:
			l.Clear()
			return "", nil
		case OpSize:
			return count(l.Size())
		}
		return unsupported(e.kind, cmd)
	}
}

func (e *Executor) useTree(t *bst.BinarySearchTree[int]) {
	e.size = t.Size
	e.exec = func(cmd Command) (Reply, error) {
		var (
			v   int
			err error
		)
		if len(cmd.Args) == 1 {
			if v, err = parseInt(cmd.Args[0]); err != nil {
				return "", err
			}
		}

		switch cmd.Op {
		case OpAdd:
			return empty(t.Add(v))
		case OpRemove:
			return number(t.Remove(v))
		case OpGet:
			return number(t.Get(v))
		case OpContains:
			return Reply(strconv.FormatBool(t.Contains(v))), nil
		case OpHeight:
			return count(t.Height())
		case OpPreOrder:
			return sequence(t.PreOrder())
		case OpInOrder:
			return sequence(t.InOrder())
		case OpPostOrder:
			return sequence(t.PostOrder())
		case OpLevelOrder:
			return sequence(t.LevelOrder())
		case OpClear:
			t.Clear()
			return "", nil
		case OpSize:
			return count(t.Size())
		}
		return unsupported(e.kind, cmd)
	}
}

func empty(err error) (Reply, error) {
	return "", err
}

func text(v string, err error) (Reply, error) {
	if err != nil {
		return "", err
	}
	return Reply(v), nil
}

func number(v int, err error) (Reply, error) {
	if err != nil {
		return "", err
	}
	return Reply(strconv.Itoa(v)), nil
}

func count(n int) (Reply, error) {
	return Reply(strconv.Itoa(n)), nil
}

func sequence[T any](values []T) (Reply, error) {
	return Reply(fmt.Sprint(values)), nil
}

func unsupported(kind Kind, cmd Command) (Reply, error) {
	return "", BadFormatErrorf("unsupported op %q for %s", cmd.Op, kind)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, BadFormatErrorf("%q is not an integer", s)
	}
	return n, nil
}
