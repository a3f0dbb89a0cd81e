package collection

// Node is a link in a singly linked chain.
// The structure that allocated a node owns it; callers may walk Next to inspect
// the chain but must not keep nodes across mutating calls.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}
