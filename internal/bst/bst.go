// Package bst implements an unbalanced binary search tree.
//
// Every algorithm except LevelOrder is recursive. Insertion and removal use
// pointer reinforcement: each recursive call returns the (possibly new) root of
// the subtree it was given, and the caller always stores that return value back
// into its child pointer. This keeps parents correctly linked without parent
// pointers.
//
// The shape of the tree depends on insertion order. Add, Remove, Get and
// Contains are O(log n) on average and O(n) when the tree degenerates into a chain.
package bst

import (
	"cmp"
	"iter"

	"github.com/hastyy/collections/internal/assert"
	"github.com/hastyy/collections/internal/collection"
	"github.com/hastyy/collections/internal/queue"
	"golang.org/x/exp/constraints"
)

// Node is a tree node. The tree owns its nodes; callers may read them to
// inspect the shape but must not keep them across mutating calls.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// BinarySearchTree stores distinct values under a total order.
// For every node, the values in its left subtree compare less than its value
// and the values in its right subtree compare greater.
// BinarySearchTree is not safe for concurrent use.
type BinarySearchTree[T any] struct {
	root    *Node[T]
	size    int
	compare func(a, b T) int
}

// New creates an empty tree ordered by the natural order of T.
func New[T constraints.Ordered]() *BinarySearchTree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when a > b.
// Values that compare equal are duplicates, even when they differ in fields the
// comparison ignores; the tree keeps the first one added.
func NewFunc[T any](compare func(a, b T) int) *BinarySearchTree[T] {
	assert.NonNil(compare, "compare func can't be nil")
	return &BinarySearchTree[T]{compare: compare}
}

// FromSeq creates a tree ordered by the natural order of T and adds every value
// of seq in iteration order. The resulting shape depends on that order.
func FromSeq[T constraints.Ordered](seq iter.Seq[T]) (*BinarySearchTree[T], error) {
	return FromSeqFunc(seq, cmp.Compare[T])
}

// FromSeqFunc is FromSeq with a custom order (see NewFunc).
// Returns collection.ErrInvalidInput if seq yields an absent value.
func FromSeqFunc[T any](seq iter.Seq[T], compare func(a, b T) int) (*BinarySearchTree[T], error) {
	tree := NewFunc(compare)
	for v := range seq {
		if err := tree.Add(v); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// Add inserts v as a new leaf. Adding a value already in the tree does nothing.
// Returns collection.ErrInvalidInput if v is absent.
func (t *BinarySearchTree[T]) Add(v T) error {
	if collection.IsAbsent(v) {
		return collection.InvalidInputErrorf("can't add an absent value")
	}
	t.root = t.add(t.root, v)
	return nil
}

func (t *BinarySearchTree[T]) add(node *Node[T], v T) *Node[T] {
	if node == nil {
		t.size++
		return &Node[T]{Value: v}
	}

	switch c := t.compare(v, node.Value); {
	case c < 0:
		node.Left = t.add(node.Left, v)
	case c > 0:
		node.Right = t.add(node.Right, v)
	}
	return node
}

// Remove removes the value equal to v and returns the value that was stored.
// A node with two children takes the value of its in-order successor, and the
// successor is removed from the right subtree instead.
// Returns collection.ErrValueNotFound if no value is equal to v and
// collection.ErrInvalidInput if v is absent.
func (t *BinarySearchTree[T]) Remove(v T) (T, error) {
	var zero T
	if collection.IsAbsent(v) {
		return zero, collection.InvalidInputErrorf("can't remove an absent value")
	}

	var removed T
	root, found := t.remove(t.root, v, &removed)
	if !found {
		return zero, collection.ValueNotFoundErrorf("%v is not in the tree", v)
	}

	t.root = root
	t.size--
	return removed, nil
}

// remove returns the new root of the subtree and whether v was found in it.
// On a miss the subtree is returned untouched.
func (t *BinarySearchTree[T]) remove(node *Node[T], v T, removed *T) (*Node[T], bool) {
	if node == nil {
		return nil, false
	}

	var found bool
	switch c := t.compare(v, node.Value); {
	case c < 0:
		node.Left, found = t.remove(node.Left, v, removed)
		return node, found
	case c > 0:
		node.Right, found = t.remove(node.Right, v, removed)
		return node, found
	}

	*removed = node.Value

	switch {
	case node.Left == nil && node.Right == nil:
		return nil, true
	case node.Left == nil:
		child := node.Right
		node.Right = nil
		return child, true
	case node.Right == nil:
		child := node.Left
		node.Left = nil
		return child, true
	}

	var successor T
	node.Right = t.removeSuccessor(node.Right, &successor)
	node.Value = successor
	return node, true
}

// removeSuccessor unlinks the leftmost node of the subtree rooted at node,
// storing its value in successor, and returns the new subtree root.
func (t *BinarySearchTree[T]) removeSuccessor(node *Node[T], successor *T) *Node[T] {
	assert.NonNil(node, "successor search reached an empty subtree")

	if node.Left == nil {
		*successor = node.Value
		child := node.Right
		node.Right = nil
		return child
	}

	node.Left = t.removeSuccessor(node.Left, successor)
	return node
}

// Get returns the stored value equal to v, which may differ from v in fields
// the order ignores.
// Returns collection.ErrValueNotFound if no value is equal to v and
// collection.ErrInvalidInput if v is absent.
func (t *BinarySearchTree[T]) Get(v T) (T, error) {
	var zero T
	if collection.IsAbsent(v) {
		return zero, collection.InvalidInputErrorf("can't get an absent value")
	}

	node := t.get(t.root, v)
	if node == nil {
		return zero, collection.ValueNotFoundErrorf("%v is not in the tree", v)
	}
	return node.Value, nil
}

func (t *BinarySearchTree[T]) get(node *Node[T], v T) *Node[T] {
	if node == nil {
		return nil
	}

	switch c := t.compare(v, node.Value); {
	case c < 0:
		return t.get(node.Left, v)
	case c > 0:
		return t.get(node.Right, v)
	default:
		return node
	}
}

// Contains reports whether Get would succeed for v.
func (t *BinarySearchTree[T]) Contains(v T) bool {
	_, err := t.Get(v)
	return err == nil
}

// Height returns the number of edges on the longest root-to-leaf path.
// A single node has height 0 and an empty tree has height -1.
func (t *BinarySearchTree[T]) Height() int {
	return height(t.root)
}

func height[T any](node *Node[T]) int {
	if node == nil {
		return -1
	}
	return 1 + max(height(node.Left), height(node.Right))
}

func (t *BinarySearchTree[T]) PreOrder() []T {
	values := make([]T, 0, t.size)
	preOrder(t.root, &values)
	return values
}

func preOrder[T any](node *Node[T], values *[]T) {
	if node == nil {
		return
	}
	*values = append(*values, node.Value)
	preOrder(node.Left, values)
	preOrder(node.Right, values)
}

// InOrder returns the values in ascending order.
func (t *BinarySearchTree[T]) InOrder() []T {
	values := make([]T, 0, t.size)
	inOrder(t.root, &values)
	return values
}

func inOrder[T any](node *Node[T], values *[]T) {
	if node == nil {
		return
	}
	inOrder(node.Left, values)
	*values = append(*values, node.Value)
	inOrder(node.Right, values)
}

func (t *BinarySearchTree[T]) PostOrder() []T {
	values := make([]T, 0, t.size)
	postOrder(t.root, &values)
	return values
}

func postOrder[T any](node *Node[T], values *[]T) {
	if node == nil {
		return
	}
	postOrder(node.Left, values)
	postOrder(node.Right, values)
	*values = append(*values, node.Value)
}

// LevelOrder returns the values breadth first, left to right within a level.
func (t *BinarySearchTree[T]) LevelOrder() []T {
	values := make([]T, 0, t.size)
	if t.root == nil {
		return values
	}

	pending := queue.NewLinkedQueue[*Node[T]]()
	enqueue := func(node *Node[T]) {
		err := pending.Enqueue(node)
		assert.OK(err == nil, "enqueueing a node failed: %v", err)
	}

	enqueue(t.root)
	for !pending.IsEmpty() {
		node, err := pending.Dequeue()
		assert.OK(err == nil, "dequeueing from a non-empty queue failed: %v", err)

		values = append(values, node.Value)
		if node.Left != nil {
			enqueue(node.Left)
		}
		if node.Right != nil {
			enqueue(node.Right)
		}
	}

	assert.OK(len(values) == t.size, "level order visited %d nodes, size is %d", len(values), t.size)
	return values
}

// Clear releases every node in post order and empties the tree.
func (t *BinarySearchTree[T]) Clear() {
	release(t.root)
	t.root = nil
	t.size = 0
}

func release[T any](node *Node[T]) {
	if node == nil {
		return
	}
	release(node.Left)
	release(node.Right)
	node.Left = nil
	node.Right = nil
}

// Root returns the root node, or nil if the tree is empty.
func (t *BinarySearchTree[T]) Root() *Node[T] {
	return t.root
}

func (t *BinarySearchTree[T]) Size() int {
	return t.size
}
