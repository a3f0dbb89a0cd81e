package replay

// Kind names the collection a replay script drives.
type Kind string

const (
	KindArrayQueue  = Kind("arrayqueue")
	KindLinkedQueue = Kind("linkedqueue")
	KindArrayStack  = Kind("arraystack")
	KindLinkedStack = Kind("linkedstack")
	KindList        = Kind("list")
	KindBST         = Kind("bst")
)

const (
	OpEnqueue     = "enqueue"
	OpDequeue     = "dequeue"
	OpPush        = "push"
	OpPop         = "pop"
	OpPeek        = "peek"
	OpSize        = "size"
	OpClear       = "clear"
	OpAdd         = "add"
	OpAddFront    = "addfront"
	OpAddBack     = "addback"
	OpRemove      = "remove"
	OpRemoveFront = "removefront"
	OpRemoveBack  = "removeback"
	OpGet         = "get"
	OpRemoveLast  = "removelast"
	OpToArray     = "toarray"
	OpContains    = "contains"
	OpHeight      = "height"
	OpPreOrder    = "preorder"
	OpInOrder     = "inorder"
	OpPostOrder   = "postorder"
	OpLevelOrder  = "levelorder"
)

// grammars maps each kind to the ops it accepts and their number of arguments.
// The list "add" op takes an index and a value while the bst one only takes a value.
var grammars = map[Kind]map[string]int{
	KindArrayQueue:  queueGrammar,
	KindLinkedQueue: queueGrammar,
	KindArrayStack:  stackGrammar,
	KindLinkedStack: stackGrammar,
	KindList: {
		OpAdd:         2,
		OpAddFront:    1,
		OpAddBack:     1,
		OpRemove:      1,
		OpRemoveFront: 0,
		OpRemoveBack:  0,
		OpGet:         1,
		OpRemoveLast:  1,
		OpToArray:     0,
		OpClear:       0,
		OpSize:        0,
	},
	KindBST: {
		OpAdd:        1,
		OpRemove:     1,
		OpGet:        1,
		OpContains:   1,
		OpHeight:     0,
		OpPreOrder:   0,
		OpInOrder:    0,
		OpPostOrder:  0,
		OpLevelOrder: 0,
		OpClear:      0,
		OpSize:       0,
	},
}

var queueGrammar = map[string]int{
	OpEnqueue: 1,
	OpDequeue: 0,
	OpPeek:    0,
	OpSize:    0,
}

var stackGrammar = map[string]int{
	OpPush: 1,
	OpPop:  0,
	OpPeek: 0,
	OpSize: 0,
}

// ParseKind validates s against the known kinds.
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if _, ok := grammars[kind]; !ok {
		return "", UnknownKindErrorf("unknown kind %q", s)
	}
	return kind, nil
}

// Command is a single decoded script line.
type Command struct {
	// Line is the 1-based position of the command in its script. It is 0 for
	// commands that were not read from a script.
	Line int
	Op   string
	Args []string
}

// Reply is the textual result of a successful command. Mutations that produce
// no value reply with an empty string.
type Reply string
