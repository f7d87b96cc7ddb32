// Package trie implements a generic prefix trie: an associative container
// mapping ordered sequences of tokens to values, with prefix queries,
// prefix-pruning removal and key-reconstructing enumeration.
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking; a sync.RWMutex permitting
// concurrent lookups alongside exclusive mutation works well. Mutating the
// tree while holding a Node handle into a branch that then gets pruned
// leaves the handle detached from the tree; an in-progress Iterator detects
// mutation and fails with ErrTrieModified instead.
package trie

import "errors"

var (
	ErrNoMoreEntries = errors.New("there are no more entries in the trie")
	ErrTrieModified  = errors.New("trie was modified during iteration")
)

// Entry is one stored key/value pair. Key holds the tokens on the path from
// the root to the value-holding node, in root-to-node order.
type Entry[K comparable, V any] struct {
	Key   []K
	Value V
}

// Callback receives entries during a prefix walk; return false to stop.
type Callback[K comparable, V any] func(e Entry[K, V]) bool

type Tree[K comparable, V any] interface {
	// Insert stores value at seq, replacing any previous value there.
	Insert(seq []K, value V)
	// ContainsPrefix reports whether seq denotes an existing path,
	// whether or not any node along it holds a value. The empty
	// sequence always does.
	ContainsPrefix(seq []K) bool
	// Node returns the node at seq, if the path exists.
	Node(seq []K) (Node[K, V], bool)
	// Remove clears the value at seq and prunes any branch left dead,
	// returning the previous value if the key was present.
	Remove(seq []K) (V, bool)
	// ForEachPrefix visits every stored entry whose key starts with
	// prefix, in unspecified sibling order.
	ForEachPrefix(prefix []K, callback Callback[K, V])
	Iterator() Iterator[K, V]
	IsEmpty() bool
	Size() int
}

// Node is a borrowed view of one trie node. It stays valid only until a
// mutation of the tree prunes the node's branch.
type Node[K comparable, V any] interface {
	Value() (V, bool)
	// SetValue replaces the value in place, marking the node
	// value-holding if it was not already.
	SetValue(value V)
	// IsEmpty reports whether the node holds no value and has no
	// children.
	IsEmpty() bool
	// Edges lists the outgoing edge tokens, in unspecified order.
	Edges() []K
	Child(token K) (Node[K, V], bool)
}

type Iterator[K comparable, V any] interface {
	HasNext() bool
	Next() (Entry[K, V], error)
}

func New[K comparable, V any]() Tree[K, V] {
	return &tree[K, V]{}
}
