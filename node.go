package trie

// node is the sole entity of the structure: an optional value plus one
// outgoing edge per distinct next token. Each node exclusively owns its
// children; the whole tree is owned by whoever holds the root.
type node[K comparable, V any] struct {
	value    V
	hasValue bool
	children map[K]*node[K, V]
}

// empty reports whether the node holds no value and has no children. Such a
// node carries no information and must not persist; Remove prunes it.
func (n *node[K, V]) empty() bool {
	return !n.hasValue && len(n.children) == 0
}

func (n *node[K, V]) child(token K) *node[K, V] {
	return n.children[token]
}

// childOrNew returns the child for token, creating it on demand. The
// children map itself is allocated lazily so value-holding leaves stay
// cheap.
func (n *node[K, V]) childOrNew(token K) *node[K, V] {
	child, ok := n.children[token]
	if !ok {
		child = &node[K, V]{}
		if n.children == nil {
			n.children = make(map[K]*node[K, V])
		}
		n.children[token] = child
	}
	return child
}

func (n *node[K, V]) clearValue() (V, bool) {
	prev, had := n.value, n.hasValue
	var zero V
	n.value = zero
	n.hasValue = false
	return prev, had
}

// remove clears the value at the end of seq and prunes dead descendants
// while unwinding. It returns the value previously stored at seq, if any.
// The receiver itself is never pruned, only its children; the caller one
// level up decides the receiver's fate.
func (n *node[K, V]) remove(seq []K) (V, bool) {
	if len(seq) == 0 {
		return n.clearValue()
	}
	child, ok := n.children[seq[0]]
	if !ok {
		var zero V
		return zero, false
	}
	prev, had := child.remove(seq[1:])
	// prune strictly after the recursive call returned, otherwise a live
	// branch below the child could be dropped
	if child.empty() {
		delete(n.children, seq[0])
	}
	return prev, had
}

// nodeRef backs the exported Node interface. It carries the owning tree so
// SetValue keeps the size count and the iterator invalidation counter
// coherent.
type nodeRef[K comparable, V any] struct {
	tree *tree[K, V]
	node *node[K, V]
}

func (r *nodeRef[K, V]) Value() (V, bool) {
	return r.node.value, r.node.hasValue
}

func (r *nodeRef[K, V]) SetValue(value V) {
	if !r.node.hasValue {
		r.tree.size++
	}
	r.node.value = value
	r.node.hasValue = true
	r.tree.version++
}

func (r *nodeRef[K, V]) IsEmpty() bool {
	return r.node.empty()
}

func (r *nodeRef[K, V]) Edges() []K {
	edges := make([]K, 0, len(r.node.children))
	for token := range r.node.children {
		edges = append(edges, token)
	}
	return edges
}

func (r *nodeRef[K, V]) Child(token K) (Node[K, V], bool) {
	child := r.node.child(token)
	if child == nil {
		return nil, false
	}
	return &nodeRef[K, V]{tree: r.tree, node: child}, true
}
