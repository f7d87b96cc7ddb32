package trie

type iteratorLevel[K comparable, V any] struct {
	node *node[K, V]
	// edges snapshots the node's outgoing tokens; map iteration cannot
	// be suspended between Next calls, an index into the snapshot can
	edges    []K
	childIdx int
}

type iterator[K comparable, V any] struct {
	tree    *tree[K, V]
	version uint64
	path    []K
	depth   []*iteratorLevel[K, V]
	entry   *Entry[K, V]
}

// Iterator returns a lazy depth-first enumeration of every stored entry,
// with each key reconstructed root-to-node. Sibling order is unspecified.
// The enumeration does not mutate the tree, so restarting is just calling
// Iterator again.
func (t *tree[K, V]) Iterator() Iterator[K, V] {
	it := &iterator[K, V]{
		tree:    t,
		version: t.version,
		depth:   []*iteratorLevel[K, V]{newIteratorLevel(&t.root)},
	}
	if t.root.hasValue {
		it.entry = &Entry[K, V]{Key: []K{}, Value: t.root.value}
	} else {
		it.advance()
	}
	return it
}

func newIteratorLevel[K comparable, V any](n *node[K, V]) *iteratorLevel[K, V] {
	edges := make([]K, 0, len(n.children))
	for token := range n.children {
		edges = append(edges, token)
	}
	return &iteratorLevel[K, V]{node: n, edges: edges}
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && it.entry != nil
}

func (it *iterator[K, V]) Next() (Entry[K, V], error) {
	if it.version != it.tree.version {
		return Entry[K, V]{}, ErrTrieModified
	}
	if !it.HasNext() {
		return Entry[K, V]{}, ErrNoMoreEntries
	}
	entry := *it.entry
	it.advance()
	return entry, nil
}

// advance walks to the next value-holding node and stages its entry, or
// ends the iteration when the depth stack is exhausted.
func (it *iterator[K, V]) advance() {
	it.entry = nil
	for len(it.depth) > 0 {
		level := it.depth[len(it.depth)-1]
		if level.childIdx >= len(level.edges) {
			// node exhausted, unwind one level
			it.depth = it.depth[:len(it.depth)-1]
			if len(it.path) > 0 {
				it.path = it.path[:len(it.path)-1]
			}
			continue
		}
		token := level.edges[level.childIdx]
		level.childIdx++
		child := level.node.children[token]
		it.path = append(it.path, token)
		it.depth = append(it.depth, newIteratorLevel(child))
		if child.hasValue {
			it.entry = &Entry[K, V]{
				Key:   append([]K(nil), it.path...),
				Value: child.value,
			}
			return
		}
	}
}
