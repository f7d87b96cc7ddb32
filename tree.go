package trie

const (
	traverseStop traverseAction = iota
	traverseContinue
)

type traverseAction int

type tree[K comparable, V any] struct {
	root node[K, V]
	size int
	// version counts mutations; live iterators compare against it
	version uint64
}

func (t *tree[K, V]) Size() int {
	return t.size
}

func (t *tree[K, V]) IsEmpty() bool {
	return t.root.empty()
}

func (t *tree[K, V]) Insert(seq []K, value V) {
	curr := &t.root
	for _, token := range seq {
		curr = curr.childOrNew(token)
	}
	if !curr.hasValue {
		t.size++
	}
	curr.value = value
	curr.hasValue = true
	t.version++
}

// descend walks seq from the root via existing edges only, returning nil as
// soon as a token has no edge.
func (t *tree[K, V]) descend(seq []K) *node[K, V] {
	curr := &t.root
	for _, token := range seq {
		next := curr.child(token)
		if next == nil {
			return nil
		}
		curr = next
	}
	return curr
}

func (t *tree[K, V]) ContainsPrefix(seq []K) bool {
	return t.descend(seq) != nil
}

func (t *tree[K, V]) Node(seq []K) (Node[K, V], bool) {
	n := t.descend(seq)
	if n == nil {
		return nil, false
	}
	return &nodeRef[K, V]{tree: t, node: n}, true
}

func (t *tree[K, V]) Remove(seq []K) (V, bool) {
	prev, had := t.root.remove(seq)
	if had {
		t.size--
		t.version++
	}
	return prev, had
}

func (t *tree[K, V]) ForEachPrefix(prefix []K, callback Callback[K, V]) {
	start := t.descend(prefix)
	if start == nil {
		return
	}
	key := append([]K(nil), prefix...)
	t.recursiveForEach(start, key, callback)
}

func (t *tree[K, V]) recursiveForEach(curr *node[K, V], key []K, callback Callback[K, V]) traverseAction {
	if curr.hasValue {
		entry := Entry[K, V]{Key: append([]K(nil), key...), Value: curr.value}
		if !callback(entry) {
			return traverseStop
		}
	}
	for token, child := range curr.children {
		key = append(key, token)
		if t.recursiveForEach(child, key, callback) == traverseStop {
			return traverseStop
		}
		key = key[:len(key)-1]
	}
	return traverseContinue
}
