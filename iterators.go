// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

// All may be used in a for/range loop to iterate through all key/value
// pairs in ascending symbol order of the keys.
//
// Keys must not be inserted or deleted during iteration, otherwise the
// behavior is undefined. However, value updates are permitted.
//
// The yielded key slices are fresh copies and may be retained. If the
// yield function returns false, the iteration ends prematurely.
func (t *Trie[V]) All(yield func(key []byte, val V) bool) {
	t.allRec(t.root, make([]byte, 0, 64), yield)
}

// allRec walks the subtree under n in ascending child index order; the
// scratch buffer spells the path from the root, one symbol per level.
func (t *Trie[V]) allRec(n *node[V], scratch []byte, yield func([]byte, V) bool) bool {
	if n == nil {
		return true
	}

	if n.hasVal {
		if !yield(append([]byte(nil), scratch...), n.val) {
			return false
		}
	}

	for idx, child := range n.children {
		if child == nil {
			continue
		}
		if !t.allRec(child, append(scratch, byte(t.offset+idx)), yield) {
			return false
		}
	}
	return true
}

// Keys returns all stored keys in ascending symbol order.
func (t *Trie[V]) Keys() [][]byte {
	return t.KeysWithPrefix([]byte{})
}

// KeysWithPrefix returns all stored keys that start with prefix, in
// ascending symbol order. The prefix is a filter, not a key: a nil
// prefix or one containing a symbol outside the alphabet selects
// nothing and yields an empty result, it is not an error.
func (t *Trie[V]) KeysWithPrefix(prefix []byte) [][]byte {
	if prefix == nil {
		return nil
	}

	// locate the subtree holding all keys below prefix
	n := t.root
	for _, sym := range prefix {
		if n == nil {
			return nil
		}
		idx := int(sym) - t.offset
		if idx < 0 || idx >= t.radix {
			return nil
		}
		n = n.children[idx]
	}

	var keys [][]byte
	scratch := append(make([]byte, 0, len(prefix)+64), prefix...)
	t.collectRec(n, scratch, &keys)
	return keys
}

// collectRec records the accumulated path at every value-bearing node,
// then recurses into the children in ascending index order. As in
// matchRec, the scratch buffer is pushed and popped around each call and
// copied only when a key is recorded.
func (t *Trie[V]) collectRec(n *node[V], scratch []byte, keys *[][]byte) {
	if n == nil {
		return
	}

	if n.hasVal {
		*keys = append(*keys, append([]byte(nil), scratch...))
	}

	for idx, child := range n.children {
		if child == nil {
			continue
		}
		t.collectRec(child, append(scratch, byte(t.offset+idx)), keys)
	}
}
