// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], [Trie.Clone] will use its Clone
// method to perform deep copies; otherwise values are copied by
// assignment.
type Cloner[V any] interface {
	Clone() V
}

// cloneValue copies val, deeply if V implements [Cloner].
func cloneValue[V any](val V) V {
	// you can't assert directly on a type parameter
	if c, ok := any(val).(Cloner[V]); ok {
		return c.Clone()
	}
	return val
}

// Clone returns a copy of t sharing no nodes with the original.
// Values are cloned via [Cloner] if implemented, shallow copied
// otherwise.
func (t *Trie[V]) Clone() *Trie[V] {
	if t == nil {
		return nil
	}

	c := &Trie[V]{
		radix:  t.radix,
		offset: t.offset,
		size:   t.size,
	}
	c.root = t.root.cloneRec(t.radix)
	return c
}

// cloneRec, rec-descent copy of the subtree rooted at n.
func (n *node[V]) cloneRec(radix int) *node[V] {
	if n == nil {
		return nil
	}

	c := newNode[V](radix)
	if n.hasVal {
		c.val = cloneValue(n.val)
		c.hasVal = true
	}

	for idx, child := range n.children {
		c.children[idx] = child.cloneRec(radix)
	}
	return c
}
