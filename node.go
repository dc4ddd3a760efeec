// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

// node is one trie level cell.
//
// The path of symbols from the root to a node spells the prefix the node
// represents; the node holds a value iff that exact prefix is a stored
// key. children has one slot per alphabet symbol: children[i] owns the
// subtree for symbol offset+i, nil means no key runs through that symbol
// at this level.
//
// Structural invariant, restored by deleteRec after every removal: a node
// is reachable only if it is the root, holds a value, or has at least one
// non-nil child. Valueless chains left behind by a deletion are pruned on
// the recursive way back up.
type node[V any] struct {
	val    V
	hasVal bool

	children []*node[V]
}

func newNode[V any](radix int) *node[V] {
	return &node[V]{children: make([]*node[V], radix)}
}

// hasChildren reports whether any child slot is occupied.
func (n *node[V]) hasChildren() bool {
	for _, c := range n.children {
		if c != nil {
			return true
		}
	}
	return false
}

// clearValue resets the value slot so the old value does not pin memory.
func (n *node[V]) clearValue() {
	var zero V
	n.val = zero
	n.hasVal = false
}

// stats is the per-subtree counterpart of the Size counter, used by the
// dumper and the structural invariant checks in the tests.
type stats struct {
	nodes  int // reachable nodes, this one included
	values int // nodes with an occupied value slot
	leaves int // nodes without children
}

// statsRec counts nodes, values and leaves in the subtree rooted at n.
func (n *node[V]) statsRec() stats {
	if n == nil {
		return stats{}
	}

	s := stats{nodes: 1}
	if n.hasVal {
		s.values = 1
	}

	leaf := true
	for _, c := range n.children {
		if c == nil {
			continue
		}
		leaf = false

		cs := c.statsRec()
		s.nodes += cs.nodes
		s.values += cs.values
		s.leaves += cs.leaves
	}

	if leaf {
		s.leaves = 1
	}
	return s
}
