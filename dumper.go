// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	leafNode         nodeType = iota // value, no children
	fullNode                         // value and children
	intermediateNode                 // children, no value
)

func (n *node[V]) hasType() nodeType {
	switch {
	case n.hasVal && n.hasChildren():
		return fullNode
	case n.hasVal:
		return leafNode
	default:
		return intermediateNode
	}
}

func (nt nodeType) String() string {
	switch nt {
	case leafNode:
		return "LEAF"
	case fullNode:
		return "FULL"
	case intermediateNode:
		return "IMED"
	default:
		panic("unreachable")
	}
}

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Trie[V]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the trie structure and all the nodes to w.
func (t *Trie[V]) dump(w io.Writer) {
	if t == nil || t.root == nil {
		return
	}

	s := t.root.statsRec()
	fmt.Fprintf(w, "### size(%d), nodes(%d), leaves(%d), radix(%d), offset(%#02x)\n",
		t.size, s.nodes, s.leaves, t.radix, t.offset)
	t.root.dumpRec(w, t, nil)
}

// dumpRec, rec-descent the trie.
func (n *node[V]) dumpRec(w io.Writer, t *Trie[V], path []byte) {
	// dump this node
	n.dump(w, path, t.offset)

	// the node may have childs, rec-descent down
	for idx, child := range n.children {
		if child == nil {
			continue
		}
		child.dumpRec(w, t, append(path, byte(t.offset+idx)))
	}
}

// dump the node to w.
func (n *node[V]) dump(w io.Writer, path []byte, offset int) {
	depth := len(path)
	indent := strings.Repeat(".", depth)

	// node type with depth and symbol path
	fmt.Fprintf(w, "%s[%s] depth: %d path: %q", indent, n.hasType(), depth, path)
	if n.hasVal {
		fmt.Fprintf(w, " val: %v", n.val)
	}
	fmt.Fprintln(w)

	// print the occupied child symbols for this node
	var syms []byte
	for idx, child := range n.children {
		if child != nil {
			syms = append(syms, byte(offset+idx))
		}
	}
	if len(syms) != 0 {
		fmt.Fprintf(w, "%schilds(#%d): %q\n", indent, len(syms), syms)
	}
}
