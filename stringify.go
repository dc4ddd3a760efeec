// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"io"
	"strings"
)

// kid is a value-bearing node together with the path that reaches it; a
// node has no information about its predecessors, so the path is
// collected during the recursive descent.
type kid[V any] struct {
	n    *node[V]
	path []byte
}

// String returns a hierarchical tree diagram of the stored keys as
// string, just a wrapper for [Trie.Fprint]. If Fprint returns an error,
// String panics.
func (t *Trie[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the stored keys with
// default formatted payload V to w.
//
// The order from top to bottom is ascending symbol order and the subtree
// structure follows prefix containment between stored keys:
//
//	▼
//	├─ "sea" (3)
//	├─ "sells" (5)
//	├─ "she" (3)
//	│  └─ "shells" (6)
//	└─ "shore" (5)
//	   └─ "shores" (6)
func (t *Trie[V]) Fprint(w io.Writer) error {
	if t == nil || t.root == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	// the empty key, if stored, covers every other key
	if t.root.hasVal {
		if _, err := fmt.Fprintf(w, "└─ %q (%v)\n", "", t.root.val); err != nil {
			return err
		}
		return t.fprintRec(w, t.root, nil, "   ")
	}

	return t.fprintRec(w, t.root, nil, "")
}

// fprintRec prints the direct kids below the key at n, each one followed
// by its own nested subtree.
func (t *Trie[V]) fprintRec(w io.Writer, n *node[V], path []byte, pad string) error {
	var kids []kid[V]
	t.directKidsRec(n, path, &kids)

	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, k := range kids {
		// treat last kid special
		if i == len(kids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%q (%v)\n", pad+glyphe, k.path, k.n.val); err != nil {
			return err
		}

		if err := t.fprintRec(w, k.n, k.path, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

// directKidsRec collects the nearest value-bearing descendants of n:
// stored keys reachable from n without passing through another stored
// key. Recorded paths are copies, detached from the scratch slice.
func (t *Trie[V]) directKidsRec(n *node[V], path []byte, kids *[]kid[V]) {
	for idx, child := range n.children {
		if child == nil {
			continue
		}

		childPath := append(path, byte(t.offset+idx))
		if child.hasVal {
			*kids = append(*kids, kid[V]{n: child, path: append([]byte(nil), childPath...)})
			continue
		}
		t.directKidsRec(child, childPath, kids)
	}
}
