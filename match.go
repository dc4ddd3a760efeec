// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

// Wildcard is the pattern symbol that matches any single alphabet symbol
// in [Trie.KeysThatMatch]. It is recognized in the pattern position even
// for alphabets that do not contain '.'; in a full 8-bit alphabet a
// stored literal '.' is matched by the wildcard like any other symbol.
const Wildcard = '.'

// LongestPrefixOf returns the longest key stored in t that is a prefix
// of s, and whether any such key exists.
//
// The walk consumes one symbol of s per level and remembers the deepest
// value-bearing node it passes. It stops early when the tree path runs
// out or when s contains a symbol outside the alphabet (no stored key
// can extend through such a symbol). If no value-bearing node was ever
// visited the result is ok == false, never a zero-length truncation: the
// empty key counts as a prefix of everything, but only when it is
// actually stored.
//
// The returned slice shares its backing array with s. A nil s yields
// (nil, false) without traversal.
func (t *Trie[V]) LongestPrefixOf(s []byte) (prefix []byte, ok bool) {
	if s == nil {
		return nil, false
	}

	best := t.longestRec(t.root, s, 0, -1)
	if best < 0 {
		return nil, false
	}
	return s[:best], true
}

// longestRec carries the deepest value depth seen so far; -1 means no
// value-bearing node has been visited yet.
func (t *Trie[V]) longestRec(n *node[V], s []byte, depth, best int) int {
	if n == nil {
		return best
	}
	if n.hasVal {
		best = depth
	}
	if depth == len(s) {
		return best
	}

	idx := int(s[depth]) - t.offset
	if idx < 0 || idx >= t.radix {
		return best
	}
	return t.longestRec(n.children[idx], s, depth+1, best)
}

// KeysThatMatch returns all stored keys of exactly len(pattern) symbols
// that match pattern position by position, where [Wildcard] matches any
// single alphabet symbol. The keys are returned in ascending symbol
// order.
//
// A nil pattern yields an empty result without error. Concrete (non
// wildcard) pattern symbols outside the alphabet are rejected with a
// [*SymbolError] before traversal.
func (t *Trie[V]) KeysThatMatch(pattern []byte) ([][]byte, error) {
	if pattern == nil {
		return nil, nil
	}
	for _, sym := range pattern {
		if sym == Wildcard {
			continue
		}
		if idx := int(sym) - t.offset; idx < 0 || idx >= t.radix {
			return nil, &SymbolError{Sym: sym, Radix: t.radix, Offset: t.offset}
		}
	}

	var keys [][]byte
	t.matchRec(t.root, pattern, make([]byte, 0, len(pattern)), &keys)
	return keys, nil
}

// matchRec descends the trie alongside pattern; the scratch buffer holds
// the symbols consumed so far, so the current depth is len(scratch).
// Appending before a call and reusing the shorter slice afterwards gives
// the symmetric push/pop of a backtracking walk without per-key
// allocation; only recorded matches are copied out.
func (t *Trie[V]) matchRec(n *node[V], pattern, scratch []byte, keys *[][]byte) {
	if n == nil {
		return
	}

	depth := len(scratch)
	if depth == len(pattern) {
		if n.hasVal {
			*keys = append(*keys, append([]byte(nil), scratch...))
		}
		return
	}

	if sym := pattern[depth]; sym != Wildcard {
		t.matchRec(n.children[int(sym)-t.offset], pattern, append(scratch, sym), keys)
		return
	}

	for idx, child := range n.children {
		if child == nil {
			continue
		}
		t.matchRec(child, pattern, append(scratch, byte(t.offset+idx)), keys)
	}
}
