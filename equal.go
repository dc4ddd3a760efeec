// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

import (
	"reflect"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used.
// Otherwise, [reflect.DeepEqual] is used as a fallback.
func equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Equal reports whether t and o hold the same alphabet and the same
// key/value pairs. Values are compared via [Equaler] if implemented,
// [reflect.DeepEqual] otherwise.
func (t *Trie[V]) Equal(o *Trie[V]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.radix != o.radix || t.offset != o.offset || t.size != o.size {
		return false
	}

	return t.root.equalRec(o.root)
}

// equalRec compares two subtrees recursively. Both tries self-prune, so
// equal key sets always produce structurally identical trees and a
// plain node by node comparison suffices.
func (n *node[V]) equalRec(o *node[V]) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n == o {
		return true
	}

	if n.hasVal != o.hasVal {
		return false
	}
	if n.hasVal && !equal(n.val, o.val) {
		return false
	}

	for idx, nKid := range n.children {
		if !nKid.equalRec(o.children[idx]) {
			return false
		}
	}
	return true
}
