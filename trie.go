// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

// DefaultRadix is the alphabet size used by [New]: the full 8-bit range,
// so every byte slice is a valid key.
const DefaultRadix = 256

// Trie is an R-way trie symbol table with payload V, keyed by byte
// sequences over a contiguous alphabet of radix symbols starting at
// offset. A symbol's child slot index is its byte value minus offset.
//
// Create a Trie with [New] or [NewAlphabet]; the zero value has an empty
// alphabet and rejects every key symbol.
//
// All operations are single-threaded: the Trie is safe for concurrent
// reads, but concurrent reads and writes must be externally synchronized.
//
// A Trie must not be copied by value; always pass by pointer.
type Trie[V any] struct {
	radix  int
	offset int

	// the empty-prefix node, created lazily on first insertion and
	// released again when the last key is deleted
	root *node[V]

	// number of keys currently stored
	size int
}

// New returns a Trie over the full 8-bit alphabet (radix 256, offset 0).
func New[V any]() *Trie[V] {
	return &Trie[V]{radix: DefaultRadix}
}

// NewAlphabet returns a Trie over a custom contiguous alphabet: radix
// symbols, the first of which has byte value offset. For lowercase
// English words use NewAlphabet[V](26, 'a').
//
// Returns [ErrInvalidAlphabet] if radix < 1, offset < 0, or the range
// [offset, offset+radix) does not fit in a byte.
func NewAlphabet[V any](radix, offset int) (*Trie[V], error) {
	if radix < 1 || offset < 0 || offset+radix > 256 {
		return nil, ErrInvalidAlphabet
	}
	return &Trie[V]{radix: radix, offset: offset}, nil
}

// Radix returns the alphabet size of t.
func (t *Trie[V]) Radix() int { return t.radix }

// Offset returns the byte value of the first alphabet symbol of t.
func (t *Trie[V]) Offset() int { return t.offset }

// Size returns the number of keys stored in t.
func (t *Trie[V]) Size() int { return t.size }

// IsEmpty reports whether t stores no keys at all.
func (t *Trie[V]) IsEmpty() bool { return t.size == 0 }

// checkKey validates key before any traversal: every operation either
// completes a full key path or fails here, before the first mutation.
func (t *Trie[V]) checkKey(key []byte) error {
	if key == nil {
		return ErrNilKey
	}
	for _, sym := range key {
		if idx := int(sym) - t.offset; idx < 0 || idx >= t.radix {
			return &SymbolError{Sym: sym, Radix: t.radix, Offset: t.offset}
		}
	}
	return nil
}

// Get returns the value stored for key and whether key is present.
//
// Returns [ErrNilKey] for a nil key and a [*SymbolError] if key contains
// a symbol outside the alphabet; absence of the key is not an error.
func (t *Trie[V]) Get(key []byte) (val V, ok bool, err error) {
	if err = t.checkKey(key); err != nil {
		return val, false, err
	}

	n := t.getRec(t.root, key, 0)
	if n == nil || !n.hasVal {
		return val, false, nil
	}
	return n.val, true, nil
}

// getRec walks down one level per key symbol and returns the node at
// depth len(key), or nil if the path ends early. Symbols have already
// been validated by checkKey, so the child index cannot be out of range.
func (t *Trie[V]) getRec(n *node[V], key []byte, depth int) *node[V] {
	if n == nil {
		return nil
	}
	if depth == len(key) {
		return n
	}
	return t.getRec(n.children[int(key[depth])-t.offset], key, depth+1)
}

// Contains reports whether key is stored in t.
// The error conditions are those of [Trie.Get].
func (t *Trie[V]) Contains(key []byte) (bool, error) {
	_, ok, err := t.Get(key)
	return ok, err
}

// Put stores val under key, overwriting any previous value. Nodes along
// the key path are created on demand; the very first insertion also
// creates the root.
//
// Returns [ErrNilKey] for a nil key and a [*SymbolError] if key contains
// a symbol outside the alphabet. Validation happens before traversal, so
// a failed Put never mutates the trie.
func (t *Trie[V]) Put(key []byte, val V) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	t.root = t.putRec(t.root, key, val, 0)
	return nil
}

func (t *Trie[V]) putRec(n *node[V], key []byte, val V, depth int) *node[V] {
	if n == nil {
		n = newNode[V](t.radix)
	}
	if depth == len(key) {
		if !n.hasVal {
			t.size++
		}
		n.val = val
		n.hasVal = true
		return n
	}

	idx := int(key[depth]) - t.offset
	n.children[idx] = t.putRec(n.children[idx], key, val, depth+1)
	return n
}

// Delete removes key and its value. Deleting a key that is not present
// is a no-op. On the recursive way back up every node left without a
// value and without children is unlinked from its parent, so the tree
// never retains dead branches; deleting the last key releases the root.
//
// The error conditions are those of [Trie.Put].
func (t *Trie[V]) Delete(key []byte) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	t.root = t.deleteRec(t.root, key, 0)
	return nil
}

// deleteRec returns the replacement for n after removing key below it:
// n itself while it still holds a value or a child, nil once it is dead.
func (t *Trie[V]) deleteRec(n *node[V], key []byte, depth int) *node[V] {
	if n == nil {
		return nil
	}

	if depth == len(key) {
		if n.hasVal {
			t.size--
			n.clearValue()
		}
		if n.hasChildren() {
			return n
		}
		return nil
	}

	idx := int(key[depth]) - t.offset
	n.children[idx] = t.deleteRec(n.children[idx], key, depth+1)

	if n.hasVal || n.children[idx] != nil {
		return n
	}
	if n.hasChildren() {
		return n
	}
	return nil
}

// GetAndDelete removes key and returns the value that was stored for it,
// if any. The error conditions are those of [Trie.Put].
func (t *Trie[V]) GetAndDelete(key []byte) (val V, ok bool, err error) {
	if err = t.checkKey(key); err != nil {
		return val, false, err
	}

	n := t.getRec(t.root, key, 0)
	if n == nil || !n.hasVal {
		return val, false, nil
	}

	val = n.val
	t.root = t.deleteRec(t.root, key, 0)
	return val, true, nil
}

// Modify updates, inserts or deletes the value for key with a callback.
//
// The callback is invoked with the current value (or the zero value) and
// whether key was found, and returns the new value and a delete flag:
//
//	(newVal, false): newVal is stored under key, inserting it if needed
//	(_, true):       key is removed; a no-op if key was not present
//
// The delete flag is the byte-slice era's "put nil to remove" convention
// made explicit; [Trie.Delete] remains the canonical removal operation.
//
// The error conditions are those of [Trie.Put].
func (t *Trie[V]) Modify(key []byte, cb func(val V, found bool) (newVal V, del bool)) error {
	if err := t.checkKey(key); err != nil {
		return err
	}

	var old V
	n := t.getRec(t.root, key, 0)
	found := n != nil && n.hasVal
	if found {
		old = n.val
	}

	newVal, del := cb(old, found)
	switch {
	case del:
		t.root = t.deleteRec(t.root, key, 0)
	case found:
		// path exists, update in place
		n.val = newVal
	default:
		t.root = t.putRec(t.root, key, newVal, 0)
	}
	return nil
}
