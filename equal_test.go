// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdellas/trie"
)

// modVal implements trie.Equaler: equal modulo 10.
type modVal int

func (m modVal) Equal(o modVal) bool {
	return m%10 == o%10
}

func TestEqualBasics(t *testing.T) {
	t.Parallel()

	var nilTrie *trie.Trie[int]
	require.True(t, nilTrie.Equal(nil))
	require.False(t, nilTrie.Equal(trie.New[int]()))
	require.False(t, trie.New[int]().Equal(nil))

	tr := newLexicon(t)
	require.True(t, tr.Equal(tr))
}

func TestEqualKeySets(t *testing.T) {
	t.Parallel()

	a := newLexicon(t)
	b := newLexicon(t)
	require.True(t, a.Equal(b))

	// insertion order does not matter, the pruned shape is canonical
	c, err := trie.NewAlphabet[int](26, 'a')
	require.NoError(t, err)
	for i := len(lexicon) - 1; i >= 0; i-- {
		require.NoError(t, c.Put([]byte(lexicon[i].key), lexicon[i].val))
	}
	require.True(t, a.Equal(c))

	// a detour over extra keys leaves no trace once they are deleted
	require.NoError(t, b.Put([]byte("transient"), 1))
	require.False(t, a.Equal(b))
	require.NoError(t, b.Delete([]byte("transient")))
	require.True(t, a.Equal(b))

	// same keys, one differing value
	require.NoError(t, b.Put([]byte("she"), 99))
	require.False(t, a.Equal(b))
}

func TestEqualAlphabets(t *testing.T) {
	t.Parallel()

	a, err := trie.NewAlphabet[int](26, 'a')
	require.NoError(t, err)
	b, err := trie.NewAlphabet[int](26, 'A')
	require.NoError(t, err)

	// both empty, but over different alphabets
	require.False(t, a.Equal(b))
}

func TestEqualCustomEquality(t *testing.T) {
	t.Parallel()

	a := trie.New[modVal]()
	b := trie.New[modVal]()

	require.NoError(t, a.Put([]byte("key"), modVal(3)))
	require.NoError(t, b.Put([]byte("key"), modVal(13)))

	// 3 == 13 modulo 10
	require.True(t, a.Equal(b))

	require.NoError(t, b.Put([]byte("key"), modVal(14)))
	require.False(t, a.Equal(b))
}
