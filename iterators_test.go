// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie_test

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdellas/trie"
)

func TestKeys(t *testing.T) {
	t.Parallel()
	tr := newLexicon(t)

	want := []string{"", "sea", "sells", "she", "shells", "shore", "shores"}
	require.Equal(t, want, keysToStrings(tr.Keys()))
}

func TestKeysSorted(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(1, 2))
	tr, err := trie.NewAlphabet[int](6, 'a')
	require.NoError(t, err)

	for i := range 1000 {
		require.NoError(t, tr.Put([]byte(randomWord(prng, 10, 6)), i))
	}

	keys := tr.Keys()
	require.Len(t, keys, tr.Size())
	for i := 1; i < len(keys); i++ {
		if bytes.Compare(keys[i-1], keys[i]) >= 0 {
			t.Fatalf("order violation at %d: %q >= %q", i-1, keys[i-1], keys[i])
		}
	}
}

func TestKeysWithPrefix(t *testing.T) {
	t.Parallel()
	tr := newLexicon(t)

	testCases := []struct {
		prefix string
		want   []string
	}{
		{"she", []string{"she", "shells"}},
		{"sh", []string{"she", "shells", "shore", "shores"}},
		{"s", []string{"sea", "sells", "she", "shells", "shore", "shores"}},
		{"", []string{"", "sea", "sells", "she", "shells", "shore", "shores"}},
		{"shores", []string{"shores"}},
		{"shoresz", nil},
		{"z", nil},
	}

	for _, tc := range testCases {
		got := tr.KeysWithPrefix([]byte(tc.prefix))
		require.Equal(t, tc.want, keysToStrings(got), "prefix %q", tc.prefix)
	}
}

func TestKeysWithPrefixArguments(t *testing.T) {
	t.Parallel()
	tr := newLexicon(t)

	// nil prefix selects nothing
	require.Empty(t, tr.KeysWithPrefix(nil))

	// a prefix with a foreign symbol selects nothing, it is not an error
	require.Empty(t, tr.KeysWithPrefix([]byte("sh!")))
	require.Empty(t, tr.KeysWithPrefix([]byte("!sh")))
}

func TestAll(t *testing.T) {
	t.Parallel()
	tr := newLexicon(t)

	var gotKeys []string
	sum := 0
	tr.All(func(key []byte, val int) bool {
		gotKeys = append(gotKeys, string(key))
		sum += val
		return true
	})

	require.Equal(t, []string{"", "sea", "sells", "she", "shells", "shore", "shores"}, gotKeys)
	require.Equal(t, 0+3+6+5+6+5+3, sum)
}

func TestAllEarlyExit(t *testing.T) {
	t.Parallel()
	tr := newLexicon(t)

	var seen int
	tr.All(func([]byte, int) bool {
		seen++
		return seen < 3
	})
	require.Equal(t, 3, seen, "iteration must stop when yield returns false")
}

// the yielded keys are detached copies, safe to retain
func TestAllKeysAreCopies(t *testing.T) {
	t.Parallel()
	tr := newLexicon(t)

	var keys [][]byte
	tr.All(func(key []byte, _ int) bool {
		keys = append(keys, key)
		return true
	})

	// if the yielded slices aliased the internal scratch buffer, the
	// deeper walks after each yield would have scribbled over them
	require.Equal(t, keysToStrings(tr.Keys()), keysToStrings(keys))
}

func TestAllEmptyTrie(t *testing.T) {
	t.Parallel()
	tr := trie.New[int]()

	tr.All(func([]byte, int) bool {
		t.Fatal("yield called on empty trie")
		return false
	})
}
