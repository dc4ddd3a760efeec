// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie_test

import (
	"math/rand/v2"
	"testing"

	"github.com/sdellas/trie"
)

// the classic string-table example: seven keys over the lowercase
// English alphabet, including the empty key.
var lexicon = []struct {
	key string
	val int
}{
	{"", 0},
	{"she", 3},
	{"shells", 6},
	{"shore", 5},
	{"shores", 6},
	{"sells", 5},
	{"sea", 3},
}

// newLexicon builds a lowercase-alphabet trie with the seven lexicon keys.
func newLexicon(t testing.TB) *trie.Trie[int] {
	t.Helper()

	tr, err := trie.NewAlphabet[int](26, 'a')
	if err != nil {
		t.Fatalf("NewAlphabet(26, 'a'): %v", err)
	}
	for _, item := range lexicon {
		if err := tr.Put([]byte(item.key), item.val); err != nil {
			t.Fatalf("Put(%q): %v", item.key, err)
		}
	}
	return tr
}

// randomWord returns a word of 1..maxLen symbols over the first letters
// of the lowercase alphabet. A small alphabet forces heavy prefix sharing.
func randomWord(prng *rand.Rand, maxLen, letters int) string {
	word := make([]byte, 1+prng.IntN(maxLen))
	for i := range word {
		word[i] = byte('a' + prng.IntN(letters))
	}
	return string(word)
}

func keysToStrings(keys [][]byte) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}
