// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow string symbol table as a
// golden reference for the trie: a flat map plus linear scans, trivially
// correct by inspection.
package golden

import (
	"slices"
	"strings"
)

// Table is the reference symbol table, keyed by plain strings.
type Table[V any] map[string]V

// Insert stores val under key, overwriting any previous value.
func (g Table[V]) Insert(key string, val V) {
	g[key] = val
}

// Delete removes key and reports whether it was present.
func (g Table[V]) Delete(key string) (existed bool) {
	_, existed = g[key]
	delete(g, key)
	return existed
}

// Get returns the value stored for key.
func (g Table[V]) Get(key string) (val V, ok bool) {
	val, ok = g[key]
	return val, ok
}

// AllSorted returns every stored key in ascending byte order.
func (g Table[V]) AllSorted() []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// KeysWithPrefix returns every stored key starting with prefix, in
// ascending byte order.
func (g Table[V]) KeysWithPrefix(prefix string) []string {
	var keys []string
	for key := range g {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// LongestPrefixOf returns the longest stored key that is a prefix of s.
func (g Table[V]) LongestPrefixOf(s string) (prefix string, ok bool) {
	best := -1
	for key := range g {
		if len(key) > best && strings.HasPrefix(s, key) {
			best = len(key)
		}
	}
	if best < 0 {
		return "", false
	}
	return s[:best], true
}

// KeysThatMatch returns every stored key of exactly len(pattern) bytes
// matching pattern position by position, in ascending byte order;
// wildcard matches any single byte in the key.
func (g Table[V]) KeysThatMatch(pattern string, wildcard byte) []string {
	var keys []string
next:
	for key := range g {
		if len(key) != len(pattern) {
			continue
		}
		for i := range key {
			if pattern[i] != wildcard && pattern[i] != key[i] {
				continue next
			}
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
