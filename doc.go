// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

// Package trie provides a generic R-way trie symbol table keyed by byte
// sequences over a fixed, parameterizable alphabet.
//
// A [Trie] maps keys to values of any type V and supports, besides the
// usual Get/Put/Delete operations, the classic ordered string-table
// queries:
//
//   - LongestPrefixOf: the longest stored key that is a prefix of a query
//   - KeysWithPrefix:  all stored keys starting with a given prefix
//   - KeysThatMatch:   all stored keys matching a fixed-length wildcard
//     pattern, where '.' matches any single symbol
//
// Every node carries one child slot per alphabet symbol, so lookups cost
// one array index per key byte with no hashing and no comparisons beyond
// the key length. Deletion prunes the tree on the way back up: a node
// survives only while it holds a value or a non-empty subtree.
//
// The alphabet is fixed at construction time as a contiguous byte range
// (radix symbols starting at offset). The default alphabet is the full
// 8-bit range; a table for lowercase English words would use
// NewAlphabet[V](26, 'a').
//
// Keys are byte slices. The nil slice is not a key: mutating and lookup
// operations reject it with [ErrNilKey], enumeration operations return an
// empty result. The empty slice is a perfectly valid key.
//
// A Trie is not safe for concurrent mutation; wrap it with external
// locking if it is shared across goroutines.
package trie
