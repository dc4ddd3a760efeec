// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrNilKey is returned when a nil byte slice is passed where a key
	// is required. The empty key []byte{} is valid; only nil is rejected.
	ErrNilKey = errors.New("trie: nil key")

	// ErrInvalidAlphabet is returned by [NewAlphabet] when the requested
	// radix and offset do not describe a contiguous byte range.
	ErrInvalidAlphabet = errors.New("trie: invalid alphabet")
)

// SymbolError reports a key or pattern symbol that falls outside the
// alphabet of the trie it was used with.
type SymbolError struct {
	Sym    byte // the offending symbol
	Radix  int  // alphabet size of the trie
	Offset int  // numeric code of the first alphabet symbol
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("trie: symbol %#02x outside alphabet range [%#02x, %#02x)",
		e.Sym, e.Offset, e.Offset+e.Radix)
}
