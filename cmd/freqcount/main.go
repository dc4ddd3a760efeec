// Copyright (c) 2025 Spyros Dellas
// SPDX-License-Identifier: MIT

// Command freqcount reads a whitespace-delimited word list and reports
// the most frequent word at or above a length threshold, timing the
// trie symbol table while doing so.
//
//	freqcount --min-len 8 tale.txt
//	freqcount --min-len 1 < tinyTale.txt
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sdellas/trie"
)

var minLen int

var rootCmd = &cobra.Command{
	Use:   "freqcount [file]",
	Short: "Word frequency benchmark for the trie symbol table",
	Long: `freqcount reads a whitespace-delimited word list from a file or from
stdin, counts the occurrences of every word with at least --min-len
bytes in a trie symbol table, and prints the most frequent one together
with build and search timings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVarP(&minLen, "min-len", "m", 1, "ignore words shorter than this")
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	words, err := readWords(in)
	if err != nil {
		return err
	}
	log.Info().Int("words", len(words)).Int("minLen", minLen).Msg("input read")

	// build the symbol table and compute frequency counts
	st := trie.New[int]()
	var counted, distinct int

	start := time.Now()
	for _, word := range words {
		if len(word) < minLen {
			continue
		}
		counted++

		err := st.Modify([]byte(word), func(n int, found bool) (int, bool) {
			if !found {
				distinct++
			}
			return n + 1, false
		})
		if err != nil {
			return err
		}
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("distinct", distinct).
		Int("size", st.Size()).
		Msg("symbol table built")

	// check search speed
	var hits, total int
	start = time.Now()
	for _, word := range words {
		n, ok, err := st.Get([]byte(word))
		if err != nil {
			return err
		}
		if ok {
			hits++
			total += n
		}
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("hits", hits).
		Int("totalFreq", total).
		Msg("search pass done")

	// find a key with the highest frequency count
	var maxWord []byte
	maxFreq := -1
	st.All(func(key []byte, n int) bool {
		if n > maxFreq {
			maxWord, maxFreq = key, n
		}
		return true
	})

	if maxFreq < 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no words above threshold")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", maxWord, maxFreq)
	fmt.Fprintf(cmd.OutOrStdout(), "words = %d, distinct = %d\n", counted, distinct)
	return nil
}

func readWords(f *os.File) ([]string, error) {
	var words []string

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	return words, sc.Err()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
