// 14 Oct 2026

// Package kmer counts the overlapping k-mers in a sequence.
// A k-mer is a substring of length k. We slide a window of length k
// along the sequence, one character at a time, and tally what falls
// in the window. The table remembers the order in which each k-mer
// was first seen, so output is reproducible.
package kmer

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// Counts is a k-mer table. The zero value is an empty table.
type Counts struct {
	order []string       // k-mers in order of first occurrence
	n     map[string]int // how often each k-mer was seen
}

// add bumps the count for s, remembering it if it is new.
func (c *Counts) add(s string) {
	if c.n == nil {
		c.n = make(map[string]int)
	}
	if _, ok := c.n[s]; !ok {
		c.order = append(c.order, s)
	}
	c.n[s]++
}

// Count returns the k-mers of length k in seq with their counts.
// Characters are runes, not bytes, and are taken literally: no case
// folding, no check on the alphabet. If seq is not valid UTF-8, a
// character is a byte, so every input byte comes back out unchanged.
// If k is longer than the sequence, or k <= 0, there are no windows and
// the table is empty. This is not an error.
func Count(seq string, k int) *Counts {
	c := new(Counts)
	if k <= 0 {
		return c
	}
	if !utf8.ValidString(seq) {
		for start := 0; start+k <= len(seq); start++ {
			c.add(seq[start : start+k])
		}
		return c
	}
	r := []rune(seq)
	stop := len(r) - k + 1
	for start := 0; start < stop; start++ {
		c.add(string(r[start : start+k]))
	}
	return c
}

// Len is the number of distinct k-mers.
func (c *Counts) Len() int { return len(c.order) }

// Get returns the count for kmer, zero if it was never seen.
func (c *Counts) Get(kmer string) int { return c.n[kmer] }

// Kmers returns the distinct k-mers in order of first occurrence.
// The slice is a copy.
func (c *Counts) Kmers() []string {
	ret := make([]string, len(c.order))
	copy(ret, c.order)
	return ret
}

// Total is the sum of all counts, so it is the number of windows.
func (c *Counts) Total() int {
	t := 0
	for _, v := range c.n {
		t += v
	}
	return t
}

// Each calls fn for every k-mer in table order. It stops early if fn
// returns false.
func (c *Counts) Each(fn func(kmer string, n int) bool) {
	for _, s := range c.order {
		if !fn(s, c.n[s]) {
			return
		}
	}
}

// WriteTo writes one "kmer<TAB>count" line per k-mer in table order.
func (c *Counts) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var nbyte int64
	for _, s := range c.order {
		n, err := fmt.Fprintf(bw, "%s\t%d\n", s, c.n[s])
		nbyte += int64(n)
		if err != nil {
			return nbyte, err
		}
	}
	return nbyte, bw.Flush()
}
