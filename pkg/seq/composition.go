// 17 Oct 2026

package seq

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
)

// mapsyms makes the list of symbols actually used, in ascii order.
func (seqgrp *SeqGrp) mapsyms() {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	seqgrp.revmap = seqgrp.revmap[:0]
	for i, used := range seqgrp.symUsed {
		if used {
			seqgrp.revmap = append(seqgrp.revmap, uint8(i))
		}
	}
}

// Composition counts how often each symbol occurs in each sequence.
// The matrix looks like [number_of_symbols][number_of_sequences] and
// Symbols() says which symbol belongs to which row.
// Sequences do not have to be the same length.
func (seqgrp *SeqGrp) Composition() *matrix.FMatrix2d {
	if seqgrp.counts != nil {
		return seqgrp.counts
	}
	seqgrp.mapsyms()
	var row [MaxSym]int
	for i, c := range seqgrp.revmap {
		row[c] = i
	}
	seqgrp.counts = matrix.NewFMatrix2d(len(seqgrp.revmap), len(seqgrp.seqs))
	for j, ss := range seqgrp.seqs {
		for _, c := range ss.seq {
			if c < MaxSym {
				seqgrp.counts.Mat[row[c]][j]++
			}
		}
	}
	return seqgrp.counts
}

// Symbols returns the symbol for each row of the Composition matrix.
func (seqgrp *SeqGrp) Symbols() []byte {
	if seqgrp.counts == nil {
		seqgrp.Composition()
	}
	return append([]byte{}, seqgrp.revmap...)
}

// WriteComposition writes the counts as a table with one row per
// symbol and one column per sequence.
func (seqgrp *SeqGrp) WriteComposition(w io.Writer) error {
	counts := seqgrp.Composition()
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "sym")
	for j := range seqgrp.seqs {
		fmt.Fprintf(bw, "\ts%d", j+1)
	}
	fmt.Fprintln(bw)
	nrow, ncol := counts.Size()
	for i := 0; i < nrow; i++ {
		fmt.Fprintf(bw, "%c", seqgrp.revmap[i])
		for j := 0; j < ncol; j++ {
			fmt.Fprintf(bw, "\t%.0f", counts.Mat[i][j])
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
