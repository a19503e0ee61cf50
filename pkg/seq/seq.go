// 20 Dec 2017
// 16 Oct 2026 cut down to what the identify tool needs

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read them, guess what they are and count their symbols.
package seq

import (
	"fmt"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/bioscripts/pkg/zwrap"
)

// seq is the exported type.
type seq struct {
	cmmt string
	seq  []byte
}

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	Unchecked SeqType = iota // Has not been looked at yet
	Unknown                  // Really unknown, not a protein or nucleotide
	Protein                  //
	DNA                      //
	RNA                      //
	Ntide                    // Nucleotide
)

// String gives the words the identify tool prints.
func (t SeqType) String() string {
	switch t {
	case Unknown:
		return "not amino acid or nucleic acid"
	case Protein:
		return "amino acid"
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Ntide:
		return "nucleic acid"
	}
	return "unchecked"
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// Options contains all the choices passed in from the caller.
// Sequences may be of different lengths, since we are not reading
// alignments.
type Options struct {
	RmvGapsRd bool // Remove gaps upon reading
}

// Constants
const cmmt_char byte = '>' // and this introduces comments in fasta format

// SeqGrp is a group of sequences, with some additional information
// such as what type (protein, nucleotide) and the symbols
// that have been used.
type SeqGrp struct {
	symUsed  [MaxSym]bool // which symbols are actually used
	revmap   []uint8      // revmap[2] tells me the character in row 2
	seqs     []seq
	counts   *matrix.FMatrix2d
	stype    SeqType
	usedKnwn bool // Do we know how many symbols are used ?
}

// Function GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// Function Cmmt returns the comment, without the leading ">"
func (s seq) Cmmt() string { return s.cmmt }

// Function Len
func (s seq) Len() int { return len(s.seq) }

// Type classifies this one sequence.
func (s seq) Type() SeqType { return Classify(s.seq) }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 127).
func (s *seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	for i, c := range s.seq {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// Upper uppercases all the members of a group of sequences.
// Anything we worked out about symbols is now stale.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	seqgrp.clear()
	return nil
}

// clear gets rid of calculated quantities.
func (seqgrp *SeqGrp) clear() {
	seqgrp.symUsed = [MaxSym]bool{}
	seqgrp.revmap = nil
	seqgrp.counts = nil
	seqgrp.stype = Unchecked
	seqgrp.usedKnwn = false
}

// Readfile takes a filename and reads sequences from it.
// An empty name or "-" means stdin. Compressed files are fine.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	seqgrp := new(SeqGrp)
	fp, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	if err := ReadFasta(fp, seqgrp, s_opts); err != nil {
		return seqgrp, fmt.Errorf("%s: %w", fname, err)
	}
	return seqgrp, nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// Sequences are called "s0", "s1", ...
func Str2SeqGrp(sIn []string) *SeqGrp {
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		f := seq{cmmt: fmt.Sprint("s", i), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}
