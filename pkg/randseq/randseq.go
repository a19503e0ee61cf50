// 31 July 2020
// 15 Oct 2026 alphabets and paired fastq output

package randseq

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
	minQual   = 20
	maxQual   = 41
)

// Symbols we draw from.
var (
	Protein = []byte("acdefghiklmnpqrstvwy")
	DNA     = []byte("ACGT")
)

// Seq returns a random sequence of length n drawn from letters.
func Seq(rnd *rand.Rand, letters []byte, n int) []byte {
	ret := make([]byte, n)
	l := int32(len(letters))
	for i := range ret {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed    int64     // random number seed
	Wrtr     io.Writer // where we write to, mate 1 if we write fastq
	Mate2    io.Writer // if not nil, write paired fastq, mate 2 goes here
	Cmmt     string    // Comment for the sequences
	Alphabet string    // "protein" (default) or "dna"
	Nseq     int       // number of sequences
	Len      int       // Length of sequences
	NoGap    bool      // Do not add gaps
	MkErr    bool      // Add an error, by changing a length
}

// letters picks the alphabet. Protein sequences get lots of gaps unless
// we were told not to, since the alignment tools were the first customers.
func (args *RandSeqArgs) letters() ([]byte, error) {
	switch args.Alphabet {
	case "", "protein":
		if args.NoGap {
			return Protein, nil
		}
		l := append([]byte{}, Protein...)
		l = append(l, l...)
		l = append(l, l...)
		return append(l, '-'), nil
	case "dna":
		return DNA, nil
	}
	return nil, fmt.Errorf("unknown alphabet %q, want protein or dna", args.Alphabet)
}

// addinner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions, about 10 %. We flip a coin. Heads we don't add a newline.
// Tails we make about 1/9 of the spaces newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := len(s) / nPadWhite
	nNL := 0 // Number of new lines to add
	if spacernd.Int31n(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// seqLen is the length of sequence i. If we are provoking errors, the
// last one is one shorter than it should be.
func (args *RandSeqArgs) seqLen(i int) int {
	if args.MkErr && i == args.Nseq-1 && args.Len > 0 {
		return args.Len - 1
	}
	return args.Len
}

// writeFasta writes sequences with comments "> something 1, > something 2..."
func writeFasta(args *RandSeqArgs, letters []byte, rnd *rand.Rand) error {
	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	for i := 0; i < args.Nseq; i++ {
		s := Seq(rnd, letters, args.seqLen(i))
		if args.Alphabet != "dna" {
			s = addspace(s, spacernd)
		}
		if _, err := fmt.Fprintf(args.Wrtr, "> %s %[2]*d\n%s\n", args.Cmmt, width, i+1, s); err != nil {
			return err
		}
	}
	return nil
}

// qseq makes a read with random qualities.
func qseq(id, desc string, s []byte, rnd *rand.Rand) *linear.QSeq {
	ql := make([]alphabet.QLetter, len(s))
	for i, c := range s {
		ql[i] = alphabet.QLetter{
			L: alphabet.Letter(c),
			Q: alphabet.Qphred(minQual + rnd.Intn(maxQual-minQual)),
		}
	}
	q := linear.NewQSeq(id, ql, alphabet.DNA, alphabet.Sanger)
	q.Desc = desc
	return q
}

// writePairs writes mate 1 reads to Wrtr and mate 2 reads to Mate2.
// With MkErr, mate 2 gets one read fewer.
func writePairs(args *RandSeqArgs, letters []byte, rnd *rand.Rand) error {
	w1 := fastq.NewWriter(args.Wrtr)
	w2 := fastq.NewWriter(args.Mate2)
	n2 := args.Nseq
	if args.MkErr && n2 > 0 {
		n2--
	}
	for i := 0; i < args.Nseq; i++ {
		id := fmt.Sprintf("read%d", i+1)
		s := Seq(rnd, letters, args.Len)
		if _, err := w1.Write(qseq(id+"/1", args.Cmmt, s, rnd)); err != nil {
			return err
		}
		if i >= n2 {
			continue
		}
		s = Seq(rnd, letters, args.Len)
		if _, err := w2.Write(qseq(id+"/2", args.Cmmt, s, rnd)); err != nil {
			return err
		}
	}
	return nil
}

// RandSeqMain writes random sequences to an io.Writer, or pairs of
// fastq files if Mate2 is set.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Wrtr == nil {
		return errors.New("randseq: no writer")
	}
	if args.Mate2 != nil && args.Alphabet == "" {
		args.Alphabet = "dna"
	}
	letters, err := args.letters()
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	if args.Mate2 != nil {
		return writePairs(args, letters, rnd)
	}
	return writeFasta(args, letters, rnd)
}
