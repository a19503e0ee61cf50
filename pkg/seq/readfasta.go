// 17 Oct 2026

// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/andrew-torda/bioscripts/pkg/seq/common"
)

// isWhite is for the characters we throw away from sequence lines.
var isWhite = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// rmWhite removes white space and, if asked, gaps, in place.
func rmWhite(b []byte, rmGap bool) []byte {
	out := b[:0]
	for _, c := range b {
		if isWhite[c] || (rmGap && c == common.GapChar) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ReadFasta reads fasta formatted files. Sequences may be spread over
// many lines and have white space anywhere. A comment with no sequence
// after it is an error, as is input with no sequences at all.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	br := bufio.NewReader(rdr)
	var cur *seq
	finish := func() error {
		if cur == nil {
			return nil
		}
		if len(cur.seq) == 0 {
			return errors.New("Zero length sequence after " + trimStr(cur.cmmt, 40))
		}
		seqgrp.seqs = append(seqgrp.seqs, *cur)
		return nil
	}
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if line[0] == cmmt_char {
				if ferr := finish(); ferr != nil {
					return ferr
				}
				cmmt := bytes.TrimRight(line[1:], "\r\n")
				cur = &seq{cmmt: string(cmmt)}
			} else if s := rmWhite(line, s_opts.RmvGapsRd); len(s) > 0 {
				if cur == nil {
					return errors.New("sequence data before the first comment line")
				}
				cur.seq = append(cur.seq, s...)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if err := finish(); err != nil {
		return err
	}
	if seqgrp.NSeq() == 0 {
		return errors.New("No sequences found")
	}
	seqgrp.clear()
	return nil
}
