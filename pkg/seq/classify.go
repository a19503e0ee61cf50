// 6 Apr 2020
// 16 Oct 2026 Classify, for one sequence at a time

package seq

// Symbol sets used by Classify. Everything is upper case by the time
// we look.
var (
	isNtide = [256]bool{'A': true, 'C': true, 'G': true, 'T': true, 'U': true}
	isAmino = [256]bool{
		'A': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true,
		'I': true, 'K': true, 'L': true, 'M': true, 'N': true, 'P': true, 'Q': true,
		'R': true, 'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
	}
)

// upper is a byte-only toupper.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Classify says whether s is nucleic acid, amino acid, or neither.
// We walk along the sequence. A letter that can only be an amino acid
// makes it a protein. A letter that is neither a base nor an amino acid
// stops us straight away and the answer is Unknown. Case does not matter
// and a trailing newline (with or without \r) is not part of the sequence.
// An empty sequence counts as nucleic acid, since nothing in it says
// otherwise.
func Classify(s []byte) SeqType {
	for n := len(s); n > 0 && (s[n-1] == '\n' || s[n-1] == '\r'); n = len(s) {
		s = s[:n-1]
	}
	ret := Ntide
	for _, c := range s {
		c = upper(c)
		switch {
		case isNtide[c]:
		case isAmino[c]:
			ret = Protein
		default:
			return Unknown
		}
	}
	return ret
}

// SetSymUsed fills out the bool slice which says whether or not a
// symbol was used.
func (seqgrp *SeqGrp) SetSymUsed() {
	for _, ss := range seqgrp.seqs {
		for _, c := range ss.seq {
			if c < MaxSym {
				seqgrp.symUsed[c] = true
			}
		}
	}
	seqgrp.usedKnwn = true
}

// GetType looks at a set of sequences and returns its best guess
// as to the type of file. Unlike Classify, it tries to say DNA or RNA
// and it expects the group to have been upper cased.
func (seqgrp *SeqGrp) GetType() SeqType {
	if seqgrp.stype != Unchecked { // If the sequence type has been
		return seqgrp.stype //      set, just return it.
	}

	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	seqgrp.stype = seqgrp.guess()
	return seqgrp.stype
}

func (seqgrp *SeqGrp) guess() SeqType {
	protType := []byte{
		'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
		'N', 'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

	used := seqgrp.symUsed
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //          just return protein type.
			return Protein
		}
	}

	if used['T'] && used['U'] {
		return Ntide
	}
	// If we have ACG, but neither T or U, it is a nucleotide
	// but we cannot tell if it is RNA or DNA
	if used['A'] && used['C'] && used['G'] && !used['T'] && !used['U'] {
		return Ntide
	}
	if used['T'] {
		return DNA
	}
	if used['U'] {
		return RNA
	}

	return Unknown
}
