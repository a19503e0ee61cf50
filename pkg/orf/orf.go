// 17 Oct 2026

// Package orf finds the first open reading frame in a DNA sequence
// and translates it.
package orf

import (
	"regexp"
	"strings"
)

// An ORF is a start codon, at least one more codon, then the nearest
// stop codon in the same frame.
var orfRe = regexp.MustCompile(`AUG([AUGC]{3})+?(UAA|UAG|UGA)`)

// StopChar is what a stop codon translates to.
const StopChar = '*'

// Standard genetic code, table 1, RNA codons.
var codonTable = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',

	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Transcribe turns DNA into RNA, T to U, keeping case.
func Transcribe(dna string) string {
	return strings.NewReplacer("T", "U", "t", "u").Replace(dna)
}

// FindFirst returns the leftmost open reading frame in rna, stop codon
// included, or "" if there is none. Only upper case is recognised.
func FindFirst(rna string) string {
	return orfRe.FindString(rna)
}

// TranslateCodon gives the one letter code for an RNA codon, or X if
// it is not a codon we know.
func TranslateCodon(codon string) byte {
	if aa, ok := codonTable[strings.ToUpper(codon)]; ok {
		return aa
	}
	return 'X'
}

// Translate translates rna codon by codon, from the first base. Stops
// come out as StopChar and translation carries on past them. A partial
// codon at the end is ignored.
func Translate(rna string) string {
	var sb strings.Builder
	sb.Grow(len(rna) / 3)
	for i := 0; i+3 <= len(rna); i += 3 {
		sb.WriteByte(TranslateCodon(rna[i : i+3]))
	}
	return sb.String()
}

// TranslateFirst transcribes dna, finds the first open reading frame
// and returns its protein, ending in StopChar. No open reading frame
// gives "".
func TranslateFirst(dna string) string {
	return Translate(FindFirst(Transcribe(dna)))
}
