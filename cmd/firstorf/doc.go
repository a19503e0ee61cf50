// 17 Oct 2026

/*
Firstorf translates the first open reading frame of sequences in a
fasta file.
Usage:
	firstorf [-p pattern] file.fa

For each sequence whose ID matches the pattern, the DNA is transcribed,
the leftmost AUG ... stop in one frame is found and translated with the
standard code. Output is the ID, a space and the protein, with * for
the stop. If there is no open reading frame, the protein is empty.
Only upper case sequence is searched.

Flags:
	-p, --pattern
		regular expression for the IDs (default ^\d{1}\D*$, which picks
		Drosophila chromosome arms). It has to match at the start of the
		ID, not necessarily the whole ID.
	-v, --verbose
		debug messages on stderr

The file may be gzipped. "-" reads stdin.
*/
package main
