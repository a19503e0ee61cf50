// 17 Oct 2026

/*
Identify says whether a file holds nucleic acid, amino acid or neither.
Usage:
	identify [flags] FILE...

For each file, the first line is read and one of
	nucleic acid
	amino acid
	not amino acid or nucleic acid
is printed. Only A, C, G, T and U are nucleic acid. Any of the twenty
standard amino acid letters that is not also a base makes it amino acid.
Anything else, including spaces and gaps, gives the third answer.
Case does not matter. "-" reads from stdin.

Flags:
	-r, --records
		if a file is fasta (first character ">" or gzipped), classify every
		sequence in it and print the comment, a tab and the answer
	-c, --composition
		with -r, also print a table of symbol counts per sequence and a
		best guess (DNA, RNA, protein) for the whole file
	-g, --gaps
		with -r, remove "-" from sequences before classifying, so an
		aligned sequence is judged by its residues
	-v, --verbose
		debug messages on stderr
*/
package main
