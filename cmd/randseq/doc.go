// 31 July 2020

/*
Randseq is for making random sequences for testing the code.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length and write them to fname.

Flags:
	-g
		no gaps in the output sequences
	-e
		provoke errors. With fasta output, the last sequence is one
		shorter. With -q, mate 2 gets one read fewer than mate 1.
	-r
		random number seed
	-a
		alphabet, protein or dna
	-q file
		write paired fastq. Mate 1 reads go to fname, mate 2 to file.
	-c
		comment to put on each sequence

We are most interested in benchmarking and parsing, so the content is not so important.
For protein, the only question that comes up is white space and gaps.
Whitespace should generally be unpredictable, so we generate funny cases.
DNA and fastq output are written plain, one sequence per line, since
that is what sequencers give us.
*/
package main
