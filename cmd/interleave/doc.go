// 17 Oct 2026

/*
Interleave takes the two fastq files of a paired end run and writes
one fasta file, mate 1 read, then its mate 2 read, then the next pair.
Usage:
	interleave -mate1 r1.fq -mate2 r2.fq -o pairs.fa

Flags:
	-mate1, --sequence1
		fastq file with the mate 1 reads
	-mate2, --sequence2
		fastq file with the mate 2 reads
	-o, --output
		fasta file to write
	--logFolder
		where the log file goes (default results/logs/). It is created if
		need be. The name is used as it is, so end it with a slash.
	--logBase
		log file name base (default, the program name)
	-v, --verbose
		debug messages on stderr

Inputs may be gzipped. If one file has more reads than the other, the
extras are dropped and a warning is logged.
The log file is called <logFolder><YYYY-MM-DD-HHMM>_<logBase>.log and
says what was read, what was written and when.
*/
package main
