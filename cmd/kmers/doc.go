// 14 Oct 2026

/*
Kmers counts the k-mers in a sequence.
Usage:
	kmers [-k length] sequence

It slides a window of length k along the sequence and prints each
substring it sees with the number of times it was seen, one per line,
separated by a tab. The order is the order of first appearance.

Flags:
	-k, --kmer_length
		length of the k-mers (default 6)

If k is longer than the sequence, or not positive, nothing is printed.
The sequence is taken as it is. Upper and lower case are different.
A character is a UTF-8 character, unless the sequence is not valid
UTF-8. Then a character is a byte, and bytes are printed unchanged.
*/
package main
