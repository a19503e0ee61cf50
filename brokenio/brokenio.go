// 17 Oct 2026

// brokenio is a wrapper around an io.ReadCloser. It allows us to set
// rates of failed read operations.
// Typical use: You get a file pointer, a reader from a compressed
// source or an http source. You write
// reader = NewReader(reader) to wrap the old reader. Everything then
// functions as before, but with artificial errors.
// When we introduce an error, we return ErrBroken.
// When we introduce a failure on the first read, we return io.EOF and
// no data. This is what one often sees on a zero length file.
// There is also a deterministic mode, FailAfter, so tests of the fasta
// and fastq readers can say exactly where the input breaks.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what we return when we break a read on purpose.
var ErrBroken = errors.New("brokenio: induced read failure")

// A BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// These values are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
// If verbose is true, print out the amount of data when the file is closed.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32
	fracFail     float32
	failAfter    int // fail once this many bytes have gone through, if >= 0
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader returns a new Reader - a wrapper around the old one.
// seed makes the random failures repeatable.
func NewReader(rIn io.ReadCloser, seed int64) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(seed)),
		fracFail:  0.5,
		failAfter: -1,
	}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetFracFail sets the amount of the bytes which will be trashed
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a file reading failure.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail once n bytes have been delivered.
// A negative n switches this off.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the number of bytes that have gone through.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("%w: wiped out last %d of %d", ErrBroken, len(p)-nkeep, len(p))
}

// Read wraps the original reader and sums up the amount of data that
// has gone through. It generates an error with a probability given by probFail.
// On the first call, we might return zero data to simulate a zero length file
// which is a rather common occurrence.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && r.rnd.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
