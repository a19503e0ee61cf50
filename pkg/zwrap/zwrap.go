// 17 Oct 2026

// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Decompression is done by pgzip, which reads ahead in parallel. Paired
// fastq files are usually compressed and big, so this is where the time
// goes.

package zwrap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"

	"github.com/andrew-torda/bioscripts/pkg/seq/common"
)

// gzip streams start with these two bytes.
var gzMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader // what we really read from
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fc *FpGzip) Close() error {
	var zerr error
	if fc.zrdr != nil {
		zerr = fc.zrdr.Close()
	}
	return errors.Join(zerr, fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	return fc.rdr.Read(p)
}

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// WrapMaybe peeks at the start of the stream and only decompresses if
// it sees the gzip magic number. Nothing has to seek, so this works on
// pipes and stdin.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	head, err := br.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(head) < len(gzMagic) || head[0] != gzMagic[0] || head[1] != gzMagic[1] {
		return &FpGzip{fp: fp, rdr: br}, nil
	}
	zrdr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// Open opens a file, or stdin if fname is "" or "-", and returns a
// reader that decompresses if it has to.
func Open(fname string) (*FpGzip, error) {
	var fp io.ReadCloser
	if fname == "" || fname == common.StdinName {
		fp = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		fp = f
	}
	r, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return r, nil
}
