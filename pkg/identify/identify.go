// 17 Oct 2026

// Package identify says whether the sequences in some files look like
// nucleic acid, amino acid or neither.
package identify

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/seq"
	"github.com/andrew-torda/bioscripts/pkg/seq/common"
	"github.com/andrew-torda/bioscripts/pkg/zwrap"
)

// CmdArgs are the settings from the command line.
type CmdArgs struct {
	Files       []string
	Records     bool // fasta files get one answer per sequence
	Composition bool // print symbol counts as well
	RmvGaps     bool // drop gap characters from fasta records
	Wrtr        io.Writer
	Logger      *log.Logger
}

// FirstLine returns the first line of a file, including the newline if
// there is one. The file is mapped, not read, so a huge single line
// sequence file does not get copied into memory. An empty file gives
// an empty line. "-" is stdin, which we cannot map, so it is read.
func FirstLine(fname string) ([]byte, error) {
	if fname == common.StdinName {
		return firstLineRdr(os.Stdin)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // mmap refuses zero length files
		return nil, nil
	}
	if !fi.Mode().IsRegular() {
		return firstLineRdr(fp)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	line := []byte(mm)
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i+1]
	}
	return bytes.Clone(line), nil // mm goes away when we return
}

func firstLineRdr(rdr io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(rdr).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return line, nil
}

// isFasta says if the first line looks like a fasta comment. A gzipped
// file is assumed to be fasta, since we cannot see inside it from here.
func isFasta(line []byte) bool {
	if len(line) > 1 && line[0] == 0x1f && line[1] == 0x8b {
		return true
	}
	return len(line) > 0 && line[0] == '>'
}

// doFile writes the answer for one file.
func doFile(fname string, args *CmdArgs, logger *log.Logger) error {
	var line, all []byte
	var err error
	if fname == common.StdinName && args.Records { // stdin can only be read once
		if all, err = io.ReadAll(os.Stdin); err != nil {
			return err
		}
		line = all
		if i := bytes.IndexByte(all, '\n'); i >= 0 {
			line = all[:i+1]
		}
	} else if line, err = FirstLine(fname); err != nil {
		return err
	}
	if !(args.Records && isFasta(line)) {
		stype := seq.Classify(line)
		logger.Debug("classified first line", "file", fname, "bytes", len(line), "type", stype)
		_, err = fmt.Fprintln(args.Wrtr, stype)
		return err
	}
	var seqgrp *seq.SeqGrp
	s_opts := &seq.Options{RmvGapsRd: args.RmvGaps}
	if all != nil {
		seqgrp = new(seq.SeqGrp)
		var zr *zwrap.FpGzip
		if zr, err = zwrap.WrapMaybe(io.NopCloser(bytes.NewReader(all))); err != nil {
			return err
		}
		defer zr.Close()
		err = seq.ReadFasta(zr, seqgrp, s_opts)
	} else {
		seqgrp, err = seq.Readfile(fname, s_opts)
	}
	if err != nil {
		return err
	}
	logger.Debug("read fasta", "file", fname, "nseq", seqgrp.NSeq())
	for _, s := range seqgrp.SeqSlc() {
		if _, err := fmt.Fprintf(args.Wrtr, "%s\t%s\n", s.Cmmt(), s.Type()); err != nil {
			return err
		}
	}
	if !args.Composition {
		return nil
	}
	if err := seqgrp.WriteComposition(args.Wrtr); err != nil {
		return err
	}
	if err := seqgrp.Upper(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(args.Wrtr, "# %s overall: %s\n", fname, seqgrp.GetType())
	return err
}

// Mymain classifies each file in turn. We stop at the first file
// that cannot be read. If the reader of our output goes away, we stop
// quietly.
func Mymain(args *CmdArgs) error {
	logger := clilog.OrDiscard(args.Logger)
	for _, fname := range args.Files {
		if err := doFile(fname, args, logger); err != nil {
			if common.IsBrokenPipe(err) {
				return nil
			}
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	return nil
}
