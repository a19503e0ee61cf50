// 17 Oct 2026

// Package interleave takes the two files of a paired end run, mate 1
// and mate 2 in fastq format, and writes them to one fasta file with
// the pairs next to each other.
package interleave

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/charmbracelet/log"

	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/zwrap"
)

// LineWidth is how many residues go on a line of fasta output.
const LineWidth = 60

// Result says what happened. If one file was longer than the other,
// the extra reads were not written.
type Result struct {
	Pairs  int  // number of pairs written
	Uneven bool // one file had reads left over
	Longer int  // which mate (1 or 2) had them
}

// newReader returns a fastq reader. We accept ambiguous bases (N is
// common in reads) and Sanger, phred+33, qualities.
func newReader(r io.Reader) *fastq.Reader {
	return fastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNAredundant, alphabet.Sanger))
}

// next returns the next read, or nil at the end of the file.
func next(r *fastq.Reader, mate int) (seq.Sequence, error) {
	s, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mate %d: %w", mate, err)
	}
	return s, nil
}

// Interleave reads pairs from mate1 and mate2 and writes mate 1, mate 2,
// mate 1, ... to w as fasta. It stops when either input runs out.
func Interleave(mate1, mate2 io.Reader, w io.Writer) (Result, error) {
	var res Result
	r1, r2 := newReader(mate1), newReader(mate2)
	fw := fasta.NewWriter(w, LineWidth)
	for {
		s1, err := next(r1, 1)
		if err != nil {
			return res, err
		}
		s2, err := next(r2, 2)
		if err != nil {
			return res, err
		}
		if s1 == nil || s2 == nil {
			res.Uneven = s1 != nil || s2 != nil
			if s1 != nil {
				res.Longer = 1
			} else if s2 != nil {
				res.Longer = 2
			}
			return res, nil
		}
		if _, err := fw.Write(s1); err != nil {
			return res, err
		}
		if _, err := fw.Write(s2); err != nil {
			return res, err
		}
		res.Pairs++
	}
}

// PathLogFile returns the name of the log file for a run started at t,
// like results/logs/2026-10-17-0930_interleave.log. folder is used as
// it is, so it should end in a slash.
func PathLogFile(folder, base string, t time.Time) string {
	return folder + t.Format("2006-01-02-1504") + "_" + base + ".log"
}

// CmdArgs are the settings from the command line.
type CmdArgs struct {
	Mate1     string
	Mate2     string
	Output    string
	LogFolder string
	LogBase   string
	Now       func() time.Time // clock, so tests know the log file name
	Logger    *log.Logger      // for the terminal, not the log file
}

// Mymain does a complete run. Besides the fasta file, it writes a log
// file saying what it was asked to do and when each step happened.
func Mymain(args *CmdArgs) (res Result, err error) {
	now := args.Now
	if now == nil {
		now = time.Now
	}
	logger := clilog.OrDiscard(args.Logger)
	logName := PathLogFile(args.LogFolder, args.LogBase, now())
	if err := os.MkdirAll(filepath.Dir(logName), 0o755); err != nil {
		return res, fmt.Errorf("log folder: %w", err)
	}
	logFile, err := os.Create(logName)
	if err != nil {
		return res, fmt.Errorf("log file: %w", err)
	}
	defer func() { err = errors.Join(err, logFile.Close()) }()
	runlog := clilog.New(logFile, args.LogBase, "info")
	logger.Debug("logging to", "file", logName)

	runlog.Info("starting", "mate1", args.Mate1, "mate2", args.Mate2, "output", args.Output)
	res, err = run(args, runlog)
	if err != nil {
		runlog.Error("failed", "err", err)
		return res, err
	}
	if res.Uneven {
		runlog.Warn("mate files have different numbers of reads, extras dropped", "longer", res.Longer)
		logger.Warn("mate files have different numbers of reads, extras dropped", "longer", res.Longer)
	}
	runlog.Info("finished", "pairs", res.Pairs)
	return res, nil
}

// run opens everything and interleaves.
func run(args *CmdArgs, runlog *log.Logger) (res Result, err error) {
	runlog.Info("preparing input data")
	m1, err := zwrap.Open(args.Mate1)
	if err != nil {
		return res, err
	}
	defer m1.Close()
	m2, err := zwrap.Open(args.Mate2)
	if err != nil {
		return res, err
	}
	defer m2.Close()
	runlog.Debug("inputs", "mate1_gzip", m1.Compressed(), "mate2_gzip", m2.Compressed())

	out, err := os.Create(args.Output)
	if err != nil {
		return res, err
	}
	defer func() { err = errors.Join(err, out.Close()) }()
	bw := bufio.NewWriter(out)

	runlog.Info("writing results", "file", args.Output)
	if res, err = Interleave(m1, m2, bw); err != nil {
		return res, err
	}
	return res, bw.Flush()
}
