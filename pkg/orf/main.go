// 17 Oct 2026

package orf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/charmbracelet/log"

	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/seq/common"
	"github.com/andrew-torda/bioscripts/pkg/zwrap"
)

// DefaultPattern picks out sequences named by a single digit, like the
// chromosomes of Drosophila (2L, 3R, 4, ...).
const DefaultPattern = `^\d{1}\D*$`

// CmdArgs are the settings from the command line.
type CmdArgs struct {
	Fname   string // fasta file, "-" for stdin
	Pattern string // sequence IDs must match this, from the start
	Wrtr    io.Writer
	Logger  *log.Logger
}

// compilePattern anchors the pattern at the start of the ID, but not
// at the end, unless the pattern says so.
func compilePattern(p string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + p + `)`)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", p, err)
	}
	return re, nil
}

// letters copies a biogo sequence into a string.
func letters(s *linear.Seq) string {
	b := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		b[i] = byte(l)
	}
	return string(b)
}

// Run reads fasta from rdr and, for each sequence whose ID matches,
// writes the ID, a space and the translated first open reading frame.
// It returns the number of sequences read and written.
func Run(rdr io.Reader, w io.Writer, pattern string, logger *log.Logger) (nread, nwrite int, err error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return 0, 0, err
	}
	logger = clilog.OrDiscard(logger)
	bw := bufio.NewWriter(w)
	sc := seqio.NewScanner(fasta.NewReader(rdr, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		nread++
		if !re.MatchString(s.ID) {
			logger.Debug("skipping", "id", s.ID)
			continue
		}
		prot := TranslateFirst(letters(s))
		logger.Debug("translated", "id", s.ID, "len", len(s.Seq), "protein_len", len(prot))
		if _, err := fmt.Fprintf(bw, "%s %s\n", s.ID, prot); err != nil {
			return nread, nwrite, err
		}
		nwrite++
	}
	if err := sc.Error(); err != nil {
		return nread, nwrite, err
	}
	return nread, nwrite, bw.Flush()
}

// Mymain opens the file and does the work. A closed pipe on output is
// not an error.
func Mymain(args *CmdArgs) error {
	pattern := args.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	fp, err := zwrap.Open(args.Fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	logger := clilog.OrDiscard(args.Logger)
	nread, nwrite, err := Run(fp, args.Wrtr, pattern, logger)
	if err != nil && !common.IsBrokenPipe(err) {
		return fmt.Errorf("%s: %w", args.Fname, err)
	}
	logger.Debug("finished", "read", nread, "written", nwrite)
	return nil
}
