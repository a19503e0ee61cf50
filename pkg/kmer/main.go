// 14 Oct 2026

package kmer

import (
	"io"

	"github.com/andrew-torda/bioscripts/pkg/seq/common"
)

// DefaultLen is the k-mer length used when nobody says otherwise.
const DefaultLen = 6

// CmdArgs are the settings from the command line.
type CmdArgs struct {
	Seq  string    // sequence to be cut into k-mers
	K    int       // k-mer length
	Wrtr io.Writer // where the table goes
}

// Mymain counts the k-mers and writes the table. If whoever reads our
// output closes it early, we stop quietly.
func Mymain(args *CmdArgs) error {
	c := Count(args.Seq, args.K)
	if _, err := c.WriteTo(args.Wrtr); err != nil && !common.IsBrokenPipe(err) {
		return err
	}
	return nil
}
