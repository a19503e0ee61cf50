// 31 July 2020
// 17 Oct 2026 cobra, alphabets and paired fastq

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioscripts/pkg/cli"
	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/randseq"
	"github.com/andrew-torda/bioscripts/pkg/seq/common"
)

// create opens a file for writing, or gives stdout for "-" or "".
func create(fname string) (io.WriteCloser, error) {
	if fname == common.StdinName || fname == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(fname)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// posInt converts s to a non-negative int, as a usage error if it cannot.
func posInt(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, cli.Usage(fmt.Errorf("Failed converting %s to positive integer", s))
	}
	return int(n), nil
}

func run(args *randseq.RandSeqArgs, mate2 string, pos []string) (err error) {
	if args.Nseq, err = posInt(pos[1]); err != nil {
		return err
	}
	if args.Len, err = posInt(pos[2]); err != nil {
		return err
	}
	w1, err := create(pos[0])
	if err != nil {
		return fmt.Errorf("File for output: %w", err)
	}
	defer func() { err = errors.Join(err, w1.Close()) }()
	args.Wrtr = w1
	if mate2 != "" {
		var w2 io.WriteCloser
		if w2, err = create(mate2); err != nil {
			return fmt.Errorf("File for mate 2: %w", err)
		}
		defer func() { err = errors.Join(err, w2.Close()) }()
		args.Mate2 = w2
	}
	if err := randseq.RandSeqMain(args); err != nil && !common.IsBrokenPipe(err) {
		return err
	}
	return nil
}

func main() {
	cli.QuietPipe()
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	var mate2 string
	cmd := &cobra.Command{
		Use:   "randseq [flags] fname nseq length",
		Short: "Make random sequences for testing",
		Args:  cli.Args(cobra.ExactArgs(3)),
		RunE: func(_ *cobra.Command, pos []string) error {
			return run(&args, mate2, pos)
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&args.NoGap, "nogap", "g", false, "do not put gaps in sequences")
	flags.BoolVarP(&args.MkErr, "errors", "e", false, "provoke errors")
	flags.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	flags.StringVarP(&args.Alphabet, "alphabet", "a", "", "protein or dna (default protein, dna for fastq)")
	flags.StringVarP(&mate2, "mate2", "q", "", "write paired fastq, mate 1 to fname, mate 2 here")
	flags.StringVarP(&args.Cmmt, "comment", "c", "", "comment for each sequence")
	cli.Setup(cmd)
	os.Exit(cli.Execute(cmd, os.Stderr, clilog.New(os.Stderr, "randseq", "info")))
}
