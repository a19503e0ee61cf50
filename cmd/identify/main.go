// 17 Oct 2026

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioscripts/pkg/cli"
	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/identify"
)

func main() {
	cli.QuietPipe()
	var verbose bool
	args := identify.CmdArgs{Wrtr: os.Stdout}
	logger := clilog.New(os.Stderr, "identify", "info")
	cmd := &cobra.Command{
		Use:   "identify [flags] FILE...",
		Short: "Say if files hold nucleic acid, amino acid or neither",
		Args:  cli.Args(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, files []string) error {
			clilog.SetVerbose(logger, verbose)
			args.Files = files
			args.Logger = logger
			return identify.Mymain(&args)
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&args.Records, "records", "r", false, "classify each sequence of a fasta file")
	flags.BoolVarP(&args.Composition, "composition", "c", false, "with -r, print symbol counts per sequence")
	flags.BoolVarP(&args.RmvGaps, "gaps", "g", false, "with -r, remove gap characters before classifying")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	cli.Setup(cmd)
	os.Exit(cli.Execute(cmd, os.Stderr, logger))
}
