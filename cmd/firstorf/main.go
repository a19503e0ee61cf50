// 17 Oct 2026

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioscripts/pkg/cli"
	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/orf"
)

func main() {
	cli.QuietPipe()
	var verbose bool
	args := orf.CmdArgs{Wrtr: os.Stdout}
	logger := clilog.New(os.Stderr, "firstorf", "info")
	cmd := &cobra.Command{
		Use:   "firstorf [flags] FASTA",
		Short: "Translate the first open reading frame of each fasta sequence",
		Args:  cli.Args(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, pos []string) error {
			clilog.SetVerbose(logger, verbose)
			args.Fname = pos[0]
			args.Logger = logger
			return orf.Mymain(&args)
		},
	}
	cmd.Flags().StringVarP(&args.Pattern, "pattern", "p", orf.DefaultPattern, "regex sequence IDs must match, from the start")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug messages on stderr")
	cli.Setup(cmd)
	os.Exit(cli.Execute(cmd, os.Stderr, logger))
}
