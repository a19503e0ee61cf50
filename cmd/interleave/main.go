// 17 Oct 2026

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/andrew-torda/bioscripts/pkg/cli"
	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/interleave"
)

// aliases maps the old names to the flags we really have.
var aliases = map[string]string{
	"mate1": "sequence1",
	"mate2": "sequence2",
}

func normalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if n, ok := aliases[name]; ok {
		name = n
	}
	return pflag.NormalizedName(name)
}

func main() {
	var verbose bool
	prog := filepath.Base(os.Args[0])
	args := interleave.CmdArgs{}
	logger := clilog.New(os.Stderr, prog, "info")
	cmd := &cobra.Command{
		Use:   prog + " -mate1 FASTQ -mate2 FASTQ -o FASTA",
		Short: "Interleave mate-pair FASTQ sequences into a single FASTA file",
		Args:  cli.Args(cobra.NoArgs),
		RunE: func(c *cobra.Command, _ []string) error {
			if err := cli.NeedFlags(c, "sequence1", "sequence2", "output"); err != nil {
				return err
			}
			clilog.SetVerbose(logger, verbose)
			args.Logger = logger
			res, err := interleave.Mymain(&args)
			if err == nil {
				logger.Debug("done", "pairs", res.Pairs)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalize)
	flags.StringVar(&args.Mate1, "sequence1", "", "FASTQ file of mate 1 reads (also -mate1)")
	flags.StringVar(&args.Mate2, "sequence2", "", "FASTQ file of mate 2 reads (also -mate2)")
	flags.StringVarP(&args.Output, "output", "o", "", "FASTA file for the interleaved reads")
	flags.StringVar(&args.LogFolder, "logFolder", "results/logs/", "folder for log files")
	flags.StringVar(&args.LogBase, "logBase", prog, "base of the log file name")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug messages on stderr")
	cli.Setup(cmd)
	cmd.SetArgs(cli.LongDash(os.Args[1:], "mate1", "mate2", "sequence1", "sequence2", "output", "logFolder", "logBase"))
	os.Exit(cli.Execute(cmd, os.Stderr, logger))
}
