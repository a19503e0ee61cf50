// 14 Oct 2026

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioscripts/pkg/cli"
	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/kmer"
)

func main() {
	cli.QuietPipe()
	args := kmer.CmdArgs{Wrtr: os.Stdout}
	cmd := &cobra.Command{
		Use:   "kmers [flags] sequence",
		Short: "Count the overlapping k-mers of a sequence",
		Args:  cli.Args(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, pos []string) error {
			args.Seq = pos[0]
			return kmer.Mymain(&args)
		},
	}
	cmd.Flags().IntVarP(&args.K, "kmer_length", "k", kmer.DefaultLen, "length of the k-mers")
	cli.Setup(cmd)
	os.Exit(cli.Execute(cmd, os.Stderr, clilog.New(os.Stderr, "kmers", "info")))
}
