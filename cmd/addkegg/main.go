// 17 Oct 2026

package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioscripts/pkg/cli"
	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/kegg"
)

func main() {
	var args kegg.CmdArgs
	logger := clilog.New(os.Stderr, "addkegg", "info")
	cmd := &cobra.Command{
		Use:   "addkegg [flags]",
		Short: "Add KEGG orthology and pathways to BLAST hits",
		Args:  cli.Args(cobra.NoArgs),
		RunE: func(c *cobra.Command, _ []string) error {
			clilog.SetVerbose(logger, args.Verbose)
			args.Logger = logger
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt)
			defer stop()
			_, err := kegg.Mymain(ctx, &args)
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&args.Infile, "infile", "i", kegg.DefaultInfile, "tab separated BLAST output")
	flags.StringVarP(&args.Evalue, "evalue", "e", kegg.DefaultEvalue, "keep hits with e-value below this")
	flags.StringVarP(&args.Outfile, "outfile", "o", kegg.DefaultOutfile, "annotated output")
	flags.StringVar(&args.ConfigFile, "config", kegg.DefaultConfigFile, "JSON config file, ignored if missing")
	flags.StringVar(&args.BaseURL, "base-url", "", "KEGG REST server (default from config, else "+kegg.DefaultBaseURL+")")
	flags.BoolVarP(&args.Verbose, "verbose", "v", false, "debug messages on stderr")
	cli.Setup(cmd)
	os.Exit(cli.Execute(cmd, os.Stderr, logger))
}
