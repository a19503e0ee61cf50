// 17 Oct 2026

package kegg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/bioscripts/pkg/clilog"
	"github.com/andrew-torda/bioscripts/pkg/zwrap"
)

// Defaults for the command line.
const (
	DefaultInfile  = "./data/alignPredicted_1.txt"
	DefaultOutfile = "./results/alignPredicted_1_results.txt"
	DefaultEvalue  = "1e-50"
)

// CmdArgs are the settings from the command line. Empty strings mean
// "take it from the config file, or the default".
type CmdArgs struct {
	Infile     string
	Outfile    string
	Evalue     string
	ConfigFile string
	BaseURL    string
	Verbose    bool
	Logger     *log.Logger
}

// Mymain loads the config, then annotates Infile into Outfile. The
// directory for Outfile is made if need be.
func Mymain(ctx context.Context, args *CmdArgs) (st Stats, err error) {
	logger := clilog.OrDiscard(args.Logger)
	cfg, err := LoadConfig(args.ConfigFile)
	if err != nil {
		return st, err
	}
	if cfg.LogLevel != "" && !args.Verbose {
		lvl, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return st, fmt.Errorf("config log_level: %w", err)
		}
		logger.SetLevel(lvl)
	}
	threshold, err := strconv.ParseFloat(args.Evalue, 64)
	if err != nil {
		return st, fmt.Errorf("e-value %q: %w", args.Evalue, err)
	}
	baseURL := cfg.BaseURL
	if args.BaseURL != "" {
		baseURL = args.BaseURL
	}
	client := NewClient(baseURL, cfg.Timeout())
	client.UserAgent = cfg.UserAgent
	logger.Debug("settings", "base_url", client.BaseURL, "timeout", client.HTTPClient.Timeout, "evalue", threshold)

	in, err := zwrap.Open(args.Infile)
	if err != nil {
		return st, err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(args.Outfile), 0o755); err != nil {
		return st, err
	}
	out, err := os.Create(args.Outfile)
	if err != nil {
		return st, err
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	st, err = NewAnnotator(client, threshold, logger).Annotate(ctx, in, out)
	if err != nil {
		return st, fmt.Errorf("%s: %w", args.Infile, err)
	}
	logger.Info("done", "lines", st.Lines, "hits", st.Hits, "written", st.Written, "lookups", st.Requests)
	return st, nil
}
