// 17 Oct 2026

package kegg

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/bioscripts/pkg/clilog"
)

// mapPrefix marks the generic reference pathways, which we leave out.
const mapPrefix = "path:map"

// hit is what we learnt about one UniProt ID. An empty ko means we
// found nothing.
type hit struct {
	ko    string
	paths []string
}

// Annotator adds pathways to BLAST lines. It remembers what it looked
// up, so a UniProt ID that turns up again costs no requests.
type Annotator struct {
	client    *Client
	threshold float64
	logger    *log.Logger
	pathways  map[string]string // pathway ID -> name, loaded once
	memo      map[string]hit
}

// Stats are counts from one run of Annotate.
type Stats struct {
	Lines    int // non blank input lines
	Hits     int // lines below the e-value threshold
	Written  int // output lines
	Requests int // lookups that went to the server
}

// NewAnnotator returns an annotator keeping hits with e-value below
// threshold. logger may be nil.
func NewAnnotator(c *Client, threshold float64, logger *log.Logger) *Annotator {
	return &Annotator{
		client:    c,
		threshold: threshold,
		logger:    clilog.OrDiscard(logger),
		memo:      make(map[string]hit),
	}
}

// lookup goes UniProt ID -> first KEGG gene -> first orthology ID ->
// pathways, without the map ones.
func (a *Annotator) lookup(ctx context.Context, uniprot string, st *Stats) (hit, error) {
	if h, ok := a.memo[uniprot]; ok {
		a.logger.Debug("memo", "uniprot", uniprot)
		return h, nil
	}
	st.Requests++
	var h hit
	genes, err := a.client.ConvGenes(ctx, uniprot)
	if err != nil {
		return h, err
	}
	if len(genes) == 0 {
		a.logger.Debug("no kegg gene", "uniprot", uniprot)
		a.memo[uniprot] = h
		return h, nil
	}
	kos, err := a.client.LinkOrthology(ctx, genes[0])
	if err != nil {
		return h, err
	}
	if len(kos) == 0 {
		a.logger.Debug("no orthology", "uniprot", uniprot, "gene", genes[0])
		a.memo[uniprot] = h
		return h, nil
	}
	h.ko = kos[0]
	paths, err := a.client.LinkPathways(ctx, h.ko)
	if err != nil {
		return h, err
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, mapPrefix) {
			h.paths = append(h.paths, p)
		}
	}
	a.logger.Debug("looked up", "uniprot", uniprot, "gene", genes[0], "ko", h.ko, "npath", len(h.paths))
	a.memo[uniprot] = h
	return h, nil
}

// pathName finds the name of a pathway. The link service says
// "path:ko00010" where the list service may say "ko00010", so we try
// both. An unknown pathway gets an empty name.
func (a *Annotator) pathName(id string) string {
	if name, ok := a.pathways[id]; ok {
		return name
	}
	if name, ok := a.pathways[strings.TrimPrefix(id, "path:")]; ok {
		return name
	}
	a.logger.Warn("no name for pathway", "id", id)
	return ""
}

// Annotate reads tab separated BLAST output from r. For each hit good
// enough, it writes the line followed by the orthology ID, a pathway ID
// and the pathway name, one output line per pathway. Blank lines are
// skipped. Hits with no pathways write nothing.
func (a *Annotator) Annotate(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	if a.pathways == nil {
		p, err := a.client.ListPathways(ctx)
		if err != nil {
			return st, fmt.Errorf("loading pathway names: %w", err)
		}
		a.pathways = p
		a.logger.Info("loaded pathway names", "n", len(p))
	}
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		st.Lines++
		uniprot, ok, err := UniProtFromBlast(line, a.threshold)
		if err != nil {
			return st, fmt.Errorf("line %d: %w", lineno, err)
		}
		if !ok {
			continue
		}
		st.Hits++
		h, err := a.lookup(ctx, uniprot, &st)
		if err != nil {
			return st, fmt.Errorf("line %d, %s: %w", lineno, uniprot, err)
		}
		for _, p := range h.paths {
			if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", line, h.ko, p, a.pathName(p)); err != nil {
				return st, err
			}
			st.Written++
		}
	}
	if err := sc.Err(); err != nil {
		return st, err
	}
	return st, bw.Flush()
}
