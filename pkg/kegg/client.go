// 17 Oct 2026

// Package kegg annotates BLAST hits with KEGG orthology and pathway
// information, fetched from the KEGG REST service.
package kegg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is where the KEGG REST service lives.
const DefaultBaseURL = "https://rest.kegg.jp"

// DefaultTimeout is for a single request.
const DefaultTimeout = 30 * time.Second

// Client talks to the KEGG REST service. There are no retries. A
// request that fails, fails.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client // tests swap in their own transport
	UserAgent  string
}

// StatusError is returned for a reply that is neither 2xx nor 404.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("kegg: %s: HTTP status %d", e.URL, e.Status)
}

// NewClient returns a client for baseURL, or DefaultBaseURL if that is
// empty. timeout is per request, zero means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// fields fetches path and returns the tab separated fields of every
// non blank line. A 404 means KEGG knows nothing, so there are no lines.
func (c *Client) fields(ctx context.Context, path string) ([][]string, error) {
	u := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kegg: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: u, Status: resp.StatusCode}
	}

	var ret [][]string
	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		ret = append(ret, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("kegg: reading %s: %w", u, err)
	}
	return ret, nil
}

// second returns the second field of each line, in order.
func (c *Client) second(ctx context.Context, path string) ([]string, error) {
	lines, err := c.fields(ctx, path)
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, f := range lines {
		if len(f) < 2 {
			return nil, errors.New("kegg: " + path + ": line with no tab: " + strings.Join(f, ""))
		}
		ret = append(ret, f[1])
	}
	return ret, nil
}

// ListPathways returns KEGG pathway IDs and their names.
func (c *Client) ListPathways(ctx context.Context) (map[string]string, error) {
	lines, err := c.fields(ctx, "/list/pathway/ko")
	if err != nil {
		return nil, err
	}
	ret := make(map[string]string, len(lines))
	for _, f := range lines {
		if len(f) < 2 {
			continue
		}
		ret[f[0]] = f[1]
	}
	return ret, nil
}

// ConvGenes returns the KEGG genes (organism:gene) for a UniProt ID.
func (c *Client) ConvGenes(ctx context.Context, uniprot string) ([]string, error) {
	return c.second(ctx, "/conv/genes/uniprot:"+url.PathEscape(uniprot))
}

// LinkOrthology returns the KEGG orthology IDs for a KEGG gene.
func (c *Client) LinkOrthology(ctx context.Context, gene string) ([]string, error) {
	return c.second(ctx, "/link/ko/"+url.PathEscape(gene))
}

// LinkPathways returns the pathway IDs an orthology ID belongs to.
func (c *Client) LinkPathways(ctx context.Context, ko string) ([]string, error) {
	return c.second(ctx, "/link/pathway/"+url.PathEscape(ko))
}
