// 17 Oct 2026

package kegg_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/bioscripts/pkg/kegg"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// fakeKegg serves canned replies by path and counts requests.
type fakeKegg struct {
	mu    sync.Mutex
	pages map[string]string
	calls map[string]int
}

func (f *fakeKegg) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[r.URL.Path]++
	body, ok := f.pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	io.WriteString(w, body)
}

func newFake(t *testing.T) (*fakeKegg, *kegg.Client) {
	f := &fakeKegg{
		calls: make(map[string]int),
		pages: map[string]string{
			"/list/pathway/ko": "ko00010\tGlycolysis / Gluconeogenesis\n" +
				"ko00020\tCitrate cycle (TCA cycle)\n" +
				"path:ko00030\tPentose phosphate pathway\n\n",
			"/conv/genes/uniprot:P12345": "up:P12345\thsa:1234\nup:P12345\tmmu:99\n",
			"/link/ko/hsa:1234":          "hsa:1234\tko:K00001\n",
			"/link/pathway/ko:K00001": "ko:K00001\tpath:map00010\n" +
				"ko:K00001\tpath:ko00010\n" +
				"ko:K00001\tpath:ko00030\n" +
				"ko:K00001\tpath:ko99999\n",
			"/conv/genes/uniprot:Q00001": "up:Q00001\tdme:Dmel_1\n",
			"/link/ko/dme:Dmel_1":        "dme:Dmel_1\tko:K00002\n",
			"/link/pathway/ko:K00002":    "ko:K00002\tpath:ko00020\n",
		},
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, kegg.NewClient(srv.URL+"/", 0)
}

func TestUniProtFromBlast(t *testing.T) {
	tests := []struct {
		line    string
		id      string
		ok, err bool
	}{
		{"q1\tP12345\t99\t100\t0\t0\t1\t1e-60\t200", "P12345", true, false},
		{"q1\tP12345\t99\t100\t0\t0\t1\t1e-40\t200", "", false, false},
		{"q1\tP12345\t99\t100\t0\t0\t1\t1e-50", "", false, false}, // not below
		{"  q1\tP1\t9\t1\t0\t0\t1\t0.0  ", "P1", true, false},
		{"q1\tP12345\t99", "", false, true},
		{"q1\tP12345\t99\t100\t0\t0\t1\tbig", "", false, true},
	}
	for _, tt := range tests {
		id, ok, err := kegg.UniProtFromBlast(tt.line, 1e-50)
		if id != tt.id || ok != tt.ok || (err != nil) != tt.err {
			t.Errorf("%q: got %q %v %v", tt.line, id, ok, err)
		}
	}
}

func TestClient(t *testing.T) {
	_, c := newFake(t)
	ctx := context.Background()
	paths, err := c.ListPathways(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 || paths["ko00020"] != "Citrate cycle (TCA cycle)" {
		t.Fatalf("pathways %v", paths)
	}
	genes, err := c.ConvGenes(ctx, "P12345")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"hsa:1234", "mmu:99"}, genes); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	kos, err := c.LinkOrthology(ctx, "hsa:1234")
	if err != nil || len(kos) != 1 || kos[0] != "ko:K00001" {
		t.Fatalf("orthology %v %v", kos, err)
	}
	none, err := c.ConvGenes(ctx, "NOTHING")
	if err != nil || len(none) != 0 {
		t.Fatalf("404 should be empty, got %v %v", none, err)
	}
}

func TestStatusError(t *testing.T) {
	c := kegg.NewClient("http://kegg.invalid", 0)
	var agent string
	c.UserAgent = "bioscripts-test"
	c.HTTPClient = &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		agent = r.Header.Get("User-Agent")
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("oops")),
			Header:     make(http.Header),
		}, nil
	})}
	_, err := c.LinkPathways(context.Background(), "ko:K1")
	var se *kegg.StatusError
	if !errors.As(err, &se) || se.Status != 500 {
		t.Fatalf("want StatusError 500, got %v", err)
	}
	if agent != "bioscripts-test" {
		t.Fatalf("User-Agent %q", agent)
	}
}

func TestCancelled(t *testing.T) {
	_, c := newFake(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.ListPathways(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

const blast = "q1\tP12345\t99\t100\t0\t0\t1\t1e-60\t200\n" +
	"\n" +
	"q2\tP12345\t98\t100\t0\t0\t1\t1e-70\t190\n" +
	"q3\tQ00001\t90\t100\t0\t0\t1\t1e-10\t50\n" +
	"q4\tQ00001\t90\t100\t0\t0\t1\t1e-55\t150\n" +
	"q5\tX99999\t90\t100\t0\t0\t1\t1e-99\t150\n"

func TestAnnotate(t *testing.T) {
	f, c := newFake(t)
	var out strings.Builder
	st, err := kegg.NewAnnotator(c, 1e-50, nil).Annotate(context.Background(), strings.NewReader(blast), &out)
	if err != nil {
		t.Fatal(err)
	}
	q1 := "q1\tP12345\t99\t100\t0\t0\t1\t1e-60\t200"
	q2 := "q2\tP12345\t98\t100\t0\t0\t1\t1e-70\t190"
	q4 := "q4\tQ00001\t90\t100\t0\t0\t1\t1e-55\t150"
	want := []string{
		q1 + "\tko:K00001\tpath:ko00010\tGlycolysis / Gluconeogenesis",
		q1 + "\tko:K00001\tpath:ko00030\tPentose phosphate pathway",
		q1 + "\tko:K00001\tpath:ko99999\t",
		q2 + "\tko:K00001\tpath:ko00010\tGlycolysis / Gluconeogenesis",
		q2 + "\tko:K00001\tpath:ko00030\tPentose phosphate pathway",
		q2 + "\tko:K00001\tpath:ko99999\t",
		q4 + "\tko:K00002\tpath:ko00020\tCitrate cycle (TCA cycle)",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(kegg.Stats{Lines: 5, Hits: 4, Written: 7, Requests: 3}, st); diff != "" {
		t.Fatalf("stats (-want +got):\n%s", diff)
	}
	if n := f.calls["/conv/genes/uniprot:P12345"]; n != 1 {
		t.Fatalf("P12345 looked up %d times, memo not working", n)
	}
}

func TestAnnotateBadLine(t *testing.T) {
	_, c := newFake(t)
	in := "q1\tP12345\t99\t100\t0\t0\t1\t1e-60\t200\nq2\tshort\n"
	_, err := kegg.NewAnnotator(c, 1e-50, nil).Annotate(context.Background(), strings.NewReader(in), io.Discard)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("want error naming line 2, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := kegg.LoadConfig(filepath.Join(dir, "missing.json"))
	if err != nil || *cfg != (kegg.Config{}) {
		t.Fatalf("missing file should give defaults, got %+v %v", cfg, err)
	}
	good := filepath.Join(dir, "good.json")
	os.WriteFile(good, []byte(`{"base_url": "http://x", "timeout_seconds": 5, "log_level": "debug", "user_agent": "me"}`), 0o644)
	cfg, err = kegg.LoadConfig(good)
	if err != nil {
		t.Fatal(err)
	}
	want := kegg.Config{BaseURL: "http://x", TimeoutSeconds: 5, LogLevel: "debug", UserAgent: "me"}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if cfg.Timeout().Seconds() != 5 {
		t.Fatalf("timeout %v", cfg.Timeout())
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"base_url": `), 0o644)
	if _, err := kegg.LoadConfig(bad); err == nil {
		t.Fatal("broken json should fail")
	}
	unknown := filepath.Join(dir, "unknown.json")
	os.WriteFile(unknown, []byte(`{"baseurl": "x"}`), 0o644)
	if _, err := kegg.LoadConfig(unknown); err == nil {
		t.Fatal("unknown key should fail")
	}
}

func TestMymain(t *testing.T) {
	_, c := newFake(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "blast.txt")
	if err := os.WriteFile(in, []byte(blast), 0o644); err != nil {
		t.Fatal(err)
	}
	args := kegg.CmdArgs{
		Infile:     in,
		Outfile:    filepath.Join(dir, "results", "out.txt"),
		Evalue:     "1e-50",
		ConfigFile: filepath.Join(dir, "no_config.json"),
		BaseURL:    c.BaseURL,
	}
	st, err := kegg.Mymain(context.Background(), &args)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(args.Outfile)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(b), "\n"); n != st.Written || n != 7 {
		t.Fatalf("wrote %d lines, stats say %d", n, st.Written)
	}

	args.Evalue = "tiny"
	if _, err := kegg.Mymain(context.Background(), &args); err == nil {
		t.Fatal("bad e-value should fail")
	}
}
