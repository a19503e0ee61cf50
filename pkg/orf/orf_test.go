// 17 Oct 2026

package orf_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/bioscripts/pkg/orf"
	"github.com/andrew-torda/bioscripts/pkg/seq/common"
)

func TestTranscribe(t *testing.T) {
	if got := orf.Transcribe("ATGCtacgU"); got != "AUGCuacgU" {
		t.Fatalf("got %s", got)
	}
}

func TestFindFirst(t *testing.T) {
	tests := []struct{ rna, want string }{
		{"CCAUGGCCUAAGG", "AUGGCCUAA"},
		{"AUGUAA", ""},                  // needs at least one codon between
		{"AUGAAAUGAUAG", "AUGAAAUGA"},   // nearest in-frame stop
		{"AUGCUAAGGUAG", "AUGCUAAGGUAG"}, // UAA out of frame
		{"GGGGGG", ""},
		{"augaaauaa", ""}, // lower case is not looked at
		{"", ""},
	}
	for _, tt := range tests {
		if got := orf.FindFirst(tt.rna); got != tt.want {
			t.Errorf("FindFirst(%q) = %q want %q", tt.rna, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct{ rna, want string }{
		{"AUGGCCUAA", "MA*"},
		{"AUGUAAGGG", "M*G"},
		{"AUGGC", "M"},
		{"augUUU", "MF"},
		{"AUGNNN", "MX"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := orf.Translate(tt.rna); got != tt.want {
			t.Errorf("Translate(%q) = %q want %q", tt.rna, got, tt.want)
		}
	}
}

// TestCodonTable checks all 64 codons are there, three of them stops.
func TestCodonTable(t *testing.T) {
	bases := "UCAG"
	nstop := 0
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				aa := orf.TranslateCodon(string([]rune{a, b, c}))
				if aa == 'X' {
					t.Fatalf("codon %c%c%c missing", a, b, c)
				}
				if aa == orf.StopChar {
					nstop++
				}
			}
		}
	}
	if nstop != 3 {
		t.Fatalf("got %d stop codons", nstop)
	}
}

func TestTranslateFirst(t *testing.T) {
	tests := []struct{ dna, want string }{
		{"CCATGGCCTAAGG", "MA*"},
		{"ATGAAACCCGGGTTTTAGCCC", "MKPGF*"},
		{"ccatggcctaa", ""},
		{"TTTTTT", ""},
	}
	for _, tt := range tests {
		if got := orf.TranslateFirst(tt.dna); got != tt.want {
			t.Errorf("TranslateFirst(%q) = %q want %q", tt.dna, got, tt.want)
		}
	}
}

const chroms = `>2L chromosome arm
CCATGGCCTAAGG
>2R
ATGAAA
CCCGGGTTTTAG
>X
ATGGCCTAA
>4
TTTTTT
>211
ATGGCCTAA
`

func TestRun(t *testing.T) {
	var out bytes.Buffer
	nread, nwrite, err := orf.Run(strings.NewReader(chroms), &out, orf.DefaultPattern, nil)
	if err != nil {
		t.Fatal(err)
	}
	if nread != 5 || nwrite != 3 {
		t.Fatalf("read %d wrote %d", nread, nwrite)
	}
	want := "2L MA*\n2R MKPGF*\n4 \n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

// TestMatchFromStart checks a pattern only has to match at the start
// of the ID.
func TestMatchFromStart(t *testing.T) {
	var out bytes.Buffer
	if _, _, err := orf.Run(strings.NewReader(chroms), &out, `\d`, nil); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "\n"); n != 4 {
		t.Fatalf("want 4 lines got %d:\n%s", n, out.String())
	}
	out.Reset()
	if _, _, err := orf.Run(strings.NewReader(chroms), &out, `L`, nil); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("L is not at the start of any ID, got %q", out.String())
	}
}

func TestBadPattern(t *testing.T) {
	if _, _, err := orf.Run(strings.NewReader(chroms), &bytes.Buffer{}, `(`, nil); err == nil {
		t.Fatal("bad regex should fail")
	}
}

func TestMymainMissing(t *testing.T) {
	err := orf.Mymain(&orf.CmdArgs{Fname: "/does/not/exist.fa", Wrtr: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("missing file should fail")
	}
}

// TestClosedPipe checks that output to a pipe nobody reads ends
// quietly.
func TestClosedPipe(t *testing.T) {
	var recs strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&recs, ">c%d\nATGGCCTAA\n", i)
	}
	fname, err := common.WrtTemp(recs.String())
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	r.Close()
	defer w.Close()
	if err := orf.Mymain(&orf.CmdArgs{Fname: fname, Wrtr: w}); err != nil {
		t.Fatal("closed pipe should not be an error, got", err)
	}
}

func ExampleMymain() {
	fname, _ := common.WrtTemp(">3R\nGGATGTGGTGGTGATAA\n>Y\nATGTGGTAA\n")
	defer os.Remove(fname)
	orf.Mymain(&orf.CmdArgs{Fname: fname, Wrtr: os.Stdout})
	// Output:
	// 3R MWW*
}
