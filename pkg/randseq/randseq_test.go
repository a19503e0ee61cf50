// 31 July 2020

package randseq_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/andrew-torda/bioscripts/pkg/randseq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Wrtr: &sb,
		Cmmt: "testing seq",
		Nseq: 5000,
		Len:  1600,
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), ">"); n != args.Nseq {
		t.Fatal("count >, got ", n, "expected", args.Nseq)
	}
}

func TestDNANoWhite(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Wrtr: &sb, Alphabet: "dna", Nseq: 3, Len: 50}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 lines got %d", len(lines))
	}
	for i := 1; i < len(lines); i += 2 {
		if len(lines[i]) != 50 || strings.Trim(lines[i], "ACGT") != "" {
			t.Fatalf("bad dna line %q", lines[i])
		}
	}
}

func TestPairs(t *testing.T) {
	var m1, m2 strings.Builder
	args := randseq.RandSeqArgs{Wrtr: &m1, Mate2: &m2, Nseq: 7, Len: 30, MkErr: true, Iseed: 3}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	nl := func(s string) int { return strings.Count(s, "\n") }
	if n := nl(m1.String()); n != 4*7 {
		t.Fatalf("mate1 has %d lines, want %d", n, 4*7)
	}
	if n := nl(m2.String()); n != 4*6 {
		t.Fatalf("mate2 has %d lines, want %d", n, 4*6)
	}
	if !strings.HasPrefix(m2.String(), "@read1/2") {
		t.Fatalf("mate2 starts %q", m2.String()[:10])
	}
}

func TestBadAlphabet(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Wrtr: &sb, Alphabet: "klingon", Nseq: 1, Len: 1}
	if err := randseq.RandSeqMain(&args); err == nil {
		t.Fatal("should have failed on silly alphabet")
	}
}

func TestSeqDeterministic(t *testing.T) {
	a := randseq.Seq(rand.New(rand.NewSource(9)), randseq.DNA, 100)
	b := randseq.Seq(rand.New(rand.NewSource(9)), randseq.DNA, 100)
	if string(a) != string(b) {
		t.Fatal("same seed, different sequences")
	}
}
