// 17 Oct 2026

package kegg

import (
	"fmt"
	"strconv"
	"strings"
)

// Columns of tab separated BLAST output that we use, counting from 0.
const (
	colSubject = 1
	colEvalue  = 7
)

// UniProtFromBlast returns the subject (UniProt) ID of a BLAST line if
// its e-value is below threshold. ok is false if the hit is not good
// enough. A line that is too short or has no number where the e-value
// should be is an error.
func UniProtFromBlast(line string, threshold float64) (id string, ok bool, err error) {
	f := strings.Split(strings.TrimSpace(line), "\t")
	if len(f) <= colEvalue {
		return "", false, fmt.Errorf("want at least %d tab separated fields, got %d", colEvalue+1, len(f))
	}
	ev, err := strconv.ParseFloat(strings.TrimSpace(f[colEvalue]), 64)
	if err != nil {
		return "", false, fmt.Errorf("e-value: %w", err)
	}
	if ev < threshold {
		return f[colSubject], true, nil
	}
	return "", false, nil
}
