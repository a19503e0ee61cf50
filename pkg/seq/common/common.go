// 29 Apr 2020
// 12 Oct 2026 broken pipe check for the tools that write to stdout

package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// StdinName is the file name meaning "read from standard input".
const StdinName = "-"

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// IsBrokenPipe reports whether err says the reader on the other end of
// our output went away, as happens with "kmers ... | head".
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
