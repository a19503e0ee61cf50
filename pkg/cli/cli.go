// 17 Oct 2026

// Package cli has the bits of cobra set up that every tool repeats.
// The tools all exit with 0 on success, 1 when something went wrong at
// run time and 2 when they were called wrongly.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioscripts/pkg/seq/common"
)

// usageErr marks an error as the caller's fault.
type usageErr struct{ error }

func (e usageErr) Unwrap() error { return e.error }

// Usage marks err as a usage error, so Execute exits with
// common.ExitUsageError.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return usageErr{err}
}

// IsUsage says if err, or something it wraps, came from Usage.
func IsUsage(err error) bool {
	var u usageErr
	return errors.As(err, &u)
}

// Args wraps a cobra positional argument check so its complaints
// count as usage errors.
func Args(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Usage(check(cmd, args))
	}
}

// Setup quietens cobra so we decide what is printed, and marks flag
// parsing errors as usage errors.
func Setup(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return Usage(err)
	})
}

// Execute runs cmd and turns the result into an exit code. Usage errors
// get the usage text on stderr. Everything else goes to the logger.
func Execute(cmd *cobra.Command, stderr io.Writer, logger *log.Logger) int {
	err := cmd.Execute()
	switch {
	case err == nil:
		return common.ExitSuccess
	case IsUsage(err):
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return common.ExitUsageError
	}
	logger.Error(err)
	return common.ExitFailure
}

// LongDash rewrites single dash long flags like "-mate1" to "--mate1",
// so old scripts calling us the python argparse way keep working.
// Only the names given are touched, so bundled short flags still work.
func LongDash(args []string, names ...string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a
		if a == "--" {
			copy(out[i:], args[i:])
			break
		}
		if !strings.HasPrefix(a, "-") || strings.HasPrefix(a, "--") {
			continue
		}
		name, _, _ := strings.Cut(a[1:], "=")
		for _, n := range names {
			if name == n {
				out[i] = "-" + a
				break
			}
		}
	}
	return out
}

// NeedFlags complains, with a usage error, about any of the named flags
// that were not set. cobra's MarkFlagRequired would do the check, but
// its error does not go through the flag error function.
func NeedFlags(cmd *cobra.Command, names ...string) error {
	var missing []string
	for _, n := range names {
		if !cmd.Flags().Changed(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return Usage(fmt.Errorf("required flag(s) not set: %s", strings.Join(missing, ", ")))
}

// QuietPipe stops a write to a closed stdout, as in "kmers ... | head",
// from killing us. The write returns EPIPE instead, and the tools treat
// that as a normal end.
func QuietPipe() { signal.Ignore(syscall.SIGPIPE) }
