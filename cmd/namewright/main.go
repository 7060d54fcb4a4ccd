// Command namewright parses release titles and renames media files into a
// configured library layout. See the subcommands' --help for details.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(fs, stdout, stderr)
	defer a.close()

	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			// interrupted; already logged
		case errors.Is(err, errReported):
			// already logged
		default:
			fmt.Fprintf(stderr, "namewright: %v\n", err)
		}
		return 1
	}
	return 0
}
