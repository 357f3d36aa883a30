// Package cli implements the saslstat command line.
package cli

import (
	"context"
	"fmt"
	"io"
)

// Execute runs the root command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "saslstat: %v\n", err)
		return 1
	}
	return 0
}
