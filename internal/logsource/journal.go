package logsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultUnit is the systemd unit postfix runs under.
	DefaultUnit = "postfix"
	// DefaultTimeout bounds a single journalctl invocation.
	DefaultTimeout = 30 * time.Second

	journalctl = "journalctl"
	stderrTail = 512
)

// CommandError reports a log query that could not run or exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int // -1 when the process never started or was killed
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Command)
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " with exit status %d", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, " (stderr: %s)", e.Stderr)
	}
	return b.String()
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args. Failures come back as *CommandError.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cerr := &CommandError{
			Command:  commandLine(name, args),
			ExitCode: -1,
			Stderr:   tail(strings.TrimSpace(stderr.String()), stderrTail),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			cerr.ExitCode = exitErr.ExitCode()
			cerr.Err = nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			cerr.Err = ctxErr
		}
		return nil, cerr
	}
	return stdout.Bytes(), nil
}

// Journal reads the systemd journal of a unit through journalctl.
type Journal struct {
	Unit    string
	Limit   int
	Timeout time.Duration
	Runner  Runner
}

// NewJournal returns a Journal for unit with the default limit and timeout.
func NewJournal(unit string) *Journal {
	return &Journal{
		Unit:    unit,
		Limit:   DefaultLimit,
		Timeout: DefaultTimeout,
		Runner:  ExecRunner{},
	}
}

// Args returns the journalctl arguments used by Fetch.
func (j *Journal) Args() []string {
	unit := strings.TrimSpace(j.Unit)
	if unit == "" {
		unit = DefaultUnit
	}
	limit := j.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return []string{"-u", unit, "-n", strconv.Itoa(limit), "--no-pager"}
}

// Fetch runs journalctl and keeps the failure lines.
func (j *Journal) Fetch(ctx context.Context) ([]string, error) {
	runner := j.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	args := j.Args()
	out, err := runner.Run(ctx, journalctl, args...)
	if err != nil {
		var cerr *CommandError
		if errors.As(err, &cerr) {
			return nil, err
		}
		return nil, &CommandError{Command: commandLine(journalctl, args), ExitCode: -1, Err: err}
	}
	return FilterFailures(splitOutput(out))
}

// Describe implements Source.
func (j *Journal) Describe() string {
	return commandLine(journalctl, j.Args())
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
