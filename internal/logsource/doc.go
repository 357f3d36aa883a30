// Package logsource retrieves postfix SASL authentication-failure lines.
//
// # Sources
//
// Three implementations of Source are provided:
//
//   - Journal: runs `journalctl -u <unit> -n <limit> --no-pager`
//   - File: reads the last <limit> lines of a syslog file
//   - Lines: a fixed slice, for tests and piping
//
// Every source keeps only lines containing FailureMarker. The limit applies
// to log entries inspected, not to failures returned, matching what
// `journalctl -n` does.
//
// # Failures
//
// A journalctl that is missing, exits non-zero, or outlives Journal.Timeout
// produces a *CommandError. Nothing is retried and no partial output is
// returned; callers are expected to treat the error as fatal.
//
// The command is executed through the Runner interface so tests can supply
// canned output without spawning a process:
//
//	src := &logsource.Journal{Unit: "postfix", Limit: 5000, Runner: fake}
//	lines, err := src.Fetch(ctx)
package logsource
