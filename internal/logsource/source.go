package logsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitfield/script"
)

// FailureMarker is the substring postfix logs on every failed SASL LOGIN.
const FailureMarker = "SASL LOGIN authentication failed"

// DefaultLimit is how many log entries are inspected when none is configured.
const DefaultLimit = 5000

// Source yields raw authentication-failure lines.
type Source interface {
	// Fetch returns the failure lines, oldest first, without line terminators.
	Fetch(ctx context.Context) ([]string, error)
	// Describe names the source for diagnostics and the report header.
	Describe() string
}

// Lines is a Source backed by a fixed slice. It applies the same failure
// filter as the other sources.
type Lines []string

// Fetch filters the stored lines.
func (l Lines) Fetch(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FilterFailures(l)
}

// Describe implements Source.
func (l Lines) Describe() string {
	return fmt.Sprintf("%d in-memory lines", len(l))
}

// FilterFailures keeps the lines containing FailureMarker, trimmed of any
// trailing carriage return or newline.
func FilterFailures(lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, "\r\n")
	}
	matched, err := script.Slice(trimmed).Match(FailureMarker).Slice()
	if err != nil {
		return nil, fmt.Errorf("filter failure lines: %w", err)
	}
	if len(matched) == 0 {
		return nil, nil
	}
	return matched, nil
}

// splitOutput turns raw command output into lines.
func splitOutput(out []byte) []string {
	text := strings.TrimRight(string(out), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
