package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/five82/saslstat/internal/config"
	"github.com/five82/saslstat/internal/extract"
	"github.com/five82/saslstat/internal/freq"
	"github.com/five82/saslstat/internal/logsource"
	"github.com/five82/saslstat/internal/pager"
	"github.com/five82/saslstat/internal/report"
	"github.com/five82/saslstat/internal/timerange"
)

// Options configure a saslstat run.
type Options struct {
	Config config.Config
	Year   int  // year assumed for syslog stamps; zero uses the current year
	Pager  bool // show the text report in the interactive pager

	Source logsource.Source // nil builds one from Config
	Stdin  io.Reader
	Stdout io.Writer
}

// Run fetches failure lines, analyzes them and writes the report.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	src := opts.Source
	if src == nil {
		src = NewSource(cfg)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	slog.Debug("fetching log lines", "source", src.Describe())
	lines, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch log lines: %w", err)
	}
	slog.Debug("fetched failure lines", "count", len(lines))

	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	summary, err := Analyze(src.Describe(), lines, year, cfg.Top)
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatText && opts.Pager {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		text := report.NewTextRenderer(stdout, cfg.Color)
		if err := pager.Run(ctx, "saslstat: "+summary.Source, text.Format(summary), stdin, stdout); err != nil {
			return fmt.Errorf("pager: %w", err)
		}
		return nil
	}
	return NewRenderer(cfg, stdout).Render(summary)
}

// NewRenderer picks the report renderer for cfg.Format.
func NewRenderer(cfg config.Config, w io.Writer) report.Renderer {
	if cfg.Format == config.FormatJSON {
		return report.NewJSONRenderer(w)
	}
	return report.NewTextRenderer(w, cfg.Color)
}

// Analyze extracts fields from lines and builds the report summary.
//
// No lines at all is a valid, empty result with no time range. Lines that
// carry no timestamp, or a timestamp that is not a real date, are errors.
func Analyze(source string, lines []string, year, top int) (report.Summary, error) {
	fields := extract.Lines(lines)
	slog.Debug("extracted fields",
		"ips", len(fields.IPs),
		"usernames", len(fields.Usernames),
		"timestamps", len(fields.Timestamps))

	var rng *timerange.Range
	r, err := timerange.Calculate(fields.Timestamps, year)
	switch {
	case err == nil:
		rng = &r
	case errors.Is(err, timerange.ErrNoTimestamps) && len(lines) == 0:
	default:
		return report.Summary{}, fmt.Errorf("calculate time range: %w", err)
	}

	ips := freq.Count(fields.IPs)
	usernames := freq.Count(fields.Usernames)
	return report.Build(source, len(lines), fields, ips, usernames, rng, top), nil
}

// NewSource picks the log source for cfg: a file when one is configured,
// otherwise the systemd journal.
func NewSource(cfg config.Config) logsource.Source {
	if cfg.File != "" {
		return &logsource.File{Path: cfg.File, Limit: cfg.Limit}
	}
	j := logsource.NewJournal(cfg.Unit)
	j.Limit = cfg.Limit
	j.Timeout = cfg.Timeout
	return j
}
