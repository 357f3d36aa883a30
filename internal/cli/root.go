package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/saslstat/internal/app"
	"github.com/five82/saslstat/internal/config"
	"github.com/five82/saslstat/internal/logging"
)

// Range accepted by --year; time.Parse cannot place a stamp outside it.
const (
	minYear = 1
	maxYear = 9999
)

type flags struct {
	configPath string
	envPath    string
	unit       string
	limit      int
	top        int
	file       string
	timeout    time.Duration
	year       int
	format     string
	noColor    bool
	pager      bool
	logLevel   string
}

// NewRootCommand builds the saslstat command. stderr receives diagnostics.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "saslstat",
		Short: "Summarize postfix SASL LOGIN authentication failures",
		Long: `saslstat reads recent postfix log entries, keeps the lines reporting
"SASL LOGIN authentication failed", and prints who is failing to log in:
total attempts, unique addresses and usernames, the time span covered and
the most frequent offenders.

Examples:
  saslstat
  saslstat --limit 20000 --top 25
  saslstat --file /var/log/mail.log --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath, f.envPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := applyFlags(cmd, &f, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if cmd.Flags().Changed("year") && (f.year < minYear || f.year > maxYear) {
				return fmt.Errorf("invalid --year %d: want %d-%d", f.year, minYear, maxYear)
			}

			logging.Init(stderr, logging.ParseLevel(cfg.LogLevel))

			return app.Run(cmd.Context(), app.Options{
				Config: cfg,
				Year:   f.year,
				Pager:  f.pager,
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file (default ~/.config/saslstat/config.toml)")
	fl.StringVar(&f.envPath, "env-file", "", "env file with SASLSTAT_* overrides (default ./.env)")
	fl.StringVarP(&f.unit, "unit", "u", "postfix", "systemd unit to query")
	fl.IntVarP(&f.limit, "limit", "n", 5000, "number of log entries to inspect")
	fl.IntVarP(&f.top, "top", "k", 10, "rows per ranked table")
	fl.StringVarP(&f.file, "file", "f", "", "read this syslog file instead of the journal")
	fl.DurationVar(&f.timeout, "timeout", 30*time.Second, "journalctl timeout (0 disables)")
	fl.IntVar(&f.year, "year", 0, "year assumed for syslog timestamps (default current year)")
	fl.StringVarP(&f.format, "format", "o", config.FormatText, "output format: text, json")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fl.BoolVar(&f.pager, "pager", false, "show the report in a scrollable pager")
	fl.StringVar(&f.logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn, error")

	return cmd
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("unit") {
		cfg.Unit = f.unit
	}
	if changed("limit") {
		cfg.Limit = f.limit
	}
	if changed("top") {
		cfg.Top = f.top
	}
	if changed("file") {
		expanded, err := config.ExpandPath(f.file)
		if err != nil {
			return fmt.Errorf("invalid --file: %w", err)
		}
		cfg.File = expanded
	}
	if changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(f.format))
	}
	if f.noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return nil
}
