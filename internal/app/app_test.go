package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/five82/saslstat/internal/config"
	"github.com/five82/saslstat/internal/freq"
	"github.com/five82/saslstat/internal/logsource"
	"github.com/five82/saslstat/internal/report"
	"github.com/five82/saslstat/internal/timerange"
)

func failure(stamp, ip, user string) string {
	return stamp + " mx1 postfix/smtpd[4242]: warning: unknown[" + ip + "]: SASL LOGIN authentication failed: UGFzc3dvcmQ6, sasl_username=" + user
}

func sampleLines() []string {
	var lines []string
	for i := 0; i < 5; i++ {
		lines = append(lines, failure("Jan 1 00:00:00", "10.0.0.1", "admin"))
	}
	lines = append(lines,
		failure("Jan 2 01:30:00", "10.0.0.2", "info@example.com"),
		failure("Jan 1 12:00:00", "10.0.0.2", "admin"),
	)
	return lines
}

type failingSource struct{ err error }

func (f failingSource) Fetch(context.Context) ([]string, error) { return nil, f.err }
func (f failingSource) Describe() string                       { return "failing" }

func TestAnalyze(t *testing.T) {
	s, err := Analyze("test", sampleLines(), 2025, 10)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if s.TotalAttempts != 7 || s.UniqueIPs != 2 || s.UniqueUsernames != 2 {
		t.Fatalf("counts = %d/%d/%d, want 7/2/2", s.TotalAttempts, s.UniqueIPs, s.UniqueUsernames)
	}
	want := []freq.Entry{{Key: "10.0.0.1", Count: 5}, {Key: "10.0.0.2", Count: 2}}
	if len(s.TopIPs) != 2 || s.TopIPs[0] != want[0] || s.TopIPs[1] != want[1] {
		t.Fatalf("TopIPs = %+v, want %+v", s.TopIPs, want)
	}
	if s.Range == nil || s.Range.Window != (timerange.Window{Days: 1, Hours: 1, Minutes: 30}) {
		t.Fatalf("Range = %+v, want 1 day 1 hour 30 minutes", s.Range)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	s, err := Analyze("test", nil, 2025, 10)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if s.TotalAttempts != 0 || s.UniqueIPs != 0 || s.UniqueUsernames != 0 {
		t.Fatalf("counts = %d/%d/%d, want zeros", s.TotalAttempts, s.UniqueIPs, s.UniqueUsernames)
	}
	if s.Range != nil {
		t.Fatalf("Range = %+v, want nil", s.Range)
	}
}

func TestAnalyze_LinesWithoutTimestamps(t *testing.T) {
	_, err := Analyze("test", []string{"warning: unknown[10.0.0.1]: SASL LOGIN authentication failed"}, 2025, 10)
	if !errors.Is(err, timerange.ErrNoTimestamps) {
		t.Fatalf("Analyze error = %v, want ErrNoTimestamps", err)
	}
}

func TestAnalyze_MalformedTimestamp(t *testing.T) {
	_, err := Analyze("test", []string{failure("Feb 30 10:00:00", "10.0.0.1", "x")}, 2025, 10)
	var malformed *timerange.MalformedTimestampError
	if !errors.As(err, &malformed) {
		t.Fatalf("Analyze error = %v, want *MalformedTimestampError", err)
	}
}

func TestRun_TextReport(t *testing.T) {
	lines := append(sampleLines(), "Jan 2 02:00:00 mx1 postfix/smtpd[1]: connect from unknown[10.9.9.9]")
	cfg := config.Default()
	cfg.Color = false

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Config: cfg,
		Year:   2025,
		Source: logsource.Lines(lines),
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Total Failed Authentication Attempts: 7\n",
		"2025-01-01 00:00:00 to 2025-01-02 01:30:00",
		"(1 days, 1 hours, 30 minutes)",
		"Top Offending IPs:\n10.0.0.1: 5 attempts\n10.0.0.2: 2 attempts\n",
		"admin: 6 attempts",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "10.9.9.9") {
		t.Fatalf("report includes a non-failure line:\n%s", got)
	}
}

func TestRun_JSONReport(t *testing.T) {
	cfg := config.Default()
	cfg.Format = config.FormatJSON
	cfg.Top = 1

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Config: cfg,
		Year:   2025,
		Source: logsource.Lines(sampleLines()),
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var s report.Summary
	if err := json.Unmarshal(out.Bytes(), &s); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(s.TopIPs) != 1 || s.TopIPs[0].Key != "10.0.0.1" {
		t.Fatalf("TopIPs = %+v, want only 10.0.0.1", s.TopIPs)
	}
}

func TestRun_EmptySourceReportsNoData(t *testing.T) {
	cfg := config.Default()
	cfg.Color = false

	var out bytes.Buffer
	err := Run(context.Background(), Options{Config: cfg, Source: logsource.Lines(nil), Stdout: &out})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Total Failed Authentication Attempts: 0") || !strings.Contains(out.String(), "no data") {
		t.Fatalf("output = %q, want zero total and no data", out.String())
	}
}

func TestRun_SourceErrorIsFatal(t *testing.T) {
	cerr := &logsource.CommandError{Command: "journalctl -u postfix", ExitCode: 1}
	err := Run(context.Background(), Options{
		Config: config.Default(),
		Source: failingSource{err: cerr},
		Stdout: &bytes.Buffer{},
	})
	var got *logsource.CommandError
	if !errors.As(err, &got) {
		t.Fatalf("Run error = %v, want *CommandError", err)
	}
	if !strings.Contains(err.Error(), "fetch log lines") {
		t.Fatalf("Run error = %q, want it to mention fetch log lines", err.Error())
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Top = 0
	if err := Run(context.Background(), Options{Config: cfg, Source: logsource.Lines(nil)}); err == nil {
		t.Fatalf("Run returned nil error for invalid config")
	}
}

func TestNewSource(t *testing.T) {
	cfg := config.Default()
	cfg.Unit = "postfix@-"
	cfg.Limit = 100
	cfg.Timeout = time.Second

	j, ok := NewSource(cfg).(*logsource.Journal)
	if !ok {
		t.Fatalf("NewSource = %T, want *logsource.Journal", NewSource(cfg))
	}
	if j.Unit != "postfix@-" || j.Limit != 100 || j.Timeout != time.Second {
		t.Fatalf("Journal = %+v", j)
	}

	cfg.File = "/var/log/mail.log"
	f, ok := NewSource(cfg).(*logsource.File)
	if !ok {
		t.Fatalf("NewSource = %T, want *logsource.File", NewSource(cfg))
	}
	if f.Path != "/var/log/mail.log" || f.Limit != 100 {
		t.Fatalf("File = %+v", f)
	}
}

func TestAnalyze_TotalCountsOnlyLinesWithIP(t *testing.T) {
	lines := []string{
		failure("Mar 05 10:00:00", "10.0.0.1", "admin"),
		"Mar 05 10:00:05 mx1 postfix/smtpd[7]: warning: mail.example.net[10.0.0.2]: SASL LOGIN authentication failed: UGFzc3dvcmQ6, sasl_username=admin",
	}

	s, err := Analyze("test", lines, 2025, 10)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if s.TotalAttempts != 1 || s.UniqueIPs != 1 {
		t.Fatalf("TotalAttempts/UniqueIPs = %d/%d, want 1/1", s.TotalAttempts, s.UniqueIPs)
	}
	sum := 0
	for _, e := range s.TopIPs {
		sum += e.Count
	}
	if sum != s.TotalAttempts {
		t.Fatalf("sum of IP counts = %d, want TotalAttempts %d", sum, s.TotalAttempts)
	}
	if s.Missing.IPs != 1 {
		t.Fatalf("Missing.IPs = %d, want 1", s.Missing.IPs)
	}
}

func TestAnalyze_IgnoresLocalTimeZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	prev := time.Local
	time.Local = ny
	t.Cleanup(func() { time.Local = prev })

	lines := []string{
		failure("Mar 9 01:00:00", "10.0.0.1", "a"),
		failure("Mar 9 02:30:00", "10.0.0.1", "a"),
		failure("Mar 9 03:30:00", "10.0.0.1", "a"),
	}
	s, err := Analyze("test", lines, 2025, 10)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if s.Range.Window != (timerange.Window{Hours: 2, Minutes: 30}) {
		t.Fatalf("Window = %+v, want 2 hours 30 minutes", s.Range.Window)
	}

	cfg := config.Default()
	cfg.Color = false
	out := NewRenderer(cfg, &bytes.Buffer{}).(*report.TextRenderer).Format(s)
	if !strings.Contains(out, "2025-03-09 01:00:00 to 2025-03-09 03:30:00") {
		t.Fatalf("report = %q, want wall-clock stamps unchanged", out)
	}
}

func TestNewRenderer(t *testing.T) {
	cfg := config.Default()
	if _, ok := NewRenderer(cfg, &bytes.Buffer{}).(*report.TextRenderer); !ok {
		t.Fatalf("NewRenderer(text) is not a *report.TextRenderer")
	}
	cfg.Format = config.FormatJSON
	if _, ok := NewRenderer(cfg, &bytes.Buffer{}).(*report.JSONRenderer); !ok {
		t.Fatalf("NewRenderer(json) is not a *report.JSONRenderer")
	}
}
