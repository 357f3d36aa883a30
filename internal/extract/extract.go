package extract

import (
	"fmt"
	"regexp"
)

// Pattern pulls a single field out of a log line. The expression must declare
// a capture group named "value"; that group is what Find returns.
type Pattern struct {
	Name  string
	re    *regexp.Regexp
	group int
}

// NewPattern compiles expr into a Pattern.
func NewPattern(name, expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %s pattern: %w", name, err)
	}
	group := re.SubexpIndex("value")
	if group < 0 {
		return nil, fmt.Errorf("%s pattern has no (?P<value>...) group", name)
	}
	return &Pattern{Name: name, re: re, group: group}, nil
}

func mustPattern(name, expr string) *Pattern {
	p, err := NewPattern(name, expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Find returns the first captured value in line. ok is false when the line
// does not match.
func (p *Pattern) Find(line string) (value string, ok bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[p.group], true
}

var (
	// IP matches the client address postfix logs as unknown[a.b.c.d]. Octets
	// are not range checked.
	IP = mustPattern("ip", `unknown\[(?P<value>\d+\.\d+\.\d+\.\d+)\]`)

	// Username matches the sasl_username= attribute.
	Username = mustPattern("username", `sasl_username=(?P<value>[\w.@]+)`)

	// Timestamp matches a year-less syslog stamp such as "Mar 05 14:23:01".
	Timestamp = mustPattern("timestamp", `(?P<value>\w{3} \d{1,2} \d{2}:\d{2}:\d{2})`)
)

// Fields holds everything extracted from a batch of lines. The three slices
// are filled independently and are not aligned with each other or with the
// input lines.
type Fields struct {
	IPs        []string `json:"ips"`
	Usernames  []string `json:"usernames"`
	Timestamps []string `json:"timestamps"`
}

// Missing reports how many input lines yielded no IP, username or timestamp.
type Missing struct {
	IPs        int `json:"ips"`
	Usernames  int `json:"usernames"`
	Timestamps int `json:"timestamps"`
}

// Any reports whether at least one line lacked some field.
func (m Missing) Any() bool {
	return m.IPs > 0 || m.Usernames > 0 || m.Timestamps > 0
}

// Missing compares the extracted counts against the number of input lines.
func (f Fields) Missing(lines int) Missing {
	return Missing{
		IPs:        lines - len(f.IPs),
		Usernames:  lines - len(f.Usernames),
		Timestamps: lines - len(f.Timestamps),
	}
}

// Lines runs the IP, username and timestamp patterns over every line and
// collects the matches in input order. Lines that match nothing are skipped.
func Lines(lines []string) Fields {
	var f Fields
	for _, line := range lines {
		if v, ok := IP.Find(line); ok {
			f.IPs = append(f.IPs, v)
		}
		if v, ok := Username.Find(line); ok {
			f.Usernames = append(f.Usernames, v)
		}
		if v, ok := Timestamp.Find(line); ok {
			f.Timestamps = append(f.Timestamps, v)
		}
	}
	return f
}
