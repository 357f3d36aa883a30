package report

import (
	"github.com/five82/saslstat/internal/extract"
	"github.com/five82/saslstat/internal/freq"
	"github.com/five82/saslstat/internal/timerange"
)

// DefaultTop is the number of ranked rows shown per table.
const DefaultTop = 10

// Summary is everything the report shows about one run.
type Summary struct {
	Source          string           `json:"source"`
	TotalAttempts   int              `json:"total_attempts"`
	UniqueIPs       int              `json:"unique_ips"`
	UniqueUsernames int              `json:"unique_usernames"`
	Range           *timerange.Range `json:"range,omitempty"`
	TopIPs          []freq.Entry     `json:"top_ips"`
	TopUsernames    []freq.Entry     `json:"top_usernames"`
	Missing         extract.Missing  `json:"missing"`
}

// Build assembles a Summary. An attempt is a failure line with a client
// address, so TotalAttempts always equals the sum of the IP counts; lines
// without one only show up in Missing. The tables are cut to top rows (DefaultTop when top <= 0). rng may be nil when
// no time range is available.
func Build(source string, lines int, fields extract.Fields, ips, usernames freq.Table, rng *timerange.Range, top int) Summary {
	if top <= 0 {
		top = DefaultTop
	}
	return Summary{
		Source:          source,
		TotalAttempts:   ips.Total(),
		UniqueIPs:       ips.Len(),
		UniqueUsernames: usernames.Len(),
		Range:           rng,
		TopIPs:          ips.Top(top),
		TopUsernames:    usernames.Top(top),
		Missing:         fields.Missing(lines),
	}
}
