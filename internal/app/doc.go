// Package app wires the saslstat pipeline together.
//
// # Overview
//
// Run is the composition root. It performs one pass of:
//
//	┌──────────────┐
//	│ Source.Fetch │ journalctl or a log file, failure lines only
//	└──────┬───────┘
//	       │ []string
//	┌──────▼───────┐
//	│ extract.Lines│ IPs, usernames, timestamps (independent slices)
//	└──┬────────┬──┘
//	   │        │
//	┌──▼─────┐ ┌▼──────────┐
//	│timerange│ │ freq.Count│
//	└──┬─────┘ └┬──────────┘
//	   │        │
//	┌──▼────────▼──┐
//	│ report.Build │ Summary
//	└──────┬───────┘
//	       │
//	  text, JSON or pager
//
// Nothing is kept between runs.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - invalid configuration
//   - the source failed (*logsource.CommandError for journalctl)
//   - failure lines were found but none had a timestamp (timerange.ErrNoTimestamps)
//   - a timestamp was not a valid date (*timerange.MalformedTimestampError)
//
// Not an error:
//   - no failure lines at all: the report shows zero counts and "no data"
//   - lines missing one of the fields: counted in the report's coverage line
//
// # Year Assumption
//
// Syslog stamps have no year. Options.Year supplies it and defaults to the
// current year at the time Run is called. See package timerange for the
// New Year limitation.
package app
