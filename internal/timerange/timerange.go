package timerange

import (
	"errors"
	"fmt"
	"time"
)

// layout is the syslog stamp with a year prepended by Parse. "2" accepts both
// "5" and "05".
const layout = "2006 Jan 2 15:04:05"

// ErrNoTimestamps is returned by Calculate when there is nothing to measure.
var ErrNoTimestamps = errors.New("no timestamps to calculate a time range from")

// MalformedTimestampError reports a fragment that looks like a syslog stamp
// but is not a real calendar instant, e.g. "Feb 30 10:00:00".
type MalformedTimestampError struct {
	Fragment string
	Year     int
	Err      error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q (year %d): %v", e.Fragment, e.Year, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error { return e.Err }

// Window is an elapsed duration split into whole days, hours and minutes.
// Seconds are dropped.
type Window struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// NewWindow decomposes d. Negative durations are treated as zero.
func NewWindow(d time.Duration) Window {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	return Window{
		Days:    minutes / (24 * 60),
		Hours:   minutes / 60 % 24,
		Minutes: minutes % 60,
	}
}

func (w Window) String() string {
	return fmt.Sprintf("%d days, %d hours, %d minutes", w.Days, w.Hours, w.Minutes)
}

// Range is the span covered by a set of log entries.
type Range struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
	Window   Window    `json:"window"`
}

// Elapsed returns Latest minus Earliest.
func (r Range) Elapsed() time.Duration {
	return r.Latest.Sub(r.Earliest)
}

// Parse turns a year-less syslog fragment into a wall-clock time in the given
// year. The result is in UTC and carries no zone meaning: "Mar 9 02:30:00"
// stays 02:30 even where that hour does not exist locally, and differences
// between two results are plain wall-clock differences.
func Parse(fragment string, year int) (time.Time, error) {
	t, err := time.Parse(layout, fmt.Sprintf("%d %s", year, fragment))
	if err != nil {
		return time.Time{}, &MalformedTimestampError{Fragment: fragment, Year: year, Err: err}
	}
	return t, nil
}

// Calculate parses every fragment for year and returns the earliest, latest
// and elapsed window between them.
//
// Syslog stamps carry no year, so every fragment is placed in the same year.
// A log that crosses New Year (December and January entries together) yields
// a wrong range; callers that care should read a source with full dates.
func Calculate(fragments []string, year int) (Range, error) {
	if len(fragments) == 0 {
		return Range{}, ErrNoTimestamps
	}

	var r Range
	for i, fragment := range fragments {
		t, err := Parse(fragment, year)
		if err != nil {
			return Range{}, err
		}
		if i == 0 || t.Before(r.Earliest) {
			r.Earliest = t
		}
		if i == 0 || t.After(r.Latest) {
			r.Latest = t
		}
	}
	r.Window = NewWindow(r.Elapsed())
	return r, nil
}
