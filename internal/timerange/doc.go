// Package timerange measures the span covered by syslog timestamps.
//
// Syslog stamps ("Mar 05 14:23:01") have no year. Parse and Calculate take
// the year as an argument instead of reading the clock, so the caller decides
// which year applies and tests stay deterministic. The known limitation is a
// log spanning New Year: December entries are placed after January ones in
// the same year and the range comes out wrong.
//
// Stamps are wall-clock readings. They are parsed without a zone, so a
// daylight-saving change inside the log neither shifts a displayed stamp nor
// adds or removes an hour from the window.
//
// Calculate fails with ErrNoTimestamps on empty input and with a
// *MalformedTimestampError when a fragment is not a valid date.
package timerange
