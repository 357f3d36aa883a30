// Package extract pulls source IPs, SASL usernames and syslog timestamps out
// of postfix authentication-failure lines.
//
// Each field has its own Pattern. A Pattern is total: Find either returns the
// captured value or reports no match, it never errors. Lines runs all three
// patterns over a batch and appends hits to three independent slices, so a
// line that carries an IP but no username still contributes its IP.
//
// No validation happens beyond the regular expressions. An address such as
// 999.999.999.999 is kept verbatim because it is what the server logged.
package extract
