// Package report turns extraction results into the saslstat summary and
// renders it.
//
// Build collects the totals, the time range and the top-N tables into a
// Summary. Two renderers are provided: TextRenderer prints the colored report
// (colors follow the semantic roles in Theme, not fixed escape codes) and
// JSONRenderer prints the same Summary for scripts.
//
// The text layout is fixed:
//
//	Total Failed Authentication Attempts: N
//	Unique IP Addresses: N
//	Unique Usernames: N
//
//	Time Range:
//	<earliest> to <latest>
//
//	Time Window:
//	(D days, H hours, M minutes)
//
//	Top Offending IPs:
//	<ip>: <count> attempts
//
//	Top Used Usernames:
//	<username>: <count> attempts
//
// A muted "Lines without IP/username/timestamp" line follows the counts when
// some lines lacked a field.
package report
