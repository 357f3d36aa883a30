// Package config loads saslstat settings.
//
// # Resolution Order
//
// Later sources override earlier ones:
//
//  1. Built-in defaults (Default)
//  2. TOML file, ~/.config/saslstat/config.toml unless a path is given
//  3. SASLSTAT_* variables from an optional .env file
//  4. SASLSTAT_* variables from the process environment
//  5. Command-line flags (applied by the cli package)
//
// A missing config file or .env file is not an error. A file that exists but
// does not parse is.
//
// # Default Values
//
//   - unit: postfix
//   - limit: 5000 log entries
//   - top: 10 ranked rows
//   - timeout: 30s for the journalctl call
//   - format: text
//   - color: true (still disabled automatically when stdout is not a terminal)
//   - log_level: warn
//
// # TOML Format
//
//	unit = "postfix"
//	limit = 5000
//	top = 10
//	file = "~/mail.log"     # read this file instead of the journal
//	timeout = "30s"
//	format = "text"         # or "json"
//	color = true
//	log_level = "warn"
//
// Blank strings and non-positive numbers fall back to defaults. Tilde
// expansion is applied to file.
//
// # Environment
//
// SASLSTAT_UNIT, SASLSTAT_LIMIT, SASLSTAT_TOP, SASLSTAT_FILE,
// SASLSTAT_TIMEOUT, SASLSTAT_FORMAT and SASLSTAT_LOG_LEVEL mirror the TOML
// keys. The .env file is read with godotenv.Read and never modifies the
// process environment.
package config
