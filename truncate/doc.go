// Package truncate caps string values at a byte budget without splitting
// a UTF-8 sequence mid-rune, and reports every cut to a pluggable
// diagnostics facility (a zap logger by default) so silent data loss shows
// up in metrics.
package truncate
