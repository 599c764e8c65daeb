package truncate

import (
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Reporter receives a notification whenever a value is cut. The default
// reports through the package logger; metrics pipelines install their own.
type Reporter interface {
	Truncated(field string, originalLen, max int)
}

type logReporter struct{}

func (logReporter) Truncated(field string, originalLen, max int) {
	Logger().Warn("value truncated",
		zap.String("field", field),
		zap.Int("original_len", originalLen),
		zap.Int("max", max))
}

var (
	reporterMu sync.RWMutex
	reporter   Reporter = logReporter{}
)

// SetReporter installs the truncation reporter. Passing nil restores the
// logging default.
func SetReporter(r Reporter) {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	if r == nil {
		r = logReporter{}
	}
	reporter = r
}

func report(field string, originalLen, max int) {
	reporterMu.RLock()
	r := reporter
	reporterMu.RUnlock()
	r.Truncated(field, originalLen, max)
}

// String caps s at max bytes without splitting a UTF-8 sequence, reporting
// the truncation when one occurs. max <= 0 yields the empty string; a
// string already within max passes through untouched.
func String(s string, max int) string {
	return Field("", s, max)
}

// Field is String with a field name attached to the report.
func Field(name, s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 0 {
		report(name, len(s), max)
		return ""
	}

	cut := max
	// Back off to the start of the rune straddling the boundary.
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	report(name, len(s), max)
	return s[:cut]
}
