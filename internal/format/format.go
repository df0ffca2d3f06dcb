// Package format holds pure display-formatting helpers shared by the TUI
// and the CLI commands.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Confidence renders a 0-1 confidence as a percentage string.
func Confidence(c float64) string {
	return fmt.Sprintf("%.0f%%", c*100)
}

// Score renders a 0-100 score with one decimal place.
func Score(s float64) string {
	return fmt.Sprintf("%.1f", s)
}

// Percent renders a percentage with one decimal place.
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Timestamp reformats a backend timestamp for display. Unparseable
// values pass through unchanged rather than hiding data.
func Timestamp(raw string) string {
	if raw == "" {
		return "—"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006 15:04")
		}
	}
	return raw
}

// ReportFilename builds the local filename for a downloaded report.
func ReportFilename(now time.Time, contentType string) string {
	return fmt.Sprintf("validation_report_%s.%s", now.Format("2006-01-02"), ReportExt(contentType))
}

// ReportExt maps a report Content-Type to a file extension.
func ReportExt(contentType string) string {
	ct := contentType
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	switch strings.TrimSpace(ct) {
	case "application/pdf":
		return "pdf"
	case "text/csv":
		return "csv"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return "xlsx"
	case "application/json":
		return "json"
	default:
		return "bin"
	}
}

// Truncate shortens a string to at most n runes, appending an ellipsis
// when anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
