package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfidence(t *testing.T) {
	assert.Equal(t, "85%", Confidence(0.85))
	assert.Equal(t, "0%", Confidence(0))
	assert.Equal(t, "100%", Confidence(1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "70.0%", Percent(70))
	assert.Equal(t, "33.3%", Percent(100.0/3))
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "—", Timestamp(""))
	assert.Equal(t, "Aug 25, 2026 02:00", Timestamp("2026-08-25T02:00:00Z"))
	assert.Equal(t, "not a date", Timestamp("not a date"))
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "validation_report_2026-08-25.pdf", ReportFilename(now, "application/pdf"))
	assert.Equal(t, "validation_report_2026-08-25.csv", ReportFilename(now, "text/csv; charset=utf-8"))
	assert.Equal(t, "validation_report_2026-08-25.bin", ReportFilename(now, "application/octet-stream"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long str…", Truncate("long string here", 9))
	assert.Equal(t, "a", Truncate("abc", 1))
}
