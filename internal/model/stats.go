package model

// BatchRun is the metadata of one validation batch run.
type BatchRun struct {
	StartTime      string `json:"start_time"`
	Type           string `json:"type"`
	CountProcessed int    `json:"count_processed"`
	AutoUpdates    int    `json:"auto_updates"`
}

// TrendPoint is one entry in the recent-runs trend series.
type TrendPoint struct {
	Date          string `json:"date"`
	AutoUpdates   int    `json:"auto_updates"`
	ManualReviews int    `json:"manual_reviews"`
}

// StatsSnapshot is the aggregate state of the validation pipeline as
// reported by GET /stats.
type StatsSnapshot struct {
	LatestRun         BatchRun       `json:"latest_run"`
	AverageScore      float64        `json:"average_score"`
	DriftDistribution map[string]int `json:"drift_distribution"`
	PCSDistribution   map[string]int `json:"pcs_distribution"`
	Trend             []TrendPoint   `json:"trend"`
}

// AutoPercent computes the share of fields auto-updated in the latest run
// against the currently pending manual reviews. Returns 0 when nothing
// was processed rather than dividing by zero.
func (s StatsSnapshot) AutoPercent(manualReviewCount int) float64 {
	total := s.LatestRun.AutoUpdates + manualReviewCount
	if total == 0 {
		return 0
	}
	return float64(s.LatestRun.AutoUpdates) / float64(total) * 100
}
