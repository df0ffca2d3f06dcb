package tui

import (
	"github.com/ekta-240/provider-pulse/internal/model"
)

// globalDataMsg carries the joined result of the three global fetches.
// It is only emitted when all three succeeded; partial results are never
// applied.
type globalDataMsg struct {
	stats     *model.StatsSnapshot
	providers []model.Provider
	reviews   []model.ManualReviewItem
}

// globalDataErrMsg reports a failed global reload. The prior state stays
// untouched; the failure is logged, not surfaced.
type globalDataErrMsg struct {
	err error
}

// batchFinishedMsg reports completion of a synchronous batch run.
type batchFinishedMsg struct {
	err error
}

// reportSavedMsg reports the outcome of a report download.
type reportSavedMsg struct {
	filename string
	err      error
}

// reviewActionDoneMsg reports the outcome of a manual-review decision.
type reviewActionDoneMsg struct {
	id     int
	action model.ReviewAction
	err    error
}
