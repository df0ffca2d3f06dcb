package model

// AutoUpdateThreshold is the confidence boundary that separates automatic
// field updates from manual review. The boundary is inclusive: a field at
// exactly 0.7 is auto-updated. Every decision in the client derives from
// this one constant.
const AutoUpdateThreshold = 0.7

// Decision labels sent to the explanation backend.
const (
	DecisionAutoUpdate   = "auto_update"
	DecisionManualReview = "manual_review"
)

// DecisionFor returns the decision label for a confidence value.
func DecisionFor(confidence float64) string {
	if confidence >= AutoUpdateThreshold {
		return DecisionAutoUpdate
	}
	return DecisionManualReview
}

// StatusLabel returns the human-readable status for a confidence value.
func StatusLabel(confidence float64) string {
	if confidence >= AutoUpdateThreshold {
		return "Auto-Updated"
	}
	return "Manual Review"
}
