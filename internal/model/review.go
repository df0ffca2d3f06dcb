package model

// ReviewStatus is the lifecycle state of a manual review item.
type ReviewStatus string

// Review status constants.
const (
	ReviewPending    ReviewStatus = "pending"
	ReviewApproved   ReviewStatus = "approved"
	ReviewRejected   ReviewStatus = "rejected"
	ReviewOverridden ReviewStatus = "overridden"
)

// ReviewAction is an operator decision on a manual review item.
type ReviewAction string

// Review actions accepted by the backend.
const (
	ActionApprove  ReviewAction = "approve"
	ActionReject   ReviewAction = "reject"
	ActionOverride ReviewAction = "override"
)

// ManualReviewItem is a field-level discrepancy the automated pipeline
// could not resolve with sufficient confidence.
type ManualReviewItem struct {
	ID             int          `json:"id"`
	ProviderID     string       `json:"provider_id"`
	Field          string       `json:"field"`
	CurrentValue   string       `json:"current_value"`
	SuggestedValue string       `json:"suggested_value"`
	Reason         string       `json:"reason"`
	Status         ReviewStatus `json:"status"`
}

// FilterPending returns only the items still awaiting a decision.
func FilterPending(items []ManualReviewItem) []ManualReviewItem {
	pending := make([]ManualReviewItem, 0, len(items))
	for _, item := range items {
		if item.Status == ReviewPending {
			pending = append(pending, item)
		}
	}
	return pending
}
