package components

import (
	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/model"
)

// Messages flowing between the app shell and its view panels. Panels emit
// request messages; the shell performs the backend call and feeds the
// result message back down.

// ProviderSelectedMsg is sent when a provider row is chosen in the list.
type ProviderSelectedMsg struct {
	Provider model.Provider
}

// BackToListMsg requests navigation back to the provider list.
type BackToListMsg struct{}

// ReviewActionRequestMsg asks the shell to dispatch a manual-review
// decision. Value is only set for overrides.
type ReviewActionRequestMsg struct {
	ID     int
	Action model.ReviewAction
	Value  string
}

// ExplainRequestMsg asks the shell for an AI explanation of a validated
// field in the detail view.
type ExplainRequestMsg struct {
	Request api.ExplainRequest
}

// ReviewExplainRequestMsg asks the shell for an AI explanation of a
// manual-review item.
type ReviewExplainRequestMsg struct {
	ItemID  int
	Request api.ExplainRequest
}

// ChatSendMsg asks the shell to post a chat message with its context.
type ChatSendMsg struct {
	Message string
	History []model.ChatMessage
}

// DetailLoadedMsg carries the detail record fetch result.
type DetailLoadedMsg struct {
	ProviderID string
	Detail     *model.ProviderDetail
	Err        error
}

// OCRLoadedMsg carries the OCR record fetch result.
type OCRLoadedMsg struct {
	ProviderID string
	Record     *model.OCRRecord
	Err        error
}

// QALoadedMsg carries the QA history fetch result.
type QALoadedMsg struct {
	ProviderID string
	Entries    []model.QAEntry
	Err        error
}

// ExplainResultMsg carries the explanation for a detail-view field.
type ExplainResultMsg struct {
	Field       string
	Explanation string
	Err         error
}

// ReviewExplainResultMsg carries the explanation for a review item.
type ReviewExplainResultMsg struct {
	ItemID      int
	Explanation string
	Err         error
}

// ChatReplyMsg carries the chat backend's reply.
type ChatReplyMsg struct {
	Reply string
	Err   error
}
