package model

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatContextWindow is how many trailing transcript entries are sent to
// the chat backend as conversational context.
const ChatContextWindow = 6

// ChatMessage is one entry in the chatbot transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ContextWindow returns the last ChatContextWindow entries of a transcript.
// The transcript itself is append-only; only the outgoing context is capped.
func ContextWindow(transcript []ChatMessage) []ChatMessage {
	if len(transcript) <= ChatContextWindow {
		return transcript
	}
	return transcript[len(transcript)-ChatContextWindow:]
}
